package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/choenig/ASN-Label-Generator/internal/models"
	"github.com/choenig/ASN-Label-Generator/internal/sheet"
	"github.com/choenig/ASN-Label-Generator/internal/values"
)

// WriteCSV emits one row per label cell in visual reading order: row by
// row across each sheet, even though serials run down the columns. The
// item list is padded with zero items so the last sheet is complete.
func WriteCSV(w io.Writer, items []models.Item, tpl sheet.Template, palette values.Palette) error {
	capacity := tpl.Capacity()

	padded := items
	if rest := len(items) % capacity; rest != 0 {
		padded = make([]models.Item, 0, len(items)+capacity-rest)
		padded = append(padded, items...)
		padded = append(padded, make([]models.Item, capacity-rest)...)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"ID", "Year", "ID4", "CODE", "Zero4", "fg"}); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for page := 0; page < len(padded)/capacity; page++ {
		for row := 0; row < tpl.Rows; row++ {
			for col := 0; col < tpl.Cols; col++ {
				item := padded[page*capacity+col*tpl.Rows+row]
				v := values.Derive(item.Year, item.Serial, palette)
				record := []string{
					strconv.Itoa(item.Serial),
					fmt.Sprintf("%02d", item.Year),
					v.ID4,
					v.Code,
					v.ZeroFill,
					v.Color,
				}
				if err := cw.Write(record); err != nil {
					return fmt.Errorf("failed to write record: %w", err)
				}
			}
		}
	}

	cw.Flush()
	return cw.Error()
}
