package rangespec

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/choenig/ASN-Label-Generator/internal/models"
)

// Range describes a contiguous block of serial numbers for one year.
type Range struct {
	Year  int
	First int
	Last  int
}

// ErrInvalidFormat is returned when a spec does not have exactly three
// colon-separated fields.
var ErrInvalidFormat = errors.New("invalid range format")

// Parse resolves a "year:first:last" specification against the sheet
// dimensions. Every field may be empty: year defaults to 0 and first to
// 1. The last field has three forms:
//
//   - empty: one full sheet of labels (rows*cols) starting at first
//   - "xN":  N column blocks of labels (rows*N) starting at first
//   - an integer: the explicit last serial
//
// A wrong field count yields ErrInvalidFormat; non-numeric field values
// yield a plain parse error.
func Parse(spec string, rows, cols int) (Range, error) {
	parts := strings.Split(spec, ":")
	if len(parts) != 3 {
		return Range{}, fmt.Errorf("%w: %q", ErrInvalidFormat, spec)
	}

	r := Range{First: 1}
	var err error

	if parts[0] != "" {
		r.Year, err = strconv.Atoi(parts[0])
		if err != nil {
			return Range{}, fmt.Errorf("invalid year in %q: %w", spec, err)
		}
	}
	if parts[1] != "" {
		r.First, err = strconv.Atoi(parts[1])
		if err != nil {
			return Range{}, fmt.Errorf("invalid first serial in %q: %w", spec, err)
		}
	}

	switch {
	case parts[2] == "":
		r.Last = r.First + rows*cols - 1
	case strings.HasPrefix(parts[2], "x"):
		n, err := strconv.Atoi(parts[2][1:])
		if err != nil {
			return Range{}, fmt.Errorf("invalid block count in %q: %w", spec, err)
		}
		r.Last = r.First + rows*n - 1
	default:
		r.Last, err = strconv.Atoi(parts[2])
		if err != nil {
			return Range{}, fmt.Errorf("invalid last serial in %q: %w", spec, err)
		}
	}

	return r, nil
}

// Items expands the range into one item per serial, ascending. An
// inverted range (last < first) expands to nothing.
func (r Range) Items() []models.Item {
	if r.Last < r.First {
		return nil
	}
	items := make([]models.Item, 0, r.Last-r.First+1)
	for sn := r.First; sn <= r.Last; sn++ {
		items = append(items, models.Item{Year: r.Year, Serial: sn})
	}
	return items
}
