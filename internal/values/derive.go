package values

import (
	"fmt"
	"strings"

	"github.com/choenig/ASN-Label-Generator/internal/models"
)

// Palette is an ordered list of hex color codes. The color for a label is
// picked by year, wrapping around, so consecutive years are easy to tell
// apart on a shelf.
type Palette []string

// DefaultPalette returns the standard 8-color palette.
func DefaultPalette() Palette {
	return Palette{
		"#fc990f",
		"#cec323",
		"#53adfc",
		"#b53834",
		"#4fce46",
		"#6374e2",
		"#55d1ac",
		"#ff0090",
	}
}

// codePrefix is printed in front of every serial number and embedded in
// the QR code.
const codePrefix = "ASN"

// Derive computes the display fields for one label. It is a pure
// function of the inputs.
func Derive(year, serial int, palette Palette) models.Values {
	id4 := fmt.Sprintf("%04d", serial)
	return models.Values{
		ID4:      id4,
		Code:     fmt.Sprintf("%s%02d%s", codePrefix, year, id4),
		ZeroFill: zeroFill(serial),
		Color:    palette[year%len(palette)],
	}
}

// zeroFill returns the zeros a serial does not occupy in a 4-digit
// field. A serial of 0 counts as zero digits and fills the whole field.
func zeroFill(serial int) string {
	digits := 0
	for n := serial; n > 0; n /= 10 {
		digits++
	}
	if digits >= 4 {
		return ""
	}
	return strings.Repeat("0", 4-digits)
}
