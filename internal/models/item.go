package models

// Item identifies one label to print: a year tag plus a serial number.
type Item struct {
	Year   int
	Serial int
}

// Values holds the display fields derived from an Item.
type Values struct {
	ID4      string // serial zero-padded to 4 digits
	Code     string // full ASN code, also embedded in the QR code
	ZeroFill string // filler zeros printed left of the serial
	Color    string // hex foreground color for the serial
}
