package pdf

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-pdf/fpdf"
	"github.com/skip2/go-qrcode"

	"github.com/choenig/ASN-Label-Generator/internal/models"
	"github.com/choenig/ASN-Label-Generator/internal/sheet"
	"github.com/choenig/ASN-Label-Generator/internal/values"
)

// QREncoder turns a text into a PNG image of the given pixel size.
type QREncoder interface {
	Encode(text string, size int) ([]byte, error)
}

// goQR encodes borderless QR codes with github.com/skip2/go-qrcode.
type goQR struct {
	level qrcode.RecoveryLevel
}

func (q goQR) Encode(text string, size int) ([]byte, error) {
	code, err := qrcode.New(text, q.level)
	if err != nil {
		return nil, err
	}
	code.DisableBorder = true
	return code.PNG(size)
}

// Cell layout, in millimeters from the cell edges. The QR code sits at
// the left, the number box at the right with its QR-facing edge masked.
const (
	qrSize    = 14.8
	qrPixels  = 256
	fontSize  = 5.5 * 72.0 / 25.4 // 5.5 mm in points
	boxFill   = "#e6feff"
	greyLevel = 170
)

// Renderer draws label cells onto sheet pages and writes the PDF.
type Renderer struct {
	Template sheet.Template
	Palette  values.Palette
	QR       QREncoder
}

// NewRenderer returns a renderer for the given template and palette,
// using the default QR encoder.
func NewRenderer(tpl sheet.Template, palette values.Palette) *Renderer {
	return &Renderer{
		Template: tpl,
		Palette:  palette,
		QR:       goQR{level: qrcode.Medium},
	}
}

// Render draws one cell per item, in order, adding pages as needed, and
// writes the finished PDF to w.
func (r *Renderer) Render(w io.Writer, items []models.Item) error {
	doc := fpdf.New("P", "mm", "A4", "")
	doc.SetAutoPageBreak(false, 0)
	doc.SetMargins(0, 0, 0)

	capacity := r.Template.Capacity()
	for i, item := range items {
		if i%capacity == 0 {
			doc.AddPage()
		}
		_, x, y := r.Template.CellRect(i)
		if err := r.drawCell(doc, x, y, item); err != nil {
			return err
		}
	}

	return doc.Output(w)
}

// WriteFile renders the items into the named PDF file.
func (r *Renderer) WriteFile(path string, items []models.Item) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := r.Render(f, items); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// drawCell draws one label into the cell whose top-left corner is (x, y).
func (r *Renderer) drawCell(doc *fpdf.Fpdf, x, y float64, item models.Item) error {
	v := values.Derive(item.Year, item.Serial, r.Palette)
	w := r.Template.LabelWidth
	h := r.Template.LabelHeight

	// QR code at the left, 1 mm above the cell bottom
	png, err := r.QR.Encode(v.Code, qrPixels)
	if err != nil {
		return fmt.Errorf("failed to encode QR code for %s: %w", v.Code, err)
	}
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	doc.RegisterImageOptionsReader(v.Code, opts, bytes.NewReader(png))
	doc.ImageOptions(v.Code, x+2, y+h-1-qrSize, qrSize, qrSize, false, opts, 0, "")

	// number box
	br, bg, bb := hexRGB(boxFill)
	doc.SetDrawColor(0, 0, 0)
	doc.SetFillColor(br, bg, bb)
	doc.SetLineWidth(0.4)
	doc.Rect(x+18, y+h-1-qrSize, 16.0, qrSize, "FD")
	// mask the box edge facing the QR code
	doc.SetFillColor(255, 255, 255)
	doc.Rect(x+17, y+h-16.8, 1.5, 16.8, "F")

	// year, top right
	doc.SetFont("Courier", "B", fontSize)
	doc.SetTextColor(0, 0, 0)
	year := fmt.Sprintf("%02d", item.Year)
	doc.Text(x+w-2.8-doc.GetStringWidth(year), y+h-9.5, year)

	// filler zeros, grey
	doc.SetFont("Courier", "", fontSize)
	doc.SetTextColor(greyLevel, greyLevel, greyLevel)
	doc.Text(x+w-16.05, y+h-3, v.ZeroFill)

	// serial, bottom right, in the year color
	fr, fg, fb := hexRGB(v.Color)
	doc.SetFont("Courier", "B", fontSize)
	doc.SetTextColor(fr, fg, fb)
	serial := strconv.Itoa(item.Serial)
	doc.Text(x+w-2.8-doc.GetStringWidth(serial), y+h-3, serial)

	return nil
}

// hexRGB splits a "#rrggbb" color into its components. Malformed input
// falls back to black.
func hexRGB(hex string) (r, g, b int) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return 0, 0, 0
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0
	}
	return int(v >> 16), int(v >> 8 & 0xff), int(v & 0xff)
}
