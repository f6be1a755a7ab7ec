package sheet

// Template describes the geometry of one label sheet. All lengths are in
// millimeters.
type Template struct {
	Name       string
	Rows       int
	Cols       int
	PageWidth  float64
	PageHeight float64
	// Label cell size. Cells are laid out edge to edge, so the pitch
	// equals the cell size.
	LabelWidth  float64
	LabelHeight float64
	MarginLeft  float64
	MarginTop   float64
}

// Avery4732 returns the Avery Zweckform 4732 template: 80 labels of
// 35.6 x 16.9 mm on an A4 page, 16 rows by 5 columns.
func Avery4732() Template {
	return Template{
		Name:        "Avery Zweckform 4732",
		Rows:        16,
		Cols:        5,
		PageWidth:   210,
		PageHeight:  297,
		LabelWidth:  35.6,
		LabelHeight: 16.9,
		MarginLeft:  16.0,
		MarginTop:   13.3,
	}
}

// Capacity returns the number of label cells on one sheet.
func (t Template) Capacity() int {
	return t.Rows * t.Cols
}

// CellRect maps a flat item index to its page number and the top-left
// corner of its cell. Serials run down each column and columns fill
// left to right, so a block of Rows consecutive serials occupies one
// column.
func (t Template) CellRect(index int) (page int, x, y float64) {
	c := t.Capacity()
	page = index / c
	idx := index % c
	col := idx / t.Rows
	row := idx % t.Rows
	x = t.MarginLeft + float64(col)*t.LabelWidth
	y = t.MarginTop + float64(row)*t.LabelHeight
	return page, x, y
}

// Pages returns the number of sheets needed for n labels.
func (t Template) Pages(n int) int {
	c := t.Capacity()
	return (n + c - 1) / c
}
