package rangespec

import (
	"errors"
	"testing"
)

const (
	testRows = 16
	testCols = 5
)

func TestParse(t *testing.T) {
	tests := []struct {
		spec string
		want Range
	}{
		// explicit last serial
		{"23:1:16", Range{Year: 23, First: 1, Last: 16}},
		{"5:100:250", Range{Year: 5, First: 100, Last: 250}},
		// empty last fills exactly one sheet
		{"0:1:", Range{Year: 0, First: 1, Last: 80}},
		{"7:41:", Range{Year: 7, First: 41, Last: 120}},
		// xN block shorthand: N columns of 16 labels
		{"5:10:x2", Range{Year: 5, First: 10, Last: 41}},
		{"23:1:x1", Range{Year: 23, First: 1, Last: 16}},
		// defaults: year 0, first 1
		{"::", Range{Year: 0, First: 1, Last: 80}},
		{":17:x3", Range{Year: 0, First: 17, Last: 64}},
		{"23::", Range{Year: 23, First: 1, Last: 80}},
	}

	for _, tt := range tests {
		got, err := Parse(tt.spec, testRows, testCols)
		if err != nil {
			t.Errorf("Parse(%q) returned error: %v", tt.spec, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %+v, want %+v", tt.spec, got, tt.want)
		}
	}
}

func TestParseInvalidFieldCount(t *testing.T) {
	for _, spec := range []string{"a:b", "23", "1:2:3:4", ""} {
		_, err := Parse(spec, testRows, testCols)
		if !errors.Is(err, ErrInvalidFormat) {
			t.Errorf("Parse(%q) error = %v, want ErrInvalidFormat", spec, err)
		}
	}
}

func TestParseBadInteger(t *testing.T) {
	for _, spec := range []string{"a:1:16", "23:b:16", "23:1:c", "23:1:xq"} {
		_, err := Parse(spec, testRows, testCols)
		if err == nil {
			t.Errorf("Parse(%q) expected error, got nil", spec)
			continue
		}
		if errors.Is(err, ErrInvalidFormat) {
			t.Errorf("Parse(%q) error = %v, want a plain parse error, not ErrInvalidFormat", spec, err)
		}
	}
}

func TestItems(t *testing.T) {
	r, err := Parse("23:1:16", testRows, testCols)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	items := r.Items()
	if len(items) != 16 {
		t.Fatalf("expected 16 items, got %d", len(items))
	}
	for i, item := range items {
		if item.Year != 23 {
			t.Errorf("item %d: year = %d, want 23", i, item.Year)
		}
		if item.Serial != i+1 {
			t.Errorf("item %d: serial = %d, want %d", i, item.Serial, i+1)
		}
	}
}

func TestItemsBlockShorthand(t *testing.T) {
	r, err := Parse("5:10:x2", testRows, testCols)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	items := r.Items()
	if len(items) != 32 {
		t.Fatalf("expected 32 items, got %d", len(items))
	}
	if items[0].Serial != 10 || items[31].Serial != 41 {
		t.Errorf("expected serials 10..41, got %d..%d", items[0].Serial, items[31].Serial)
	}
}

func TestItemsInvertedRange(t *testing.T) {
	r := Range{Year: 1, First: 10, Last: 5}
	if items := r.Items(); len(items) != 0 {
		t.Errorf("inverted range expanded to %d items, want 0", len(items))
	}
}

func TestItemsSingleSerial(t *testing.T) {
	r := Range{Year: 1, First: 7, Last: 7}
	items := r.Items()
	if len(items) != 1 || items[0].Serial != 7 {
		t.Errorf("expected exactly one item with serial 7, got %v", items)
	}
}
