package adminapi

import (
	"reflect"
	"testing"
)

func TestMergeCategories(t *testing.T) {
	presets := []string{"Starters", "Main Course"}
	used := []string{"main course", "Chef Specials", "Starters"}

	got := mergeCategories(presets, used)
	want := []string{"Starters", "Main Course", "Chef Specials"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("mergeCategories = %v, want %v", got, want)
	}
}

func TestMergeCategoriesEmptyUsed(t *testing.T) {
	presets := []string{"Whiskey", "Beer"}
	got := mergeCategories(presets, nil)
	if !reflect.DeepEqual(got, presets) {
		t.Errorf("mergeCategories = %v, want presets unchanged", got)
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		wantR   uint8
		wantG   uint8
		wantB   uint8
		wantErr bool
	}{
		{"", 0, 0, 0, false},
		{"#000000", 0, 0, 0, false},
		{"#ff0000", 0xff, 0, 0, false},
		{"1a2b3c", 0x1a, 0x2b, 0x3c, false},
		{"#f00", 0xff, 0, 0, false},
		{"#zzzzzz", 0, 0, 0, true},
		{"#12345", 0, 0, 0, true},
	}
	for _, tt := range tests {
		got, err := parseHexColor(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("parseHexColor(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err != nil {
			continue
		}
		if got.R != tt.wantR || got.G != tt.wantG || got.B != tt.wantB {
			t.Errorf("parseHexColor(%q) = %v", tt.in, got)
		}
		if got.A != 0xff {
			t.Errorf("parseHexColor(%q) alpha = %d, want opaque", tt.in, got.A)
		}
	}
}

func TestCellAxis(t *testing.T) {
	tests := []struct {
		col  int
		row  int
		want string
	}{
		{0, 1, "A1"},
		{1, 1, "B1"},
		{13, 2, "N2"},
		{25, 10, "Z10"},
		{26, 1, "AA1"},
		{27, 3, "AB3"},
	}
	for _, tt := range tests {
		if got := cellAxis(tt.col, tt.row); got != tt.want {
			t.Errorf("cellAxis(%d, %d) = %q, want %q", tt.col, tt.row, got, tt.want)
		}
	}
}
