package grid

import (
	"testing"

	"github.com/matzehuels/swatchbook/pkg/errors"
)

func TestLayoutColumnMajorFill(t *testing.T) {
	// Five items in two columns need three rows; the padded sequence
	// [a b c d e P] fills columns [a b c] and [d e P], so the row-major
	// result interleaves them.
	got, err := Layout([]string{"a", "b", "c", "d", "e"}, 2, "P")
	if err != nil {
		t.Fatalf("Layout error: %v", err)
	}

	want := []string{"a", "d", "b", "e", "c", "P"}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestLayoutLength(t *testing.T) {
	tests := []struct {
		n       int
		columns int
		want    int
	}{
		{0, 3, 0},
		{1, 1, 1},
		{1, 4, 4},
		{5, 2, 6},
		{6, 3, 6},
		{7, 3, 9},
		{12, 4, 12},
	}

	for _, tt := range tests {
		items := make([]int, tt.n)
		for i := range items {
			items[i] = i
		}
		got, err := Layout(items, tt.columns, -1)
		if err != nil {
			t.Fatalf("Layout(%d items, %d columns) error: %v", tt.n, tt.columns, err)
		}
		if len(got) != tt.want {
			t.Errorf("Layout(%d items, %d columns) len = %d, want %d", tt.n, tt.columns, len(got), tt.want)
		}
	}
}

func TestLayoutReconstruct(t *testing.T) {
	// Reading every rows-th element starting at offsets 0..rows-1 must
	// reconstruct the original items followed by placeholders.
	items := []int{10, 20, 30, 40, 50, 60, 70}
	columns := 3
	got, err := Layout(items, columns, 0)
	if err != nil {
		t.Fatalf("Layout error: %v", err)
	}

	rows := Rows(len(items), columns)
	var reconstructed []int
	for c := 0; c < columns; c++ {
		for r := 0; r < rows; r++ {
			reconstructed = append(reconstructed, got[r*columns+c])
		}
	}

	for i, v := range items {
		if reconstructed[i] != v {
			t.Errorf("reconstructed[%d] = %d, want %d", i, reconstructed[i], v)
		}
	}
	for i := len(items); i < len(reconstructed); i++ {
		if reconstructed[i] != 0 {
			t.Errorf("reconstructed[%d] = %d, want placeholder 0", i, reconstructed[i])
		}
	}
}

func TestLayoutEmpty(t *testing.T) {
	got, err := Layout([]string{}, 3, "X")
	if err != nil {
		t.Fatalf("Layout error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Layout(empty) len = %d, want 0", len(got))
	}
}

func TestLayoutExactFit(t *testing.T) {
	// No placeholders when the item count is a multiple of columns.
	got, err := Layout([]int{1, 2, 3, 4, 5, 6}, 2, 0)
	if err != nil {
		t.Fatalf("Layout error: %v", err)
	}
	want := []int{1, 4, 2, 5, 3, 6}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("got[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestLayoutSingleColumn(t *testing.T) {
	// One column is the identity arrangement.
	items := []string{"a", "b", "c"}
	got, err := Layout(items, 1, "P")
	if err != nil {
		t.Fatalf("Layout error: %v", err)
	}
	for i := range items {
		if got[i] != items[i] {
			t.Errorf("got[%d] = %q, want %q", i, got[i], items[i])
		}
	}
}

func TestLayoutInvalidColumns(t *testing.T) {
	for _, columns := range []int{0, -1, -100} {
		_, err := Layout([]string{"a"}, columns, "P")
		if err == nil {
			t.Errorf("Layout(columns=%d) = nil error, want INVALID_COLUMNS", columns)
			continue
		}
		if !errors.Is(err, errors.ErrCodeInvalidColumns) {
			t.Errorf("Layout(columns=%d) code = %v, want %v", columns, errors.GetCode(err), errors.ErrCodeInvalidColumns)
		}
	}
}

func TestRows(t *testing.T) {
	tests := []struct {
		n, columns, want int
	}{
		{0, 3, 0},
		{1, 3, 1},
		{3, 3, 1},
		{4, 3, 2},
		{9, 3, 3},
	}
	for _, tt := range tests {
		if got := Rows(tt.n, tt.columns); got != tt.want {
			t.Errorf("Rows(%d, %d) = %d, want %d", tt.n, tt.columns, got, tt.want)
		}
	}
}
