package grid_test

import (
	"fmt"

	"github.com/matzehuels/swatchbook/pkg/grid"
)

func ExampleLayout() {
	// Arrange five labels into two newspaper-style columns.
	cells, _ := grid.Layout([]string{"a", "b", "c", "d", "e"}, 2, "·")

	for r := 0; r < grid.Rows(5, 2); r++ {
		fmt.Println(cells[r*2], cells[r*2+1])
	}
	// Output:
	// a d
	// b e
	// c ·
}
