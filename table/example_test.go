// SPDX-License-Identifier: MIT
package table_test

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/numkit/table"
)

// ExampleTable_Row sorts one row through its view and prints both text forms.
func ExampleTable_Row() {
	tb, _ := table.FromRows[int]([][]int{{3, 1, 2}, {9, 8, 7}})
	row, _ := tb.Row(1)
	sort.Sort(row)

	fmt.Println(tb.String())
	fmt.Println(tb.Dump())
	// Output:
	// {{3,1,2},{7,8,9}}
	// [3,1,2;7,8,9];
}

// ExampleRowSums accumulates integer rows in float64.
func ExampleRowSums() {
	tb, _ := table.FromRows[int]([][]int{{1, 2}, {3, 4}})
	fmt.Println(table.RowSums[float64](tb))
	fmt.Println(table.ColumnSums[float64](tb))
	// Output:
	// [3 7]
	// [4 6]
}
