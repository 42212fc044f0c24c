// Package matrix holds the fixed-capacity int8 matrix buffers exchanged with
// the accelerator.
//
// A buffer for size code N is laid out row-major as an (N+2)x(N+2) grid with
// a stride of N+2. The outer ring of the grid is the border frame, and the
// inner NxN cells hold the matrix data.
package matrix

import (
	"fmt"
	"io"
	"iter"
	"strings"
)

const (
	SIZE_MAX = 3                            // Largest supported size code.
	CAPACITY = (SIZE_MAX + 2) * (SIZE_MAX + 2) // Cells in a buffer, border included.
)

// Buffer is a bordered matrix of signed 8-bit elements.
type Buffer [CAPACITY]int8

// Stride returns the row length, border included, for a size code.
func Stride(size uint32) int {
	return int(size) + 2
}

// Cells returns the number of buffer cells used by a size code.
func Cells(size uint32) int {
	return Stride(size) * Stride(size)
}

// Embed returns a buffer with the values placed row-major into the
// interior of a size code's grid. The border and any cells past the end
// of values are zero.
func Embed(size uint32, values ...int8) (buf Buffer) {
	n := int(size)
	for i, value := range values {
		if i >= n*n {
			break
		}
		buf.Set(size, i/n, i%n, value)
	}
	return
}

// Fill returns a buffer with every interior cell of a size code's grid
// set to value.
func Fill(size uint32, value int8) (buf Buffer) {
	for row, col := range Interior(size) {
		buf.Set(size, row, col, value)
	}
	return
}

// Index returns the buffer index of an interior cell. Row and column are
// zero-based within the interior.
func Index(size uint32, row, col int) int {
	return (row+1)*Stride(size) + (col + 1)
}

// At returns the interior cell at row, col.
func (buf *Buffer) At(size uint32, row, col int) int8 {
	return buf[Index(size, row, col)]
}

// Set the interior cell at row, col.
func (buf *Buffer) Set(size uint32, row, col int, value int8) {
	buf[Index(size, row, col)] = value
}

// Zero clears every cell.
func (buf *Buffer) Zero() {
	*buf = Buffer{}
}

// Interior iterates over the zero-based row, col of each interior cell,
// in row-major order.
func Interior(size uint32) iter.Seq2[int, int] {
	return func(yield func(row, col int) bool) {
		n := int(size)
		for row := range n {
			for col := range n {
				if !yield(row, col) {
					return
				}
			}
		}
	}
}

// Format renders the grid of a size code, border included.
func (buf *Buffer) Format(size uint32) string {
	var sb strings.Builder
	Display(&sb, buf, size)
	return sb.String()
}

// Display writes the grid of a size code to w, one row per line.
func Display(w io.Writer, buf *Buffer, size uint32) {
	stride := Stride(size)
	for i := range Cells(size) {
		if i%stride == 0 {
			fmt.Fprint(w, " ")
		}
		fmt.Fprintf(w, "%3d", buf[i])
		if i%stride != stride-1 {
			fmt.Fprint(w, ", ")
		} else {
			fmt.Fprint(w, "\n")
		}
	}
}
