package grid

import "strings"

// Size is the side length of a puzzle.
const Size = 9

const separatorLine = "-----------"

// Grid is a 9x9 Sudoku grid. 0 means empty.
type Grid [Size][Size]int

// Parse reads a grid from puzzle text. It is deliberately lenient:
// lines containing "---" are decorative separators and do not consume a
// row; '.' is an empty cell; any other non-digit rune is skipped
// without consuming a column. Short or missing rows leave cells empty.
// Malformed input never fails, it just yields a partial grid.
func Parse(text string) Grid {
	var g Grid
	row := 0
	for _, line := range strings.Split(text, "\n") {
		if row >= Size {
			break
		}
		if strings.Contains(line, "---") {
			continue
		}
		col := 0
		for _, c := range line {
			if col >= Size {
				break
			}
			switch {
			case c == '.':
				g[row][col] = 0
				col++
			case c >= '0' && c <= '9':
				g[row][col] = int(c - '0')
				col++
			}
		}
		row++
	}
	return g
}

// String renders the grid in the puzzle file format: '.' for empty
// cells, '|' after columns 3 and 6, a dashed line after rows 3 and 6.
// Parse(g.String()) == g for every grid.
func (g Grid) String() string {
	var sb strings.Builder
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if g[r][c] == 0 {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + byte(g[r][c]))
			}
			if (c+1)%3 == 0 && c+1 != Size {
				sb.WriteByte('|')
			}
		}
		sb.WriteByte('\n')
		if (r+1)%3 == 0 && r+1 != Size {
			sb.WriteString(separatorLine)
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// SafePlacement reports whether digit can go at (row, col) without
// duplicating it in the row, the column, or the 3x3 box. It does not
// mutate the grid.
func (g *Grid) SafePlacement(row, col, digit int) bool {
	for j := 0; j < Size; j++ {
		if g[row][j] == digit {
			return false
		}
	}
	for i := 0; i < Size; i++ {
		if g[i][col] == digit {
			return false
		}
	}
	boxRow, boxCol := row-row%3, col-col%3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if g[boxRow+i][boxCol+j] == digit {
				return false
			}
		}
	}
	return true
}

// FirstEmpty returns the first empty cell in row-major order.
// ok is false when the grid is completely filled.
func (g *Grid) FirstEmpty() (row, col int, ok bool) {
	for row = 0; row < Size; row++ {
		for col = 0; col < Size; col++ {
			if g[row][col] == 0 {
				return row, col, true
			}
		}
	}
	return 0, 0, false
}

// Complete reports whether every cell holds a digit.
func (g *Grid) Complete() bool {
	_, _, ok := g.FirstEmpty()
	return !ok
}

// Valid reports whether no digit repeats within a row, column, or box.
// Empty cells are allowed, so a blank grid is valid.
func (g *Grid) Valid() bool {
	var rows, cols, boxes [Size]uint
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			v := g[r][c]
			if v == 0 {
				continue
			}
			mask := uint(1) << (v - 1)
			box := r/3*3 + c/3
			if rows[r]&mask != 0 || cols[c]&mask != 0 || boxes[box]&mask != 0 {
				return false
			}
			rows[r] |= mask
			cols[c] |= mask
			boxes[box] |= mask
		}
	}
	return true
}
