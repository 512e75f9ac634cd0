package focus

import "fmt"

const (
	// Size is the number of rows and columns of the board.
	Size = 6
	// MaxStack is the tallest a stack may stay once overflow has been resolved.
	MaxStack = 5
	// CaptureGoal is the number of captured pieces that wins the game.
	CaptureGoal = 6
	// TotalPieces is the number of pieces in play for the whole game.
	TotalPieces = Size * Size
)

// presetLayout marks which cells start with the first player's piece (true)
// and which with the second player's piece (false).
var presetLayout = [Size][Size]bool{
	{true, true, false, false, true, true},
	{false, false, true, true, false, false},
	{true, true, false, false, true, true},
	{false, false, true, true, false, false},
	{true, true, false, false, true, true},
	{false, false, true, true, false, false},
}

// Coord is a zero-indexed (row, column) board position.
type Coord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Valid reports whether the coordinate lies on the board.
func (c Coord) Valid() bool {
	return c.Row >= 0 && c.Row < Size && c.Col >= 0 && c.Col < Size
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Board holds every stack, bottom piece at index 0.
type Board [Size][Size][]string

func newBoard(first, second string) Board {
	var board Board

	for row := range presetLayout {
		for col, isFirst := range presetLayout[row] {
			if isFirst {
				board[row][col] = []string{first}
			} else {
				board[row][col] = []string{second}
			}
		}
	}

	return board
}

// Copy returns a deep copy so callers cannot reach into engine state.
func (that *Board) Copy() Board {
	var board Board

	for row := range that {
		for col, stack := range that[row] {
			if len(stack) > 0 {
				board[row][col] = append([]string(nil), stack...)
			}
		}
	}

	return board
}

// Stack returns the pieces at c, bottom first.
func (that *Board) Stack(c Coord) []string {
	return that[c.Row][c.Col]
}

// Count returns the number of pieces on the board.
func (that *Board) Count() int {
	total := 0
	for row := range that {
		for _, stack := range that[row] {
			total += len(stack)
		}
	}

	return total
}

func (that *Board) set(c Coord, stack []string) {
	that[c.Row][c.Col] = stack
}

// reachable - a single piece steps to an orthogonal neighbour; a stack of n
// pieces slides exactly n cells along its row or column.
func reachable(from, to Coord, count int) bool {
	rows := abs(to.Row - from.Row)
	cols := abs(to.Col - from.Col)

	switch {
	case rows == 0 && cols == 0:
		return false
	case rows == 0:
		return cols == count
	case cols == 0:
		return rows == count
	default:
		return false
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
