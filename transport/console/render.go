package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/rocketscienceinc/focus-backend/internal/entity"
	"github.com/rocketscienceinc/focus-backend/internal/focus"
)

const cellWidth = focus.MaxStack + 1

var pieceAttributes = [2][]color.Attribute{
	{color.FgRed, color.Bold},
	{color.FgGreen, color.Bold},
}

// Renderer draws stacks bottom to top and highlights the top piece in its
// owner's terminal color.
type Renderer struct {
	colors map[string]*color.Color
}

func NewRenderer(players [2]entity.Player, noColor bool) *Renderer {
	colors := make(map[string]*color.Color, len(players))

	for i, player := range players {
		c := color.New(pieceAttributes[i]...)
		if noColor {
			c.DisableColor()
		} else {
			c.EnableColor()
		}

		colors[player.Color] = c
	}

	return &Renderer{colors: colors}
}

// Stack renders one stack, "." when empty.
func (that *Renderer) Stack(stack []string) string {
	if len(stack) == 0 {
		return "."
	}

	top := stack[len(stack)-1]
	if c, ok := that.colors[top]; ok {
		top = c.Sprint(top)
	}

	return strings.Join(stack[:len(stack)-1], "") + top
}

func (that *Renderer) Board(w io.Writer, board focus.Board) {
	var header strings.Builder

	header.WriteString("  ")
	for col := 0; col < focus.Size; col++ {
		fmt.Fprintf(&header, " %-*d", cellWidth, col)
	}

	fmt.Fprintln(w, strings.TrimRight(header.String(), " "))

	for row := range board {
		var line strings.Builder

		fmt.Fprintf(&line, "%d ", row)
		for _, stack := range board[row] {
			line.WriteString(" ")
			line.WriteString(that.Stack(stack))
			line.WriteString(strings.Repeat(" ", cellWidth-max(len(stack), 1)))
		}

		fmt.Fprintln(w, strings.TrimRight(line.String(), " "))
	}
}
