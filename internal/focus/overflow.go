package focus

// resolveOverflow trims the stack at c back to MaxStack pieces. Pieces leave
// from the bottom, oldest first; the resolving player's own color goes to its
// reserve and anything else to its captures.
func (that *Engine) resolveOverflow(resolver int, c Coord) (reserved, captured int) {
	stack := that.board.Stack(c)

	excess := len(stack) - MaxStack
	if excess <= 0 {
		return 0, 0
	}

	owner := &that.sides[resolver]
	for _, piece := range stack[:excess] {
		if piece == owner.player.Color {
			owner.reserve = append(owner.reserve, piece)
			reserved++
		} else {
			owner.captured = append(owner.captured, piece)
			captured++
		}
	}

	that.board.set(c, append([]string(nil), stack[excess:]...))

	return reserved, captured
}
