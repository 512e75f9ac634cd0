package focus

import (
	"fmt"

	"github.com/rocketscienceinc/focus-backend/internal/apperror"
)

// Move carries the whole stack at from onto to. count must equal the height
// of that stack: one piece steps to a neighbouring cell, n pieces slide
// exactly n cells in a straight line.
//
// Overflow at the destination is resolved on behalf of the player whose color
// tops the moved stack, which is not necessarily the caller.
func (that *Engine) Move(playerID string, from, to Coord, count int) (Outcome, error) {
	if that.IsFinished() {
		return Outcome{}, apperror.ErrGameFinished
	}

	if err := validateCoords(from, to); err != nil {
		return Outcome{}, err
	}

	actor, err := that.actor(playerID)
	if err != nil {
		return Outcome{}, err
	}

	source := that.board.Stack(from)
	if count < 1 || count != len(source) {
		return Outcome{}, fmt.Errorf("%w: declared %d, %d stacked at %s", apperror.ErrInvalidPieceCount, count, len(source), from)
	}

	if !reachable(from, to, count) {
		return Outcome{}, fmt.Errorf("%w: %d piece(s) cannot go from %s to %s", apperror.ErrInvalidDestination, count, from, to)
	}

	mover, ok := that.ownerOf(source[len(source)-1])
	if !ok {
		mover = actor
	}

	that.board.set(to, append(that.board.Stack(to), source...))
	that.board.set(from, nil)

	return that.settle(actor, mover, to), nil
}

func validateCoords(coords ...Coord) error {
	for _, c := range coords {
		if !c.Valid() {
			return fmt.Errorf("%w: %s", apperror.ErrOutOfBounds, c)
		}
	}

	return nil
}

// settle runs the bookkeeping shared by moves and placements once the
// destination stack has grown: overflow, turn change, win check.
func (that *Engine) settle(actor, mover int, to Coord) Outcome {
	reserved, captured := that.resolveOverflow(mover, to)

	that.turn = 1 - actor

	outcome := Outcome{
		Player:   that.sides[actor].player,
		Mover:    that.sides[mover].player,
		To:       to,
		Reserved: reserved,
		Captured: captured,
	}

	if winner, ok := that.CheckWinner(); ok {
		outcome.Winner = &winner
	}

	return outcome
}
