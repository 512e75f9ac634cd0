package focus

import (
	"fmt"

	"github.com/rocketscienceinc/focus-backend/internal/apperror"
)

// PlaceReserve puts the player's oldest reserved piece on top of any cell.
func (that *Engine) PlaceReserve(playerID string, to Coord) (Outcome, error) {
	if that.IsFinished() {
		return Outcome{}, apperror.ErrGameFinished
	}

	if err := validateCoords(to); err != nil {
		return Outcome{}, err
	}

	actor, err := that.actor(playerID)
	if err != nil {
		return Outcome{}, err
	}

	owner := &that.sides[actor]
	if len(owner.reserve) == 0 {
		return Outcome{}, fmt.Errorf("%w: %q", apperror.ErrEmptyReserve, playerID)
	}

	owner.reserve = owner.reserve[1:]
	that.board.set(to, append(that.board.Stack(to), owner.player.Color))

	return that.settle(actor, actor, to), nil
}
