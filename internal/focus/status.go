package focus

import "github.com/rocketscienceinc/focus-backend/internal/entity"

// CheckWinner declares the first player holding CaptureGoal captures the
// winner. Once declared, the result never changes.
func (that *Engine) CheckWinner() (entity.Player, bool) {
	if that.IsFinished() {
		return that.sides[that.winner].player, true
	}

	for i := range that.sides {
		if len(that.sides[i].captured) >= CaptureGoal {
			that.status = StatusWinner
			that.winner = i

			return that.sides[i].player, true
		}
	}

	return entity.Player{}, false
}

// Winner returns the winning player once the game is finished.
func (that *Engine) Winner() (entity.Player, bool) {
	if !that.IsFinished() {
		return entity.Player{}, false
	}

	return that.sides[that.winner].player, true
}

// Opponent returns the other player of the game.
func (that *Engine) Opponent(playerID string) (entity.Player, error) {
	idx, err := that.indexOf(playerID)
	if err != nil {
		return entity.Player{}, err
	}

	return that.sides[1-idx].player, nil
}
