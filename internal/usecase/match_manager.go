package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/focus-backend/internal/apperror"
	"github.com/rocketscienceinc/focus-backend/internal/entity"
	"github.com/rocketscienceinc/focus-backend/internal/focus"
)

type resultRepo interface {
	Save(ctx context.Context, result *entity.Result) error
}

// Engine is the rule engine a match is played on. *focus.Engine satisfies it.
type Engine interface {
	Move(playerID string, from, to focus.Coord, count int) (focus.Outcome, error)
	PlaceReserve(playerID string, to focus.Coord) (focus.Outcome, error)
	Pieces(c focus.Coord) ([]string, error)
	Board() focus.Board
	Players() [2]entity.Player
	Turn() entity.Player
	Status() string
	IsFinished() bool
	Winner() (entity.Player, bool)
	Opponent(playerID string) (entity.Player, error)
	Reserve(playerID string) (int, error)
	Captured(playerID string) (int, error)
}

// Match is one running game.
type Match struct {
	ID     string
	Engine Engine
}

func newFocusEngine(first, second entity.Player) (Engine, error) {
	engine, err := focus.New(first, second)
	if err != nil {
		return nil, err
	}

	return engine, nil
}

// MatchManager runs matches and records their results once a winner is known.
type MatchManager struct {
	logger    *slog.Logger
	results   resultRepo
	newEngine func(first, second entity.Player) (Engine, error)
	now       func() time.Time

	mu      sync.Mutex
	matches map[string]*Match
}

// NewMatchManager - results may be nil, in which case outcomes are only logged.
func NewMatchManager(logger *slog.Logger, results resultRepo) *MatchManager {
	return &MatchManager{
		logger:    logger.With("component", "match_manager"),
		results:   results,
		newEngine: newFocusEngine,
		now:       time.Now,
		matches:   make(map[string]*Match),
	}
}

func (that *MatchManager) Start(first, second entity.Player) (*Match, error) {
	engine, err := that.newEngine(first, second)
	if err != nil {
		return nil, fmt.Errorf("failed to create match: %w", err)
	}

	match := &Match{
		ID:     uuid.NewString(),
		Engine: engine,
	}

	that.mu.Lock()
	that.matches[match.ID] = match
	that.mu.Unlock()

	players := engine.Players()
	that.logger.Info("match started", "matchID", match.ID, "first", players[0].ID, "second", players[1].ID)

	return match, nil
}

func (that *MatchManager) Get(matchID string) (*Match, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	match, ok := that.matches[matchID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperror.ErrMatchNotFound, matchID)
	}

	return match, nil
}

func (that *MatchManager) Move(ctx context.Context, matchID, playerID string, from, to focus.Coord, count int) (focus.Outcome, error) {
	log := that.logger.With("method", "Move", "matchID", matchID, "playerID", playerID)

	return that.apply(ctx, log, matchID, func(engine Engine) (focus.Outcome, error) {
		outcome, err := engine.Move(playerID, from, to, count)
		if err != nil {
			return outcome, fmt.Errorf("failed to make move: %w", err)
		}

		log.Info("move accepted", "from", from.String(), "to", to.String(), "count", count,
			"mover", outcome.Mover.ID, "reserved", outcome.Reserved, "captured", outcome.Captured)

		return outcome, nil
	})
}

func (that *MatchManager) PlaceReserve(ctx context.Context, matchID, playerID string, to focus.Coord) (focus.Outcome, error) {
	log := that.logger.With("method", "PlaceReserve", "matchID", matchID, "playerID", playerID)

	return that.apply(ctx, log, matchID, func(engine Engine) (focus.Outcome, error) {
		outcome, err := engine.PlaceReserve(playerID, to)
		if err != nil {
			return outcome, fmt.Errorf("failed to place reserve: %w", err)
		}

		log.Info("placement accepted", "to", to.String(),
			"reserved", outcome.Reserved, "captured", outcome.Captured)

		return outcome, nil
	})
}

// apply runs op under the manager lock and closes the match when op ends it.
func (that *MatchManager) apply(
	ctx context.Context,
	log *slog.Logger,
	matchID string,
	op func(engine Engine) (focus.Outcome, error),
) (focus.Outcome, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	match, ok := that.matches[matchID]
	if !ok {
		return focus.Outcome{}, fmt.Errorf("%w: %s", apperror.ErrMatchNotFound, matchID)
	}

	outcome, err := op(match.Engine)
	if err != nil {
		log.Debug("action rejected", "error", err)
		return outcome, err
	}

	if outcome.Winner != nil {
		that.finish(ctx, log, match, *outcome.Winner)
	}

	return outcome, nil
}

func (that *MatchManager) finish(ctx context.Context, log *slog.Logger, match *Match, winner entity.Player) {
	delete(that.matches, match.ID)

	loser, err := match.Engine.Opponent(winner.ID)
	if err != nil {
		log.Error("failed to resolve loser", "error", err)
		return
	}

	winnerCaptured, _ := match.Engine.Captured(winner.ID)
	loserCaptured, _ := match.Engine.Captured(loser.ID)

	log.Info("match finished", "winner", winner.ID, "captured", winnerCaptured)

	if that.results == nil {
		return
	}

	result := &entity.Result{
		MatchID:        match.ID,
		Winner:         winner,
		Loser:          loser,
		WinnerCaptured: winnerCaptured,
		LoserCaptured:  loserCaptured,
		FinishedAt:     that.now().UTC(),
	}

	if err = that.results.Save(ctx, result); err != nil {
		log.Error("failed to save result", "error", err)
	}
}
