// Package focus implements the rule engine of Focus/Domination: stacks of
// colored pieces on a 6x6 board, whole-stack moves, overflow of stacks taller
// than five into reserve and capture pools, and the six-capture win.
package focus

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/rocketscienceinc/focus-backend/internal/apperror"
	"github.com/rocketscienceinc/focus-backend/internal/entity"
)

const (
	StatusUnfinished = "unfinished"
	StatusWinner     = "winner"
)

var (
	ErrInvalidPlayer  = errors.New("invalid player")
	ErrInvalidColor   = errors.New("color must be a single letter or symbol")
	ErrDuplicateColor = errors.New("players must have distinct colors")
)

// side is everything the engine tracks for one player.
type side struct {
	player   entity.Player
	reserve  []string // own pieces, oldest first
	captured []string // opponent pieces
}

// Engine owns one game. It is not safe for concurrent use.
type Engine struct {
	board  Board
	sides  [2]side
	turn   int
	status string
	winner int
}

// Outcome describes what an accepted move or placement did.
type Outcome struct {
	Player   entity.Player  `json:"player"`
	Mover    entity.Player  `json:"mover"`
	To       Coord          `json:"to"`
	Reserved int            `json:"reserved"`
	Captured int            `json:"captured"`
	Winner   *entity.Player `json:"winner,omitempty"`
}

// New sets up the standard opening position. The first player moves first.
func New(first, second entity.Player) (*Engine, error) {
	var err error

	if first, err = normalizePlayer(first); err != nil {
		return nil, err
	}

	if second, err = normalizePlayer(second); err != nil {
		return nil, err
	}

	if first.ID == second.ID {
		return nil, fmt.Errorf("%w: both players are %q", ErrInvalidPlayer, first.ID)
	}

	if first.Color == second.Color {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateColor, first.Color)
	}

	return &Engine{
		board:  newBoard(first.Color, second.Color),
		sides:  [2]side{{player: first}, {player: second}},
		status: StatusUnfinished,
		winner: -1,
	}, nil
}

func normalizePlayer(player entity.Player) (entity.Player, error) {
	if strings.TrimSpace(player.ID) == "" {
		return player, fmt.Errorf("%w: empty id", ErrInvalidPlayer)
	}

	color, err := NormalizeColor(player.Color)
	if err != nil {
		return player, err
	}

	player.Color = color

	return player, nil
}

// NormalizeColor upper-cases a color code and checks it is a single rune.
func NormalizeColor(raw string) (string, error) {
	color := cases.Upper(language.Und).String(strings.TrimSpace(raw))
	if utf8.RuneCountInString(color) != 1 {
		return "", fmt.Errorf("%w: %q", ErrInvalidColor, raw)
	}

	return color, nil
}

// Pieces returns the stack at c, bottom piece first.
func (that *Engine) Pieces(c Coord) ([]string, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %s", apperror.ErrOutOfBounds, c)
	}

	return append([]string{}, that.board.Stack(c)...), nil
}

// Board returns a copy of the whole board.
func (that *Engine) Board() Board {
	return that.board.Copy()
}

// Players returns both players in seating order.
func (that *Engine) Players() [2]entity.Player {
	return [2]entity.Player{that.sides[0].player, that.sides[1].player}
}

// Turn returns the player expected to act next.
func (that *Engine) Turn() entity.Player {
	return that.sides[that.turn].player
}

func (that *Engine) Status() string {
	return that.status
}

func (that *Engine) IsFinished() bool {
	return that.status == StatusWinner
}

// Reserve returns how many pieces the player holds in reserve.
func (that *Engine) Reserve(playerID string) (int, error) {
	idx, err := that.indexOf(playerID)
	if err != nil {
		return 0, err
	}

	return len(that.sides[idx].reserve), nil
}

// Captured returns how many opponent pieces the player has captured.
func (that *Engine) Captured(playerID string) (int, error) {
	idx, err := that.indexOf(playerID)
	if err != nil {
		return 0, err
	}

	return len(that.sides[idx].captured), nil
}

func (that *Engine) indexOf(playerID string) (int, error) {
	for i := range that.sides {
		if that.sides[i].player.ID == playerID {
			return i, nil
		}
	}

	return -1, fmt.Errorf("%w: %q", ErrInvalidPlayer, playerID)
}

// ownerOf maps a piece color to the player it belongs to.
func (that *Engine) ownerOf(color string) (int, bool) {
	for i := range that.sides {
		if that.sides[i].player.Color == color {
			return i, true
		}
	}

	return -1, false
}

// actor - checks the caller holds the turn and returns its seat.
func (that *Engine) actor(playerID string) (int, error) {
	if that.sides[that.turn].player.ID != playerID {
		return -1, fmt.Errorf("%w: %q to play, got %q", apperror.ErrNotYourTurn, that.sides[that.turn].player.ID, playerID)
	}

	return that.turn, nil
}
