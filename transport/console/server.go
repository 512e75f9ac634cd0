// Package console runs a hot-seat match over a line-oriented text stream.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/focus-backend/internal/apperror"
	"github.com/rocketscienceinc/focus-backend/internal/focus"
	"github.com/rocketscienceinc/focus-backend/internal/usecase"
)

type matchUseCase interface {
	Move(ctx context.Context, matchID, playerID string, from, to focus.Coord, count int) (focus.Outcome, error)
	PlaceReserve(ctx context.Context, matchID, playerID string, to focus.Coord) (focus.Outcome, error)
}

type Server struct {
	logger   *slog.Logger
	matches  matchUseCase
	match    *usecase.Match
	renderer *Renderer
	out      io.Writer
}

func New(logger *slog.Logger, matches matchUseCase, match *usecase.Match, out io.Writer, noColor bool) *Server {
	return &Server{
		logger:   logger.With("component", "console", "matchID", match.ID),
		matches:  matches,
		match:    match,
		renderer: NewRenderer(match.Engine.Players(), noColor),
		out:      out,
	}
}

// Serve reads commands from in until EOF, quit, or ctx is done.
func (that *Server) Serve(ctx context.Context, in io.Reader) error {
	lines := make(chan string)
	readErr := make(chan error, 1)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}

		if err := scanner.Err(); err != nil {
			readErr <- err
		}
	}()

	that.renderer.Board(that.out, that.match.Engine.Board())
	that.prompt()

	for {
		select {
		case <-ctx.Done():
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-readErr:
					return fmt.Errorf("failed to read input: %w", err)
				default:
					return nil
				}
			}

			if quit := that.handle(ctx, line); quit {
				return nil
			}

			that.prompt()
		}
	}
}

func (that *Server) prompt() {
	if that.match.Engine.IsFinished() {
		fmt.Fprint(that.out, "> ")
		return
	}

	fmt.Fprintf(that.out, "%s> ", that.match.Engine.Turn().ID)
}

// handle executes one line and reports whether the session should end.
func (that *Server) handle(ctx context.Context, line string) bool {
	cmd, err := parseCommand(line)
	if err != nil {
		if !errors.Is(err, errEmptyCommand) {
			that.printError(err)
		}
		return false
	}

	switch cmd.name {
	case cmdQuit:
		return true
	case cmdHelp:
		fmt.Fprintln(that.out, usage)
	case cmdShow:
		that.show(cmd.cell)
	case cmdStatus:
		that.status()
	case cmdMove, cmdReserve:
		that.play(ctx, cmd)
	}

	return false
}

func (that *Server) play(ctx context.Context, cmd command) {
	if that.match.Engine.IsFinished() {
		that.printError(apperror.ErrGameFinished)
		return
	}

	var (
		outcome focus.Outcome
		err     error
	)

	if cmd.name == cmdMove {
		outcome, err = that.matches.Move(ctx, that.match.ID, cmd.player, cmd.from, cmd.to, cmd.count)
	} else {
		outcome, err = that.matches.PlaceReserve(ctx, that.match.ID, cmd.player, cmd.to)
	}

	if err != nil {
		that.printError(err)
		return
	}

	if cmd.name == cmdMove {
		fmt.Fprintf(that.out, "%s moved %d piece(s) %s -> %s\n", cmd.player, cmd.count, cmd.from, cmd.to)
	} else {
		fmt.Fprintf(that.out, "%s placed a reserve piece on %s\n", cmd.player, cmd.to)
	}

	if outcome.Reserved > 0 || outcome.Captured > 0 {
		fmt.Fprintf(that.out, "overflow for %s: %d to reserve, %d captured\n", outcome.Mover.ID, outcome.Reserved, outcome.Captured)
	}

	if outcome.Winner != nil {
		fmt.Fprintf(that.out, "%s wins!\n", outcome.Winner.ID)
	}
}

func (that *Server) show(cell *focus.Coord) {
	if cell == nil {
		that.renderer.Board(that.out, that.match.Engine.Board())
		return
	}

	stack, err := that.match.Engine.Pieces(*cell)
	if err != nil {
		that.printError(err)
		return
	}

	fmt.Fprintf(that.out, "%s: %s\n", *cell, that.renderer.Stack(stack))
}

func (that *Server) status() {
	engine := that.match.Engine

	for _, player := range engine.Players() {
		reserve, _ := engine.Reserve(player.ID)
		captured, _ := engine.Captured(player.ID)
		fmt.Fprintf(that.out, "%s (%s): reserve %d, captured %d\n", player.ID, player.Color, reserve, captured)
	}

	if winner, ok := engine.Winner(); ok {
		fmt.Fprintf(that.out, "status: %s, %s won\n", engine.Status(), winner.ID)
		return
	}

	fmt.Fprintf(that.out, "status: %s, %s to play\n", engine.Status(), engine.Turn().ID)
}

func (that *Server) printError(err error) {
	that.logger.Debug("command failed", "error", err)
	fmt.Fprintf(that.out, "error: %v\n", err)
}
