package console

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-shellwords"

	"github.com/rocketscienceinc/focus-backend/internal/focus"
)

const (
	cmdMove    = "move"
	cmdReserve = "reserve"
	cmdShow    = "show"
	cmdStatus  = "status"
	cmdHelp    = "help"
	cmdQuit    = "quit"
)

var (
	errEmptyCommand   = errors.New("empty command")
	errUnknownCommand = errors.New("unknown command")
	errUsage          = errors.New("wrong arguments")
)

const usage = `commands:
  move <player> <row> <col> <row> <col> <count>
  reserve <player> <row> <col>
  show [<row> <col>]
  status
  help
  quit`

type command struct {
	name   string
	player string
	from   focus.Coord
	to     focus.Coord
	count  int
	cell   *focus.Coord
}

// parseCommand - splits a console line shell-style so player ids may be quoted.
func parseCommand(line string) (command, error) {
	args, err := shellwords.Parse(line)
	if err != nil {
		return command{}, fmt.Errorf("parse command: %w", err)
	}

	if len(args) == 0 {
		return command{}, errEmptyCommand
	}

	cmd := command{name: strings.ToLower(args[0])}
	args = args[1:]

	switch cmd.name {
	case cmdMove:
		if len(args) != 6 {
			return command{}, fmt.Errorf("%w: move <player> <row> <col> <row> <col> <count>", errUsage)
		}

		nums, err := parseInts(args[1:])
		if err != nil {
			return command{}, err
		}

		cmd.player = args[0]
		cmd.from = focus.Coord{Row: nums[0], Col: nums[1]}
		cmd.to = focus.Coord{Row: nums[2], Col: nums[3]}
		cmd.count = nums[4]
	case cmdReserve:
		if len(args) != 3 {
			return command{}, fmt.Errorf("%w: reserve <player> <row> <col>", errUsage)
		}

		nums, err := parseInts(args[1:])
		if err != nil {
			return command{}, err
		}

		cmd.player = args[0]
		cmd.to = focus.Coord{Row: nums[0], Col: nums[1]}
	case cmdShow:
		switch len(args) {
		case 0:
		case 2:
			nums, err := parseInts(args)
			if err != nil {
				return command{}, err
			}

			cmd.cell = &focus.Coord{Row: nums[0], Col: nums[1]}
		default:
			return command{}, fmt.Errorf("%w: show [<row> <col>]", errUsage)
		}
	case cmdStatus, cmdHelp:
		if len(args) != 0 {
			return command{}, fmt.Errorf("%w: %s takes no arguments", errUsage, cmd.name)
		}
	case cmdQuit, "exit":
		cmd.name = cmdQuit
	default:
		return command{}, fmt.Errorf("%w: %q", errUnknownCommand, cmd.name)
	}

	return cmd, nil
}

func parseInts(args []string) ([]int, error) {
	nums := make([]int, len(args))
	for i, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", errUsage, arg)
		}

		nums[i] = n
	}

	return nums, nil
}
