package command

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrEmpty          = errors.New("empty command")
	ErrUnknownCommand = errors.New("unknown command")
	ErrNargs          = errors.New("invalid number of arguments")
	ErrBadArgument    = errors.New("argument must be an int")
)

// Maps known commands to number of arguments
var commandNargs = map[string]int{
	"g": 0, // no-op, returns the board
	"o": 2, // open r c
	"f": 2, // toggle flag r c
	"s": 0, // scan
	"h": 0, // reveal highest number
	"b": 0, // flag random bomb
	"d": 0, // arm a shield
	"a": 0, // arm/disarm echo
	"e": 2, // echo probe r c
	"x": 0, // reveal random safe tile
	"n": 1, // highlight n danger tiles
}

type Command struct {
	Name string
	Args []int
}

func (c Command) String() string {
	parts := []string{c.Name}
	for _, a := range c.Args {
		parts = append(parts, strconv.Itoa(a))
	}
	return strings.Join(parts, " ")
}

// Parse reads a single command such as "o 3 4".
func Parse(line string) (Command, error) {
	parts := strings.Fields(line)
	if len(parts) == 0 {
		return Command{}, ErrEmpty
	}
	name := parts[0]
	nargs, ok := commandNargs[name]
	if !ok {
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, name)
	}
	if nargs != len(parts)-1 {
		return Command{}, fmt.Errorf("%w: %s takes %d", ErrNargs, name, nargs)
	}
	args := make([]int, nargs)
	for i, s := range parts[1:] {
		n, err := strconv.Atoi(s)
		if err != nil {
			return Command{}, fmt.Errorf("%w: argument %d of %s", ErrBadArgument, i+1, name)
		}
		args[i] = n
	}
	return Command{Name: name, Args: args}, nil
}

func parseRC(args []int) (r int, c int) {
	return args[0], args[1]
}
