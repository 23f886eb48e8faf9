package command

import (
	"errors"
	"strings"
)

var ErrEmptyCommand = errors.New("command text cannot be empty")

// Command is one line of chat text split into a command name and arguments
type Command struct {
	Action string
	Args   []string
}

// Parse splits text such as "/vote @carol" into a command. A leading slash
// and a Telegram style "@botname" suffix on the command name are dropped.
func Parse(text string) (*Command, error) {
	fields := strings.Fields(text)
	if len(fields) == 0 {
		return nil, ErrEmptyCommand
	}

	name := strings.TrimPrefix(fields[0], "/")
	if i := strings.Index(name, "@"); i > 0 {
		name = name[:i]
	}
	if name == "" {
		return nil, ErrEmptyCommand
	}

	return &Command{
		Action: strings.ToLower(name),
		Args:   fields[1:],
	}, nil
}
