// Package commands parses the quick-entry strings typed into the popup
// palette and dispatches them to caller-supplied handlers.
package commands

import (
	"fmt"
	"strconv"
	"strings"
)

type Type string

const (
	TypeAdd    Type = "add"
	TypeDone   Type = "done"
	TypeFocus  Type = "focus"
	TypeRemove Type = "rm"
	TypeGroup  Type = "group"
	TypeFilter Type = "filter"
	TypeClear  Type = "clear"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

type AddArgs struct {
	Name  string
	Group string
}

type IndexArgs struct {
	Index int
}

type GroupArgs struct {
	Name  string
	Color string
}

type FilterArgs struct {
	Group string
}

type Command struct {
	Type   Type
	Raw    string
	Add    *AddArgs
	Done   *IndexArgs
	Focus  *IndexArgs
	Remove *IndexArgs
	Group  *GroupArgs
	Filter *FilterArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	switch Type(head) {
	case TypeAdd:
		return parseAdd(input, args)
	case TypeDone:
		return parseIndex(input, TypeDone, args)
	case TypeFocus:
		return parseIndex(input, TypeFocus, args)
	case TypeRemove:
		return parseIndex(input, TypeRemove, args)
	case TypeGroup:
		return parseGroup(input, args)
	case TypeFilter:
		return parseFilter(input, args)
	case TypeClear:
		return Command{Type: TypeClear, Raw: input}, nil
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

// parseAdd accepts `add buy milk` and `add buy milk #work`; a trailing
// #token names the target group.
func parseAdd(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires a task name"}
	}
	group := ""
	last := args[len(args)-1]
	if strings.HasPrefix(last, "#") && len(last) > 1 {
		group = strings.TrimPrefix(last, "#")
		args = args[:len(args)-1]
	}
	name := strings.TrimSpace(strings.Join(args, " "))
	if name == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires a task name"}
	}
	return Command{Type: TypeAdd, Raw: raw, Add: &AddArgs{Name: name, Group: group}}, nil
}

func parseIndex(raw string, kind Type, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s requires a task number", kind)}
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s requires a positive task number", kind)}
	}
	idx := &IndexArgs{Index: n - 1}
	cmd := Command{Type: kind, Raw: raw}
	switch kind {
	case TypeDone:
		cmd.Done = idx
	case TypeFocus:
		cmd.Focus = idx
	case TypeRemove:
		cmd.Remove = idx
	}
	return cmd, nil
}

func parseGroup(raw string, args []string) (Command, error) {
	if len(args) < 2 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "group requires a name and a hex color"}
	}
	color := args[len(args)-1]
	if !strings.HasPrefix(color, "#") {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "group color must start with #"}
	}
	name := strings.TrimSpace(strings.Join(args[:len(args)-1], " "))
	if name == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "group requires a name"}
	}
	return Command{Type: TypeGroup, Raw: raw, Group: &GroupArgs{Name: name, Color: color}}, nil
}

func parseFilter(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "filter requires a group id or 'all'"}
	}
	group := strings.ToLower(args[0])
	if group == "all" {
		group = ""
	}
	return Command{Type: TypeFilter, Raw: raw, Filter: &FilterArgs{Group: group}}, nil
}
