package commands

import "fmt"

type Result struct {
	Message string
}

type Handlers struct {
	Add    func(AddArgs) (Result, error)
	Done   func(IndexArgs) (Result, error)
	Focus  func(IndexArgs) (Result, error)
	Remove func(IndexArgs) (Result, error)
	Group  func(GroupArgs) (Result, error)
	Filter func(FilterArgs) (Result, error)
	Clear  func() (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeAdd:
		if handlers.Add == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "add handler not configured"}
		}
		return handlers.Add(*cmd.Add)
	case TypeDone:
		if handlers.Done == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "done handler not configured"}
		}
		return handlers.Done(*cmd.Done)
	case TypeFocus:
		if handlers.Focus == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "focus handler not configured"}
		}
		return handlers.Focus(*cmd.Focus)
	case TypeRemove:
		if handlers.Remove == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "rm handler not configured"}
		}
		return handlers.Remove(*cmd.Remove)
	case TypeGroup:
		if handlers.Group == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "group handler not configured"}
		}
		return handlers.Group(*cmd.Group)
	case TypeFilter:
		if handlers.Filter == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "filter handler not configured"}
		}
		return handlers.Filter(*cmd.Filter)
	case TypeClear:
		if handlers.Clear == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "clear handler not configured"}
		}
		return handlers.Clear()
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}
