package commands

import (
	"fmt"
	"strings"

	"github.com/sandeepkv93/daygrid/internal/datekey"
)

type Type string

const (
	TypeAdd   Type = "add"
	TypeGoto  Type = "goto"
	TypeMonth Type = "month"
	TypeClear Type = "clear"
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
	Title     string
	DueDate   string // "" means the currently selected day
	StartTime string
	EndTime   string
}

type GotoArgs struct {
	Date string
}

type MonthArgs struct {
	Delta int
}

type Command struct {
	Type  Type
	Raw   string
	Add   *AddArgs
	Goto  *GotoArgs
	Month *MonthArgs
}

// Parse turns palette input into a command. Supported forms:
//
//	/add <title> [@YYYY-MM-DD] [HH:MM-HH:MM]
//	/goto YYYY-MM-DD
//	/month prev|next
//	/clear
func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
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
	case TypeGoto:
		return parseGoto(input, args)
	case TypeMonth:
		return parseMonth(input, args)
	case TypeClear:
		return Command{Type: TypeClear, Raw: input}, nil
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseAdd(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires a title"}
	}

	add := AddArgs{}
	titleWords := make([]string, 0, len(args))
	for _, arg := range args {
		switch {
		case strings.HasPrefix(arg, "@"):
			date := strings.TrimPrefix(arg, "@")
			if !datekey.IsValidDateKey(date) {
				return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("bad date: %s", date)}
			}
			add.DueDate = date
		case isTimeRange(arg):
			start, end, _ := strings.Cut(arg, "-")
			add.StartTime = start
			add.EndTime = end
		default:
			titleWords = append(titleWords, arg)
		}
	}

	add.Title = strings.TrimSpace(strings.Join(titleWords, " "))
	if add.Title == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires a title"}
	}
	return Command{Type: TypeAdd, Raw: raw, Add: &add}, nil
}

func parseGoto(raw string, args []string) (Command, error) {
	if len(args) != 1 || !datekey.IsValidDateKey(args[0]) {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "goto requires a YYYY-MM-DD date"}
	}
	return Command{Type: TypeGoto, Raw: raw, Goto: &GotoArgs{Date: args[0]}}, nil
}

func parseMonth(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "month requires prev or next"}
	}
	switch strings.ToLower(args[0]) {
	case "prev":
		return Command{Type: TypeMonth, Raw: raw, Month: &MonthArgs{Delta: -1}}, nil
	case "next":
		return Command{Type: TypeMonth, Raw: raw, Month: &MonthArgs{Delta: 1}}, nil
	default:
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("bad month direction: %s", args[0])}
	}
}

// ParseQuickAdd tokenizes a bare quick-add line (no leading /add). It is
// lenient where the palette is strict: a malformed @date token simply stays
// part of the title.
func ParseQuickAdd(input string) AddArgs {
	add := AddArgs{}
	titleWords := make([]string, 0)
	for _, arg := range strings.Fields(input) {
		switch {
		case strings.HasPrefix(arg, "@") && datekey.IsValidDateKey(strings.TrimPrefix(arg, "@")):
			add.DueDate = strings.TrimPrefix(arg, "@")
		case isTimeRange(arg):
			start, end, _ := strings.Cut(arg, "-")
			add.StartTime = start
			add.EndTime = end
		default:
			titleWords = append(titleWords, arg)
		}
	}
	add.Title = strings.Join(titleWords, " ")
	return add
}

func isTimeRange(arg string) bool {
	start, end, ok := strings.Cut(arg, "-")
	return ok && datekey.IsValidTimeKey(start) && datekey.IsValidTimeKey(end)
}
