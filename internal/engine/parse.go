package engine

import "strings"

// ParseFilter parses user input to a Filter. Empty input is FilterAll.
func ParseFilter(input string) (Filter, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	switch s {
	case "", "all":
		return FilterAll, nil
	case "completed", "done":
		return FilterCompleted, nil
	case "pending", "todo":
		return FilterPending, nil
	default:
		return "", FilterError{Value: input}
	}
}
