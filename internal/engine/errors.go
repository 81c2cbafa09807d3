package engine

import (
	"errors"
	"fmt"
)

// ErrEmptyText is returned when a task's text is blank after trimming.
var ErrEmptyText = errors.New("task text is required")

// FilterError indicates an unknown filter name.
type FilterError struct {
	Value string
}

func (e FilterError) Error() string {
	return fmt.Sprintf("unknown filter %q (want all|completed|pending)", e.Value)
}
