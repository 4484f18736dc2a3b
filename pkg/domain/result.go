package domain

import (
	"fmt"
	"time"
)

// ErrorKind classifies a failed ExecutionResult.
type ErrorKind string

const (
	KindInstantiation  ErrorKind = "InstantiationFailure"
	KindMissingInput   ErrorKind = "MissingInput"
	KindEmptyInput     ErrorKind = "EmptyInput"
	KindInputError     ErrorKind = "InputError"
	KindOperationFault ErrorKind = "OperationFault"
)

// Parts of a puzzle.
const (
	PartOne = 1
	PartTwo = 2
)

// ExecutionResult is the outcome of running one part of one puzzle.
// A result with an empty Kind is a success and carries Output.
type ExecutionResult struct {
	Year     int           `json:"year"`
	Day      int           `json:"day"`
	Part     int           `json:"part"`
	Output   string        `json:"output,omitempty"`
	Kind     ErrorKind     `json:"kind,omitempty"`
	Message  string        `json:"message,omitempty"`
	Duration time.Duration `json:"duration_ns"`
	Err      error         `json:"-"`
}

// Success builds a successful result for a part.
func Success(d Descriptor, part int, output string, elapsed time.Duration) ExecutionResult {
	return ExecutionResult{Year: d.Year, Day: d.Day, Part: part, Output: output, Duration: elapsed}
}

// Failure builds a failed result for a part.
func Failure(d Descriptor, part int, kind ErrorKind, err error, elapsed time.Duration) ExecutionResult {
	return ExecutionResult{
		Year:     d.Year,
		Day:      d.Day,
		Part:     part,
		Kind:     kind,
		Message:  err.Error(),
		Duration: elapsed,
		Err:      err,
	}
}

// OK reports whether the part succeeded.
func (r ExecutionResult) OK() bool {
	return r.Kind == ""
}

func (r ExecutionResult) String() string {
	if r.OK() {
		return fmt.Sprintf("Year %d Day %02d Part %d: %s", r.Year, r.Day, r.Part, r.Output)
	}
	return fmt.Sprintf("Year %d Day %02d Part %d: %s: %s", r.Year, r.Day, r.Part, r.Kind, r.Message)
}
