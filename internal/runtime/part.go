package runtime

import (
	"fmt"
	"runtime/debug"
	"time"

	"github.com/aretw0/advent/pkg/domain"
)

// PanicError carries a value recovered from a panicking puzzle.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap exposes the panic value when it is itself an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// runPart invokes one part of a puzzle. Any error returned or panic raised by
// the part becomes an OperationFault result; nothing escapes.
func runPart(d domain.Descriptor, part int, fn func(string) (string, error), input string) (res domain.ExecutionResult) {
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			res = domain.Failure(d, part, domain.KindOperationFault, &PanicError{Value: r, Stack: debug.Stack()}, time.Since(start))
		}
	}()

	out, err := fn(input)
	if err != nil {
		return domain.Failure(d, part, domain.KindOperationFault, err, time.Since(start))
	}
	return domain.Success(d, part, out, time.Since(start))
}
