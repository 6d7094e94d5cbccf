package astamboly

import (
	"errors"
	"fmt"
)

var (
	ErrNoMatch              = errors.New("No matching instruction-encoding")
	ErrAmbiguousSize        = errors.New("Unknown operand size")
	ErrImmediateDestination = errors.New("Immediate destination")
	ErrSizeMismatch         = errors.New("Conflicting argument sizes")
	ErrHighByteRex          = errors.New("Unsupported high-byte register combined with a REX prefix")
	ErrTooManyArgs          = errors.New("Too many arguments")
)

func errorf(sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{sentinel}, args...)...)
}

// invariant panics when an upstream collaborator hands the encoder something it must never see.
func invariant(format string, args ...interface{}) {
	panic(fmt.Sprintf("astamboly: invariant violated: "+format, args...))
}
