package codec

import "fmt"

// CountError reports a size or count check that failed, with the values involved
type CountError struct {
	Err      error
	Expected int
	Found    int
}

func (e *CountError) Error() string {
	return fmt.Sprintf("%v: expected %d, found %d", e.Err, e.Expected, e.Found)
}

func (e *CountError) Unwrap() error {
	return e.Err
}

// ByteError reports a byte that has no meaning at its position
type ByteError struct {
	Err   error
	Found byte
}

func (e *ByteError) Error() string {
	return fmt.Sprintf("%v: found 0x%02X", e.Err, e.Found)
}

func (e *ByteError) Unwrap() error {
	return e.Err
}

// NumberError reports a grid or clue number that breaks a reference rule
type NumberError struct {
	Err    error
	Number uint8
}

func (e *NumberError) Error() string {
	return fmt.Sprintf("%v: %d", e.Err, e.Number)
}

func (e *NumberError) Unwrap() error {
	return e.Err
}
