package codec

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errTest = errors.New("test failure")

func TestCountError(t *testing.T) {
	var err error = &CountError{Err: errTest, Expected: 5, Found: 4}

	assert.Equal(t, "test failure: expected 5, found 4", err.Error())
	assert.ErrorIs(t, err, errTest)

	var ce *CountError
	if assert.True(t, errors.As(err, &ce)) {
		assert.Equal(t, 5, ce.Expected)
		assert.Equal(t, 4, ce.Found)
	}
}

func TestByteError(t *testing.T) {
	var err error = &ByteError{Err: errTest, Found: 0xFF}

	assert.Equal(t, "test failure: found 0xFF", err.Error())
	assert.ErrorIs(t, err, errTest)
}

func TestNumberError(t *testing.T) {
	var err error = &NumberError{Err: errTest, Number: 7}

	assert.Equal(t, "test failure: 7", err.Error())
	assert.ErrorIs(t, err, errTest)
}
