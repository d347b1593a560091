package internal

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorWrapper_Is(t *testing.T) {
	err := NewSourceUnavailableError("GET /pokemon", io.ErrUnexpectedEOF)

	assert.True(t, errors.Is(err, ErrSourceUnavailable))
	assert.True(t, errors.Is(err, io.ErrUnexpectedEOF))
	assert.False(t, errors.Is(err, ErrNotFound))
	assert.Equal(t, "source unavailable: GET /pokemon: unexpected EOF", err.Error())
}

func TestErrorWrapper_NoCause(t *testing.T) {
	err := NewMalformedRecordError("id must be positive")

	assert.True(t, errors.Is(err, ErrMalformedRecord))
	assert.Equal(t, "malformed record: id must be positive", err.Error())
}

func TestNewMissingParamError(t *testing.T) {
	err := NewMissingParamError("FetchByName.name")

	assert.ErrorIs(t, err, ErrMissingParam)
	assert.Contains(t, err.Error(), "FetchByName.name")
}
