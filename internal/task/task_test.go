package task

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvokeReturnsValue(t *testing.T) {
	v, err := Invoke(func() (int, error) { return 42, nil })
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}

func TestInvokePropagatesError(t *testing.T) {
	want := errors.New("boom")
	_, err := Invoke(func() (int, error) { return 0, want })
	require.ErrorIs(t, err, want)
}

func TestInvokeRecoversPanic(t *testing.T) {
	_, err := Invoke(func() (int, error) {
		panic("oh no")
	})
	require.Error(t, err)
	assert.True(t, IsPanic(err))
	assert.Contains(t, err.Error(), "oh no")
}
