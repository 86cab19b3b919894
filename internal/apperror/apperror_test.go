package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOfWrapped(t *testing.T) {
	base := Domainf("Admin cannot remove themselves")
	wrapped := fmt.Errorf("remove member: %w", base)

	assert.Equal(t, Domain, KindOf(wrapped))
	assert.Equal(t, "Admin cannot remove themselves", Message(wrapped))
	assert.True(t, IsKind(wrapped, Domain))
	assert.False(t, IsKind(nil, Domain))
}

func TestKindOfUntagged(t *testing.T) {
	err := errors.New("boom")
	assert.Equal(t, Unknown, KindOf(err))
	assert.Equal(t, "boom", Message(err))
}

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("disk full")
	err := Wrap(ExternalIO, "failed to save group", cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, ExternalIO, KindOf(err))
	assert.Equal(t, "failed to save group: disk full", err.Error())
	assert.Nil(t, Wrap(ExternalIO, "unused", nil))
}

func TestSentinelMatching(t *testing.T) {
	sentinel := New(Conflict, "group was modified concurrently")
	err := fmt.Errorf("save: %w", New(Conflict, "group was modified concurrently"))

	assert.ErrorIs(t, err, sentinel)
	assert.NotErrorIs(t, err, New(Conflict, "other"))
}
