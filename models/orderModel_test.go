package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransitionFromPending(t *testing.T) {
	assert.True(t, CanTransition(StatusPending, StatusCompleted))
	assert.True(t, CanTransition(StatusPending, StatusCancelled))
	assert.False(t, CanTransition(StatusPending, StatusPending))
}

func TestTerminalStatusesNeverTransition(t *testing.T) {
	for _, from := range []string{StatusCompleted, StatusCancelled} {
		for _, to := range []string{StatusPending, StatusCompleted, StatusCancelled} {
			assert.False(t, CanTransition(from, to), "%s must not transition to %s", from, to)
		}
	}
}
