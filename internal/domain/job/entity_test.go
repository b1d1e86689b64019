package job

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from    Status
		to      Status
		allowed bool
	}{
		{StatusReceived, StatusInProgress, true},
		{StatusReceived, StatusReady, true},
		{StatusReceived, StatusCancelled, true},
		{StatusReceived, StatusDelivered, false},

		{StatusInProgress, StatusReady, true},
		{StatusInProgress, StatusCancelled, true},
		{StatusInProgress, StatusDelivered, false},
		{StatusInProgress, StatusReceived, false},

		{StatusReady, StatusDelivered, true},
		{StatusReady, StatusCancelled, true},
		{StatusReady, StatusInProgress, false},

		// Terminal states
		{StatusDelivered, StatusReady, false},
		{StatusDelivered, StatusCancelled, false},
		{StatusCancelled, StatusReceived, false},
		{StatusCancelled, StatusDelivered, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"_to_"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.allowed, CanTransition(tt.from, tt.to))
		})
	}
}

func TestCanTransition_SameStatusRejected(t *testing.T) {
	for _, s := range StatusValues {
		status := Status(s)
		assert.False(t, CanTransition(status, status), "self-transition for %s", s)
	}
}
