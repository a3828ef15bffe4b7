package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriority_IsValid(t *testing.T) {
	assert.True(t, PriorityNormal.IsValid())
	assert.True(t, PriorityUrgent.IsValid())
	assert.True(t, PriorityOperational.IsValid())
	assert.False(t, Priority("critical").IsValid())
	assert.False(t, Priority("").IsValid())
}

func TestPriority_SeverityOrdering(t *testing.T) {
	assert.Less(t, PriorityNormal.Severity(), PriorityUrgent.Severity())
	assert.Less(t, PriorityUrgent.Severity(), PriorityOperational.Severity())
}

func TestNewPriority(t *testing.T) {
	p, err := NewPriority("operational")
	require.NoError(t, err)
	assert.True(t, p.IsOperational())

	_, err = NewPriority("high")
	assert.Error(t, err)
}
