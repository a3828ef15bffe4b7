package ticket

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewComment(t *testing.T) {
	c, err := NewComment(5, "tech1", "  Checked the wiring  ")
	require.NoError(t, err)

	assert.Equal(t, uint(5), c.TicketID())
	assert.Equal(t, "tech1", c.Author())
	assert.Equal(t, "Checked the wiring", c.Content(), "content is trimmed")
	assert.NotZero(t, c.CreatedAt())
	assert.Zero(t, c.ID())
}

func TestNewComment_ValidationErrors(t *testing.T) {
	tests := []struct {
		name     string
		ticketID uint
		author   string
		content  string
	}{
		{"zero ticket ID", 0, "tech1", "note"},
		{"missing author", 5, "", "note"},
		{"empty content", 5, "tech1", ""},
		{"whitespace-only content", 5, "tech1", "   "},
		{"content too long", 5, "tech1", strings.Repeat("c", 501)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, err := NewComment(tc.ticketID, tc.author, tc.content)
			assert.Error(t, err)
			assert.Nil(t, c)
		})
	}
}

func TestNewComment_ContentAtBoundary(t *testing.T) {
	c, err := NewComment(5, "tech1", strings.Repeat("c", 500))
	require.NoError(t, err)
	assert.Equal(t, 500, len([]rune(c.Content())))
}

func TestComment_SetID(t *testing.T) {
	c, err := NewComment(5, "tech1", "note")
	require.NoError(t, err)

	require.NoError(t, c.SetID(9))
	assert.Equal(t, uint(9), c.ID())
	assert.Error(t, c.SetID(10))
}
