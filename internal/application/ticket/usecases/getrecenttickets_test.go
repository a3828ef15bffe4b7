package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"faultdesk/internal/domain/ticket"
	vo "faultdesk/internal/domain/ticket/valueobjects"
)

func TestGetRecentTicketsUseCase_Execute_LimitBounds(t *testing.T) {
	tests := []struct {
		name      string
		limit     int
		wantLimit int
	}{
		{"zero defaults", 0, 10},
		{"negative defaults", -5, 10},
		{"explicit limit kept", 25, 25},
		{"oversized limit capped", 500, 50},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var gotLimit int
			mockRepo := &mockTicketRepository{
				RecentFunc: func(ctx context.Context, scope ticket.Scope, limit int) ([]*ticket.Ticket, error) {
					gotLimit = limit
					return nil, nil
				},
			}
			useCase := NewGetRecentTicketsUseCase(mockRepo, &mockLogger{})

			_, err := useCase.Execute(context.Background(), GetRecentTicketsQuery{
				Principal: adminPrincipal(),
				Limit:     tc.limit,
			})

			require.NoError(t, err)
			assert.Equal(t, tc.wantLimit, gotLimit)
		})
	}
}

func TestGetRecentTicketsUseCase_Execute_ScopedToPrincipal(t *testing.T) {
	var gotScope ticket.Scope
	mockRepo := &mockTicketRepository{
		RecentFunc: func(ctx context.Context, scope ticket.Scope, limit int) ([]*ticket.Ticket, error) {
			gotScope = scope
			return []*ticket.Ticket{
				storedTicket(t, 1, 3, "North Command", "Alpha Unit", vo.StatusOpen),
				storedTicket(t, 2, 2, "North Command", "Alpha Unit", vo.StatusResolved),
			}, nil
		},
	}
	useCase := NewGetRecentTicketsUseCase(mockRepo, &mockLogger{})

	results, err := useCase.Execute(context.Background(), GetRecentTicketsQuery{
		Principal: viewerPrincipal("North Command", "Alpha Unit"),
	})

	require.NoError(t, err)
	assert.Len(t, results, 2)

	unit, restricted := gotScope.UnitRestriction()
	require.True(t, restricted)
	assert.Equal(t, "Alpha Unit", unit)
}

func TestGetTicketStatsUseCase_Execute(t *testing.T) {
	mockRepo := &mockTicketRepository{
		StatsFunc: func(ctx context.Context, scope ticket.Scope) (*ticket.Stats, error) {
			command, restricted := scope.CommandRestriction()
			assert.True(t, restricted)
			assert.Equal(t, "North Command", command)
			return &ticket.Stats{Total: 12, Open: 5, InProgress: 3, Resolved: 4, OperationalPriority: 2, Recurring: 1}, nil
		},
	}
	useCase := NewGetTicketStatsUseCase(mockRepo, &mockLogger{})

	stats, err := useCase.Execute(context.Background(), GetTicketStatsQuery{
		Principal: technicianPrincipal("North Command", "Alpha Unit"),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(12), stats.Total)
	assert.Equal(t, int64(5), stats.Open)
	assert.Equal(t, int64(4), stats.Resolved)
}
