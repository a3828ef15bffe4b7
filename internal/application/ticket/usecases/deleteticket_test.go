package usecases

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"faultdesk/internal/domain/ticket"
	vo "faultdesk/internal/domain/ticket/valueobjects"
	apperrors "faultdesk/internal/shared/errors"
)

func TestDeleteTicketUseCase_Execute_AdminSoftDeletes(t *testing.T) {
	stored := storedTicket(t, 7, 42, "North Command", "Alpha Unit", vo.StatusOpen)
	var updated *ticket.Ticket
	mockRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return stored, nil },
		UpdateFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			updated = tk
			return nil
		},
	}
	useCase := NewDeleteTicketUseCase(mockRepo, &mockLogger{})

	err := useCase.Execute(context.Background(), DeleteTicketCommand{
		Principal: adminPrincipal(),
		TicketID:  7,
	})

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.True(t, updated.IsDeleted())
	assert.NotNil(t, updated.DeletedAt())
	require.NotNil(t, updated.LastModifiedBy())
	assert.Equal(t, "admin1", *updated.LastModifiedBy())
}

func TestDeleteTicketUseCase_Execute_NonAdminForbidden(t *testing.T) {
	mockRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			t.Fatal("lookup must not be reached for non-admins")
			return nil, nil
		},
	}
	useCase := NewDeleteTicketUseCase(mockRepo, &mockLogger{})

	for _, principal := range []struct {
		name string
		p    func() error
	}{
		{"technician", func() error {
			return useCase.Execute(context.Background(), DeleteTicketCommand{
				Principal: technicianPrincipal("North Command", "Alpha Unit"), TicketID: 7,
			})
		}},
		{"viewer", func() error {
			return useCase.Execute(context.Background(), DeleteTicketCommand{
				Principal: viewerPrincipal("North Command", "Alpha Unit"), TicketID: 7,
			})
		}},
	} {
		t.Run(principal.name, func(t *testing.T) {
			err := principal.p()
			require.Error(t, err)
			var appErr *apperrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, apperrors.ErrorTypeForbidden, appErr.Type)
		})
	}
}

func TestDeleteTicketUseCase_Execute_AlreadyDeletedNotFound(t *testing.T) {
	mockRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) {
			return nil, apperrors.NewNotFoundError("ticket not found")
		},
	}
	useCase := NewDeleteTicketUseCase(mockRepo, &mockLogger{})

	err := useCase.Execute(context.Background(), DeleteTicketCommand{
		Principal: adminPrincipal(),
		TicketID:  7,
	})

	require.Error(t, err)
	var appErr *apperrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, apperrors.ErrorTypeNotFound, appErr.Type)
}
