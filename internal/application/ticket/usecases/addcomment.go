package usecases

import (
	"context"
	"time"

	"faultdesk/internal/domain/ticket"
	"faultdesk/internal/shared/authorization"
	"faultdesk/internal/shared/errors"
	"faultdesk/internal/shared/logger"
)

type AddCommentCommand struct {
	Principal authorization.Principal
	TicketID  uint
	Content   string
}

type AddCommentResult struct {
	CommentID uint
	CreatedAt time.Time
}

type AddCommentExecutor interface {
	Execute(ctx context.Context, cmd AddCommentCommand) (*AddCommentResult, error)
}

type AddCommentUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewAddCommentUseCase(
	ticketRepo ticket.Repository,
	logger logger.Interface,
) *AddCommentUseCase {
	return &AddCommentUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *AddCommentUseCase) Execute(ctx context.Context, cmd AddCommentCommand) (*AddCommentResult, error) {
	scope := ticket.ResolveScope(cmd.Principal)

	t, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	if !scope.Allows(t) {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	if !ticket.CanModify(cmd.Principal, t) {
		return nil, errors.NewForbiddenError("insufficient permissions to comment on this ticket")
	}

	comment, err := ticket.NewComment(t.ID(), cmd.Principal.Username, cmd.Content)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.SaveComment(ctx, comment); err != nil {
		uc.logger.Errorw("failed to save comment", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	// Commenting counts as touching the ticket.
	t.MarkModifiedBy(cmd.Principal.Username)
	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to record ticket modification", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	uc.logger.Infow("comment added", "ticket_id", t.ID(), "comment_id", comment.ID())

	return &AddCommentResult{
		CommentID: comment.ID(),
		CreatedAt: comment.CreatedAt(),
	}, nil
}
