// Package sequence implements atomic ticket number allocation on top of a
// single counter row.
package sequence

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"faultdesk/internal/infrastructure/persistence/models"
	db "faultdesk/internal/shared/db"
)

const ticketNumberSequence = "ticket_number"

// TicketNumberAllocator hands out strictly increasing ticket numbers. It
// locks the counter row with SELECT ... FOR UPDATE inside the caller's
// transaction, so two concurrent creations serialize on the row and can
// never observe the same value. The counter seeds itself from the highest
// number already stored, soft-deleted tickets included, so numbers of
// deleted tickets are never reissued.
type TicketNumberAllocator struct {
	db *gorm.DB
}

func NewTicketNumberAllocator(db *gorm.DB) *TicketNumberAllocator {
	return &TicketNumberAllocator{db: db}
}

// Next allocates the next ticket number. It must be called inside a
// transaction (via TransactionManager.RunInTransaction) so the row lock
// spans the subsequent ticket insert; allocation and insert then commit or
// roll back together, leaving no gaps on failure.
func (a *TicketNumberAllocator) Next(ctx context.Context) (int, error) {
	tx := db.GetTxFromContext(ctx, a.db)

	var seq models.SequenceModel
	err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("name = ?", ticketNumberSequence).
		First(&seq).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		seeded, seedErr := a.seed(tx)
		if seedErr != nil {
			return 0, seedErr
		}
		seq = *seeded
	} else if err != nil {
		return 0, fmt.Errorf("failed to lock ticket number sequence: %w", err)
	}

	next := seq.Value + 1
	result := tx.Model(&models.SequenceModel{}).
		Where("name = ?", ticketNumberSequence).
		Update("value", next)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to advance ticket number sequence: %w", result.Error)
	}

	return next, nil
}

// seed creates the counter row from the current maximum ticket number. Two
// transactions may race to create it; the unique primary key makes the loser
// fail, and it retries the locked read.
func (a *TicketNumberAllocator) seed(tx *gorm.DB) (*models.SequenceModel, error) {
	var max int
	err := tx.Model(&models.TicketModel{}).
		Select("COALESCE(MAX(number), 0)").
		Scan(&max).Error
	if err != nil {
		return nil, fmt.Errorf("failed to seed ticket number sequence: %w", err)
	}

	seq := models.SequenceModel{Name: ticketNumberSequence, Value: max}
	if err := tx.Create(&seq).Error; err != nil {
		// Lost the creation race; take the lock on the winner's row.
		var existing models.SequenceModel
		lockErr := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("name = ?", ticketNumberSequence).
			First(&existing).Error
		if lockErr != nil {
			return nil, fmt.Errorf("failed to seed ticket number sequence: %w", err)
		}
		return &existing, nil
	}

	return &seq, nil
}
