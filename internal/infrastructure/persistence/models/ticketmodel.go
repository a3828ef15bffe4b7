package models

type TicketModel struct {
	ID                 uint   `gorm:"primaryKey"`
	Number             int    `gorm:"uniqueIndex;not null"`
	Subject            string `gorm:"size:200;not null"`
	Command            string `gorm:"size:100;not null;index"`
	Unit               string `gorm:"size:100;not null;index"`
	Priority           string `gorm:"size:20;not null;index"`
	Status             string `gorm:"size:20;not null;index"`
	IsRecurring        bool   `gorm:"not null;default:false"`
	Description        string `gorm:"type:text;not null"`
	OpenDate           int64  `gorm:"not null;index"`
	CloseDate          *int64
	AssignedTechnician *string `gorm:"size:100"`
	IsDeleted          bool    `gorm:"not null;default:false;index"`
	DeletedAt          *int64
	CreatedBy          string  `gorm:"size:100;not null"`
	LastModifiedBy     *string `gorm:"size:100"`
	CreatedAt          int64   `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt          int64   `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TicketModel) TableName() string {
	return "tickets"
}

type CommentModel struct {
	ID        uint   `gorm:"primaryKey"`
	TicketID  uint   `gorm:"not null;index"`
	Author    string `gorm:"size:100;not null"`
	Content   string `gorm:"size:500;not null"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (CommentModel) TableName() string {
	return "ticket_comments"
}
