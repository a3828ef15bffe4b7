package models

// SequenceModel is a single-row counter table. The allocator locks the row
// with SELECT ... FOR UPDATE so concurrent ticket creations cannot observe
// the same value.
type SequenceModel struct {
	Name      string `gorm:"primaryKey;size:50"`
	Value     int    `gorm:"not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (SequenceModel) TableName() string {
	return "ticket_sequences"
}
