package ticket

import (
	"fmt"
	"strings"
	"time"

	vo "faultdesk/internal/domain/ticket/valueobjects"
	"faultdesk/internal/shared/biztime"
)

const (
	subjectMinLen     = 3
	subjectMaxLen     = 200
	descriptionMinLen = 5
	descriptionMaxLen = 2000

	// defaultSubjectLen is how much of the description becomes the subject
	// when none was supplied.
	defaultSubjectLen = 100
)

// Ticket is the fault-report aggregate. The comment sequence is owned
// exclusively by the ticket and is append-only.
type Ticket struct {
	id                 uint
	number             int
	subject            string
	command            string
	unit               string
	priority           vo.Priority
	status             vo.TicketStatus
	isRecurring        bool
	description        string
	openDate           time.Time
	closeDate          *time.Time
	assignedTechnician *string
	comments           []*Comment
	isDeleted          bool
	deletedAt          *time.Time
	createdBy          string
	lastModifiedBy     *string
	createdAt          time.Time
	updatedAt          time.Time
}

// NewTicket creates an open ticket. An empty subject defaults to the leading
// part of the description. The ticket number is assigned separately, by the
// allocator, before the first save.
func NewTicket(
	subject string,
	command string,
	unit string,
	priority vo.Priority,
	description string,
	isRecurring bool,
	createdBy string,
) (*Ticket, error) {
	description = strings.TrimSpace(description)
	subject = strings.TrimSpace(subject)
	if subject == "" {
		subject = defaultSubject(description)
	}

	if err := validateSubject(subject); err != nil {
		return nil, err
	}
	if err := validateDescription(description); err != nil {
		return nil, err
	}
	if strings.TrimSpace(command) == "" {
		return nil, fmt.Errorf("command is required")
	}
	if strings.TrimSpace(unit) == "" {
		return nil, fmt.Errorf("unit is required")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", priority)
	}
	if createdBy == "" {
		return nil, fmt.Errorf("creator is required")
	}

	now := biztime.NowUTC()
	return &Ticket{
		subject:     subject,
		command:     strings.TrimSpace(command),
		unit:        strings.TrimSpace(unit),
		priority:    priority,
		status:      vo.StatusOpen,
		isRecurring: isRecurring,
		description: description,
		openDate:    now,
		createdBy:   createdBy,
		comments:    []*Comment{},
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

// ReconstructTicket rebuilds a ticket from persistence. No invariant-altering
// side effects; the stored state is taken as-is.
func ReconstructTicket(
	id uint,
	number int,
	subject string,
	command string,
	unit string,
	priority vo.Priority,
	status vo.TicketStatus,
	isRecurring bool,
	description string,
	openDate time.Time,
	closeDate *time.Time,
	assignedTechnician *string,
	isDeleted bool,
	deletedAt *time.Time,
	createdBy string,
	lastModifiedBy *string,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if number <= 0 {
		return nil, fmt.Errorf("ticket number must be positive")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", priority)
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}

	return &Ticket{
		id:                 id,
		number:             number,
		subject:            subject,
		command:            command,
		unit:               unit,
		priority:           priority,
		status:             status,
		isRecurring:        isRecurring,
		description:        description,
		openDate:           openDate,
		closeDate:          closeDate,
		assignedTechnician: assignedTechnician,
		isDeleted:          isDeleted,
		deletedAt:          deletedAt,
		createdBy:          createdBy,
		lastModifiedBy:     lastModifiedBy,
		comments:           []*Comment{},
		createdAt:          createdAt,
		updatedAt:          updatedAt,
	}, nil
}

func defaultSubject(description string) string {
	runes := []rune(description)
	if len(runes) <= defaultSubjectLen {
		return description
	}
	return string(runes[:defaultSubjectLen])
}

func validateSubject(subject string) error {
	n := len([]rune(subject))
	if n < subjectMinLen {
		return fmt.Errorf("subject must be at least %d characters", subjectMinLen)
	}
	if n > subjectMaxLen {
		return fmt.Errorf("subject exceeds maximum length of %d characters", subjectMaxLen)
	}
	return nil
}

func validateDescription(description string) error {
	n := len([]rune(description))
	if n < descriptionMinLen {
		return fmt.Errorf("description must be at least %d characters", descriptionMinLen)
	}
	if n > descriptionMaxLen {
		return fmt.Errorf("description exceeds maximum length of %d characters", descriptionMaxLen)
	}
	return nil
}

func (t *Ticket) ID() uint                     { return t.id }
func (t *Ticket) Number() int                  { return t.number }
func (t *Ticket) Subject() string              { return t.subject }
func (t *Ticket) Command() string              { return t.command }
func (t *Ticket) Unit() string                 { return t.unit }
func (t *Ticket) Priority() vo.Priority        { return t.priority }
func (t *Ticket) Status() vo.TicketStatus      { return t.status }
func (t *Ticket) IsRecurring() bool            { return t.isRecurring }
func (t *Ticket) Description() string          { return t.description }
func (t *Ticket) OpenDate() time.Time          { return t.openDate }
func (t *Ticket) CloseDate() *time.Time        { return t.closeDate }
func (t *Ticket) AssignedTechnician() *string  { return t.assignedTechnician }
func (t *Ticket) IsDeleted() bool              { return t.isDeleted }
func (t *Ticket) DeletedAt() *time.Time        { return t.deletedAt }
func (t *Ticket) CreatedBy() string            { return t.createdBy }
func (t *Ticket) LastModifiedBy() *string      { return t.lastModifiedBy }
func (t *Ticket) CreatedAt() time.Time         { return t.createdAt }
func (t *Ticket) UpdatedAt() time.Time         { return t.updatedAt }

func (t *Ticket) Comments() []*Comment {
	commentsCopy := make([]*Comment, len(t.comments))
	copy(commentsCopy, t.comments)
	return commentsCopy
}

// SetID records the storage key after the first save. Assigned exactly once.
func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// SetNumber records the allocated ticket number. Assigned exactly once,
// never reassigned.
func (t *Ticket) SetNumber(number int) error {
	if t.number != 0 {
		return fmt.Errorf("ticket number is already set")
	}
	if number <= 0 {
		return fmt.Errorf("ticket number must be positive")
	}
	t.number = number
	return nil
}

// SetOpenDate overrides the open date. Used by the import path where the
// source data carries its own opening time.
func (t *Ticket) SetOpenDate(openDate time.Time) {
	t.openDate = openDate.UTC()
}

// SetCloseDate overrides the resolution timestamp. Only valid on resolved
// tickets; the bulk import path uses it when the source row carries its own
// close date.
func (t *Ticket) SetCloseDate(closeDate time.Time) error {
	if !t.status.IsResolved() {
		return fmt.Errorf("close date can only be set on resolved tickets")
	}
	utc := closeDate.UTC()
	t.closeDate = &utc
	return nil
}

// ChangeStatus moves the ticket to a new lifecycle state and maintains the
// closeDate coupling: entering resolved stamps closeDate if unset, leaving
// resolved clears it.
func (t *Ticket) ChangeStatus(newStatus vo.TicketStatus) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}
	if t.status == newStatus {
		return nil
	}

	t.status = newStatus
	t.updatedAt = biztime.NowUTC()

	if newStatus.IsResolved() {
		if t.closeDate == nil {
			now := biztime.NowUTC()
			t.closeDate = &now
		}
	} else {
		t.closeDate = nil
	}

	return nil
}

func (t *Ticket) ChangePriority(newPriority vo.Priority) error {
	if !newPriority.IsValid() {
		return fmt.Errorf("invalid priority: %s", newPriority)
	}
	if t.priority == newPriority {
		return nil
	}
	t.priority = newPriority
	t.updatedAt = biztime.NowUTC()
	return nil
}

func (t *Ticket) UpdateDescription(description string) error {
	description = strings.TrimSpace(description)
	if err := validateDescription(description); err != nil {
		return err
	}
	t.description = description
	t.updatedAt = biztime.NowUTC()
	return nil
}

func (t *Ticket) SetRecurring(isRecurring bool) {
	if t.isRecurring == isRecurring {
		return
	}
	t.isRecurring = isRecurring
	t.updatedAt = biztime.NowUTC()
}

// AssignTechnician sets or clears the responsible technician.
func (t *Ticket) AssignTechnician(technician *string) {
	t.assignedTechnician = technician
	t.updatedAt = biztime.NowUTC()
}

// MarkModifiedBy records the last actor that mutated the ticket.
func (t *Ticket) MarkModifiedBy(username string) {
	if username == "" {
		return
	}
	t.lastModifiedBy = &username
	t.updatedAt = biztime.NowUTC()
}

// AddComment appends to the comment sequence. Existing comments are never
// edited or removed.
func (t *Ticket) AddComment(comment *Comment) error {
	if comment == nil {
		return fmt.Errorf("comment cannot be nil")
	}
	t.comments = append(t.comments, comment)
	t.updatedAt = biztime.NowUTC()
	return nil
}

// SoftDelete hides the ticket from all normal queries while retaining it in
// storage. Deleting an already-deleted ticket is an error; callers translate
// it to NotFound, consistent with every other lookup.
func (t *Ticket) SoftDelete(deletedBy string) error {
	if t.isDeleted {
		return fmt.Errorf("ticket is already deleted")
	}
	now := biztime.NowUTC()
	t.isDeleted = true
	t.deletedAt = &now
	t.MarkModifiedBy(deletedBy)
	return nil
}

// Validate checks the aggregate's invariants, including the closeDate and
// status coupling.
func (t *Ticket) Validate() error {
	if err := validateSubject(t.subject); err != nil {
		return err
	}
	if err := validateDescription(t.description); err != nil {
		return err
	}
	if t.command == "" {
		return fmt.Errorf("command is required")
	}
	if t.unit == "" {
		return fmt.Errorf("unit is required")
	}
	if !t.priority.IsValid() {
		return fmt.Errorf("invalid priority: %s", t.priority)
	}
	if !t.status.IsValid() {
		return fmt.Errorf("invalid status: %s", t.status)
	}
	if t.status.IsResolved() != (t.closeDate != nil) {
		return fmt.Errorf("closeDate must be set exactly when status is resolved")
	}
	return nil
}
