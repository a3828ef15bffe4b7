package valueobjects

import "fmt"

// Priority is the urgency of a fault report, ordered by severity:
// normal < urgent < operational.
type Priority string

const (
	PriorityNormal      Priority = "normal"
	PriorityUrgent      Priority = "urgent"
	PriorityOperational Priority = "operational"
)

var prioritySeverity = map[Priority]int{
	PriorityNormal:      1,
	PriorityUrgent:      2,
	PriorityOperational: 3,
}

func (p Priority) String() string {
	return string(p)
}

func (p Priority) IsValid() bool {
	_, ok := prioritySeverity[p]
	return ok
}

// Severity returns the ordering rank of the priority.
func (p Priority) Severity() int {
	return prioritySeverity[p]
}

func (p Priority) IsNormal() bool {
	return p == PriorityNormal
}

func (p Priority) IsUrgent() bool {
	return p == PriorityUrgent
}

func (p Priority) IsOperational() bool {
	return p == PriorityOperational
}

func NewPriority(s string) (Priority, error) {
	p := Priority(s)
	if !p.IsValid() {
		return "", fmt.Errorf("invalid priority: %s", s)
	}
	return p, nil
}
