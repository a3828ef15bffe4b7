package ticket

import (
	"faultdesk/internal/shared/authorization"
)

// Scope is the visibility restriction derived from a principal's role and
// organizational assignment. It is the single construction point for both
// evaluation paths: repositories translate the restriction fields into query
// predicates for multi-row reads, and Allows applies the identical rule to a
// fetched single row. Keeping both on one value prevents the two paths from
// drifting apart.
type Scope struct {
	role           authorization.UserRole
	command        string
	unit           string
	includeDeleted bool
}

// ResolveScope computes the ticket visibility scope for a principal:
// admins see everything, technicians their whole command, viewers only
// their own unit. Deleted tickets are always excluded from normal reads.
func ResolveScope(p authorization.Principal) Scope {
	s := Scope{role: p.Role}
	if p.Role.IsAdmin() {
		return s
	}
	s.command = p.Command
	if p.Role.IsViewer() {
		s.unit = p.Unit
	}
	return s
}

// WithDeleted widens the scope to include soft-deleted tickets. Only admins
// get the widened scope; for anyone else this is a no-op.
func (s Scope) WithDeleted() Scope {
	if s.role.IsAdmin() {
		s.includeDeleted = true
	}
	return s
}

func (s Scope) Role() authorization.UserRole { return s.role }

// CommandRestriction returns the command bound, if any.
func (s Scope) CommandRestriction() (string, bool) {
	return s.command, s.command != ""
}

// UnitRestriction returns the unit bound, if any.
func (s Scope) UnitRestriction() (string, bool) {
	return s.unit, s.unit != ""
}

func (s Scope) IncludeDeleted() bool { return s.includeDeleted }

// Allows reports whether a fetched ticket falls inside the scope. This is
// the single-row twin of the repository's query predicate.
func (s Scope) Allows(t *Ticket) bool {
	if t == nil {
		return false
	}
	if t.IsDeleted() && !s.includeDeleted {
		return false
	}
	if s.command != "" && t.Command() != s.command {
		return false
	}
	if s.unit != "" && t.Unit() != s.unit {
		return false
	}
	return true
}

// CanModify reports whether a principal may mutate a ticket: admins always,
// technicians anywhere inside their own command. This is deliberately coarser
// than viewer read scope; unit membership does not gate mutation.
func CanModify(p authorization.Principal, t *Ticket) bool {
	if !authorization.HasMinimumRole(p.Role, authorization.RoleTechnician) {
		return false
	}
	if p.Role.IsAdmin() {
		return true
	}
	return p.Command == t.Command()
}
