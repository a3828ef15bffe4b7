package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// Dashboard limits
	DefaultRecentLimit = 10
	MaxRecentLimit     = 50

	// Export cap to keep spreadsheet generation bounded
	MaxExportRows = 10000

	// Context keys
	ContextKeyPrincipal = "principal"
	ContextKeyUserID    = "user_id"
	ContextKeyUserRole  = "user_role"
	ContextKeyRequestID = "request_id"

	// Database table names
	TableUsers     = "users"
	TableTickets   = "tickets"
	TableComments  = "ticket_comments"
	TableCommands  = "commands"
	TableUnits     = "units"
	TableSequences = "ticket_sequences"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgResourceNotFound    = "Resource not found"
	ErrMsgUnauthorized        = "Unauthorized access"
	ErrMsgForbidden           = "Access forbidden"
	ErrMsgValidationFailed    = "Validation failed"
	ErrMsgConflict            = "Resource already exists"
)
