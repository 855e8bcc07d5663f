package services

// Service errors
var (
	ErrScoringClosed     = &ServiceError{Message: "score submission is currently closed"}
	ErrReasonRequired    = &ServiceError{Message: "a reject reason is required"}
	ErrNoScoresSelected  = &ServiceError{Message: "no scores selected"}
	ErrDivisionRequired  = &ServiceError{Message: "division is required"}
	ErrNameRequired      = &ServiceError{Message: "full name is required"}
	ErrEventNameRequired = &ServiceError{Message: "event name is required"}
)

// ServiceError represents a service-level error
type ServiceError struct {
	Message string
}

func (e *ServiceError) Error() string {
	return e.Message
}
