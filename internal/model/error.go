package model

// ErrorResponse is the error envelope returned by every endpoint.
type ErrorResponse struct {
	Error   bool   `json:"error"`
	Message string `json:"message"`
}

// OKResponse is returned by delete endpoints.
type OKResponse struct {
	OK bool `json:"ok"`
}

// Standard error codes for domain failures
const (
	ErrCodeInvalidJSON   = "INVALID_JSON"
	ErrCodeInvalidOrder  = "INVALID_ORDER"
	ErrCodeInvalidInput  = "INVALID_INPUT"
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeInternalError = "INTERNAL_ERROR"
)

// DomainError is a business rule failure that maps to a client-facing status.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrInvalidJSON      = NewDomainError(ErrCodeInvalidJSON, "Invalid JSON body")
	ErrInvalidOrder     = NewDomainError(ErrCodeInvalidOrder, "Items required")
	ErrMissingUser      = NewDomainError(ErrCodeInvalidOrder, "userId required")
	ErrInvalidUserID    = NewDomainError(ErrCodeInvalidOrder, "userId is invalid")
	ErrInvalidItem      = NewDomainError(ErrCodeInvalidOrder, "Each item needs a productId, a quantity of at least 1 and a non-negative price")
	ErrUserNotFound     = NewDomainError(ErrCodeNotFound, "User not found")
	ErrCategoryNotFound = NewDomainError(ErrCodeNotFound, "Category not found")
	ErrProductNotFound  = NewDomainError(ErrCodeNotFound, "Product not found")
)
