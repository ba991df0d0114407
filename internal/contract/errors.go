package contract

type ErrorCode string

const (
	ErrCodeInvalidRequest ErrorCode = "INVALID_REQUEST"
	ErrCodeUnknownUser    ErrorCode = "UNKNOWN_USER"
	ErrCodeUnknownTeam    ErrorCode = "UNKNOWN_TEAM"
	ErrCodeStoreFailure   ErrorCode = "STORE_FAILURE"
)

// RequestError carries a machine-readable code alongside the message so
// API and CLI callers can distinguish bad input from upstream failures.
type RequestError struct {
	Code    ErrorCode
	Message string
}

func (e *RequestError) Error() string {
	return string(e.Code) + ": " + e.Message
}

func NewRequestError(code ErrorCode, message string) *RequestError {
	return &RequestError{Code: code, Message: message}
}
