package constants

import "net/http"

// CodedError is an error with an HTTP status code attached. The api error
// handler walks the Unwrap chain looking for one of these.
type CodedError struct {
	msg  string
	code int
}

func NewCodedError(msg string, code int) *CodedError {
	return &CodedError{msg: msg, code: code}
}

func (e *CodedError) Error() string {
	return e.msg
}

func (e *CodedError) Code() int {
	return e.code
}

var (
	ErrDBNotFound         = NewCodedError("not found", http.StatusNotFound)
	ErrBadRequest         = NewCodedError("bad request", http.StatusBadRequest)
	ErrBackendUnavailable = NewCodedError("data backend unavailable, check connection settings and credentials", http.StatusServiceUnavailable)
	ErrQueryFailed        = NewCodedError("query execution failed", http.StatusBadGateway)
	ErrQueryCancelled     = NewCodedError("query execution cancelled", http.StatusBadGateway)
	ErrQueryTimeout       = NewCodedError("query execution timed out", http.StatusGatewayTimeout)
)
