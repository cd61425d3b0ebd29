package placetopay

import (
	"fmt"
	"path/filepath"
	"runtime"
)

// ConfigurationError reports invalid or missing settings. It is returned at
// construction time, before any network call is made.
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

func newConfigurationError(format string, args ...any) *ConfigurationError {
	return &ConfigurationError{Message: fmt.Sprintf(format, args...)}
}

// DataNotProvidedError reports malformed or wrong-typed caller input. It is
// raised before any network call and names the expected input or the
// underlying conversion error.
type DataNotProvidedError struct {
	Message string
}

func (e *DataNotProvidedError) Error() string {
	return e.Message
}

func newDataNotProvidedError(format string, args ...any) *DataNotProvidedError {
	return &DataNotProvidedError{Message: fmt.Sprintf(format, args...)}
}

// GatewayError reports a non-2xx HTTP response or a transport failure. Body
// holds the raw response so callers can parse the gateway's own error
// envelope (status.reason, status.message). Calls are never retried.
type GatewayError struct {
	StatusCode int
	Body       []byte
	Err        error
}

func (e *GatewayError) Error() string {
	if len(e.Body) > 0 {
		return string(e.Body)
	}
	if e.Err != nil {
		return fmt.Sprintf("gateway request failed: %v", e.Err)
	}
	return fmt.Sprintf("gateway request failed with status %d", e.StatusCode)
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

// ServiceError reports an unexpected client-side failure while handling a
// call, such as a serialization bug or a malformed gateway body. Location is
// a file:line hint for diagnostics when one could be captured.
type ServiceError struct {
	Message  string
	Location string
}

func (e *ServiceError) Error() string {
	if e.Location != "" {
		return fmt.Sprintf("error handling operation: %s (%s)", e.Message, e.Location)
	}
	return fmt.Sprintf("error handling operation: %s", e.Message)
}

// newServiceError wraps err with the caller's source location.
func newServiceError(err error) *ServiceError {
	e := &ServiceError{Message: err.Error()}
	if _, file, line, ok := runtime.Caller(1); ok {
		e.Location = fmt.Sprintf("%s:%d", filepath.Base(file), line)
	}
	return e
}
