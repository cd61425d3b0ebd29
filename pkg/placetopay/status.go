package placetopay

import (
	"encoding/json"
	"time"
)

// StatusCode is the gateway's state for a request, transaction, or
// subscription instrument.
type StatusCode string

const (
	StatusOK                StatusCode = "OK"
	StatusFailed            StatusCode = "FAILED"
	StatusApproved          StatusCode = "APPROVED"
	StatusApprovedPartial   StatusCode = "APPROVED_PARTIAL"
	StatusPartialExpired    StatusCode = "PARTIAL_EXPIRED"
	StatusRejected          StatusCode = "REJECTED"
	StatusPending           StatusCode = "PENDING"
	StatusPendingValidation StatusCode = "PENDING_VALIDATION"
	StatusPendingProcess    StatusCode = "PENDING_PROCESS"
	StatusRefunded          StatusCode = "REFUNDED"
	StatusError             StatusCode = "ERROR"
)

// Status is the gateway's outcome report: a state code, a reason code, a
// human message, and the timestamp the state was reached.
type Status struct {
	Status  StatusCode `json:"status"`
	Reason  string     `json:"reason,omitempty"`
	Message string     `json:"message,omitempty"`
	Date    string     `json:"date,omitempty"`
}

// NewStatus creates a status stamped with the current time.
func NewStatus(code StatusCode, reason, message string) *Status {
	return &Status{
		Status:  code,
		Reason:  reason,
		Message: message,
		Date:    time.Now().Format(time.RFC3339),
	}
}

// UnmarshalJSON tolerates numeric reason codes; the gateway sends "00" on
// success paths and bare numbers like 401 on some failure envelopes.
func (s *Status) UnmarshalJSON(b []byte) error {
	var aux struct {
		Status  StatusCode `json:"status"`
		Reason  flexString `json:"reason"`
		Message string     `json:"message"`
		Date    string     `json:"date"`
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	*s = Status{
		Status:  aux.Status,
		Reason:  string(aux.Reason),
		Message: aux.Message,
		Date:    aux.Date,
	}
	return nil
}

// IsSuccessful reports whether the gateway processed the request itself
// without error.
func (s *Status) IsSuccessful() bool {
	return s.Status == StatusOK
}

// IsApproved reports whether the operation was approved.
func (s *Status) IsApproved() bool {
	return s.Status == StatusApproved
}

// IsRejected reports whether the operation was rejected or failed outright.
func (s *Status) IsRejected() bool {
	return s.Status == StatusRejected || s.Status == StatusFailed
}

// ToMap returns the full wire shape of the status.
func (s *Status) ToMap() map[string]any {
	return map[string]any{
		"status":  string(s.Status),
		"reason":  s.Reason,
		"message": s.Message,
		"date":    s.Date,
	}
}
