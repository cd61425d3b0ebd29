package placetopay

import "encoding/json"

// RedirectResponse is the gateway's answer to a session-creation call: the
// session identifier and the URL to send the shopper to.
type RedirectResponse struct {
	RequestID  string  `json:"requestId,omitempty"`
	ProcessURL string  `json:"processUrl,omitempty"`
	Status     *Status `json:"status,omitempty"`
}

// UnmarshalJSON tolerates the request identifier arriving as a number or a
// string.
func (r *RedirectResponse) UnmarshalJSON(b []byte) error {
	var aux struct {
		RequestID  flexString `json:"requestId"`
		ProcessURL string     `json:"processUrl"`
		Status     *Status    `json:"status"`
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	*r = RedirectResponse{
		RequestID:  string(aux.RequestID),
		ProcessURL: aux.ProcessURL,
		Status:     aux.Status,
	}
	return nil
}

// IsSuccessful reports whether the gateway accepted the session.
func (r *RedirectResponse) IsSuccessful() bool {
	return r.Status != nil && r.Status.IsSuccessful()
}

// ToMap returns the full wire shape of the response, keeping explicit nulls
// for absent nested objects.
func (r *RedirectResponse) ToMap() map[string]any {
	m := map[string]any{
		"requestId":  r.RequestID,
		"processUrl": r.ProcessURL,
		"status":     nil,
	}
	if r.Status != nil {
		m["status"] = r.Status.ToMap()
	}
	return m
}

// InformationResponse is the full session state a query returns: the original
// request as the gateway recorded it, every processing attempt, and the
// subscription result when the session tokenized an instrument.
type InformationResponse struct {
	RequestID    string                   `json:"requestId,omitempty"`
	Status       *Status                  `json:"status,omitempty"`
	Request      *RedirectRequest         `json:"request,omitempty"`
	Payment      []Transaction            `json:"payment,omitempty"`
	Subscription *SubscriptionInformation `json:"subscription,omitempty"`
}

// UnmarshalJSON tolerates the transaction list arriving as a bare array, a
// single object, or wrapped under "transaction" or "item".
func (r *InformationResponse) UnmarshalJSON(b []byte) error {
	var aux struct {
		RequestID    flexString               `json:"requestId"`
		Status       *Status                  `json:"status"`
		Request      *RedirectRequest         `json:"request"`
		Payment      json.RawMessage          `json:"payment"`
		Subscription *SubscriptionInformation `json:"subscription"`
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	*r = InformationResponse{
		RequestID:    string(aux.RequestID),
		Status:       aux.Status,
		Request:      aux.Request,
		Subscription: aux.Subscription,
	}
	items, err := unwrapItems(aux.Payment, "transaction", "item")
	if err != nil {
		return err
	}
	for _, item := range items {
		var t Transaction
		if err := json.Unmarshal(item, &t); err != nil {
			return err
		}
		r.Payment = append(r.Payment, t)
	}
	return nil
}

// IsSuccessful reports whether the query itself succeeded.
func (r *InformationResponse) IsSuccessful() bool {
	return r.Status != nil && r.Status.IsSuccessful()
}

// LastTransaction returns the most recent attempt, or the most recent
// approved attempt when approved is true. Attempts are ordered oldest first,
// so the scan runs from the end. Returns nil when no attempt matches.
func (r *InformationResponse) LastTransaction(approved bool) *Transaction {
	for i := len(r.Payment) - 1; i >= 0; i-- {
		if !approved || r.Payment[i].IsApproved() {
			return &r.Payment[i]
		}
	}
	return nil
}

// LastApprovedTransaction returns the most recent approved attempt, or nil.
func (r *InformationResponse) LastApprovedTransaction() *Transaction {
	return r.LastTransaction(true)
}

// LastAuthorization returns the authorization code of the most recent
// approved attempt, or the empty string.
func (r *InformationResponse) LastAuthorization() string {
	if t := r.LastApprovedTransaction(); t != nil {
		return t.Authorization
	}
	return ""
}

// ToMap returns the full wire shape of the session state, keeping explicit
// nulls for absent nested objects.
func (r *InformationResponse) ToMap() map[string]any {
	m := map[string]any{
		"requestId":    r.RequestID,
		"status":       nil,
		"request":      nil,
		"payment":      nil,
		"subscription": nil,
	}
	if r.Status != nil {
		m["status"] = r.Status.ToMap()
	}
	if r.Request != nil {
		m["request"] = r.Request
	}
	if len(r.Payment) > 0 {
		payments := make([]map[string]any, 0, len(r.Payment))
		for i := range r.Payment {
			payments = append(payments, r.Payment[i].ToMap())
		}
		m["payment"] = payments
	}
	if r.Subscription != nil {
		m["subscription"] = r.Subscription.ToMap()
	}
	return m
}

// ReverseResponse is the gateway's answer to a reversal: the outcome plus the
// reversed transaction when the gateway reports one.
type ReverseResponse struct {
	Status  *Status      `json:"status,omitempty"`
	Payment *Transaction `json:"payment,omitempty"`
}

// IsSuccessful reports whether the reversal was accepted.
func (r *ReverseResponse) IsSuccessful() bool {
	return r.Status != nil && r.Status.IsSuccessful()
}

// ToMap returns the full wire shape of the response, keeping explicit nulls
// for absent nested objects.
func (r *ReverseResponse) ToMap() map[string]any {
	m := map[string]any{
		"status":  nil,
		"payment": nil,
	}
	if r.Status != nil {
		m["status"] = r.Status.ToMap()
	}
	if r.Payment != nil {
		m["payment"] = r.Payment.ToMap()
	}
	return m
}
