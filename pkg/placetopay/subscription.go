package placetopay

import "encoding/json"

// Subscription instrument types reported by the gateway.
const (
	SubscriptionTypeToken   = "token"
	SubscriptionTypeAccount = "account"
)

// SubscriptionInformation is the tokenized instrument a subscription session
// produced. The instrument arrives as loose name-value pairs; ParseInstrument
// collapses them into the typed token or account.
type SubscriptionInformation struct {
	Type       string         `json:"type,omitempty"`
	Status     *Status        `json:"status,omitempty"`
	Instrument NameValuePairs `json:"instrument,omitempty"`
}

// ParseInstrument reifies the name-value pairs into a *Token or *Account
// according to the reported type. Unknown types yield nil.
func (s *SubscriptionInformation) ParseInstrument() any {
	data := s.Instrument.ToKeyValue()
	if s.Status != nil {
		data["status"] = s.Status.ToMap()
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return nil
	}
	switch s.Type {
	case SubscriptionTypeToken:
		t := &Token{}
		if err := json.Unmarshal(raw, t); err != nil {
			return nil
		}
		return t
	case SubscriptionTypeAccount:
		a := &Account{}
		if err := json.Unmarshal(raw, a); err != nil {
			return nil
		}
		return a
	}
	return nil
}

// ToMap returns the full wire shape of the subscription result.
func (s *SubscriptionInformation) ToMap() map[string]any {
	m := map[string]any{
		"type":       s.Type,
		"status":     nil,
		"instrument": nil,
	}
	if s.Status != nil {
		m["status"] = s.Status.ToMap()
	}
	if len(s.Instrument) > 0 {
		m["instrument"] = s.Instrument
	}
	return m
}
