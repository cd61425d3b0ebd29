package placetopay

import "encoding/json"

// Transaction is one processing attempt recorded against a session.
type Transaction struct {
	Reference         string            `json:"reference,omitempty"`
	InternalReference string            `json:"internalReference,omitempty"`
	PaymentMethod     string            `json:"paymentMethod,omitempty"`
	PaymentMethodName string            `json:"paymentMethodName,omitempty"`
	IssuerName        string            `json:"issuerName,omitempty"`
	Authorization     string            `json:"authorization,omitempty"`
	Receipt           string            `json:"receipt,omitempty"`
	Franchise         string            `json:"franchise,omitempty"`
	Refunded          bool              `json:"refunded,omitempty"`
	Status            *Status           `json:"status,omitempty"`
	Amount            *AmountConversion `json:"amount,omitempty"`
	ProcessorFields   NameValuePairs    `json:"processorFields,omitempty"`
}

// UnmarshalJSON tolerates the gateway sending internal references, receipts,
// and authorization codes as either numbers or strings.
func (t *Transaction) UnmarshalJSON(b []byte) error {
	var aux struct {
		Reference         string            `json:"reference"`
		InternalReference flexString        `json:"internalReference"`
		PaymentMethod     string            `json:"paymentMethod"`
		PaymentMethodName string            `json:"paymentMethodName"`
		IssuerName        string            `json:"issuerName"`
		Authorization     flexString        `json:"authorization"`
		Receipt           flexString        `json:"receipt"`
		Franchise         string            `json:"franchise"`
		Refunded          bool              `json:"refunded"`
		Status            *Status           `json:"status"`
		Amount            *AmountConversion `json:"amount"`
		ProcessorFields   NameValuePairs    `json:"processorFields"`
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	*t = Transaction{
		Reference:         aux.Reference,
		InternalReference: string(aux.InternalReference),
		PaymentMethod:     aux.PaymentMethod,
		PaymentMethodName: aux.PaymentMethodName,
		IssuerName:        aux.IssuerName,
		Authorization:     string(aux.Authorization),
		Receipt:           string(aux.Receipt),
		Franchise:         aux.Franchise,
		Refunded:          aux.Refunded,
		Status:            aux.Status,
		Amount:            aux.Amount,
		ProcessorFields:   aux.ProcessorFields,
	}
	return nil
}

// IsApproved reports whether this attempt was approved.
func (t *Transaction) IsApproved() bool {
	return t.Status != nil && t.Status.IsApproved()
}

// AdditionalData collapses the processor fields into a plain map.
func (t *Transaction) AdditionalData() map[string]any {
	return t.ProcessorFields.ToKeyValue()
}

// ToMap returns the full wire shape of the transaction, keeping explicit
// nulls for absent nested objects.
func (t *Transaction) ToMap() map[string]any {
	m := map[string]any{
		"reference":         t.Reference,
		"internalReference": t.InternalReference,
		"paymentMethod":     t.PaymentMethod,
		"paymentMethodName": t.PaymentMethodName,
		"issuerName":        t.IssuerName,
		"authorization":     t.Authorization,
		"receipt":           t.Receipt,
		"franchise":         t.Franchise,
		"refunded":          t.Refunded,
		"status":            nil,
		"amount":            nil,
		"processorFields":   nil,
	}
	if t.Status != nil {
		m["status"] = t.Status.ToMap()
	}
	if t.Amount != nil {
		m["amount"] = t.Amount
	}
	if len(t.ProcessorFields) > 0 {
		m["processorFields"] = t.ProcessorFields
	}
	return m
}
