package placetopay

import "encoding/json"

// DefaultCurrency is assumed when an amount arrives without a currency code.
const DefaultCurrency = "COP"

// AmountBase is a monetary total with its ISO 4217 currency code.
type AmountBase struct {
	Currency string  `json:"currency"`
	Total    float64 `json:"total"`
}

// NewAmountBase creates an amount, defaulting the currency to COP.
func NewAmountBase(total float64, currency string) AmountBase {
	if currency == "" {
		currency = DefaultCurrency
	}
	return AmountBase{Currency: currency, Total: total}
}

func (a *AmountBase) UnmarshalJSON(b []byte) error {
	type alias AmountBase
	v := alias{Currency: DefaultCurrency}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*a = AmountBase(v)
	return nil
}

// TaxDetail is one tax line item on an amount.
type TaxDetail struct {
	Kind   string  `json:"kind"`
	Amount float64 `json:"amount"`
	Base   float64 `json:"base,omitempty"`
}

// TaxDetails tolerates the gateway's wrapped repeated-element shape.
type TaxDetails []TaxDetail

func (l *TaxDetails) UnmarshalJSON(b []byte) error {
	items, err := unwrapItems(b, "item")
	if err != nil {
		return err
	}
	taxes := make(TaxDetails, 0, len(items))
	for _, item := range items {
		var t TaxDetail
		if err := json.Unmarshal(item, &t); err != nil {
			return err
		}
		taxes = append(taxes, t)
	}
	*l = taxes
	return nil
}

// AmountDetail is a named amount component such as tip or insurance. Kinds
// the gateway does not document pass through opaquely.
type AmountDetail struct {
	Kind   string  `json:"kind"`
	Amount float64 `json:"amount"`
}

// AmountDetails tolerates the gateway's wrapped repeated-element shape.
type AmountDetails []AmountDetail

func (l *AmountDetails) UnmarshalJSON(b []byte) error {
	items, err := unwrapItems(b, "item")
	if err != nil {
		return err
	}
	details := make(AmountDetails, 0, len(items))
	for _, item := range items {
		var d AmountDetail
		if err := json.Unmarshal(item, &d); err != nil {
			return err
		}
		details = append(details, d)
	}
	*l = details
	return nil
}

// Amount is a monetary total plus optional tax line items and named detail
// components. The tip and insurance scalars mirror the matching detail kinds
// and are not serialized on their own.
type Amount struct {
	AmountBase
	Taxes   TaxDetails    `json:"taxes,omitempty"`
	Details AmountDetails `json:"details,omitempty"`

	Tip       float64 `json:"-"`
	Insurance float64 `json:"-"`
}

// NewAmount creates an amount with the given total and currency (COP when
// empty).
func NewAmount(total float64, currency string) *Amount {
	return &Amount{AmountBase: NewAmountBase(total, currency)}
}

// SetDetails replaces the detail list and refreshes the well-known scalars.
func (a *Amount) SetDetails(details []AmountDetail) {
	a.Details = AmountDetails(details)
	a.applyDetails()
}

// AddDetail appends one detail component.
func (a *Amount) AddDetail(kind string, amount float64) {
	a.Details = append(a.Details, AmountDetail{Kind: kind, Amount: amount})
	a.applyDetails()
}

func (a *Amount) applyDetails() {
	for _, d := range a.Details {
		switch d.Kind {
		case "tip":
			a.Tip = d.Amount
		case "insurance":
			a.Insurance = d.Amount
		}
	}
}

func (a *Amount) UnmarshalJSON(b []byte) error {
	// Decodes into a flat aux struct: an alias type would inherit the
	// embedded AmountBase's UnmarshalJSON and drop taxes and details.
	var aux struct {
		Currency string        `json:"currency"`
		Total    float64       `json:"total"`
		Taxes    TaxDetails    `json:"taxes"`
		Details  AmountDetails `json:"details"`
	}
	aux.Currency = DefaultCurrency
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	*a = Amount{
		AmountBase: AmountBase{Currency: aux.Currency, Total: aux.Total},
		Taxes:      aux.Taxes,
		Details:    aux.Details,
	}
	a.applyDetails()
	return nil
}

// AmountConversion pairs the requested amount with the amount the issuer
// settled in, related by a conversion factor.
type AmountConversion struct {
	FromAmount *AmountBase `json:"fromAmount,omitempty"`
	ToAmount   *AmountBase `json:"toAmount,omitempty"`
	Factor     float64     `json:"factor"`
}

// SetAmountBase sets both sides to the same base and resets the factor.
func (c *AmountConversion) SetAmountBase(base AmountBase) {
	from, to := base, base
	c.FromAmount = &from
	c.ToAmount = &to
	c.Factor = 1.0
}

// UnmarshalJSON accepts both alias pairs the gateway uses for the two sides:
// fromAmount/toAmount and from/to. The factor defaults to 1.0.
func (c *AmountConversion) UnmarshalJSON(b []byte) error {
	var aux struct {
		FromAmount *AmountBase `json:"fromAmount"`
		ToAmount   *AmountBase `json:"toAmount"`
		From       *AmountBase `json:"from"`
		To         *AmountBase `json:"to"`
		Factor     *float64    `json:"factor"`
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	c.FromAmount = aux.FromAmount
	if c.FromAmount == nil {
		c.FromAmount = aux.From
	}
	c.ToAmount = aux.ToAmount
	if c.ToAmount == nil {
		c.ToAmount = aux.To
	}
	c.Factor = 1.0
	if aux.Factor != nil {
		c.Factor = *aux.Factor
	}
	return nil
}
