package placetopay

// Recurring describes a recurring charge schedule attached to a payment.
type Recurring struct {
	Periodicity     string `json:"periodicity,omitempty"` // D, M, or Y
	Interval        int    `json:"interval,omitempty"`
	NextPayment     string `json:"nextPayment,omitempty"`
	MaxPeriods      int    `json:"maxPeriods,omitempty"`
	DueDate         string `json:"dueDate,omitempty"`
	NotificationURL string `json:"notificationUrl,omitempty"`
}

// Payment is the charge a session asks the shopper to pay.
type Payment struct {
	Reference    string         `json:"reference,omitempty"`
	Description  string         `json:"description,omitempty"`
	Amount       *Amount        `json:"amount,omitempty"`
	AllowPartial bool           `json:"allowPartial,omitempty"`
	Shipping     *Person        `json:"shipping,omitempty"`
	Fields       NameValuePairs `json:"fields,omitempty"`
	Recurring    *Recurring     `json:"recurring,omitempty"`
}

// DispersionPayment is a payment whose total settles across an ordered list
// of sub-payments (split settlement). Each sub-payment has the same shape as
// a payment.
type DispersionPayment struct {
	Payment
	Dispersion []Payment `json:"dispersion,omitempty"`
}

// SetDispersion replaces the sub-payment list.
func (d *DispersionPayment) SetDispersion(payments []Payment) {
	d.Dispersion = payments
}

// Subscription asks the gateway to tokenize the shopper's instrument for
// later collect calls.
type Subscription struct {
	Reference   string         `json:"reference,omitempty"`
	Description string         `json:"description,omitempty"`
	Fields      NameValuePairs `json:"fields,omitempty"`
}
