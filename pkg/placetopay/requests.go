package placetopay

import (
	"encoding/json"
	"strings"
)

// DefaultLocale is assumed when a session request carries no locale.
const DefaultLocale = "es_CO"

// RedirectRequest describes a checkout session to create: what to charge or
// tokenize, who is paying, and where to send the shopper afterwards.
//
// ReturnURL, IPAddress, and UserAgent are required; PaymentMethod and
// CancelURL are always serialized even when empty, as are the boolean flags.
type RedirectRequest struct {
	Locale         string         `json:"locale"`
	Payer          *Person        `json:"payer,omitempty"`
	Buyer          *Person        `json:"buyer,omitempty"`
	Payment        *Payment       `json:"payment,omitempty"`
	Subscription   *Subscription  `json:"subscription,omitempty"`
	ReturnURL      string         `json:"returnUrl"`
	PaymentMethod  string         `json:"paymentMethod"`
	CancelURL      string         `json:"cancelUrl"`
	IPAddress      string         `json:"ipAddress"`
	UserAgent      string         `json:"userAgent"`
	Expiration     string         `json:"expiration,omitempty"`
	CaptureAddress bool           `json:"captureAddress"`
	SkipResult     bool           `json:"skipResult"`
	NoBuyerFill    bool           `json:"noBuyerFill"`
	Fields         NameValuePairs `json:"fields,omitempty"`
}

// NewRedirectRequest creates a session request for payment with the required
// shopper context.
func NewRedirectRequest(payment *Payment, returnURL, ipAddress, userAgent string) *RedirectRequest {
	return &RedirectRequest{
		Locale:    DefaultLocale,
		Payment:   payment,
		ReturnURL: returnURL,
		IPAddress: ipAddress,
		UserAgent: userAgent,
	}
}

// UnmarshalJSON defaults the locale when absent.
func (r *RedirectRequest) UnmarshalJSON(b []byte) error {
	type alias RedirectRequest
	a := alias{Locale: DefaultLocale}
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	*r = RedirectRequest(a)
	return nil
}

// Language returns the upper-cased language part of the locale.
func (r *RedirectRequest) Language() string {
	if len(r.Locale) < 2 {
		return ""
	}
	return strings.ToUpper(r.Locale[:2])
}

func (r *RedirectRequest) validate() error {
	var missing []string
	if r.ReturnURL == "" {
		missing = append(missing, "returnUrl")
	}
	if r.IPAddress == "" {
		missing = append(missing, "ipAddress")
	}
	if r.UserAgent == "" {
		missing = append(missing, "userAgent")
	}
	if len(missing) > 0 {
		return newDataNotProvidedError("missing required fields: %s", strings.Join(missing, ", "))
	}
	return nil
}

// ToMap returns the request's wire shape as a generic map.
func (r *RedirectRequest) ToMap() (map[string]any, error) {
	return toMap(r)
}

// CollectRequest charges a previously tokenized instrument without shopper
// interaction. The redirect fields describe the charge; the instrument names
// what to charge against.
type CollectRequest struct {
	RedirectRequest
	Instrument *Instrument `json:"instrument,omitempty"`
}

// NewCollectRequest creates a collect call against a stored instrument.
func NewCollectRequest(payment *Payment, payer *Person, instrument *Instrument) *CollectRequest {
	return &CollectRequest{
		RedirectRequest: RedirectRequest{
			Locale:  DefaultLocale,
			Payment: payment,
			Payer:   payer,
		},
		Instrument: instrument,
	}
}

// UnmarshalJSON decodes the embedded redirect fields and the instrument.
// The embedded type's promoted UnmarshalJSON would otherwise drop the
// instrument.
func (c *CollectRequest) UnmarshalJSON(b []byte) error {
	if err := json.Unmarshal(b, &c.RedirectRequest); err != nil {
		return err
	}
	var aux struct {
		Instrument *Instrument `json:"instrument"`
	}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	c.Instrument = aux.Instrument
	return nil
}

func (c *CollectRequest) validate() error {
	if c.Instrument == nil {
		return newDataNotProvidedError("missing required fields: instrument")
	}
	return nil
}

// ToMap returns the request's wire shape as a generic map.
func (c *CollectRequest) ToMap() (map[string]any, error) {
	return toMap(c)
}
