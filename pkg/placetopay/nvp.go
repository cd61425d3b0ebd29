package placetopay

import "encoding/json"

// DisplayOn controls where the gateway shows an extra field to the shopper.
type DisplayOn string

const (
	DisplayOnNone     DisplayOn = "none"
	DisplayOnAlways   DisplayOn = "always"
	DisplayOnPayment  DisplayOn = "payment"
	DisplayOnSession  DisplayOn = "session"
	DisplayOnReceipt  DisplayOn = "receipt"
	DisplayOnApproved DisplayOn = "approved"
	DisplayOnBoth     DisplayOn = "both"
)

// NameValuePair is the gateway's generic extensible key-value slot, used for
// instrument fields, processor fields, and subscription instrument data.
// Value carries whatever JSON the gateway sends: a string, an ordered list,
// a string-keyed map, or nothing. Unknown shapes pass through untouched.
type NameValuePair struct {
	Keyword   string    `json:"keyword"`
	Value     any       `json:"value,omitempty"`
	DisplayOn DisplayOn `json:"displayOn,omitempty"`
}

// NewNameValuePair creates a pair with the default display setting.
func NewNameValuePair(keyword string, value any) NameValuePair {
	return NameValuePair{Keyword: keyword, Value: value, DisplayOn: DisplayOnNone}
}

func (p *NameValuePair) UnmarshalJSON(b []byte) error {
	type alias NameValuePair
	a := alias{DisplayOn: DisplayOnNone}
	if err := json.Unmarshal(b, &a); err != nil {
		return err
	}
	*p = NameValuePair(a)
	return nil
}

// NameValuePairs decodes a repeated pair field in any of the shapes the
// gateway uses: bare array, single object, or {"item": [...]}.
type NameValuePairs []NameValuePair

func (l *NameValuePairs) UnmarshalJSON(b []byte) error {
	items, err := unwrapItems(b, "item")
	if err != nil {
		return err
	}
	pairs := make(NameValuePairs, 0, len(items))
	for _, item := range items {
		var p NameValuePair
		if err := json.Unmarshal(item, &p); err != nil {
			return err
		}
		pairs = append(pairs, p)
	}
	*l = pairs
	return nil
}

// ToKeyValue collapses the pairs into a flat keyword-to-value map.
func (l NameValuePairs) ToKeyValue() map[string]any {
	kv := make(map[string]any, len(l))
	for _, p := range l {
		kv[p.Keyword] = p.Value
	}
	return kv
}

// Get returns the value for keyword, or nil when absent.
func (l NameValuePairs) Get(keyword string) any {
	for _, p := range l {
		if p.Keyword == keyword {
			return p.Value
		}
	}
	return nil
}
