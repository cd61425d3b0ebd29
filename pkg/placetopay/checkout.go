package placetopay

import (
	"context"
	"encoding/json"
)

// Checkout is the entry point of the SDK: one facade per configured site,
// exposing the four gateway operations. Safe for concurrent use.
type Checkout struct {
	settings *Settings
}

// NewCheckout creates a facade over validated settings.
func NewCheckout(settings *Settings) *Checkout {
	return &Checkout{settings: settings}
}

// Settings exposes the facade's configuration.
func (c *Checkout) Settings() *Settings {
	return c.settings
}

// asRedirectRequest accepts the typed request, its value form, or a plain
// map, and validates the result.
func asRedirectRequest(req any) (*RedirectRequest, error) {
	var r *RedirectRequest
	switch v := req.(type) {
	case *RedirectRequest:
		r = v
	case RedirectRequest:
		r = &v
	case map[string]any:
		r = &RedirectRequest{}
		if err := convertMap(v, r); err != nil {
			return nil, newDataNotProvidedError("Failed to convert map to RedirectRequest: %v", err)
		}
	default:
		return nil, newDataNotProvidedError("Invalid request type: %T. Expected *RedirectRequest, RedirectRequest, or map[string]any", req)
	}
	if err := r.validate(); err != nil {
		return nil, err
	}
	return r, nil
}

// asCollectRequest accepts the typed request, its value form, or a plain
// map, and validates the result.
func asCollectRequest(req any) (*CollectRequest, error) {
	var r *CollectRequest
	switch v := req.(type) {
	case *CollectRequest:
		r = v
	case CollectRequest:
		r = &v
	case map[string]any:
		r = &CollectRequest{}
		if err := convertMap(v, r); err != nil {
			return nil, newDataNotProvidedError("Failed to convert map to CollectRequest: %v", err)
		}
	default:
		return nil, newDataNotProvidedError("Invalid request type: %T. Expected *CollectRequest, CollectRequest, or map[string]any", req)
	}
	if err := r.validate(); err != nil {
		return nil, err
	}
	return r, nil
}

func convertMap(m map[string]any, out any) error {
	b, err := json.Marshal(m)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}

// Request creates a checkout session and returns the process URL to redirect
// the shopper to. req may be a *RedirectRequest, a RedirectRequest, or a
// map[string]any with the same shape.
func (c *Checkout) Request(ctx context.Context, req any) (*RedirectResponse, error) {
	r, err := asRedirectRequest(req)
	if err != nil {
		return nil, err
	}
	return c.settings.Carrier().Request(ctx, r)
}

// Query fetches the current state of a session by its request identifier.
func (c *Checkout) Query(ctx context.Context, requestID string) (*InformationResponse, error) {
	c.settings.Logger().Info().Str("requestId", requestID).Msg("querying session")
	return c.settings.Carrier().Query(ctx, requestID)
}

// Collect charges a stored instrument without shopper interaction. req may
// be a *CollectRequest, a CollectRequest, or a map[string]any with the same
// shape.
func (c *Checkout) Collect(ctx context.Context, req any) (*InformationResponse, error) {
	r, err := asCollectRequest(req)
	if err != nil {
		return nil, err
	}
	return c.settings.Carrier().Collect(ctx, r)
}

// Reverse undoes an approved transaction by its internal reference.
func (c *Checkout) Reverse(ctx context.Context, internalReference string) (*ReverseResponse, error) {
	c.settings.Logger().Info().Str("internalReference", internalReference).Msg("reversing transaction")
	return c.settings.Carrier().Reverse(ctx, internalReference)
}
