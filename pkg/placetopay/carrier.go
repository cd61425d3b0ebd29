package placetopay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Gateway endpoints, relative to the base URL.
const (
	endpointSession = "api/session"
	endpointQuery   = "api/session/"
	endpointCollect = "api/collect"
	endpointReverse = "api/reverse"
)

// Carrier dispatches the four gateway operations. The production carrier
// signs and POSTs JSON over HTTP; tests may substitute their own.
type Carrier interface {
	Request(ctx context.Context, req *RedirectRequest) (*RedirectResponse, error)
	Query(ctx context.Context, requestID string) (*InformationResponse, error)
	Collect(ctx context.Context, req *CollectRequest) (*InformationResponse, error)
	Reverse(ctx context.Context, internalReference string) (*ReverseResponse, error)
}

// restCarrier POSTs each operation to its endpoint with a freshly minted
// auth block merged into the payload. Failed calls are never retried; the
// caller decides what is safe to repeat.
type restCarrier struct {
	settings *Settings
}

func newRestCarrier(s *Settings) *restCarrier {
	return &restCarrier{settings: s}
}

// post signs the payload, sends it, and returns the raw response body.
// Transport failures and non-2xx statuses come back as *GatewayError.
func (c *restCarrier) post(ctx context.Context, endpoint string, payload any) ([]byte, error) {
	body, err := toMap(payload)
	if err != nil {
		return nil, newServiceError(err)
	}
	auth, err := c.settings.Authentication()
	if err != nil {
		return nil, err
	}
	body["auth"] = auth.Block()

	bodyBytes, err := json.Marshal(body)
	if err != nil {
		return nil, newServiceError(err)
	}

	url := c.settings.EndpointURL(endpoint)
	logger := c.settings.Logger()
	logger.Debug().Str("url", url).RawJSON("payload", bodyBytes).Msg("gateway request")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, newServiceError(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	for k, v := range c.settings.Headers() {
		req.Header.Set(k, v)
	}

	resp, err := c.settings.Client().Do(req)
	if err != nil {
		logger.Warn().Str("url", url).Err(err).Msg("gateway request failed")
		return nil, &GatewayError{Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &GatewayError{StatusCode: resp.StatusCode, Err: err}
	}

	logger.Debug().Str("url", url).Int("status", resp.StatusCode).RawJSON("body", respBody).Msg("gateway response")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		logger.Warn().Str("url", url).Int("status", resp.StatusCode).Msg("gateway rejected request")
		return nil, &GatewayError{StatusCode: resp.StatusCode, Body: respBody}
	}
	return respBody, nil
}

// postAndDecode dispatches one call and decodes the body into the
// operation's response type.
func postAndDecode[T any](ctx context.Context, c *restCarrier, endpoint string, payload any) (*T, error) {
	body, err := c.post(ctx, endpoint, payload)
	if err != nil {
		return nil, err
	}
	out := new(T)
	if err := json.Unmarshal(body, out); err != nil {
		return nil, newServiceError(fmt.Errorf("failed to parse gateway response: %w", err))
	}
	return out, nil
}

// Request creates a checkout session.
func (c *restCarrier) Request(ctx context.Context, req *RedirectRequest) (*RedirectResponse, error) {
	return postAndDecode[RedirectResponse](ctx, c, endpointSession, req)
}

// Query fetches the current state of a session.
func (c *restCarrier) Query(ctx context.Context, requestID string) (*InformationResponse, error) {
	return postAndDecode[InformationResponse](ctx, c, endpointQuery+requestID, map[string]any{})
}

// Collect charges a stored instrument without shopper interaction.
func (c *restCarrier) Collect(ctx context.Context, req *CollectRequest) (*InformationResponse, error) {
	return postAndDecode[InformationResponse](ctx, c, endpointCollect, req)
}

// Reverse undoes an approved transaction by its internal reference.
func (c *restCarrier) Reverse(ctx context.Context, internalReference string) (*ReverseResponse, error) {
	payload := map[string]any{"internalReference": internalReference}
	return postAndDecode[ReverseResponse](ctx, c, endpointReverse, payload)
}
