package placetopay

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestRedirectRequest_LocaleDefault(t *testing.T) {
	var r RedirectRequest
	if err := json.Unmarshal([]byte(`{"returnUrl": "https://example.com/return"}`), &r); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if r.Locale != "es_CO" {
		t.Errorf("Expected default locale 'es_CO', got %q", r.Locale)
	}

	if err := json.Unmarshal([]byte(`{"locale": "en_US"}`), &r); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if r.Locale != "en_US" {
		t.Errorf("Expected locale 'en_US', got %q", r.Locale)
	}
}

func TestRedirectRequest_Language(t *testing.T) {
	r := &RedirectRequest{Locale: "en_US"}
	if got := r.Language(); got != "EN" {
		t.Errorf("Expected 'EN', got %q", got)
	}
	r.Locale = ""
	if got := r.Language(); got != "" {
		t.Errorf("Expected empty language, got %q", got)
	}
}

func TestRedirectRequest_Validate(t *testing.T) {
	r := &RedirectRequest{ReturnURL: "https://example.com/return"}
	err := r.validate()
	if err == nil {
		t.Fatal("Expected error, got nil")
	}
	var dataErr *DataNotProvidedError
	if !errors.As(err, &dataErr) {
		t.Fatalf("Expected DataNotProvidedError, got %T", err)
	}
	if dataErr.Error() != "missing required fields: ipAddress, userAgent" {
		t.Errorf("Unexpected message: %q", dataErr.Error())
	}

	r.IPAddress = "127.0.0.1"
	r.UserAgent = "Sandbox"
	if err := r.validate(); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestRedirectRequest_MarshalNullPolicy(t *testing.T) {
	r := NewRedirectRequest(&Payment{Reference: "ref_1", Amount: NewAmount(10000, "")},
		"https://example.com/return", "127.0.0.1", "Sandbox")

	b, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// Absent optional objects are omitted, not nulled.
	for _, key := range []string{"payer", "buyer", "subscription", "expiration", "fields"} {
		if _, ok := m[key]; ok {
			t.Errorf("Did not expect key %q in output", key)
		}
	}
	// Scalar defaults are always present.
	for _, key := range []string{"locale", "returnUrl", "paymentMethod", "cancelUrl", "captureAddress", "skipResult", "noBuyerFill"} {
		if _, ok := m[key]; !ok {
			t.Errorf("Expected key %q in output", key)
		}
	}
	if m["paymentMethod"] != "" {
		t.Errorf("Expected empty paymentMethod, got %v", m["paymentMethod"])
	}
	if m["locale"] != "es_CO" {
		t.Errorf("Expected locale 'es_CO', got %v", m["locale"])
	}
}

func TestRedirectRequest_MapEquivalence(t *testing.T) {
	typed := NewRedirectRequest(&Payment{Reference: "ref_1"}, "https://example.com/return", "127.0.0.1", "Sandbox")
	fromMap, err := asRedirectRequest(map[string]any{
		"payment":   map[string]any{"reference": "ref_1"},
		"returnUrl": "https://example.com/return",
		"ipAddress": "127.0.0.1",
		"userAgent": "Sandbox",
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	typedJSON, _ := json.Marshal(typed)
	mapJSON, _ := json.Marshal(fromMap)
	if string(typedJSON) != string(mapJSON) {
		t.Errorf("Typed and map-built requests differ:\n%s\n%s", typedJSON, mapJSON)
	}
}

func TestAsRedirectRequest_InvalidType(t *testing.T) {
	_, err := asRedirectRequest([]string{"nope"})
	if err == nil {
		t.Fatal("Expected error, got nil")
	}
	var dataErr *DataNotProvidedError
	if !errors.As(err, &dataErr) {
		t.Fatalf("Expected DataNotProvidedError, got %T", err)
	}
	if dataErr.Error() != "Invalid request type: []string. Expected *RedirectRequest, RedirectRequest, or map[string]any" {
		t.Errorf("Unexpected message: %q", dataErr.Error())
	}
}

func TestCollectRequest_Validate(t *testing.T) {
	r := &CollectRequest{}
	err := r.validate()
	if err == nil {
		t.Fatal("Expected error, got nil")
	}
	if err.Error() != "missing required fields: instrument" {
		t.Errorf("Unexpected message: %q", err.Error())
	}

	r.Instrument = &Instrument{Token: &Token{Token: "abc"}}
	if err := r.validate(); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestCollectRequest_UnmarshalKeepsInstrument(t *testing.T) {
	payload := `{
		"locale": "en_US",
		"payment": {"reference": "ref_collect_3"},
		"instrument": {"token": {"token": "abc"}, "pin": "1234"}
	}`

	var r CollectRequest
	if err := json.Unmarshal([]byte(payload), &r); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if r.Locale != "en_US" {
		t.Errorf("Expected locale 'en_US', got %q", r.Locale)
	}
	if r.Payment == nil || r.Payment.Reference != "ref_collect_3" {
		t.Errorf("Unexpected payment: %+v", r.Payment)
	}
	if r.Instrument == nil || r.Instrument.Token == nil || r.Instrument.Token.Token != "abc" {
		t.Fatalf("Expected instrument to survive decoding, got %+v", r.Instrument)
	}
	if r.Instrument.Pin != "1234" {
		t.Errorf("Unexpected pin: %q", r.Instrument.Pin)
	}
}

func TestAsCollectRequest_FromMap(t *testing.T) {
	r, err := asCollectRequest(map[string]any{
		"instrument": map[string]any{"token": map[string]any{"token": "abc"}},
		"returnUrl":  "https://checkout-co.placetopay.dev/home",
		"ipAddress":  "186.86.52.226",
		"userAgent":  "PostmanRuntime/7.42.0",
	})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if r.Instrument == nil || r.Instrument.Token == nil {
		t.Fatal("Expected instrument from map conversion")
	}
	if r.Locale != "es_CO" {
		t.Errorf("Expected default locale, got %q", r.Locale)
	}
}
