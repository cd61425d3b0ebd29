package placetopay

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func loadFixture(t *testing.T, name string) []byte {
	t.Helper()
	b, err := os.ReadFile(filepath.Join("testdata", name+".json"))
	if err != nil {
		t.Fatalf("Failed to read fixture %s: %v", name, err)
	}
	return b
}

func TestRedirectResponse_Decode(t *testing.T) {
	var r RedirectResponse
	if err := json.Unmarshal(loadFixture(t, "redirect_response_successful"), &r); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if r.RequestID != "88864" {
		t.Errorf("Expected requestId '88864', got %q", r.RequestID)
	}
	if r.ProcessURL == "" {
		t.Error("Expected a process URL")
	}
	if !r.IsSuccessful() {
		t.Error("Expected successful response")
	}

	m := r.ToMap()
	if m["requestId"] != "88864" {
		t.Errorf("Unexpected requestId in map: %v", m["requestId"])
	}
	status, ok := m["status"].(map[string]any)
	if !ok {
		t.Fatalf("Expected status map, got %T", m["status"])
	}
	if status["reason"] != "PC" {
		t.Errorf("Unexpected reason: %v", status["reason"])
	}
}

func TestRedirectResponse_ToMapKeepsNulls(t *testing.T) {
	r := &RedirectResponse{RequestID: "1"}
	m := r.ToMap()
	if v, ok := m["status"]; !ok || v != nil {
		t.Errorf("Expected explicit null status, got %v (present: %v)", v, ok)
	}
}

func TestInformationResponse_Subscription(t *testing.T) {
	var r InformationResponse
	if err := json.Unmarshal(loadFixture(t, "information_subscription_response_successful"), &r); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if r.RequestID != "88860" {
		t.Errorf("Expected requestId '88860', got %q", r.RequestID)
	}
	if r.Status == nil || !r.Status.IsApproved() {
		t.Fatal("Expected approved status")
	}
	if r.Status.Reason != "00" {
		t.Errorf("Expected reason '00', got %q", r.Status.Reason)
	}
	if r.Status.Message != "The request has been successfully approved" {
		t.Errorf("Unexpected message: %q", r.Status.Message)
	}

	if r.Request == nil {
		t.Fatal("Expected the recorded request")
	}
	if r.Request.Locale != "en_US" {
		t.Errorf("Expected locale 'en_US', got %q", r.Request.Locale)
	}
	if r.Request.Payer == nil || r.Request.Payer.Document != "118877455" || r.Request.Payer.Name != "John" {
		t.Errorf("Unexpected payer: %+v", r.Request.Payer)
	}
	if r.Request.ReturnURL != "https://www.google.com" {
		t.Errorf("Unexpected returnUrl: %q", r.Request.ReturnURL)
	}

	sub := r.Subscription
	if sub == nil {
		t.Fatal("Expected subscription information")
	}
	if sub.Type != "token" {
		t.Errorf("Expected type 'token', got %q", sub.Type)
	}
	if sub.Status == nil || !sub.Status.IsSuccessful() {
		t.Error("Expected OK subscription status")
	}
	if len(sub.Instrument) != 8 {
		t.Fatalf("Expected 8 instrument pairs, got %d", len(sub.Instrument))
	}
	if sub.Instrument[0].Keyword != "token" {
		t.Errorf("Unexpected first keyword: %q", sub.Instrument[0].Keyword)
	}
	if sub.Instrument[0].Value != "71f293122c1ed577974f2249c9449c648d8dcb104cb531f2c77e3b6c8910aca0" {
		t.Errorf("Unexpected token value: %v", sub.Instrument[0].Value)
	}
	if sub.Instrument[1].Keyword != "subtoken" || sub.Instrument[1].Value != "2964322564071111" {
		t.Errorf("Unexpected subtoken pair: %+v", sub.Instrument[1])
	}

	if len(r.Payment) != 0 {
		t.Errorf("Expected no transactions, got %d", len(r.Payment))
	}
	if r.LastTransaction(false) != nil {
		t.Error("Expected nil last transaction")
	}
	if r.LastApprovedTransaction() != nil {
		t.Error("Expected nil last approved transaction")
	}
	if r.LastAuthorization() != "" {
		t.Errorf("Expected empty last authorization, got %q", r.LastAuthorization())
	}
}

func TestSubscriptionInformation_ParseInstrument(t *testing.T) {
	var r InformationResponse
	if err := json.Unmarshal(loadFixture(t, "information_subscription_response_successful"), &r); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	parsed := r.Subscription.ParseInstrument()
	token, ok := parsed.(*Token)
	if !ok {
		t.Fatalf("Expected *Token, got %T", parsed)
	}
	if token.Token != "71f293122c1ed577974f2249c9449c648d8dcb104cb531f2c77e3b6c8910aca0" {
		t.Errorf("Unexpected token: %q", token.Token)
	}
	if token.SubToken != "2964322564071111" {
		t.Errorf("Unexpected subtoken: %q", token.SubToken)
	}
	if token.Franchise != "visa" {
		t.Errorf("Unexpected franchise: %q", token.Franchise)
	}
	if token.Expiration() != "11/29" {
		t.Errorf("Unexpected expiration: %q", token.Expiration())
	}
	if token.Status == nil || !token.Status.IsSuccessful() {
		t.Error("Expected OK status on the parsed token")
	}
}

func TestInformationResponse_PaymentList(t *testing.T) {
	var r InformationResponse
	if err := json.Unmarshal(loadFixture(t, "information_payment_response_successful"), &r); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if r.RequestID != "88867" {
		t.Errorf("Expected requestId '88867', got %q", r.RequestID)
	}
	if len(r.Payment) != 2 {
		t.Fatalf("Expected 2 transactions, got %d", len(r.Payment))
	}

	rejected := r.Payment[0]
	if rejected.Status == nil || !rejected.Status.IsRejected() {
		t.Error("Expected first transaction to be rejected")
	}
	if rejected.Status.Reason != "?2" {
		t.Errorf("Expected reason '?2', got %q", rejected.Status.Reason)
	}
	if rejected.InternalReference != "437985" {
		t.Errorf("Expected internalReference '437985', got %q", rejected.InternalReference)
	}
	if rejected.Receipt != "110318" {
		t.Errorf("Expected receipt '110318', got %q", rejected.Receipt)
	}
	// The rejected attempt uses the short from/to aliases.
	if rejected.Amount == nil || rejected.Amount.ToAmount == nil || rejected.Amount.ToAmount.Currency != "CLP" {
		t.Errorf("Unexpected conversion: %+v", rejected.Amount)
	}
	if rejected.Amount.ToAmount.Total != 2178.45 {
		t.Errorf("Unexpected toAmount total: %v", rejected.Amount.ToAmount.Total)
	}

	approved := r.Payment[1]
	if !approved.IsApproved() {
		t.Error("Expected second transaction to be approved")
	}
	if approved.PaymentMethod != "diners" {
		t.Errorf("Expected paymentMethod 'diners', got %q", approved.PaymentMethod)
	}
	if approved.Amount == nil || approved.Amount.FromAmount == nil || approved.Amount.FromAmount.Total != 10000 {
		t.Errorf("Unexpected fromAmount: %+v", approved.Amount)
	}
	if approved.Amount.ToAmount.Currency != "USD" || approved.Amount.ToAmount.Total != 2.24 {
		t.Errorf("Unexpected toAmount: %+v", approved.Amount.ToAmount)
	}

	// Last transaction scans from the end.
	last := r.LastTransaction(false)
	if last == nil || last.Authorization != "999999" {
		t.Errorf("Unexpected last transaction: %+v", last)
	}
	if got := r.LastAuthorization(); got != "999999" {
		t.Errorf("Expected last authorization '999999', got %q", got)
	}
}

func TestInformationResponse_LastApprovedScansFromEnd(t *testing.T) {
	r := InformationResponse{
		Payment: []Transaction{
			{Authorization: "111111", Status: &Status{Status: StatusApproved}},
			{Authorization: "222222", Status: &Status{Status: StatusRejected}},
			{Authorization: "333333", Status: &Status{Status: StatusApproved}},
		},
	}

	if got := r.LastTransaction(false); got.Authorization != "333333" {
		t.Errorf("Expected '333333', got %q", got.Authorization)
	}
	if got := r.LastApprovedTransaction(); got.Authorization != "333333" {
		t.Errorf("Expected approved '333333', got %q", got.Authorization)
	}

	r.Payment[2].Status.Status = StatusRejected
	if got := r.LastApprovedTransaction(); got.Authorization != "111111" {
		t.Errorf("Expected approved '111111', got %q", got.Authorization)
	}
	if got := r.LastTransaction(false); got.Authorization != "333333" {
		t.Errorf("Expected most recent '333333', got %q", got.Authorization)
	}
}

func TestInformationResponse_SingleTransactionObject(t *testing.T) {
	var r InformationResponse
	if err := json.Unmarshal(loadFixture(t, "collect_response_successful"), &r); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if r.RequestID != "88866" {
		t.Errorf("Expected requestId '88866', got %q", r.RequestID)
	}
	if r.Status.Message != "La petición ha sido aprobada exitosamente" {
		t.Errorf("Unexpected message: %q", r.Status.Message)
	}
	if len(r.Payment) != 1 {
		t.Fatalf("Expected 1 transaction, got %d", len(r.Payment))
	}

	tx := r.Payment[0]
	if tx.Reference != "ref_collect_3" {
		t.Errorf("Expected reference 'ref_collect_3', got %q", tx.Reference)
	}
	if tx.Authorization != "300159" {
		t.Errorf("Expected authorization '300159', got %q", tx.Authorization)
	}
	if tx.PaymentMethod != "master" {
		t.Errorf("Expected paymentMethod 'master', got %q", tx.PaymentMethod)
	}
	if tx.Status.Message != "Aprobada" {
		t.Errorf("Unexpected status message: %q", tx.Status.Message)
	}
}

func TestReverseResponse_Decode(t *testing.T) {
	var r ReverseResponse
	if err := json.Unmarshal(loadFixture(t, "reverse_response_successful"), &r); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if r.Status == nil || !r.Status.IsApproved() {
		t.Fatal("Expected approved status")
	}
	if r.Payment == nil {
		t.Fatal("Expected the reversed transaction")
	}
	if r.Payment.Reference != "ref_collect_3" {
		t.Errorf("Unexpected reference: %q", r.Payment.Reference)
	}
	if r.Payment.InternalReference != "437987" {
		t.Errorf("Unexpected internalReference: %q", r.Payment.InternalReference)
	}

	fields := r.Payment.ProcessorFields
	if len(fields) != 9 {
		t.Fatalf("Expected 9 processor fields, got %d", len(fields))
	}
	if fields[0].Keyword != "merchantCode" || fields[0].Value != "4549106521651" {
		t.Errorf("Unexpected first field: %+v", fields[0])
	}
	if fields[1].Keyword != "terminalNumber" || fields[1].Value != "98765432" {
		t.Errorf("Unexpected second field: %+v", fields[1])
	}
	if fields[8].Keyword != "b24" || fields[8].Value != "00" {
		t.Errorf("Unexpected last field: %+v", fields[8])
	}

	kv := r.Payment.AdditionalData()
	if kv["b24"] != "00" {
		t.Errorf("Unexpected b24: %v", kv["b24"])
	}
}

func TestInformationResponse_ToMapKeepsNulls(t *testing.T) {
	r := &InformationResponse{RequestID: "88860", Status: &Status{Status: StatusApproved}}
	m := r.ToMap()
	for _, key := range []string{"request", "payment", "subscription"} {
		if v, ok := m[key]; !ok || v != nil {
			t.Errorf("Expected explicit null for %q, got %v (present: %v)", key, v, ok)
		}
	}
	if m["status"] == nil {
		t.Error("Expected status map, got null")
	}
}
