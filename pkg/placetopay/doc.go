// Package placetopay provides a client for the PlaceToPay Checkout API.
//
// The Checkout API is used by merchants to open hosted payment sessions,
// charge previously tokenized instruments, inspect session state, and void
// transactions. This client implements the four Web Checkout operations:
// request (open a redirect session), query, collect, and reverse.
//
// # Authentication
//
// Every request body carries an "auth" object proving possession of the
// site's transaction key without sending it in cleartext:
//   - nonce: 16 random bytes, base64 encoded
//   - seed: ISO-8601 UTC timestamp taken when the block is built
//   - tranKey: base64(sha256(nonce + seed + secret)), computed over the
//     base64 text form of the nonce
//
// A fresh nonce/seed/digest triple is generated for every call.
//
// # Basic Usage
//
//	settings, err := placetopay.NewSettings(placetopay.SettingsConfig{
//	    BaseURL: "https://checkout-test.placetopay.com",
//	    Login:   "your-site-login",
//	    TranKey: "your-transaction-key",
//	})
//	if err != nil {
//	    // ...
//	}
//	checkout := placetopay.NewCheckout(settings)
//
//	// Open a hosted checkout session
//	resp, err := checkout.Request(ctx, placetopay.NewRedirectRequest(
//	    &placetopay.Payment{
//	        Reference: "ORDER-1001",
//	        Amount:    placetopay.NewAmount(10000, "COP"),
//	    },
//	    "https://merchant.example/return", // return URL
//	    "186.86.52.226",                   // shopper IP
//	    "Mozilla/5.0",                     // shopper user agent
//	))
//
//	// Inspect it later
//	info, err := checkout.Query(ctx, resp.RequestID)
//
// # Error Handling
//
// Failures are typed so callers can tell "the gateway said no" from "the
// client broke":
//
//	info, err := checkout.Query(ctx, id)
//	var gwErr *placetopay.GatewayError
//	if errors.As(err, &gwErr) {
//	    // gwErr.StatusCode and gwErr.Body hold the gateway's own error
//	    // envelope, including status.reason and status.message
//	}
//
// DataNotProvidedError reports invalid caller input before any network call,
// ConfigurationError reports invalid settings at construction time, and
// ServiceError wraps unexpected client-side failures.
package placetopay
