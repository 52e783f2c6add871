package pay

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// ComputeSignature returns the hex HMAC-SHA256 of "{gatewayOrderID}|{paymentID}"
// under the gateway key secret. This is the exact string Razorpay signs when
// redirecting the customer back after checkout.
func ComputeSignature(secret, gatewayOrderID, paymentID string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(gatewayOrderID + "|" + paymentID))
	return hex.EncodeToString(h.Sum(nil))
}

// VerifySignature recomputes the callback signature and compares it in
// constant time.
func VerifySignature(secret, gatewayOrderID, paymentID, signature string) bool {
	expected := ComputeSignature(secret, gatewayOrderID, paymentID)
	return hmac.Equal([]byte(expected), []byte(signature))
}

// CanonicalGatewayOrderID picks the identifier verification must trust: the
// one stored on the local order. The caller-supplied value from the redirect
// is used only when the stored field was never populated, so a tampered
// redirect URL cannot substitute a different gateway order.
func CanonicalGatewayOrderID(stored, supplied string) string {
	if stored != "" {
		return stored
	}
	return supplied
}
