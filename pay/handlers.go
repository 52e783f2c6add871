package pay

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/Circulx/Fathom-Legal-sub001/errs"
	"github.com/Circulx/Fathom-Legal-sub001/utils"

	"github.com/julienschmidt/httprouter"
)

// POST /api/payments/session
func (p *PaymentService) CreateSessionHandler(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var body struct {
		OrderID  string  `json:"orderId"`
		Amount   float64 `json:"amount"`
		Currency string  `json:"currency"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.OrderID == "" || body.Amount <= 0 {
		utils.RespondError(w, errs.Validation("orderId and a positive amount are required"))
		return
	}

	session, err := p.CreateSession(r.Context(), body.OrderID, body.Amount, body.Currency)
	if err != nil {
		utils.RespondError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success": true,
		"order":   session,
	})
}

// VerifyHandler is the POST JSON variant for programmatic callers.
func (p *PaymentService) VerifyHandler(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var body struct {
		OrderID           string `json:"orderId"`
		RazorpayOrderID   string `json:"razorpay_order_id"`
		RazorpayPaymentID string `json:"razorpay_payment_id"`
		RazorpaySignature string `json:"razorpay_signature"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondError(w, errs.Validation("invalid request body"))
		return
	}

	order, err := p.Verify(r.Context(), body.OrderID, body.RazorpayOrderID, body.RazorpayPaymentID, body.RazorpaySignature)
	if err != nil {
		utils.RespondError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success":       true,
		"order":         order,
		"paymentStatus": order.PaymentStatus,
	})
}

// VerifyRedirectHandler is the browser-facing GET callback Razorpay redirects
// to after checkout. It always lands the customer on the result page, with
// the outcome in query params.
func (p *PaymentService) VerifyRedirectHandler(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	q := r.URL.Query()
	orderID := q.Get("orderId")

	_, err := p.Verify(r.Context(),
		orderID,
		q.Get("razorpay_order_id"),
		q.Get("razorpay_payment_id"),
		q.Get("razorpay_signature"),
	)

	target := "/checkout/result?"
	if err != nil {
		target += "error=" + url.QueryEscape(verifyErrorReason(err))
	} else {
		target += "success=true&orderId=" + url.QueryEscape(orderID)
	}
	http.Redirect(w, r, target, http.StatusFound)
}

func verifyErrorReason(err error) string {
	switch errs.KindOf(err) {
	case errs.KindInvalidSignature:
		return "signature_mismatch"
	case errs.KindPaymentFailed:
		return "payment_failed"
	case errs.KindNotFound:
		return "order_not_found"
	case errs.KindValidation:
		return "missing_parameters"
	default:
		return "verification_failed"
	}
}
