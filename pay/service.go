package pay

import (
	"context"
	"log"
	"math"
	"time"

	"github.com/Circulx/Fathom-Legal-sub001/db"
	"github.com/Circulx/Fathom-Legal-sub001/errs"
	"github.com/Circulx/Fathom-Legal-sub001/models"
	"github.com/Circulx/Fathom-Legal-sub001/razorpay"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// PaymentService bridges local orders to the Razorpay gateway.
type PaymentService struct {
	db      *db.DB
	gateway *razorpay.Client
}

func NewPaymentService(database *db.DB, gateway *razorpay.Client) *PaymentService {
	return &PaymentService{db: database, gateway: gateway}
}

// Session holds what the browser checkout widget needs.
type Session struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Key      string `json:"key"`
}

// CreateSession opens a gateway order for an existing local order and
// persists the returned gateway order id, which becomes the only identifier
// trusted during verification.
func (p *PaymentService) CreateSession(ctx context.Context, orderID string, amount float64, currency string) (*Session, error) {
	if !p.gateway.Configured() {
		return nil, errs.Configuration("payment gateway not configured", nil)
	}
	if currency == "" {
		currency = "INR"
	}

	var order models.Order
	if err := p.db.Orders.FindOne(ctx, bson.M{"orderId": orderID}).Decode(&order); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errs.NotFound("order %s not found", orderID)
		}
		return nil, errs.Internal("order lookup", err)
	}

	amountPaise := int64(math.Round(amount * 100))
	gwOrder, err := p.gateway.CreateOrder(ctx, amountPaise, currency, order.OrderNumber)
	if err != nil {
		return nil, errs.Internal("gateway order create", err)
	}

	_, err = p.db.Orders.UpdateOne(ctx,
		bson.M{"orderId": orderID},
		bson.M{"$set": bson.M{"razorpayOrderId": gwOrder.ID, "updatedAt": time.Now()}},
	)
	if err != nil {
		return nil, errs.Internal("persist gateway order id", err)
	}

	return &Session{
		ID:       gwOrder.ID,
		Amount:   gwOrder.Amount,
		Currency: gwOrder.Currency,
		Key:      p.gateway.KeyID(),
	}, nil
}

// Verify checks a checkout callback and marks the order paid. Safe to call
// again with the same inputs: the state write is conditional on the order not
// already being completed, so a duplicate callback is a no-op.
func (p *PaymentService) Verify(ctx context.Context, orderID, gatewayOrderID, paymentID, signature string) (*models.Order, error) {
	if orderID == "" || paymentID == "" || signature == "" {
		return nil, errs.Validation("missing payment verification parameters")
	}

	var order models.Order
	if err := p.db.Orders.FindOne(ctx, bson.M{"orderId": orderID}).Decode(&order); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errs.NotFound("order %s not found", orderID)
		}
		return nil, errs.Internal("order lookup", err)
	}

	canonical := CanonicalGatewayOrderID(order.RazorpayOrderID, gatewayOrderID)
	if !VerifySignature(p.gateway.KeySecret(), canonical, paymentID, signature) {
		return nil, errs.InvalidSignature("payment signature verification failed")
	}

	// Second opinion from the gateway. A lookup failure is tolerated: the
	// signature already proves the callback came from the gateway.
	if payment, err := p.gateway.FetchPayment(ctx, paymentID); err != nil {
		log.Printf("payment lookup failed for %s, trusting signature: %v", paymentID, err)
	} else if payment.Status == "failed" {
		return nil, errs.PaymentFailed("gateway reports payment %s failed", paymentID)
	}

	now := time.Now()
	res, err := p.db.Orders.UpdateOne(ctx,
		bson.M{"orderId": orderID, "paymentStatus": bson.M{"$ne": models.PaymentCompleted}},
		bson.M{"$set": bson.M{
			"paymentStatus":     models.PaymentCompleted,
			"status":            models.OrderConfirmed,
			"razorpayPaymentId": paymentID,
			"razorpaySignature": signature,
			"updatedAt":         now,
		}},
	)
	if err != nil {
		return nil, errs.Internal("mark order paid", err)
	}
	if res.MatchedCount == 0 {
		// Already completed by an earlier (or concurrent) callback.
		log.Printf("order %s already completed, verify is a no-op", orderID)
	}

	if err := p.db.Orders.FindOne(ctx, bson.M{"orderId": orderID}).Decode(&order); err != nil {
		return nil, errs.Internal("order re-read", err)
	}
	return &order, nil
}
