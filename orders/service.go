package orders

import (
	"context"
	"strings"
	"time"

	"github.com/Circulx/Fathom-Legal-sub001/db"
	"github.com/Circulx/Fathom-Legal-sub001/errs"
	"github.com/Circulx/Fathom-Legal-sub001/models"
	"github.com/Circulx/Fathom-Legal-sub001/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// OrderService owns order intake and admin-side order management.
type OrderService struct {
	db *db.DB
}

func NewOrderService(database *db.DB) *OrderService {
	return &OrderService{db: database}
}

// CreateOrderRequest is the validated checkout submission.
type CreateOrderRequest struct {
	Customer      models.Customer    `json:"customer"`
	Items         []models.OrderItem `json:"items"`
	Subtotal      float64            `json:"subtotal"`
	Total         float64            `json:"total"`
	PaymentMethod string             `json:"paymentMethod"`
}

// Validate checks the required checkout fields and normalizes the email.
func (req *CreateOrderRequest) Validate() error {
	var missing []string
	c := &req.Customer
	for field, value := range map[string]string{
		"customer.name":    c.Name,
		"customer.email":   c.Email,
		"customer.phone":   c.Phone,
		"customer.address": c.Address,
		"customer.city":    c.City,
		"customer.state":   c.State,
		"customer.pincode": c.Pincode,
	} {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return errs.Validation("missing required fields: %s", strings.Join(missing, ", "))
	}

	if len(req.Items) == 0 {
		return errs.Validation("order must contain at least one item")
	}
	for i, item := range req.Items {
		if item.TemplateID == "" {
			return errs.Validation("items[%d].templateId is required", i)
		}
		if item.Quantity <= 0 {
			req.Items[i].Quantity = 1
		}
	}
	if req.Subtotal <= 0 || req.Total <= 0 {
		return errs.Validation("subtotal and total are required")
	}
	if req.PaymentMethod == "" {
		return errs.Validation("paymentMethod is required")
	}

	c.Email = utils.NormalizeEmail(c.Email)
	return nil
}

// Create persists a new order in pending state. Payment is a separate step;
// this is the single side effect of intake.
func (s *OrderService) Create(ctx context.Context, req *CreateOrderRequest) (*models.Order, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	order := models.Order{
		OrderID:       uuid.NewString(),
		OrderNumber:   utils.GenerateOrderNumber(now),
		Customer:      req.Customer,
		Items:         req.Items,
		Subtotal:      req.Subtotal,
		Total:         req.Total,
		PaymentMethod: req.PaymentMethod,
		PaymentStatus: models.PaymentPending,
		Status:        models.OrderPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if _, err := s.db.Orders.InsertOne(ctx, order); err != nil {
		// Retry once on an order number collision; the suffix is random.
		if mongo.IsDuplicateKeyError(err) {
			order.OrderNumber = utils.GenerateOrderNumber(now)
			if _, err2 := s.db.Orders.InsertOne(ctx, order); err2 == nil {
				return &order, nil
			}
		}
		return nil, errs.Internal("insert order", err)
	}
	return &order, nil
}

// Get returns one order by id.
func (s *OrderService) Get(ctx context.Context, orderID string) (*models.Order, error) {
	var order models.Order
	if err := s.db.Orders.FindOne(ctx, bson.M{"orderId": orderID}).Decode(&order); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errs.NotFound("order %s not found", orderID)
		}
		return nil, errs.Internal("order lookup", err)
	}
	return &order, nil
}

// List returns orders for the admin screens, newest first.
func (s *OrderService) List(ctx context.Context, status string, limit, skip int64) ([]models.Order, error) {
	filter := bson.M{}
	if status != "" {
		filter["status"] = status
	}

	findOptions := options.Find().
		SetSort(bson.M{"createdAt": -1}).
		SetLimit(limit).
		SetSkip(skip)

	cur, err := s.db.Orders.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, errs.Internal("order list", err)
	}
	defer cur.Close(ctx)

	var out []models.Order
	if err := cur.All(ctx, &out); err != nil {
		return nil, errs.Internal("order decode", err)
	}
	return out, nil
}

var validPaymentStatuses = []string{
	models.PaymentPending, models.PaymentCompleted, models.PaymentFailed, models.PaymentRefunded,
}

var validOrderStatuses = []string{
	models.OrderPending, models.OrderConfirmed, models.OrderProcessing,
	models.OrderCompleted, models.OrderCancelled,
}

// UpdateStatus applies an admin-side status edit. Empty fields are left
// untouched; unknown values are rejected.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID, paymentStatus, status string) (*models.Order, error) {
	set := bson.M{"updatedAt": time.Now()}
	if paymentStatus != "" {
		if !utils.Contains(validPaymentStatuses, paymentStatus) {
			return nil, errs.Validation("invalid paymentStatus %q", paymentStatus)
		}
		set["paymentStatus"] = paymentStatus
	}
	if status != "" {
		if !utils.Contains(validOrderStatuses, status) {
			return nil, errs.Validation("invalid status %q", status)
		}
		set["status"] = status
	}

	res, err := s.db.Orders.UpdateOne(ctx, bson.M{"orderId": orderID}, bson.M{"$set": set})
	if err != nil {
		return nil, errs.Internal("order status update", err)
	}
	if res.MatchedCount == 0 {
		return nil, errs.NotFound("order %s not found", orderID)
	}
	return s.Get(ctx, orderID)
}
