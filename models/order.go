package models

import "time"

// Payment status values for Order.PaymentStatus.
const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentFailed    = "failed"
	PaymentRefunded  = "refunded"
)

// Fulfillment status values for Order.Status.
const (
	OrderPending    = "pending"
	OrderConfirmed  = "confirmed"
	OrderProcessing = "processing"
	OrderCompleted  = "completed"
	OrderCancelled  = "cancelled"
)

// Customer is the contact record captured at checkout.
type Customer struct {
	Name    string `json:"name" bson:"name"`
	Email   string `json:"email" bson:"email"`
	Phone   string `json:"phone" bson:"phone"`
	Address string `json:"address" bson:"address"`
	City    string `json:"city" bson:"city"`
	State   string `json:"state" bson:"state"`
	Pincode string `json:"pincode" bson:"pincode"`
}

// OrderItem is a line item embedded in an Order. Title and Price are
// snapshots taken at purchase time; the Template is re-fetched at download
// time, so embedded values are never trusted for authorization.
type OrderItem struct {
	TemplateID       string  `json:"templateId" bson:"templateId"`
	Title            string  `json:"title" bson:"title"`
	Price            float64 `json:"price" bson:"price"`
	Quantity         int     `json:"quantity" bson:"quantity"`
	IsCustom         bool    `json:"isCustom" bson:"isCustom"`
	CustomOptionName string  `json:"customOptionName,omitempty" bson:"customOptionName,omitempty"`
	CalendlyLink     string  `json:"calendlyLink,omitempty" bson:"calendlyLink,omitempty"`
	ContactEmail     string  `json:"contactEmail,omitempty" bson:"contactEmail,omitempty"`
}

// Order is a finalized checkout. RazorpayOrderID, once set, is the only
// identifier trusted during signature verification.
type Order struct {
	OrderID           string      `json:"orderId" bson:"orderId"`
	OrderNumber       string      `json:"orderNumber" bson:"orderNumber"`
	Customer          Customer    `json:"customer" bson:"customer"`
	Items             []OrderItem `json:"items" bson:"items"`
	Subtotal          float64     `json:"subtotal" bson:"subtotal"`
	Total             float64     `json:"total" bson:"total"`
	PaymentMethod     string      `json:"paymentMethod" bson:"paymentMethod"`
	PaymentStatus     string      `json:"paymentStatus" bson:"paymentStatus"`
	Status            string      `json:"status" bson:"status"`
	RazorpayOrderID   string      `json:"razorpayOrderId,omitempty" bson:"razorpayOrderId,omitempty"`
	RazorpayPaymentID string      `json:"razorpayPaymentId,omitempty" bson:"razorpayPaymentId,omitempty"`
	RazorpaySignature string      `json:"razorpaySignature,omitempty" bson:"razorpaySignature,omitempty"`
	CreatedAt         time.Time   `json:"createdAt" bson:"createdAt"`
	UpdatedAt         time.Time   `json:"updatedAt" bson:"updatedAt"`
}
