package orders

import (
	"testing"

	"github.com/Circulx/Fathom-Legal-sub001/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validRequest() *CreateOrderRequest {
	return &CreateOrderRequest{
		Customer: models.Customer{
			Name:    "Jane Doe",
			Email:   "Jane.Doe@Example.com",
			Phone:   "9876543210",
			Address: "14 Marine Drive",
			City:    "Mumbai",
			State:   "Maharashtra",
			Pincode: "400001",
		},
		Items: []models.OrderItem{
			{TemplateID: "tpl-1", Title: "NDA", Price: 499, Quantity: 1},
		},
		Subtotal:      499,
		Total:         499,
		PaymentMethod: "razorpay",
	}
}

func TestValidateAcceptsCompleteRequest(t *testing.T) {
	req := validRequest()
	require.NoError(t, req.Validate())
	assert.Equal(t, "jane.doe@example.com", req.Customer.Email, "email should be normalized")
}

func TestValidateMissingCustomerFields(t *testing.T) {
	req := validRequest()
	req.Customer.Email = ""
	req.Customer.Pincode = "  "

	err := req.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "customer.email")
	assert.Contains(t, err.Error(), "customer.pincode")
}

func TestValidateItems(t *testing.T) {
	req := validRequest()
	req.Items = nil
	assert.Error(t, req.Validate(), "empty items must be rejected")

	req = validRequest()
	req.Items[0].TemplateID = ""
	assert.Error(t, req.Validate(), "item without templateId must be rejected")

	req = validRequest()
	req.Items[0].Quantity = 0
	require.NoError(t, req.Validate())
	assert.Equal(t, 1, req.Items[0].Quantity, "zero quantity defaults to 1")
}

func TestValidateAmountsAndMethod(t *testing.T) {
	req := validRequest()
	req.Total = 0
	assert.Error(t, req.Validate())

	req = validRequest()
	req.Subtotal = -10
	assert.Error(t, req.Validate())

	req = validRequest()
	req.PaymentMethod = ""
	assert.Error(t, req.Validate())
}
