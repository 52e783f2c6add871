package templates

import (
	"context"
	"testing"

	"github.com/Circulx/Fathom-Legal-sub001/db"
	"github.com/Circulx/Fathom-Legal-sub001/errs"
	"github.com/Circulx/Fathom-Legal-sub001/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func purchaseDoc(t testing.TB, order models.Order) bson.D {
	t.Helper()
	raw, err := bson.Marshal(order)
	if err != nil {
		t.Fatal(err)
	}
	var doc bson.D
	if err := bson.Unmarshal(raw, &doc); err != nil {
		t.Fatal(err)
	}
	return doc
}

func completedPurchase(templateIDs ...string) models.Order {
	order := models.Order{
		OrderID:       "o-1",
		Customer:      models.Customer{Name: "Jane Doe", Email: "jane.doe@example.com"},
		PaymentStatus: models.PaymentCompleted,
		Status:        models.OrderConfirmed,
	}
	for _, id := range templateIDs {
		order.Items = append(order.Items, models.OrderItem{TemplateID: id, Title: id, Quantity: 1})
	}
	return order
}

func TestAuthorizeDownload(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("no completed purchase is forbidden", func(mt *mtest.T) {
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		svc := NewTemplateService(&db.DB{Orders: mt.Coll}, nil)
		_, err := svc.authorizeDownload(context.Background(), "tpl-1", "jane.doe@example.com")
		if errs.KindOf(err) != errs.KindForbidden {
			mt.Fatalf("kind = %v, want KindForbidden", errs.KindOf(err))
		}

		// The lookup itself must demand a paid order for this email and
		// template; a pending or failed order can never match it.
		evt := mt.GetStartedEvent()
		if evt == nil || evt.CommandName != "find" {
			mt.Fatalf("expected a find command, got %+v", evt)
		}
		status, ok := evt.Command.Lookup("filter", "paymentStatus").StringValueOK()
		if !ok || status != models.PaymentCompleted {
			mt.Errorf("filter does not require a completed payment: %s", evt.Command)
		}
		if _, ok := evt.Command.Lookup("filter", "customer.email").StringValueOK(); !ok {
			mt.Errorf("filter does not pin the purchaser email: %s", evt.Command)
		}
		if _, ok := evt.Command.Lookup("filter", "items.templateId").StringValueOK(); !ok {
			mt.Errorf("filter does not pin the template: %s", evt.Command)
		}
	})

	mt.Run("completed purchase returns the line item", func(mt *mtest.T) {
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			purchaseDoc(mt, completedPurchase("tpl-0", "tpl-1"))))

		svc := NewTemplateService(&db.DB{Orders: mt.Coll}, nil)
		item, err := svc.authorizeDownload(context.Background(), "tpl-1", "jane.doe@example.com")
		if err != nil {
			mt.Fatalf("authorizeDownload: %v", err)
		}
		if item.TemplateID != "tpl-1" {
			mt.Errorf("wrong line item returned: %+v", item)
		}
	})

	mt.Run("malformed purchase record is forbidden", func(mt *mtest.T) {
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			purchaseDoc(mt, completedPurchase("tpl-other"))))

		svc := NewTemplateService(&db.DB{Orders: mt.Coll}, nil)
		_, err := svc.authorizeDownload(context.Background(), "tpl-1", "jane.doe@example.com")
		if errs.KindOf(err) != errs.KindForbidden {
			mt.Fatalf("kind = %v, want KindForbidden", errs.KindOf(err))
		}
	})
}
