package orders

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/Circulx/Fathom-Legal-sub001/errs"
	"github.com/Circulx/Fathom-Legal-sub001/invoice"
	"github.com/Circulx/Fathom-Legal-sub001/middleware"
	"github.com/Circulx/Fathom-Legal-sub001/models"
	"github.com/Circulx/Fathom-Legal-sub001/utils"

	"github.com/julienschmidt/httprouter"
)

// InvoiceSecret signs invoice QR payloads; wired to the gateway secret in main.
var InvoiceSecret string

// POST /api/orders
func (s *OrderService) CreateHandler(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req CreateOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, errs.Validation("invalid request body"))
		return
	}

	order, err := s.Create(r.Context(), &req)
	if err != nil {
		utils.RespondError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, utils.M{
		"success": true,
		"order": utils.M{
			"id":          order.OrderID,
			"orderNumber": order.OrderNumber,
			"status":      order.Status,
			"total":       order.Total,
		},
	})
}

// GET /api/orders/:id (admin)
func (s *OrderService) GetHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	order, err := s.Get(r.Context(), ps.ByName("id"))
	if err != nil {
		utils.RespondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "order": order})
}

// GET /api/orders (admin)
func (s *OrderService) ListHandler(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	q := r.URL.Query()

	limit, _ := strconv.Atoi(q.Get("limit"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	skip, _ := strconv.Atoi(q.Get("skip"))
	if skip < 0 {
		skip = 0
	}

	list, err := s.List(r.Context(), q.Get("status"), int64(limit), int64(skip))
	if err != nil {
		utils.RespondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "orders": list})
}

// PUT /api/orders/:id/status (admin)
func (s *OrderService) UpdateStatusHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var body struct {
		PaymentStatus string `json:"paymentStatus"`
		Status        string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		utils.RespondError(w, errs.Validation("invalid request body"))
		return
	}

	order, err := s.UpdateStatus(r.Context(), ps.ByName("id"), body.PaymentStatus, body.Status)
	if err != nil {
		utils.RespondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "order": order})
}

// InvoiceHandler serves GET /api/orders/:id/invoice. The purchaser proves
// themselves with the order email; admins get through on their token.
func (s *OrderService) InvoiceHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	order, err := s.Get(r.Context(), ps.ByName("id"))
	if err != nil {
		utils.RespondError(w, err)
		return
	}

	email := utils.NormalizeEmail(r.URL.Query().Get("email"))
	isAdmin := middleware.HasRole(r.Context(), models.RoleAdmin, models.RoleSuperAdmin)
	if !isAdmin && (email == "" || email != utils.NormalizeEmail(order.Customer.Email)) {
		utils.RespondError(w, errs.Forbidden("invoice is only available to the purchaser"))
		return
	}
	if order.PaymentStatus != models.PaymentCompleted {
		utils.RespondError(w, errs.Forbidden("invoice is only available for paid orders"))
		return
	}

	pdfBytes, err := invoice.Generate(order, InvoiceSecret)
	if err != nil {
		utils.RespondError(w, errs.Internal("invoice generation", err))
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", utils.ContentDisposition("invoice-"+order.OrderNumber+".pdf"))
	w.WriteHeader(http.StatusOK)
	w.Write(pdfBytes)
}
