package templates

import (
	"context"
	"log"
	"net/http"
	"path/filepath"

	"github.com/Circulx/Fathom-Legal-sub001/errs"
	"github.com/Circulx/Fathom-Legal-sub001/models"
	"github.com/Circulx/Fathom-Legal-sub001/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// findTemplateItem locates the line item for a template inside an order.
func findTemplateItem(items []models.OrderItem, templateID string) (*models.OrderItem, bool) {
	for i := range items {
		if items[i].TemplateID == templateID {
			return &items[i], true
		}
	}
	return nil, false
}

// DownloadFilename picks the name the browser saves the file under: the
// stored original name when present, otherwise the template title with an
// extension inferred from the MIME type.
func DownloadFilename(tmpl *models.Template) string {
	if tmpl.FileName != "" {
		return utils.SanitizeFilename(tmpl.FileName)
	}
	ext := utils.ExtensionForMIME[tmpl.FileType]
	if ext == "" {
		ext = filepath.Ext(tmpl.FileURL)
	}
	if ext == "" {
		ext = ".pdf"
	}
	return utils.SanitizeFilename(tmpl.Title) + ext
}

// authorizeDownload finds a completed purchase of the template for the given
// (normalized) email and returns the matching line item.
func (s *TemplateService) authorizeDownload(ctx context.Context, templateID, email string) (*models.OrderItem, error) {
	var order models.Order
	err := s.db.Orders.FindOne(ctx, bson.M{
		"customer.email":   email,
		"items.templateId": templateID,
		"paymentStatus":    models.PaymentCompleted,
	}).Decode(&order)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errs.Forbidden("no completed purchase of this template for %s", email)
		}
		return nil, errs.Internal("purchase lookup", err)
	}

	// The query guarantees a match; checked anyway so a malformed document
	// can never turn into a file delivery.
	item, ok := findTemplateItem(order.Items, templateID)
	if !ok {
		return nil, errs.Forbidden("purchase record does not include this template")
	}
	return item, nil
}

// DownloadHandler serves GET /api/templates/:id/download?email=.
// A standard purchase streams the stored file; a custom purchase answers
// with contact/scheduling details instead.
func (s *TemplateService) DownloadHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	templateID := ps.ByName("id")
	ctx := r.Context()

	email := utils.NormalizeEmail(r.URL.Query().Get("email"))
	if email == "" {
		utils.RespondError(w, errs.Validation("email query parameter is required"))
		return
	}

	tmpl, err := s.Get(ctx, templateID)
	if err != nil {
		utils.RespondError(w, err)
		return
	}

	item, err := s.authorizeDownload(ctx, templateID, email)
	if err != nil {
		utils.RespondError(w, err)
		return
	}

	if IsCustomPurchase(tmpl, item) {
		delivery := ResolveCustomDelivery(tmpl, item)
		utils.RespondWithJSON(w, http.StatusOK, utils.M{
			"isCustom":         true,
			"message":          "This is a custom template purchase.",
			"customOptionName": delivery.CustomOptionName,
			"calendlyLink":     delivery.CalendlyLink,
			"contactEmail":     delivery.ContactEmail,
			"instructions":     delivery.Instructions,
		})
		return
	}

	// Authorization succeeded; from here failures are delivery problems,
	// not permission ones.
	data, err := s.store.Fetch(ctx, tmpl.FileURL)
	if err != nil {
		utils.RespondError(w, err)
		return
	}

	s.bumpDownloads(ctx, templateID)

	contentType := tmpl.FileType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", utils.ContentDisposition(DownloadFilename(tmpl)))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// bumpDownloads increments the download counter. Best effort: a failed
// increment is logged and never blocks the delivery that triggered it.
func (s *TemplateService) bumpDownloads(ctx context.Context, templateID string) {
	_, err := s.db.Templates.UpdateOne(ctx,
		bson.M{"templateId": templateID},
		bson.M{"$inc": bson.M{"downloads": 1}},
	)
	if err != nil {
		log.Printf("download counter increment failed for %s: %v", templateID, err)
	}
}
