package templates

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/Circulx/Fathom-Legal-sub001/db"
	"github.com/Circulx/Fathom-Legal-sub001/errs"
	"github.com/Circulx/Fathom-Legal-sub001/models"
	"github.com/Circulx/Fathom-Legal-sub001/rdx"
	"github.com/Circulx/Fathom-Legal-sub001/storage"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	activeCacheKey = "templates:active"
	activeCacheTTL = 5 * time.Minute
)

// TemplateService owns the marketplace catalogue and the download authorizer.
type TemplateService struct {
	db    *db.DB
	store storage.FileStore
}

func NewTemplateService(database *db.DB, store storage.FileStore) *TemplateService {
	return &TemplateService{db: database, store: store}
}

// ListActive returns the public catalogue, served from redis when warm.
// Cache failures are soft; the database is always authoritative.
func (s *TemplateService) ListActive(ctx context.Context) ([]models.Template, error) {
	if rdx.Conn != nil {
		if cached, err := rdx.RdxGet(activeCacheKey); err == nil && cached != "" {
			var list []models.Template
			if err := json.Unmarshal([]byte(cached), &list); err == nil {
				return list, nil
			}
		}
	}

	cur, err := s.db.Templates.Find(ctx, bson.M{"active": true},
		options.Find().SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		return nil, errs.Internal("template list", err)
	}
	defer cur.Close(ctx)

	var list []models.Template
	if err := cur.All(ctx, &list); err != nil {
		return nil, errs.Internal("template decode", err)
	}

	if rdx.Conn != nil {
		if data, err := json.Marshal(list); err == nil {
			if err := rdx.SetWithExpiry(activeCacheKey, string(data), activeCacheTTL); err != nil {
				log.Printf("template cache write failed: %v", err)
			}
		}
	}
	return list, nil
}

func invalidateActiveCache() {
	if rdx.Conn == nil {
		return
	}
	if err := rdx.RdxDel(activeCacheKey); err != nil {
		log.Printf("template cache invalidate failed: %v", err)
	}
}

// Get returns one template by id.
func (s *TemplateService) Get(ctx context.Context, templateID string) (*models.Template, error) {
	var tmpl models.Template
	if err := s.db.Templates.FindOne(ctx, bson.M{"templateId": templateID}).Decode(&tmpl); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, errs.NotFound("template %s not found", templateID)
		}
		return nil, errs.Internal("template lookup", err)
	}
	return &tmpl, nil
}

// Create inserts a new template (admin).
func (s *TemplateService) Create(ctx context.Context, tmpl *models.Template) error {
	if tmpl.Title == "" {
		return errs.Validation("title is required")
	}
	if tmpl.Price < 0 {
		return errs.Validation("price must not be negative")
	}

	now := time.Now()
	tmpl.TemplateID = uuid.NewString()
	tmpl.Downloads = 0
	tmpl.CreatedAt = now
	tmpl.UpdatedAt = now

	if _, err := s.db.Templates.InsertOne(ctx, tmpl); err != nil {
		return errs.Internal("insert template", err)
	}
	invalidateActiveCache()
	return nil
}

// Update applies a partial admin edit. The downloads counter and identity
// fields are not editable through this path.
func (s *TemplateService) Update(ctx context.Context, templateID string, fields bson.M) (*models.Template, error) {
	for _, locked := range []string{"templateId", "_id", "downloads", "createdAt"} {
		delete(fields, locked)
	}
	if len(fields) == 0 {
		return nil, errs.Validation("no updatable fields supplied")
	}
	fields["updatedAt"] = time.Now()

	res, err := s.db.Templates.UpdateOne(ctx, bson.M{"templateId": templateID}, bson.M{"$set": fields})
	if err != nil {
		return nil, errs.Internal("template update", err)
	}
	if res.MatchedCount == 0 {
		return nil, errs.NotFound("template %s not found", templateID)
	}
	invalidateActiveCache()
	return s.Get(ctx, templateID)
}

// Delete removes a template (admin). Past orders keep their snapshots.
func (s *TemplateService) Delete(ctx context.Context, templateID string) error {
	res, err := s.db.Templates.DeleteOne(ctx, bson.M{"templateId": templateID})
	if err != nil {
		return errs.Internal("template delete", err)
	}
	if res.DeletedCount == 0 {
		return errs.NotFound("template %s not found", templateID)
	}
	invalidateActiveCache()
	return nil
}

// AttachFile stores an uploaded template asset in the bucket and records its
// reference. Cloud storage is required here: purchasable assets have a single
// source of truth.
func (s *TemplateService) AttachFile(ctx context.Context, templateID, name string, data []byte, contentType string) (*models.Template, error) {
	ref, err := s.store.Upload(ctx, name, data, contentType)
	if err != nil {
		return nil, err
	}
	return s.Update(ctx, templateID, bson.M{
		"fileUrl":  ref,
		"fileName": name,
		"fileSize": int64(len(data)),
		"fileType": contentType,
	})
}

// AttachPreview stores a preview image for the catalogue.
func (s *TemplateService) AttachPreview(ctx context.Context, templateID, name string, data []byte, contentType string) (*models.Template, error) {
	ref, err := s.store.Upload(ctx, "previews/"+name, data, contentType)
	if err != nil {
		return nil, err
	}
	return s.Update(ctx, templateID, bson.M{"previewUrl": ref})
}
