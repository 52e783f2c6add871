package gallery

import (
	"net/http"
	"time"

	"github.com/Circulx/Fathom-Legal-sub001/db"
	"github.com/Circulx/Fathom-Legal-sub001/errs"
	"github.com/Circulx/Fathom-Legal-sub001/filemgr"
	"github.com/Circulx/Fathom-Legal-sub001/globals"
	"github.com/Circulx/Fathom-Legal-sub001/models"
	"github.com/Circulx/Fathom-Legal-sub001/storage"
	"github.com/Circulx/Fathom-Legal-sub001/utils"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const maxImageSize = 10 << 20 // 10MB

// GalleryService manages the public photo gallery.
type GalleryService struct {
	db    *db.DB
	store storage.FileStore
}

func NewGalleryService(database *db.DB, store storage.FileStore) *GalleryService {
	return &GalleryService{db: database, store: store}
}

// GET /api/gallery
func (s *GalleryService) ListHandler(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	cur, err := s.db.Gallery.Find(r.Context(), bson.M{},
		options.Find().SetSort(bson.M{"createdAt": -1}))
	if err != nil {
		utils.RespondError(w, errs.Internal("gallery list", err))
		return
	}
	defer cur.Close(r.Context())

	var images []models.GalleryImage
	if err := cur.All(r.Context(), &images); err != nil {
		utils.RespondError(w, errs.Internal("gallery decode", err))
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "images": images})
}

// POST /api/gallery (admin, multipart)
func (s *GalleryService) UploadHandler(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := r.ParseMultipartForm(maxImageSize); err != nil {
		utils.RespondError(w, errs.Validation("file too large"))
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		utils.RespondError(w, errs.Validation("file field is required"))
		return
	}
	defer file.Close()

	upload, err := filemgr.ReadUpload(file, header, filemgr.FilePhoto, maxImageSize)
	if err != nil {
		utils.RespondError(w, errs.Validation("%s", err.Error()))
		return
	}

	ref, err := s.store.Upload(r.Context(), "gallery/"+upload.Name, upload.Data, upload.ContentType)
	if err != nil {
		utils.RespondError(w, err)
		return
	}

	thumbRef := ""
	if thumb, err := filemgr.Thumbnail(upload.Data, 320); err == nil {
		if ref2, err := s.store.Upload(r.Context(), "gallery/thumbs/"+upload.Name+".jpg", thumb, "image/jpeg"); err == nil {
			thumbRef = ref2
		}
	}

	userID, _ := r.Context().Value(globals.UserIDKey).(string)
	image := models.GalleryImage{
		ImageID:   uuid.NewString(),
		Title:     r.FormValue("title"),
		URL:       ref,
		ThumbURL:  thumbRef,
		CreatedBy: userID,
		CreatedAt: time.Now(),
	}

	if _, err := s.db.Gallery.InsertOne(r.Context(), image); err != nil {
		utils.RespondError(w, errs.Internal("gallery insert", err))
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"success": true, "image": image})
}

// DELETE /api/gallery/:id (admin)
func (s *GalleryService) DeleteHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	res, err := s.db.Gallery.DeleteOne(r.Context(), bson.M{"imageid": ps.ByName("id")})
	if err != nil {
		utils.RespondError(w, errs.Internal("gallery delete", err))
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondError(w, errs.NotFound("image not found"))
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true})
}
