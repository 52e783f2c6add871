package templates

import (
	"encoding/json"
	"net/http"

	"github.com/Circulx/Fathom-Legal-sub001/errs"
	"github.com/Circulx/Fathom-Legal-sub001/filemgr"
	"github.com/Circulx/Fathom-Legal-sub001/models"
	"github.com/Circulx/Fathom-Legal-sub001/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

const maxTemplateFileSize = 20 << 20 // 20MB
const maxPreviewSize = 5 << 20       // 5MB

// GET /api/templates
func (s *TemplateService) ListHandler(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	list, err := s.ListActive(r.Context())
	if err != nil {
		utils.RespondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "templates": list})
}

// GET /api/templates/:id
func (s *TemplateService) GetHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	tmpl, err := s.Get(r.Context(), ps.ByName("id"))
	if err != nil {
		utils.RespondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "template": tmpl})
}

// POST /api/templates (admin)
func (s *TemplateService) CreateHandler(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var tmpl models.Template
	if err := json.NewDecoder(r.Body).Decode(&tmpl); err != nil {
		utils.RespondError(w, errs.Validation("invalid request body"))
		return
	}

	if err := s.Create(r.Context(), &tmpl); err != nil {
		utils.RespondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"success": true, "template": tmpl})
}

// PUT /api/templates/:id (admin)
func (s *TemplateService) UpdateHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var fields bson.M
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		utils.RespondError(w, errs.Validation("invalid request body"))
		return
	}

	tmpl, err := s.Update(r.Context(), ps.ByName("id"), fields)
	if err != nil {
		utils.RespondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "template": tmpl})
}

// DELETE /api/templates/:id (admin)
func (s *TemplateService) DeleteHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := s.Delete(r.Context(), ps.ByName("id")); err != nil {
		utils.RespondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true})
}

// POST /api/templates/:id/file (admin, multipart)
func (s *TemplateService) UploadFileHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := r.ParseMultipartForm(maxTemplateFileSize); err != nil {
		utils.RespondError(w, errs.Validation("file too large"))
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		utils.RespondError(w, errs.Validation("file field is required"))
		return
	}
	defer file.Close()

	upload, err := filemgr.ReadUpload(file, header, filemgr.FileDocument, maxTemplateFileSize)
	if err != nil {
		utils.RespondError(w, errs.Validation("%s", err.Error()))
		return
	}

	tmpl, err := s.AttachFile(r.Context(), ps.ByName("id"), upload.Name, upload.Data, upload.ContentType)
	if err != nil {
		utils.RespondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "template": tmpl})
}

// POST /api/templates/:id/preview (admin, multipart)
func (s *TemplateService) UploadPreviewHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	if err := r.ParseMultipartForm(maxPreviewSize); err != nil {
		utils.RespondError(w, errs.Validation("file too large"))
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		utils.RespondError(w, errs.Validation("file field is required"))
		return
	}
	defer file.Close()

	upload, err := filemgr.ReadUpload(file, header, filemgr.FilePreview, maxPreviewSize)
	if err != nil {
		utils.RespondError(w, errs.Validation("%s", err.Error()))
		return
	}

	// Catalogue pages want a small image; store the resized version.
	if thumb, err := filemgr.Thumbnail(upload.Data, 640); err == nil {
		upload.Data = thumb
		upload.ContentType = "image/jpeg"
	}

	tmpl, err := s.AttachPreview(r.Context(), ps.ByName("id"), upload.Name, upload.Data, upload.ContentType)
	if err != nil {
		utils.RespondError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "template": tmpl})
}
