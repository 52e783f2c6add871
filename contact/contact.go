package contact

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/Circulx/Fathom-Legal-sub001/db"
	"github.com/Circulx/Fathom-Legal-sub001/errs"
	"github.com/Circulx/Fathom-Legal-sub001/models"
	"github.com/Circulx/Fathom-Legal-sub001/utils"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ContactService stores public contact-form submissions for the admin
// screens. Mail delivery is handled elsewhere.
type ContactService struct {
	db *db.DB
}

func NewContactService(database *db.DB) *ContactService {
	return &ContactService{db: database}
}

// POST /api/contact
func (s *ContactService) SubmitHandler(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var msg models.ContactMessage
	if err := json.NewDecoder(r.Body).Decode(&msg); err != nil || msg.Name == "" || msg.Email == "" || msg.Message == "" {
		utils.RespondError(w, errs.Validation("name, email and message are required"))
		return
	}

	msg.MessageID = uuid.NewString()
	msg.Email = utils.NormalizeEmail(msg.Email)
	msg.CreatedAt = time.Now()

	if _, err := s.db.Contacts.InsertOne(r.Context(), msg); err != nil {
		utils.RespondError(w, errs.Internal("contact insert", err))
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"success": true})
}

// GET /api/contact (admin)
func (s *ContactService) ListHandler(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	cur, err := s.db.Contacts.Find(r.Context(), bson.M{},
		options.Find().SetSort(bson.M{"createdAt": -1}).SetLimit(200))
	if err != nil {
		utils.RespondError(w, errs.Internal("contact list", err))
		return
	}
	defer cur.Close(r.Context())

	var messages []models.ContactMessage
	if err := cur.All(r.Context(), &messages); err != nil {
		utils.RespondError(w, errs.Internal("contact decode", err))
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "messages": messages})
}
