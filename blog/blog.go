package blog

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/Circulx/Fathom-Legal-sub001/db"
	"github.com/Circulx/Fathom-Legal-sub001/errs"
	"github.com/Circulx/Fathom-Legal-sub001/globals"
	"github.com/Circulx/Fathom-Legal-sub001/middleware"
	"github.com/Circulx/Fathom-Legal-sub001/models"
	"github.com/Circulx/Fathom-Legal-sub001/utils"

	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// BlogService is the CMS behind the public insights pages.
type BlogService struct {
	db *db.DB
}

func NewBlogService(database *db.DB) *BlogService {
	return &BlogService{db: database}
}

// GET /api/blog (public; only published posts unless the caller is an admin)
func (s *BlogService) ListHandler(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	q := r.URL.Query()

	limit, _ := strconv.Atoi(q.Get("limit"))
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	skip, _ := strconv.Atoi(q.Get("skip"))
	if skip < 0 {
		skip = 0
	}

	filter := bson.M{"published": true}
	if middleware.HasRole(r.Context(), models.RoleAdmin, models.RoleSuperAdmin) {
		filter = bson.M{}
	}
	if category := q.Get("category"); category != "" {
		filter["category"] = category
	}

	cur, err := s.db.BlogPosts.Find(r.Context(), filter, options.Find().
		SetSort(bson.M{"createdAt": -1}).
		SetLimit(int64(limit)).
		SetSkip(int64(skip)))
	if err != nil {
		utils.RespondError(w, errs.Internal("blog list", err))
		return
	}
	defer cur.Close(r.Context())

	var posts []models.BlogPost
	if err := cur.All(r.Context(), &posts); err != nil {
		utils.RespondError(w, errs.Internal("blog decode", err))
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "posts": posts})
}

// GET /api/blog/:id
func (s *BlogService) GetHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var post models.BlogPost
	err := s.db.BlogPosts.FindOne(r.Context(), bson.M{"postid": ps.ByName("id")}).Decode(&post)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			utils.RespondError(w, errs.NotFound("post not found"))
			return
		}
		utils.RespondError(w, errs.Internal("blog lookup", err))
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "post": post})
}

// POST /api/blog (admin)
func (s *BlogService) CreateHandler(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var post models.BlogPost
	if err := json.NewDecoder(r.Body).Decode(&post); err != nil || post.Title == "" || post.Content == "" {
		utils.RespondError(w, errs.Validation("title and content are required"))
		return
	}

	userID, _ := r.Context().Value(globals.UserIDKey).(string)
	now := time.Now()
	post.PostID = uuid.NewString()
	post.CreatedBy = userID
	post.CreatedAt = now
	post.UpdatedAt = now

	if _, err := s.db.BlogPosts.InsertOne(r.Context(), post); err != nil {
		utils.RespondError(w, errs.Internal("blog insert", err))
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"success": true, "post": post})
}

// PUT /api/blog/:id (admin)
func (s *BlogService) UpdateHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	var fields bson.M
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		utils.RespondError(w, errs.Validation("invalid request body"))
		return
	}
	for _, locked := range []string{"postid", "_id", "createdBy", "createdAt"} {
		delete(fields, locked)
	}
	fields["updatedAt"] = time.Now()

	res, err := s.db.BlogPosts.UpdateOne(r.Context(), bson.M{"postid": ps.ByName("id")}, bson.M{"$set": fields})
	if err != nil {
		utils.RespondError(w, errs.Internal("blog update", err))
		return
	}
	if res.MatchedCount == 0 {
		utils.RespondError(w, errs.NotFound("post not found"))
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true})
}

// DELETE /api/blog/:id (admin)
func (s *BlogService) DeleteHandler(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	res, err := s.db.BlogPosts.DeleteOne(r.Context(), bson.M{"postid": ps.ByName("id")})
	if err != nil {
		utils.RespondError(w, errs.Internal("blog delete", err))
		return
	}
	if res.DeletedCount == 0 {
		utils.RespondError(w, errs.NotFound("post not found"))
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true})
}
