package auth

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/Circulx/Fathom-Legal-sub001/db"
	"github.com/Circulx/Fathom-Legal-sub001/middleware"
	"github.com/Circulx/Fathom-Legal-sub001/models"
	"github.com/Circulx/Fathom-Legal-sub001/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

const (
	refreshTokenTTL = 7 * 24 * time.Hour
	accessTokenTTL  = 12 * time.Hour
)

// AuthService signs in CMS admins.
type AuthService struct {
	db *db.DB
}

func NewAuthService(database *db.DB) *AuthService {
	return &AuthService{db: database}
}

// Login handles POST /api/auth/login.
func (s *AuthService) Login(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.Username == "" || input.Password == "" {
		http.Error(w, "Username and password are required", http.StatusBadRequest)
		return
	}

	var admin models.Admin
	err := s.db.Admins.FindOne(r.Context(), bson.M{"username": input.Username}).Decode(&admin)
	if err != nil {
		http.Error(w, "Invalid username or password", http.StatusUnauthorized)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(input.Password)); err != nil {
		http.Error(w, "Invalid username or password", http.StatusUnauthorized)
		return
	}

	claims := &middleware.Claims{
		Username: admin.Username,
		UserID:   admin.AdminID,
		Role:     admin.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(accessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(middleware.JwtSecret)
	if err != nil {
		http.Error(w, "Failed to generate token", http.StatusInternalServerError)
		return
	}

	refreshToken, err := generateRefreshToken()
	if err != nil {
		http.Error(w, "Error generating refresh token", http.StatusInternalServerError)
		return
	}

	_, err = s.db.Admins.UpdateOne(r.Context(),
		bson.M{"adminid": admin.AdminID},
		bson.M{"$set": bson.M{
			"refresh_token":  hashToken(refreshToken),
			"refresh_expiry": time.Now().Add(refreshTokenTTL),
			"last_login":     time.Now(),
		}},
	)
	if err != nil {
		http.Error(w, "Failed to store refresh token", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"success":      true,
		"token":        tokenString,
		"refreshToken": refreshToken,
		"adminId":      admin.AdminID,
		"role":         admin.Role,
	})
}

// Refresh exchanges a valid refresh token for a new access token.
func (s *AuthService) Refresh(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var input struct {
		AdminID      string `json:"adminId"`
		RefreshToken string `json:"refreshToken"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil || input.AdminID == "" || input.RefreshToken == "" {
		http.Error(w, "adminId and refreshToken are required", http.StatusBadRequest)
		return
	}

	var admin models.Admin
	err := s.db.Admins.FindOne(r.Context(), bson.M{"adminid": input.AdminID}).Decode(&admin)
	if err != nil {
		http.Error(w, "Invalid refresh token", http.StatusUnauthorized)
		return
	}

	if admin.RefreshToken != hashToken(input.RefreshToken) || time.Now().After(admin.RefreshExpiry) {
		http.Error(w, "Invalid or expired refresh token", http.StatusUnauthorized)
		return
	}

	claims := &middleware.Claims{
		Username: admin.Username,
		UserID:   admin.AdminID,
		Role:     admin.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(accessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(middleware.JwtSecret)
	if err != nil {
		http.Error(w, "Failed to generate token", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true, "token": tokenString})
}

// Logout invalidates the stored refresh token.
func (s *AuthService) Logout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	claims, err := middleware.ValidateJWT(r.Header.Get("Authorization"))
	if err != nil {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	_, err = s.db.Admins.UpdateOne(r.Context(),
		bson.M{"adminid": claims.UserID},
		bson.M{"$unset": bson.M{"refresh_token": "", "refresh_expiry": ""}},
	)
	if err != nil {
		log.Printf("logout: failed to clear refresh token for %s: %v", claims.UserID, err)
		http.Error(w, "Failed to log out", http.StatusInternalServerError)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{"success": true})
}

// SeedSuperAdmin creates the initial super-admin account when the collection
// is empty, so a fresh deployment can log in.
func SeedSuperAdmin(ctx context.Context, database *db.DB, username, password string) error {
	if username == "" || password == "" {
		return nil
	}

	var existing models.Admin
	err := database.Admins.FindOne(ctx, bson.M{"username": username}).Decode(&existing)
	if err == nil {
		return nil
	}
	if err != mongo.ErrNoDocuments {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.Admin{
		AdminID:   "a" + uuid.NewString()[:12],
		Username:  username,
		Password:  string(hashed),
		Role:      []string{models.RoleSuperAdmin},
		CreatedAt: time.Now(),
	}
	_, err = database.Admins.InsertOne(ctx, admin)
	return err
}

// Generates a random refresh token
func generateRefreshToken() (string, error) {
	tokenBytes := make([]byte, 32)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(tokenBytes), nil
}

// Hashes a given token
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
