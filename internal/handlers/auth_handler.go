package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/omnishop/omnishop-api/internal/config"
	"github.com/omnishop/omnishop-api/internal/httperr"
	"github.com/omnishop/omnishop-api/internal/middleware"
	"github.com/omnishop/omnishop-api/internal/models"
	"github.com/omnishop/omnishop-api/internal/session"
	"github.com/omnishop/omnishop-api/internal/validators"
)

const tokenLifetime = 24 * time.Hour

type AuthHandler struct {
	db               *gorm.DB
	config           *config.Config
	denylist         *session.Denylist
	emailDomainValid func(string) bool
}

// NewAuthHandler wires the auth endpoints. A nil emailDomainValid falls
// back to the DNS-based check in validators.
func NewAuthHandler(db *gorm.DB, cfg *config.Config, denylist *session.Denylist, emailDomainValid func(string) bool) *AuthHandler {
	if emailDomainValid == nil {
		emailDomainValid = validators.IsEmailDomainValid
	}
	return &AuthHandler{db: db, config: cfg, denylist: denylist, emailDomainValid: emailDomainValid}
}

// --------- Requests ---------

type RegisterRequest struct {
	FullName string `json:"full_name" binding:"required,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !h.emailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "Le domaine de l'e-mail ne semble pas valide.")
		return
	}

	var count int64
	h.db.Model(&models.Seller{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "email_already_exists", "Un compte existe déjà avec cet e-mail.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Erreur interne.")
		return
	}

	seller := models.Seller{
		FullName:     strings.TrimSpace(req.FullName),
		Email:        email,
		PasswordHash: string(hashed),
	}

	if err := h.db.Create(&seller).Error; err != nil {
		httperr.Internal(c, "failed_to_create_seller", "Impossible de créer le compte.")
		return
	}

	// Sign-up starts with onboarding pending.
	prefs := models.DefaultPreferences(seller.ID)
	if err := h.db.Create(&prefs).Error; err != nil {
		httperr.Internal(c, "failed_to_create_preferences", "Impossible de créer le compte.")
		return
	}

	token, err := h.generateToken(&seller)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erreur interne.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"seller": gin.H{
			"id":        seller.ID,
			"full_name": seller.FullName,
			"email":     seller.Email,
		},
		"preferences": prefs,
		"token":       token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var seller models.Seller
	if err := h.db.Where("email = ?", email).First(&seller).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			httperr.Unauthorized(c, "invalid_credentials", "E-mail ou mot de passe incorrect.")
			return
		}
		httperr.Internal(c, "internal_error", "Erreur interne.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(seller.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "E-mail ou mot de passe incorrect.")
		return
	}

	token, err := h.generateToken(&seller)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "Erreur interne.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"seller": gin.H{
			"id":        seller.ID,
			"full_name": seller.FullName,
			"email":     seller.Email,
		},
		"token": token,
	})
}

// Logout revokes the presented token's jti until its natural expiry.
// Without a denylist the token simply ages out client-side.
func (h *AuthHandler) Logout(c *gin.Context) {
	jti := c.GetString(middleware.ContextTokenID)
	if jti != "" {
		if err := h.denylist.Revoke(c.Request.Context(), jti, tokenLifetime); err != nil {
			httperr.Internal(c, "failed_to_revoke_session", "Impossible de fermer la session.")
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "signed_out"})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(seller *models.Seller) (string, error) {
	claims := jwt.MapClaims{
		"sub": seller.ID,
		"jti": uuid.NewString(),
		"exp": time.Now().Add(tokenLifetime).Unix(),
		"iat": time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
