// internal/handler/auth_handler.go
package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/alertemeds/alertemeds-backend/internal/api"
	"github.com/alertemeds/alertemeds-backend/internal/auth"
	"github.com/alertemeds/alertemeds-backend/internal/model"
	"github.com/alertemeds/alertemeds-backend/internal/repository"
)

type AuthHandler struct {
	UserRepo  repository.UserRepositoryInterface
	JWTSecret string
	Logger    *zap.Logger
}

type credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var body credentials
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		api.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	body.Email = strings.ToLower(strings.TrimSpace(body.Email))
	if body.Email == "" || len(body.Password) < 8 {
		api.Error(w, http.StatusBadRequest, "email and a password of at least 8 characters are required")
		return
	}

	existing, err := h.UserRepo.GetByEmail(body.Email)
	if err != nil {
		h.internalError(w, err)
		return
	}
	if existing != nil {
		api.Error(w, http.StatusBadRequest, "Email already registered")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(body.Password), bcrypt.DefaultCost)
	if err != nil {
		h.internalError(w, err)
		return
	}

	user := &model.User{Email: body.Email, PasswordHash: string(hash)}
	if err := h.UserRepo.Create(user); err != nil {
		h.internalError(w, err)
		return
	}

	token, err := auth.GenerateToken(user.ID, user.Email, h.JWTSecret)
	if err != nil {
		h.internalError(w, err)
		return
	}
	api.JSON(w, http.StatusCreated, map[string]interface{}{"user": user, "token": token})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var body credentials
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		api.Error(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.UserRepo.GetByEmail(strings.ToLower(strings.TrimSpace(body.Email)))
	if err != nil {
		h.internalError(w, err)
		return
	}
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(body.Password)) != nil {
		api.Error(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := auth.GenerateToken(user.ID, user.Email, h.JWTSecret)
	if err != nil {
		h.internalError(w, err)
		return
	}
	api.JSON(w, http.StatusOK, map[string]interface{}{"user": user, "token": token})
}

func (h *AuthHandler) internalError(w http.ResponseWriter, err error) {
	h.Logger.Error("auth request failed", zap.Error(err))
	api.Error(w, http.StatusInternalServerError, "Internal error")
}
