package v1

import (
	"encoding/json"
	"errors"
	"net/http"

	"globemart-backend/internal/domain"
	"globemart-backend/internal/usecase"
	"globemart-backend/pkg/logger"
	"globemart-backend/pkg/utils"
)

type AuthHandler struct {
	authUC *usecase.AuthUsecase
}

func NewAuthHandler(authUC *usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{authUC: authUC}
}

type registerRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	User  *domain.User `json:"user"`
	Token string       `json:"token"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Email == "" || req.Password == "" {
		utils.WriteError(w, http.StatusBadRequest, "Email and password are required")
		return
	}

	user, token, err := h.authUC.Register(r.Context(), req.Email, req.Password, req.FirstName, req.LastName)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateAccount) {
			utils.WriteError(w, http.StatusConflict, "User already exists")
			return
		}
		logger.WithContext(r.Context()).Error().Err(err).Msg("Registration failed")
		utils.WriteError(w, http.StatusInternalServerError, "Failed to create account")
		return
	}

	utils.WriteJSON(w, http.StatusCreated, authResponse{User: user, Token: token})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, token, err := h.authUC.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		// Unknown email and wrong password share one message by design.
		if errors.Is(err, domain.ErrInvalidCredentials) {
			utils.WriteError(w, http.StatusUnauthorized, "Invalid credentials")
			return
		}
		logger.WithContext(r.Context()).Error().Err(err).Msg("Login failed")
		utils.WriteError(w, http.StatusInternalServerError, "Failed to sign in")
		return
	}

	utils.WriteJSON(w, http.StatusOK, authResponse{User: user, Token: token})
}

// Me resolves the current session token into its user record.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	user := h.authUC.ResolveSession(r.Context(), utils.ExtractToken(r))
	if user == nil {
		utils.WriteError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	utils.WriteJSON(w, http.StatusOK, map[string]*domain.User{"user": user})
}
