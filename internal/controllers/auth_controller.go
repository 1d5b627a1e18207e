package controllers

import (
	"net/http"

	"github.com/eburon/crm-service/internal/dtos"
	"github.com/eburon/crm-service/internal/models"
	"github.com/eburon/crm-service/internal/services"
	"github.com/eburon/crm-service/internal/utils"
)

type AuthController struct {
	auth     services.AuthService
	profiles services.ProfileService
}

func NewAuthController(auth services.AuthService, profiles services.ProfileService) *AuthController {
	return &AuthController{auth: auth, profiles: profiles}
}

// -----------------------------------------------------------------------------
// POST /api/v1/auth/signup
// -----------------------------------------------------------------------------
func (c *AuthController) SignUp(w http.ResponseWriter, r *http.Request) {
	var req dtos.SignUpRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	role, err := models.ParseUserRole(req.Role)
	if err != nil {
		utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, err.Error(), nil, err)
		return
	}

	result, err := c.auth.SignUp(r.Context(), req.Email, req.Password, req.Name, role)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, result)
}

// -----------------------------------------------------------------------------
// POST /api/v1/auth/signin
// -----------------------------------------------------------------------------
func (c *AuthController) SignIn(w http.ResponseWriter, r *http.Request) {
	var req dtos.SignInRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	role := models.RoleBroker
	if req.Role != "" {
		parsed, err := models.ParseUserRole(req.Role)
		if err != nil {
			utils.RespondErrorWithCode(w, http.StatusBadRequest, utils.ErrCodeValidation, err.Error(), nil, err)
			return
		}
		role = parsed
	}

	result, err := c.auth.SignIn(r.Context(), req.Email, req.Password, role)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, result)
}

// -----------------------------------------------------------------------------
// GET /api/v1/me (requires bearer token)
// -----------------------------------------------------------------------------
func (c *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	userID := UserIDFromContext(r.Context())
	if userID == "" {
		utils.RespondErrorWithCode(w, http.StatusUnauthorized, utils.ErrCodeUnauthorized, "Missing or invalid token", nil)
		return
	}

	profile, err := c.profiles.GetUserProfile(r.Context(), userID)
	if err != nil {
		utils.HandleAppError(w, err)
		return
	}
	if profile == nil {
		utils.RespondErrorWithCode(w, http.StatusNotFound, utils.ErrCodeNotFound, "Profile not found", nil)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, profile)
}
