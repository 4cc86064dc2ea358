package handler

import (
	"encoding/json"
	"net/http"

	"doctor-scheduler/internal/delivery/dto"
	"doctor-scheduler/internal/delivery/http/middleware"
	"doctor-scheduler/internal/usecase"
	"doctor-scheduler/pkg/response"
	"doctor-scheduler/pkg/validator"
)

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	validator   *validator.CustomValidator
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, validator *validator.CustomValidator) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		validator:   validator,
	}
}

// Register creates an account (and a practitioner profile for doctors)
// and returns an access token.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.BadRequest(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.authUsecase.Register(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrEmailAlreadyExists:
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "failed to register")
		}
		return
	}

	response.JSON(w, http.StatusOK, result)
}

// Login exchanges credentials for an access/refresh token pair.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.BadRequest(w, h.validator.FormatValidationErrors(err))
		return
	}

	tokens, err := h.authUsecase.Login(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidCredentials:
			response.Unauthorized(w, err.Error())
		default:
			response.InternalServerError(w, "failed to login")
		}
		return
	}

	response.JSON(w, http.StatusOK, tokens)
}

// Refresh rotates a refresh token into a new token pair.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req dto.RefreshTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.BadRequest(w, h.validator.FormatValidationErrors(err))
		return
	}

	tokens, err := h.authUsecase.Refresh(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrInvalidToken, usecase.ErrTokenRevoked:
			response.Unauthorized(w, err.Error())
		default:
			response.InternalServerError(w, "failed to refresh token")
		}
		return
	}

	response.JSON(w, http.StatusOK, tokens)
}

// Logout invalidates the caller's tokens.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.GetUserFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "invalid token")
		return
	}
	tokenID, ok := middleware.GetTokenIDFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "invalid token")
		return
	}

	if err := h.authUsecase.Logout(r.Context(), user.ID, tokenID); err != nil {
		response.InternalServerError(w, "failed to logout")
		return
	}

	response.Message(w, http.StatusOK, "logged out")
}
