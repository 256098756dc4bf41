package api

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/alexedwards/argon2id"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/fableration/site-backend/auth"
	"github.com/fableration/site-backend/database"
	"github.com/fableration/site-backend/errs"
)

type authHandler struct {
	responder Responder
	logger    zerolog.Logger
	userRepo  *database.UserRepo
	jwt       *auth.JWT
}

func newAuthHandler(userRepo *database.UserRepo, jwt *auth.JWT) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder: NewResponder(logger),
		logger:    logger,
		userRepo:  userRepo,
		jwt:       jwt,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string        `json:"token"`
	User  auth.Identity `json:"user"`
}

// login exchanges email and password for a bearer credential.
// @Summary Log in
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body loginRequest true "Credentials"
// @Success 200 {object} loginResponse "Token and identity"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Router /auth/login [post]
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if req.Email == "" || req.Password == "" {
			h.responder.WriteValidationError(w, "email", "email and password are required")
			return
		}

		user, err := h.userRepo.FindByEmail(req.Email)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find user", "user", err))
			return
		}
		if user == nil {
			h.responder.WriteError(w, errs.NewUnauthorizedError("invalid credentials"))
			return
		}

		match, err := argon2id.ComparePasswordAndHash(req.Password, user.Password)
		if err != nil || !match {
			h.responder.WriteError(w, errs.NewUnauthorizedError("invalid credentials"))
			return
		}

		identity := auth.Identity{UserID: user.ID, Email: user.Email, Role: user.Role}
		token, err := h.jwt.Sign(identity)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to sign token")
			h.responder.WriteError(w, errs.NewInternalError("could not issue token"))
			return
		}

		h.responder.WriteJSON(w, loginResponse{Token: token, User: identity})
	}
}

// verify validates the bearer credential from the Authorization header and
// returns the identity it carries.
// @Summary Verify token
// @Tags Auth
// @Produce json
// @Success 200 {object} auth.Identity "Verified identity"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Router /auth/verify [get]
func (h authHandler) verify() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			h.responder.WriteError(w, errs.NewMissingTokenError())
			return
		}

		identity, err := h.jwt.Parse(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			h.responder.WriteError(w, errs.NewInvalidTokenError())
			return
		}

		h.responder.WriteJSON(w, identity)
	}
}

type changePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// changePassword re-verifies the current password before storing a new
// hash. This is the one operation that uses the authenticated identity.
// @Summary Change password
// @Tags Auth
// @Accept json
// @Produce json
// @Param passwords body changePasswordRequest true "Current and new password"
// @Success 200 {object} map[string]string "Success message"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Router /auth/change-password [post]
func (h authHandler) changePassword() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity, err := ctxGetIdentity(r.Context())
		if err != nil {
			h.responder.WriteError(w, errs.Unauthorized)
			return
		}

		var req changePasswordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("malformed request body"))
			return
		}

		if req.CurrentPassword == "" || req.NewPassword == "" {
			h.responder.WriteValidationError(w, "newPassword", "current and new password are required")
			return
		}

		user, err := h.userRepo.FindByID(identity.UserID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find user", "user", err))
			return
		}
		if user == nil {
			h.responder.WriteError(w, errs.NewUnauthorizedError("account no longer exists"))
			return
		}

		match, err := argon2id.ComparePasswordAndHash(req.CurrentPassword, user.Password)
		if err != nil || !match {
			h.responder.WriteError(w, errs.NewUnauthorizedError("current password is incorrect"))
			return
		}

		hash, err := argon2id.CreateHash(req.NewPassword, argon2id.DefaultParams)
		if err != nil {
			h.logger.Error().Err(err).Msg("Failed to hash new password")
			h.responder.WriteError(w, errs.NewInternalError("could not update password"))
			return
		}

		if err := h.userRepo.UpdatePassword(user.ID, hash); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update password", "user", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "password updated successfully",
		})
	}
}
