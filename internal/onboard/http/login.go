package http

import (
	"net/http"

	"github.com/aussiebroadwan/onboard/internal/onboard/service"
	"github.com/aussiebroadwan/onboard/pkg/httpx"
	"github.com/aussiebroadwan/onboard/pkg/onboardsdk"
	"github.com/aussiebroadwan/onboard/pkg/slogx"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginHandler struct {
	Accounts *service.AccountService
	Sessions *service.SessionManager
	Cookies  *cookieWriter
}

// ServeHTTP godoc
//
//	@Summary		Log in
//	@Description	Check credentials and start a session. Unknown email and wrong password are reported identically.
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		onboardsdk.LoginRequest		true	"email, password"
//	@Success		200		{object}	onboardsdk.MessageResponse	"Login successful."
//	@Failure		400		{object}	onboardsdk.ErrorResponse	"invalid_request"
//	@Failure		401		{object}	onboardsdk.ErrorResponse	"invalid_credentials"
//	@Failure		429		{object}	onboardsdk.ErrorResponse	"rate_limit_exceeded"
//	@Router			/api/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req loginRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		log.Debug("rejected login body", "err", err)
		onboardsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	user, err := h.Accounts.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		writeServiceError(ctx, w, err, "failed to authenticate")
		return
	}

	if err := establish(w, r, h.Sessions, h.Cookies, user); err != nil {
		writeServiceError(ctx, w, err, "failed to establish session")
		return
	}

	log.Info("login succeeded", "user_id", user.ID)
	httpx.WriteJSON(w, http.StatusOK, onboardsdk.MessageResponse{Message: "Login successful."})
}
