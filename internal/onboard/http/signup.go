package http

import (
	"net/http"

	"github.com/aussiebroadwan/onboard/internal/onboard/service"
	"github.com/aussiebroadwan/onboard/pkg/httpx"
	"github.com/aussiebroadwan/onboard/pkg/onboardsdk"
	"github.com/aussiebroadwan/onboard/pkg/slogx"
)

type signupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type SignupHandler struct {
	Accounts *service.AccountService
	Sessions *service.SessionManager
	Cookies  *cookieWriter
}

// ServeHTTP godoc
//
//	@Summary		Sign up
//	@Description	Create an account and start a session. The session cookie is set on success.
//	@Tags			Accounts
//	@Accept			json
//	@Produce		json
//	@Param			request	body		onboardsdk.SignupRequest	true	"username, email, password"
//	@Success		200		{object}	onboardsdk.MessageResponse	"Signup successful."
//	@Failure		400		{object}	onboardsdk.ErrorResponse	"invalid_request, missing_field"
//	@Failure		409		{object}	onboardsdk.ErrorResponse	"duplicate_email"
//	@Failure		429		{object}	onboardsdk.ErrorResponse	"rate_limit_exceeded"
//	@Router			/api/signup [post].
func (h *SignupHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req signupRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		slogx.FromContext(ctx).Debug("rejected signup body", "err", err)
		onboardsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	user, err := h.Accounts.Register(ctx, req.Username, req.Email, req.Password)
	if err != nil {
		writeServiceError(ctx, w, err, "failed to register account")
		return
	}

	if err := establish(w, r, h.Sessions, h.Cookies, user); err != nil {
		writeServiceError(ctx, w, err, "failed to establish session")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, onboardsdk.MessageResponse{Message: "Signup successful."})
}
