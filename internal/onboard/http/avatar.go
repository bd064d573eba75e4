package http

import (
	"net/http"
	"strings"

	"github.com/aussiebroadwan/onboard/internal/onboard/domain"
	"github.com/aussiebroadwan/onboard/internal/onboard/service"
	"github.com/aussiebroadwan/onboard/pkg/httpx"
	"github.com/aussiebroadwan/onboard/pkg/onboardsdk"
)

type avatarRequest struct {
	AvatarURL string `json:"avatar_url"`
}

type AvatarHandler struct {
	Accounts *service.AccountService
	Sessions *service.SessionManager
}

// ServeHTTP godoc
//
//	@Summary		Select avatar
//	@Description	Store the chosen avatar on the account and the current session.
//	@Tags			Profile
//	@Accept			json
//	@Produce		json
//	@Param			request	body		onboardsdk.AvatarRequest	true	"avatar_url"
//	@Success		200		{object}	onboardsdk.MessageResponse	"Avatar selected."
//	@Failure		400		{object}	onboardsdk.ErrorResponse	"no_active_session, missing_field, session_store_mismatch"
//	@Router			/api/avatar [post].
func (h *AvatarHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sess, ok := SessionFromContext(ctx)
	if !ok {
		onboardsdk.ErrNoActiveSession.WriteError(w)
		return
	}

	var req avatarRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		onboardsdk.ErrInvalidRequest.WriteError(w)
		return
	}

	avatarURL := strings.TrimSpace(req.AvatarURL)
	if avatarURL == "" {
		onboardsdk.ErrNoAvatar.WriteError(w)
		return
	}

	// The account is only written while the session row still exists. A
	// logout racing between here and the session patch is last-write-wins.
	if err := h.Sessions.Live(ctx, sess.ID); err != nil {
		writeServiceError(ctx, w, err, "failed to check session")
		return
	}

	if err := h.Accounts.SetAvatar(ctx, sess.Email, avatarURL); err != nil {
		writeServiceError(ctx, w, err, "failed to set avatar")
		return
	}

	if _, err := h.Sessions.Update(ctx, sess.ID, domain.SessionPatch{AvatarURL: &avatarURL}); err != nil {
		writeServiceError(ctx, w, err, "failed to update session avatar")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, onboardsdk.MessageResponse{Message: "Avatar selected."})
}
