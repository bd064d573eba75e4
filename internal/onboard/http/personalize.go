package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/onboard/internal/onboard/domain"
	"github.com/aussiebroadwan/onboard/internal/onboard/service"
	"github.com/aussiebroadwan/onboard/pkg/httpx"
	"github.com/aussiebroadwan/onboard/pkg/onboardsdk"
	"github.com/aussiebroadwan/onboard/pkg/slogx"
)

type personalizeRequest struct {
	Preferences domain.Preferences `json:"preferences"`
}

type PersonalizeHandler struct {
	Accounts *service.AccountService
	Sessions *service.SessionManager
}

// ServeHTTP godoc
//
//	@Summary		Personalise
//	@Description	Replace the preference set on the account and the current session.
//	@Description	Preferences may be an array of strings or an object whose truthy keys are taken.
//	@Tags			Profile
//	@Accept			json
//	@Produce		json
//	@Param			request	body		onboardsdk.PersonalizeRequest	true	"preferences"
//	@Success		200		{object}	onboardsdk.MessageResponse		"Registration complete."
//	@Failure		400		{object}	onboardsdk.ErrorResponse		"no_active_session, invalid_request"
//	@Router			/api/personalize [post].
func (h *PersonalizeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sess, ok := SessionFromContext(ctx)
	if !ok {
		onboardsdk.ErrNoActiveSession.WriteError(w)
		return
	}

	var req personalizeRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		onboardsdk.ErrInvalidRequest.WriteError(w)
		return
	}
	prefs := domain.NewPreferences(req.Preferences...)

	// The session is patched even when the account has gone missing.
	if err := h.Accounts.SetPreferences(ctx, sess.Email, prefs); err != nil {
		if !errors.Is(err, service.ErrSessionStoreMismatch) {
			writeServiceError(ctx, w, err, "failed to set preferences")
			return
		}
		slogx.FromContext(ctx).Warn("session outlived its account", "email", sess.Email)
	}

	if _, err := h.Sessions.Update(ctx, sess.ID, domain.SessionPatch{Preferences: &prefs}); err != nil {
		writeServiceError(ctx, w, err, "failed to update session preferences")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, onboardsdk.MessageResponse{Message: "Registration complete."})
}
