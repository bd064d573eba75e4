package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/onboard/pkg/httpx"
	"github.com/aussiebroadwan/onboard/pkg/onboardsdk"
)

// MeHandler godoc
//
//	@Summary		Current session
//	@Description	Return the profile snapshot held by the current session.
//	@Tags			Profile
//	@Produce		json
//	@Success		200	{object}	onboardsdk.ProfileResponse	"username, email, avatar_url, preferences, expires_at"
//	@Failure		400	{object}	onboardsdk.ErrorResponse	"no_active_session"
//	@Router			/api/me [get].
func MeHandler(w http.ResponseWriter, r *http.Request) {
	sess, ok := SessionFromContext(r.Context())
	if !ok {
		onboardsdk.ErrNoActiveSession.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, onboardsdk.ProfileResponse{
		Username:    sess.Username,
		Email:       sess.Email,
		AvatarURL:   sess.AvatarURL,
		Preferences: sess.Preferences.Clone(),
		ExpiresAt:   sess.ExpiresAt.UTC().Format(time.RFC3339),
	})
}
