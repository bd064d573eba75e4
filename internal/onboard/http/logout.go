package http

import (
	"net/http"

	"github.com/aussiebroadwan/onboard/internal/onboard/service"
	"github.com/aussiebroadwan/onboard/pkg/slogx"
)

type LogoutHandler struct {
	Sessions *service.SessionManager
	Cookies  *cookieWriter
}

// ServeHTTP godoc
//
//	@Summary		Log out
//	@Description	Destroy the current session, expire the cookie and redirect home.
//	@Tags			Accounts
//	@Success		302
//	@Router			/logout [get].
func (h *LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if sess, ok := SessionFromContext(ctx); ok {
		if err := h.Sessions.Clear(ctx, sess.ID); err != nil {
			slogx.FromContext(ctx).Error("failed to clear session", "err", err)
		}
	}

	h.Cookies.Clear(w)
	http.Redirect(w, r, "/", http.StatusFound)
}
