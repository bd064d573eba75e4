package http

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/aussiebroadwan/onboard/internal/onboard/domain"
	"github.com/aussiebroadwan/onboard/internal/onboard/web"
	"github.com/aussiebroadwan/onboard/pkg/httpx"
)

func renderPage(w http.ResponseWriter, r *http.Request, c templ.Component) {
	httpx.NoCache(w)
	templ.Handler(c).ServeHTTP(w, r)
}

// sessionPtr returns the request session, or nil when anonymous.
func sessionPtr(r *http.Request) *domain.Session {
	if sess, ok := SessionFromContext(r.Context()); ok {
		return &sess
	}
	return nil
}

func HomePage(w http.ResponseWriter, r *http.Request) {
	renderPage(w, r, web.Home(sessionPtr(r)))
}

func SignupPage(w http.ResponseWriter, r *http.Request) {
	renderPage(w, r, web.Signup())
}

func LoginPage(w http.ResponseWriter, r *http.Request) {
	renderPage(w, r, web.Login())
}

// Member pages sit behind httpx.RequireSession, so the session is present.

func AvatarPage(w http.ResponseWriter, r *http.Request) {
	renderPage(w, r, web.Avatar(sessionPtr(r)))
}

func MainMenuPage(w http.ResponseWriter, r *http.Request) {
	renderPage(w, r, web.MainMenu(sessionPtr(r)))
}

func DashboardPage(w http.ResponseWriter, r *http.Request) {
	renderPage(w, r, web.Dashboard(sessionPtr(r)))
}
