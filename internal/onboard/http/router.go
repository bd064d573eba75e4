package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/onboard/internal/onboard/service"
	"github.com/aussiebroadwan/onboard/internal/onboard/store"
	"github.com/aussiebroadwan/onboard/pkg/httpx"
	"github.com/aussiebroadwan/onboard/pkg/slogx"

	_ "github.com/aussiebroadwan/onboard/api/onboard" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

const loginPage = "/login.html"

// RateLimits selects the limiter profile per endpoint class.
type RateLimits struct {
	Strict   httpx.RateLimitConfig // signup, login
	Moderate httpx.RateLimitConfig // session-bound API calls
	Lenient  httpx.RateLimitConfig // pages, health probes
	Public   httpx.RateLimitConfig // swagger
}

// DefaultRateLimits returns the process-wide httpx profiles.
func DefaultRateLimits() RateLimits {
	return RateLimits{
		Strict:   httpx.StrictLimit,
		Moderate: httpx.ModerateLimit,
		Lenient:  httpx.LenientLimit,
		Public:   httpx.PublicLimit,
	}
}

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	store        store.Store

	AccountService *service.AccountService
	SessionManager *service.SessionManager

	// Cookies carry the Secure attribute when set.
	CookieSecure bool
	RateLimits   RateLimits
}

func NewRouter(buildVersion string, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		logger:       logger,
		store:        st,
		RateLimits:   DefaultRateLimits(),
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	// Resolve the session cookie before anything keyed on it runs.
	r.middlewares = append(r.middlewares, LoadSession(r.SessionManager, r.CookieSecure))

	r.registerAPI()
	r.registerPages()
	r.registerSystem()

	r.Mux.Handle("/swagger/",
		httpx.Chain(httpSwagger.Handler(),
			httpx.RateLimitByIP(r.RateLimits.Public),
		),
	)
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Onboard API
//	@version		0.1.0
//	@description	Account signup, login, avatar selection and preference personalisation.
//	@description
//	@description	Sessions are carried in the onboard_session cookie set by signup and login.
//
//	@contact.name	AussieBroadWAN Team
//	@contact.url	https://github.com/aussiebroadwan/onboard
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:8080
//	@BasePath		/
//
//	@schemes		http https
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAPI() {
	cookies := &cookieWriter{Secure: r.CookieSecure}

	// POST /api/signup - strict rate limit by IP (account creation)
	signup := &SignupHandler{Accounts: r.AccountService, Sessions: r.SessionManager, Cookies: cookies}
	r.Mux.Handle("POST /api/signup",
		httpx.Chain(signup,
			httpx.RateLimitByIP(r.RateLimits.Strict),
		),
	)

	// POST /api/login - strict rate limit by IP + email to slow credential guessing
	login := &LoginHandler{Accounts: r.AccountService, Sessions: r.SessionManager, Cookies: cookies}
	r.Mux.Handle("POST /api/login",
		httpx.Chain(login,
			httpx.RateLimitByIPAndJSONField(r.RateLimits.Strict, "email"),
		),
	)

	// Session-bound calls - moderate rate limit by session
	avatar := &AvatarHandler{Accounts: r.AccountService, Sessions: r.SessionManager}
	r.Mux.Handle("POST /api/avatar",
		httpx.Chain(avatar,
			httpx.RateLimitBySession(r.RateLimits.Moderate),
		),
	)

	personalize := &PersonalizeHandler{Accounts: r.AccountService, Sessions: r.SessionManager}
	r.Mux.Handle("POST /api/personalize",
		httpx.Chain(personalize,
			httpx.RateLimitBySession(r.RateLimits.Moderate),
		),
	)

	r.Mux.Handle("GET /api/me",
		httpx.Chain(http.HandlerFunc(MeHandler),
			httpx.RateLimitBySession(r.RateLimits.Moderate),
		),
	)

	logout := &LogoutHandler{Sessions: r.SessionManager, Cookies: cookies}
	r.Mux.Handle("GET /logout",
		httpx.Chain(logout,
			httpx.RateLimitByIP(r.RateLimits.Lenient),
		),
	)
}

func (r *Router) registerPages() {
	open := func(h http.Handler) http.Handler {
		return httpx.Chain(h, httpx.RateLimitByIP(r.RateLimits.Lenient))
	}
	member := func(h http.Handler) http.Handler {
		return httpx.Chain(h,
			httpx.RateLimitByIP(r.RateLimits.Lenient),
			httpx.RequireSession(loginPage),
		)
	}

	r.Mux.Handle("GET /{$}", open(http.HandlerFunc(HomePage)))
	r.Mux.Handle("GET /signup.html", open(http.HandlerFunc(SignupPage)))
	r.Mux.Handle("GET /login.html", open(http.HandlerFunc(LoginPage)))

	r.Mux.Handle("GET /avatar.html", member(http.HandlerFunc(AvatarPage)))
	r.Mux.Handle("GET /main_menu.html", member(http.HandlerFunc(MainMenuPage)))
	r.Mux.Handle("GET /dashboard.html", member(http.HandlerFunc(DashboardPage)))
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(r.RateLimits.Lenient),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(r.RateLimits.Lenient),
		),
	)
}
