package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/aussiebroadwan/technotes/internal/notes/domain"
	"github.com/aussiebroadwan/technotes/internal/notes/service"
	"github.com/aussiebroadwan/technotes/internal/notes/store"
	"github.com/aussiebroadwan/technotes/pkg/httpx"
	"github.com/aussiebroadwan/technotes/pkg/jwtx"
	"github.com/aussiebroadwan/technotes/pkg/slogx"

	_ "github.com/aussiebroadwan/technotes/api/notes" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger
	store        store.Store

	// AuthRequired puts bearer authentication in front of /notes and /users.
	AuthRequired bool

	// TrustProxy keys client limits on X-Forwarded-For/X-Real-IP. Only set it
	// when a reverse proxy overwrites those headers.
	TrustProxy bool

	// LoginLimiter and EventLog guard POST /auth/login. A nil EventLog falls
	// back to the request logger.
	LoginLimiter *httpx.WindowLimiter
	EventLog     *slog.Logger

	NoteService *service.NoteService
	UserService *service.UserService
	AuthService *service.AuthService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerNotes()
	r.registerUsers()
	r.registerAuth()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpx.Chain(httpSwagger.Handler(),
		httpx.RateLimitByIP(httpx.PublicLimit, r.clientIP()),
	))
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			TechNotes API
//	@version		0.1.0
//	@description	Notes and user management for the repair shop.
//	@description
//	@description				Titles and usernames are unique under Polish case-insensitive collation.
//
//	@contact.name				AussieBroadWAN Team
//	@contact.url				https://github.com/aussiebroadwan/technotes
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:3500
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token from /auth/login. Format: "Bearer {token}". Only enforced when AUTH_REQUIRED is set.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) clientIP() httpx.KeyExtractor {
	return httpx.ClientIPKeyExtractor(r.TrustProxy)
}

// protect wraps h with authentication and the role check when enforced.
// Rate limiting is keyed by user id, falling back to the client address.
func (r *Router) protect(h http.HandlerFunc, roles ...string) http.Handler {
	return r.chain(h, roles, httpx.RateLimitByUser(httpx.LenientLimit, r.clientIP()))
}

// protectWrite is protect plus the tighter ModerateLimit bucket.
func (r *Router) protectWrite(h http.HandlerFunc, roles ...string) http.Handler {
	return r.chain(h, roles,
		httpx.RateLimitByUser(httpx.LenientLimit, r.clientIP()),
		httpx.RateLimitByUser(httpx.ModerateLimit, r.clientIP()),
	)
}

func (r *Router) chain(h http.Handler, roles []string, limits ...httpx.Middleware) http.Handler {
	var mws []httpx.Middleware
	if r.AuthRequired {
		mws = append(mws, httpx.AuthnMiddleware(r.verifier))
		if len(roles) > 0 {
			mws = append(mws, httpx.RequireAnyRole(roles...))
		}
	}
	mws = append(mws, limits...)
	return httpx.Chain(h, mws...)
}

func (r *Router) registerNotes() {
	h := &NotesHandler{NoteService: r.NoteService}

	r.Mux.Handle("GET /notes", r.protect(h.HandleList))
	r.Mux.Handle("POST /notes", r.protectWrite(h.HandleCreate))
	r.Mux.Handle("PATCH /notes", r.protectWrite(h.HandleUpdate))
	r.Mux.Handle("DELETE /notes", r.protectWrite(h.HandleDelete))
}

func (r *Router) registerUsers() {
	h := &UsersHandler{UserService: r.UserService}

	r.Mux.Handle("GET /users", r.protect(h.HandleList, domain.UserAdminRoles...))
	r.Mux.Handle("POST /users", r.protectWrite(h.HandleCreate, domain.UserAdminRoles...))
	r.Mux.Handle("PATCH /users", r.protectWrite(h.HandleUpdate, domain.UserAdminRoles...))
	r.Mux.Handle("DELETE /users", r.protectWrite(h.HandleDelete, domain.UserAdminRoles...))
}

func (r *Router) registerAuth() {
	limiter := r.LoginLimiter
	if limiter == nil {
		limiter = httpx.NewWindowLimiter(httpx.DefaultLoginLimit, httpx.DefaultLoginWindow, httpx.SystemClock)
		r.LoginLimiter = limiter
	}
	events := r.EventLog
	if events == nil {
		events = r.logger
	}

	// POST /auth/login - sliding window per client address
	r.Mux.Handle("POST /auth/login",
		httpx.Chain(&LoginHandler{AuthService: r.AuthService},
			httpx.LoginLimit(limiter, events, r.clientIP()),
		),
	)
}

func (r *Router) registerSystem() {
	// Health check endpoints - public limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.PublicLimit, r.clientIP()),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.PublicLimit, r.clientIP()),
		),
	)
}
