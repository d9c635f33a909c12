package misc

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/2beens/trainerhub/internal/auth"
	"github.com/2beens/trainerhub/internal/middleware"
	"github.com/2beens/trainerhub/internal/telemetry/metrics"
	"github.com/2beens/trainerhub/internal/telemetry/tracing"
	"github.com/2beens/trainerhub/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

// login attempts allowed per minute and client ip, when not configured
const defaultLoginRateLimit = 15

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=misc

type sessionManager interface {
	Login(ctx context.Context, email, password string, createdAt time.Time) (string, *auth.Trainer, error)
	Logout(ctx context.Context, token string) (bool, error)
}

type Handler struct {
	versionInfo string
	sessions    sessionManager
}

func NewHandler(versionInfo string, sessions sessionManager) *Handler {
	return &Handler{
		versionInfo: versionInfo,
		sessions:    sessions,
	}
}

func (handler *Handler) SetupRoutes(
	mainRouter *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	metricsManager *metrics.Manager,
	loginAllowedPerMin int,
) {
	mainRouter.HandleFunc("/", handler.handleRoot).Methods("GET", "POST", "OPTIONS").Name("root")
	mainRouter.HandleFunc("/version", handler.handleGetVersionInfo).Methods("GET").Name("version")

	loginSubrouter := mainRouter.PathPrefix("/a").Subrouter()
	loginSubrouter.
		HandleFunc("/login", handler.handleLogin).
		Methods("POST", "OPTIONS").Name("login")
	loginSubrouter.
		HandleFunc("/logout", handler.handleLogout).
		Methods("GET", "OPTIONS").Name("logout")

	if loginAllowedPerMin <= 0 {
		loginAllowedPerMin = defaultLoginRateLimit
	}
	if rateLimiter != nil {
		loginSubrouter.Use(middleware.RateLimit(rateLimiter, "login", loginAllowedPerMin, metricsManager))
	}
}

func (handler *Handler) handleRoot(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, "I'm OK, thanks ;)")
}

func (handler *Handler) handleGetVersionInfo(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, handler.versionInfo)
}

func writeFailure(w http.ResponseWriter, status int, message string) {
	pkg.WriteJSON(w, status, map[string]any{"success": false, "error": message})
}

func (handler *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "miscHandler.login")
	defer span.End()

	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "POST, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	type loginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var loginReq loginRequest
	if r.Header.Get("Content-Type") == "application/json" {
		if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
			log.Debugf("login, unmarshal json params: %s", err)
			writeFailure(w, http.StatusBadRequest, "invalid JSON")
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			log.Debugf("login, parse form: %s", err)
			writeFailure(w, http.StatusBadRequest, "invalid form")
			return
		}
		loginReq = loginRequest{
			Email:    r.Form.Get("email"),
			Password: r.Form.Get("password"),
		}
	}

	if loginReq.Email == "" {
		writeFailure(w, http.StatusBadRequest, "email empty")
		return
	}
	if loginReq.Password == "" {
		writeFailure(w, http.StatusBadRequest, "password empty")
		return
	}

	token, trainer, err := handler.sessions.Login(ctx, loginReq.Email, loginReq.Password, time.Now())
	if err != nil {
		if errors.Is(err, auth.ErrWrongCredentials) {
			log.Tracef("failed login attempt for: %s", loginReq.Email)
			writeFailure(w, http.StatusUnauthorized, "wrong credentials")
			return
		}
		log.Errorf("login failed: %s", err)
		writeFailure(w, http.StatusInternalServerError, "something went wrong")
		return
	}

	span.SetAttributes(attribute.Int64("trainer.id", trainer.ID))
	log.Tracef("new login success for trainer %d", trainer.ID)
	pkg.WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"token":   token,
		"trainer": trainer,
	})
}

func (handler *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "miscHandler.logout")
	defer span.End()

	if r.Method == http.MethodOptions {
		w.Header().Add("Allow", "GET, OPTIONS")
		w.WriteHeader(http.StatusOK)
		return
	}

	authToken := middleware.AuthToken(r)
	if authToken == "" {
		writeFailure(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	loggedOut, err := handler.sessions.Logout(ctx, authToken)
	if err != nil {
		log.Errorf("logout: %s", err)
		writeFailure(w, http.StatusInternalServerError, "something went wrong")
		return
	}
	if !loggedOut {
		writeFailure(w, http.StatusUnauthorized, "unauthenticated")
		return
	}

	pkg.WriteJSON(w, http.StatusOK, map[string]any{"success": true})
}
