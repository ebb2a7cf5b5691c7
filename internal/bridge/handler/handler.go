// Package handler serves the plugin operation surface over JSON HTTP for
// web-technology shells. Each endpoint is an operation invocation: a POST
// with the operation's request body, answered by the results envelope or a
// normalized error body.
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"authbridge/internal/auth/models"
	"authbridge/internal/bridge"
	"authbridge/pkg/autherrors"
)

// Handler wires plugin operations to HTTP routes.
type Handler struct {
	plugin *bridge.Plugin
	logger *zap.Logger
}

func New(plugin *bridge.Plugin, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{plugin: plugin, logger: logger}
}

// Register mounts every plugin operation under /plugin.
func (h *Handler) Register(r chi.Router) {
	r.Post("/plugin/initialize", h.handleInitialize)
	r.Post("/plugin/isBiometricsAvailable", h.handleIsBiometricsAvailable)
	r.Post("/plugin/canEvaluateBiometricsPolicy", h.handleCanEvaluateBiometricsPolicy)
	r.Post("/plugin/evaluateBiometricsPolicy", h.handleEvaluateBiometricsPolicy)
	r.Post("/plugin/acquireAccountByUsername", h.handleAcquireAccountByUsername)
	r.Post("/plugin/acquireCurrentAccount", h.handleAcquireCurrentAccount)
	r.Post("/plugin/acquireAllAccounts", h.handleAcquireAllAccounts)
	r.Post("/plugin/acquireTokenSilently", h.handleAcquireTokenSilently)
	r.Post("/plugin/acquireTokenInteractively", h.handleAcquireTokenInteractively)
	r.Post("/plugin/login", h.handleLogin)
	r.Post("/plugin/logout", h.handleLogout)
	r.Post("/plugin/isAuthenticated", h.handleIsAuthenticated)
	r.Post("/plugin/acquireUserRoles", h.handleAcquireUserRoles)
	r.Post("/plugin/acquireAuthenticationResult", h.handleAcquireAuthenticationResult)
	r.Post("/plugin/acquireAccessTokenForUser", h.handleAcquireAccessTokenForUser)
}

func (h *Handler) handleInitialize(w http.ResponseWriter, r *http.Request) {
	var cfg models.Configuration
	if !h.decode(w, r, &cfg) {
		return
	}
	h.respond(w, func() (any, error) { return h.plugin.Initialize(r.Context(), cfg) })
}

func (h *Handler) handleIsBiometricsAvailable(w http.ResponseWriter, r *http.Request) {
	h.respond(w, func() (any, error) { return h.plugin.IsBiometricsAvailable(r.Context()) })
}

func (h *Handler) handleCanEvaluateBiometricsPolicy(w http.ResponseWriter, r *http.Request) {
	h.respond(w, func() (any, error) { return h.plugin.CanEvaluateBiometricsPolicy(r.Context()) })
}

func (h *Handler) handleEvaluateBiometricsPolicy(w http.ResponseWriter, r *http.Request) {
	h.respond(w, func() (any, error) { return h.plugin.EvaluateBiometricsPolicy(r.Context()) })
}

func (h *Handler) handleAcquireAccountByUsername(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
	}
	if !h.decode(w, r, &req) {
		return
	}
	h.respond(w, func() (any, error) { return h.plugin.AcquireAccountByUsername(r.Context(), req.Username) })
}

func (h *Handler) handleAcquireCurrentAccount(w http.ResponseWriter, r *http.Request) {
	h.respond(w, func() (any, error) { return h.plugin.AcquireCurrentAccount(r.Context()) })
}

func (h *Handler) handleAcquireAllAccounts(w http.ResponseWriter, r *http.Request) {
	h.respond(w, func() (any, error) { return h.plugin.AcquireAllAccounts(r.Context()) })
}

func (h *Handler) handleAcquireTokenSilently(w http.ResponseWriter, r *http.Request) {
	var req models.SilentRequest
	if !h.decode(w, r, &req) {
		return
	}
	h.respond(w, func() (any, error) { return h.plugin.AcquireTokenSilently(r.Context(), req) })
}

func (h *Handler) handleAcquireTokenInteractively(w http.ResponseWriter, r *http.Request) {
	var req models.InteractiveRequest
	if !h.decode(w, r, &req) {
		return
	}
	h.respond(w, func() (any, error) { return h.plugin.AcquireTokenInteractively(r.Context(), req) })
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req models.InteractiveRequest
	if !h.decode(w, r, &req) {
		return
	}
	h.respond(w, func() (any, error) { return h.plugin.Login(r.Context(), req) })
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	var req models.EndSessionRequest
	if !h.decode(w, r, &req) {
		return
	}
	h.respond(w, func() (any, error) { return h.plugin.Logout(r.Context(), req) })
}

func (h *Handler) handleIsAuthenticated(w http.ResponseWriter, r *http.Request) {
	h.respond(w, func() (any, error) { return h.plugin.IsAuthenticated(r.Context()) })
}

func (h *Handler) handleAcquireUserRoles(w http.ResponseWriter, r *http.Request) {
	h.respond(w, func() (any, error) { return h.plugin.AcquireUserRoles(r.Context()) })
}

func (h *Handler) handleAcquireAuthenticationResult(w http.ResponseWriter, r *http.Request) {
	h.respond(w, func() (any, error) { return h.plugin.AcquireAuthenticationResult(r.Context()) })
}

func (h *Handler) handleAcquireAccessTokenForUser(w http.ResponseWriter, r *http.Request) {
	var req models.AccessTokenRequest
	if !h.decode(w, r, &req) {
		return
	}
	h.respond(w, func() (any, error) { return h.plugin.AcquireAccessTokenForUser(r.Context(), req) })
}

// decode parses the request body. Empty bodies are allowed for operations
// whose request shape is entirely optional.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, into any) bool {
	if r.Body == nil || r.ContentLength == 0 {
		return true
	}
	if err := json.NewDecoder(r.Body).Decode(into); err != nil {
		h.writeError(w, autherrors.New(autherrors.CodeInvalidOptions, "invalid request body"))
		return false
	}
	return true
}

func (h *Handler) respond(w http.ResponseWriter, op func() (any, error)) {
	envelope, err := op()
	if err != nil {
		h.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(envelope); err != nil {
		h.logger.Warn("response encoding failed", zap.Error(err))
	}
}

// writeError renders the normalized error body with a status derived from
// its code. The body shape is the same every shell already branches on.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	normalized := autherrors.Normalize(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusFor(normalized.Code))
	_ = json.NewEncoder(w).Encode(normalized)
}

func statusFor(code autherrors.Code) int {
	switch code {
	case autherrors.CodeInvalidOptions, autherrors.CodeOptionsMissing, autherrors.CodeUserCancelled:
		return http.StatusBadRequest
	case autherrors.CodeNoAccount:
		return http.StatusNotFound
	case autherrors.CodeInteractionRequired:
		return http.StatusUnauthorized
	case autherrors.CodeNetworkError:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
