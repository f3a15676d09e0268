package handlers

import (
	"strings"
	"sync"

	"auth_api/internal/logger"
	"auth_api/internal/service"

	"github.com/gin-gonic/gin"
)

// Endpoint markers. By default a request matches when its path contains the marker.
const (
	signUpPath = "/signup"
	loginPath  = "/login"
	userPath   = "/user"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
	strict   bool

	// mu serializes request handling: one request completes before the next starts.
	mu sync.Mutex
}

// NewHandler constructs a new HTTP handler with dependencies.
// strictRouting switches path matching from substring to exact.
func NewHandler(services *service.Service, log *logger.Logger, strictRouting bool) *Handler {
	return &Handler{services: services, log: log, strict: strictRouting}
}

// InitRoutes builds and returns the Gin router.
// No routes are registered: every request falls through to dispatch.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(h.requestID, h.accessLog, gin.CustomRecovery(h.recoverJSON), h.serialize)
	router.NoRoute(h.dispatch)
	return router
}

// Flush saves the store under the request lock, so it never interleaves
// with a sign-up that is still writing its own snapshot.
func (h *Handler) Flush() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.services.Flush()
}

func (h *Handler) matches(path, endpoint string) bool {
	if h.strict {
		return path == endpoint
	}
	return strings.Contains(path, endpoint)
}
