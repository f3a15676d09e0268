package handlers

import (
	"fmt"
	"net/http"
	"time"

	"auth_api"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "requestId"
)

// requestID tags every request with a fresh id.
func (h *Handler) requestID(c *gin.Context) {
	id := uuid.NewString()
	c.Set(requestIDKey, id)
	c.Header(requestIDHeader, id)
	c.Next()
}

func (h *Handler) accessLog(c *gin.Context) {
	start := time.Now()
	c.Next()
	if h.log == nil {
		return
	}
	h.log.Infow("request",
		"request_id", c.GetString(requestIDKey),
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", c.Writer.Status(),
		"latency", time.Since(start),
	)
}

// serialize holds the handler lock for the rest of the chain.
func (h *Handler) serialize(c *gin.Context) {
	h.mu.Lock()
	defer h.mu.Unlock()
	c.Next()
}

// recoverJSON turns a handler panic into an error payload; the server keeps running.
func (h *Handler) recoverJSON(c *gin.Context, recovered any) {
	msg := fmt.Sprint(recovered)
	if err, ok := recovered.(error); ok {
		msg = err.Error()
	}
	if h.log != nil {
		h.log.Errorw("request_panic", "request_id", c.GetString(requestIDKey), "err", msg)
	}
	c.AbortWithStatusJSON(http.StatusOK, auth_api.ErrorResponse{Error: msg})
}
