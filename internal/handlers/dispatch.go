package handlers

import (
	"fmt"
	"io"
	"net/http"

	"auth_api/internal/codec"
	"auth_api/internal/service"

	"github.com/gin-gonic/gin"
)

// maxBodyBytes caps a form body; larger bodies fail with an error payload.
const maxBodyBytes = 1 << 20 // 1 MB

// dispatch routes by method first, then by path marker.
// POST bodies are read before the path is inspected.
func (h *Handler) dispatch(c *gin.Context) {
	path := c.Request.URL.Path

	switch c.Request.Method {
	case http.MethodPost:
		data, err := readForm(c)
		if err != nil {
			h.logAndJSONError(c, "request_body_read_failed", err)
			return
		}
		switch {
		case h.matches(path, signUpPath):
			h.signUp(c, data)
		case h.matches(path, loginPath):
			h.login(c, data)
		default:
			h.respondError(c, service.ErrInvalidEndpoint)
		}
	case http.MethodGet:
		if h.matches(path, userPath) {
			h.getUser(c, codec.ParseQuery(c.Request.URL.RawQuery))
			return
		}
		h.respondError(c, service.ErrInvalidEndpoint)
	default:
		h.respondError(c, service.ErrUnsupportedMethod)
	}
}

func readForm(c *gin.Context) (map[string]string, error) {
	if c.Request.Body == nil {
		return map[string]string{}, nil
	}
	b, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read request body: %w", err)
	}
	return codec.ParseForm(string(b)), nil
}
