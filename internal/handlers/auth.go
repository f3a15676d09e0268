package handlers

import (
	"errors"
	"net/http"

	"auth_api"
	"auth_api/internal/service"

	"github.com/gin-gonic/gin"
)

// clientErrors maps domain errors to the text clients receive.
// Anything not listed is echoed with its own message.
var clientErrors = []struct {
	err error
	msg string
}{
	{service.ErrMissingFields, "Username and password are required"},
	{service.ErrMissingUsername, "Username is required"},
	{service.ErrUserAlreadyExists, "User already exists"},
	{service.ErrUserNotFound, "User does not exist"},
	{service.ErrInvalidPassword, "Invalid password"},
	{service.ErrInvalidEndpoint, "Invalid endpoint"},
	{service.ErrUnsupportedMethod, "Only POST and GET requests are supported"},
}

func errorMessage(err error) string {
	for _, ce := range clientErrors {
		if errors.Is(err, ce.err) {
			return ce.msg
		}
	}
	return err.Error()
}

// credentials pulls username and password out of a decoded form.
func credentials(data map[string]string) (string, string, bool) {
	username, okUser := data["username"]
	password, okPass := data["password"]
	return username, password, okUser && okPass
}

func (h *Handler) signUp(c *gin.Context, data map[string]string) {
	username, password, ok := credentials(data)
	if !ok {
		h.respondError(c, service.ErrMissingFields)
		return
	}

	if err := h.services.SignUp(username, password); err != nil {
		if errors.Is(err, service.ErrUserAlreadyExists) {
			if h.log != nil {
				h.log.Infow("auth_sign_up_failed", "username", username, "err", err)
			}
			h.respondError(c, err)
			return
		}
		h.logAndJSONError(c, "auth_sign_up_save_failed", err, "username", username)
		return
	}

	if h.log != nil {
		h.log.Infow("auth_signed_up", "username", username, "file", h.services.Location())
	}
	c.JSON(http.StatusOK, auth_api.MessageResponse{Message: auth_api.MsgUserRegistered})
}

func (h *Handler) login(c *gin.Context, data map[string]string) {
	username, password, ok := credentials(data)
	if !ok {
		h.respondError(c, service.ErrMissingFields)
		return
	}

	if err := h.services.Login(username, password); err != nil {
		if h.log != nil {
			h.log.Infow("auth_login_failed", "username", username, "err", err)
		}
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, auth_api.MessageResponse{Message: auth_api.MsgLoginSuccess})
}

func (h *Handler) getUser(c *gin.Context, query map[string]string) {
	username, ok := query["username"]
	if !ok {
		h.respondError(c, service.ErrMissingUsername)
		return
	}

	u, err := h.services.GetUser(username)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, auth_api.UserResponse{Username: u.Username, Password: u.Password})
}

// respondError writes {"error": ...}. Status is always 200.
func (h *Handler) respondError(c *gin.Context, err error) {
	c.JSON(http.StatusOK, auth_api.ErrorResponse{Error: errorMessage(err)})
}

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	h.respondError(c, err)
}
