package handlers

import (
	"auth_api/internal/models"
	"auth_api/internal/service"

	"github.com/gin-gonic/gin"
)

// ---- Service Mocks ----

type mockAuth struct {
	signUpErr error
	loginErr  error
	user      models.User
	getErr    error
	panicMsg  string

	signUpCalls  int
	lastUsername string
	lastPassword string
}

func (m *mockAuth) SignUp(username, password string) error {
	m.signUpCalls++
	m.lastUsername = username
	m.lastPassword = password
	if m.panicMsg != "" {
		panic(m.panicMsg)
	}
	return m.signUpErr
}

func (m *mockAuth) Login(username, password string) error {
	m.lastUsername = username
	m.lastPassword = password
	return m.loginErr
}

func (m *mockAuth) GetUser(username string) (models.User, error) {
	m.lastUsername = username
	return m.user, m.getErr
}

// blockingAuth reports each SignUp on entered, then parks it until release is closed.
type blockingAuth struct {
	mockAuth
	entered chan string
	release chan struct{}
}

func newBlockingAuth() *blockingAuth {
	return &blockingAuth{entered: make(chan string, 2), release: make(chan struct{})}
}

func (m *blockingAuth) SignUp(username, password string) error {
	m.entered <- username
	<-m.release
	return nil
}

type mockStorage struct {
	flushes int
}

func (m *mockStorage) Load() (int, error) { return 0, nil }
func (m *mockStorage) Flush() error { m.flushes++; return nil }
func (m *mockStorage) Location() string { return "mock://users" }

// ---- Shared Test Helpers ----

func newTestRouter(s *service.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(s, nil, false)
	return h.InitRoutes()
}

func newMockService(auth *mockAuth) *service.Service {
	return &service.Service{Authorization: auth, Storage: &mockStorage{}}
}
