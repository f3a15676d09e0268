package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"auth_api/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	blockedWait = 100 * time.Millisecond
	enterWait   = 2 * time.Second
)

func waitEntered(t *testing.T, entered <-chan string, want string) {
	t.Helper()
	select {
	case got := <-entered:
		if got != want {
			t.Fatalf("SignUp entered by %q, want %q", got, want)
		}
	case <-time.After(enterWait):
		t.Fatalf("SignUp for %q never started", want)
	}
}

// sendSignUp fires a sign-up in the background; wg tracks completion.
func sendSignUp(r http.Handler, wg *sync.WaitGroup, username string) {
	wg.Add(1)
	go func() {
		defer wg.Done()
		req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader("username="+username+"&password=x"))
		r.ServeHTTP(httptest.NewRecorder(), req)
	}()
}

func TestSerialize_OneRequestAtATime(t *testing.T) {
	auth := newBlockingAuth()
	r := newTestRouter(&service.Service{Authorization: auth, Storage: &mockStorage{}})

	var wg sync.WaitGroup
	sendSignUp(r, &wg, "first")
	waitEntered(t, auth.entered, "first")

	sendSignUp(r, &wg, "second")
	select {
	case name := <-auth.entered:
		t.Fatalf("%q started while the first request was still running", name)
	case <-time.After(blockedWait):
	}

	close(auth.release)
	waitEntered(t, auth.entered, "second")
	wg.Wait()
}

func TestHandlerFlush_WaitsForInFlightRequest(t *testing.T) {
	auth := newBlockingAuth()
	storage := &mockStorage{}
	gin.SetMode(gin.TestMode)
	h := NewHandler(&service.Service{Authorization: auth, Storage: storage}, nil, false)
	r := h.InitRoutes()

	var wg sync.WaitGroup
	sendSignUp(r, &wg, "bob")
	waitEntered(t, auth.entered, "bob")

	flushed := make(chan error, 1)
	go func() { flushed <- h.Flush() }()
	select {
	case <-flushed:
		t.Fatal("flush ran while a sign-up was in flight")
	case <-time.After(blockedWait):
	}

	close(auth.release)
	select {
	case err := <-flushed:
		if err != nil {
			t.Fatalf("Flush returned error: %v", err)
		}
	case <-time.After(enterWait):
		t.Fatal("flush never ran after the request finished")
	}
	wg.Wait()

	if storage.flushes != 1 {
		t.Fatalf("expected 1 flush, got %d", storage.flushes)
	}
}

func TestDispatch_BodyTooLarge(t *testing.T) {
	auth := &mockAuth{}
	r := newTestRouter(newMockService(auth))

	body := "username=bob&password=" + strings.Repeat("a", maxBodyBytes)
	code, got := doRequest(t, r, http.MethodPost, "/signup", body)

	if code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", code)
	}
	if !strings.Contains(got["error"], "request body too large") {
		t.Fatalf("expected body-too-large error, got %v", got)
	}
	if auth.signUpCalls != 0 {
		t.Fatalf("SignUp must not run for an oversized body, got %d calls", auth.signUpCalls)
	}
}
