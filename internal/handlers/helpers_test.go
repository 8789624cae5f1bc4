package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"minisignal/internal/auth"
	"minisignal/internal/middleware"
	"minisignal/internal/store/sqlstore"
)

func newTestStore(t *testing.T) *sqlstore.SQLStore {
	s, err := sqlstore.New("sqlite3", ":memory:")
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func newTestAuthenticator() *auth.Authenticator {
	return auth.NewAuthenticator("test-secret", time.Hour)
}

// registerUser runs a request through the real Register handler and returns
// the issued token and user id.
func registerUser(t *testing.T, h *AuthHandler, email, password string) (string, int) {
	body, _ := json.Marshal(Credentials{Email: email, Password: password})
	req := httptest.NewRequest("POST", "/register", bytes.NewBuffer(body))
	rr := httptest.NewRecorder()
	http.HandlerFunc(h.Register).ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("register %s returned %d: %s", email, rr.Code, rr.Body.String())
	}

	var res TokenResponse
	if err := json.NewDecoder(rr.Body).Decode(&res); err != nil {
		t.Fatal(err)
	}
	return res.AccessToken, res.UserID
}

// doAuthed sends a request through RequireAuth into the given handler.
func doAuthed(authn *auth.Authenticator, token string, handler http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	middleware.RequireAuth(authn)(handler).ServeHTTP(rr, req)
	return rr
}
