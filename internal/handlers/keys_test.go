package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gorilla/mux"
)

func TestPublishAndLookupKey(t *testing.T) {
	store := newTestStore(t)
	defer store.Close()
	authn := newTestAuthenticator()
	authHandler := &AuthHandler{Store: store, Authn: authn}
	keyHandler := &KeyHandler{Store: store}

	aliceToken, _ := registerUser(t, authHandler, "alice@x.com", "pw1")
	bobToken, bobID := registerUser(t, authHandler, "bob@x.com", "pw2")

	// bob publishes his key
	body, _ := json.Marshal(PublishKeyRequest{PublicKeyB64: "Zm9v"})
	req := httptest.NewRequest("POST", "/keys", bytes.NewBuffer(body))
	rr := doAuthed(authn, bobToken, keyHandler.PublishKey, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("publish returned %d: %s", rr.Code, rr.Body.String())
	}
	var published PublicKeyResponse
	json.NewDecoder(rr.Body).Decode(&published)
	if published.UserID != bobID || published.PublicKeyB64 == nil || *published.PublicKeyB64 != "Zm9v" {
		t.Errorf("Unexpected publish response: %+v", published)
	}

	// alice looks it up and gets the exact bytes back
	req = httptest.NewRequest("GET", "/keys/"+strconv.Itoa(bobID), nil)
	req = mux.SetURLVars(req, map[string]string{"id": strconv.Itoa(bobID)})
	rr = doAuthed(authn, aliceToken, keyHandler.GetKey, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("lookup returned %d: %s", rr.Code, rr.Body.String())
	}
	var looked PublicKeyResponse
	json.NewDecoder(rr.Body).Decode(&looked)
	if looked.PublicKeyB64 == nil || *looked.PublicKeyB64 != "Zm9v" {
		t.Errorf("Expected key 'Zm9v', got %v", looked.PublicKeyB64)
	}
}

func TestLookupKeyBeforePublish(t *testing.T) {
	store := newTestStore(t)
	defer store.Close()
	authn := newTestAuthenticator()
	authHandler := &AuthHandler{Store: store, Authn: authn}
	keyHandler := &KeyHandler{Store: store}

	token, userID := registerUser(t, authHandler, "alice@x.com", "pw1")

	req := httptest.NewRequest("GET", "/keys/"+strconv.Itoa(userID), nil)
	req = mux.SetURLVars(req, map[string]string{"id": strconv.Itoa(userID)})
	rr := doAuthed(authn, token, keyHandler.GetKey, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("lookup returned %d", rr.Code)
	}
	var res PublicKeyResponse
	json.NewDecoder(rr.Body).Decode(&res)
	if res.PublicKeyB64 != nil {
		t.Errorf("Expected null key before publish, got %v", *res.PublicKeyB64)
	}
}

func TestLookupKeyUnknownUser(t *testing.T) {
	store := newTestStore(t)
	defer store.Close()
	authn := newTestAuthenticator()
	authHandler := &AuthHandler{Store: store, Authn: authn}
	keyHandler := &KeyHandler{Store: store}

	token, _ := registerUser(t, authHandler, "alice@x.com", "pw1")

	req := httptest.NewRequest("GET", "/keys/9999", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "9999"})
	rr := doAuthed(authn, token, keyHandler.GetKey, req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("handler returned wrong status code: got %v want %v", rr.Code, http.StatusNotFound)
	}
}
