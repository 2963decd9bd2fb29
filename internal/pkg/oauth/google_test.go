package oauth

import (
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func TestGenerateState(t *testing.T) {
	g := NewGoogleService("id", "secret", "http://localhost/callback", []string{"email"})

	a := g.GenerateState("agent/1.0")
	b := g.GenerateState("agent/1.0")
	assert.NotEqual(t, a, b)

	raw, err := base64.URLEncoding.DecodeString(a)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(raw), ".agent/1.0"))
}

func TestRedirectURL(t *testing.T) {
	g := NewGoogleService("client-123", "secret", "http://localhost/callback", []string{"email", "profile"})

	u := g.RedirectURL("abc")
	assert.Contains(t, u, "client_id=client-123")
	assert.Contains(t, u, "state=abc")
	assert.Contains(t, u, "access_type=offline")
}

func TestVerifyUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"g-1","email":"a@x.edu","verified_email":true,"name":"Asha","picture":"https://img/a.png"}`))
	}))
	defer srv.Close()

	g := &GoogleServiceImpl{config: &oauth2.Config{}, userInfoURL: srv.URL}
	info, err := g.VerifyUser(t.Context(), &oauth2.Token{AccessToken: "tok", TokenType: "Bearer"})
	require.NoError(t, err)
	assert.Equal(t, GoogleInformation{GoogleID: "g-1", Email: "a@x.edu", VerifiedEmail: true, Name: "Asha", Picture: "https://img/a.png"}, info)
}

func TestVerifyUser_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	g := &GoogleServiceImpl{config: &oauth2.Config{}, userInfoURL: srv.URL}
	_, err := g.VerifyUser(t.Context(), &oauth2.Token{AccessToken: "tok"})
	assert.Error(t, err)
}
