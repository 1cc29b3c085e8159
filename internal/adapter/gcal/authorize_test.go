package gcal

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

func newTestAuthorizer(t *testing.T, tokenHandler http.HandlerFunc) *Authorizer {
	t.Helper()
	tokenSrv := httptest.NewServer(tokenHandler)
	t.Cleanup(tokenSrv.Close)

	cfg := Credentials{ClientID: "id", ClientSecret: "secret", RedirectURL: "http://localhost:3000/oauth2callback"}.OAuthConfig()
	cfg.Endpoint = oauth2.Endpoint{AuthURL: "https://accounts.example/auth", TokenURL: tokenSrv.URL, AuthStyle: oauth2.AuthStyleInParams}

	auth, err := NewAuthorizer(cfg)
	require.NoError(t, err)
	return auth
}

func TestAuthURL(t *testing.T) {
	auth := newTestAuthorizer(t, func(http.ResponseWriter, *http.Request) {})

	u, err := url.Parse(auth.AuthURL())
	require.NoError(t, err)
	q := u.Query()
	assert.Equal(t, "offline", q.Get("access_type"))
	assert.Equal(t, "consent select_account", q.Get("prompt"))
	assert.Equal(t, "https://www.googleapis.com/auth/calendar", q.Get("scope"))
	assert.Equal(t, auth.state, q.Get("state"))
	assert.Len(t, auth.state, 32)
}

func TestCallbackHandlerDeliversRefreshToken(t *testing.T) {
	auth := newTestAuthorizer(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "the-code", r.PostForm.Get("code"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"at","refresh_token":"rt","token_type":"Bearer","expires_in":3600}`))
	})

	tokens := make(chan *oauth2.Token, 1)
	rec := httptest.NewRecorder()
	auth.CallbackHandler(tokens).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/oauth2callback?code=the-code&state="+auth.state, nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<pre>rt</pre>")
	require.Len(t, tokens, 1)
	assert.Equal(t, "rt", (<-tokens).RefreshToken)
}

func TestCallbackHandlerRejectsBadRequests(t *testing.T) {
	auth := newTestAuthorizer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"at","token_type":"Bearer"}`))
	})
	tokens := make(chan *oauth2.Token, 1)
	handler := auth.CallbackHandler(tokens)

	cases := map[string]struct {
		target string
		status int
	}{
		"wrong state":      {"/oauth2callback?code=c&state=nope", http.StatusBadRequest},
		"missing code":     {"/oauth2callback?state=" + auth.state, http.StatusBadRequest},
		"no refresh token": {"/oauth2callback?code=c&state=" + auth.state, http.StatusBadGateway},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.target, nil))
			assert.Equal(t, tc.status, rec.Code)
		})
	}
	assert.Empty(t, tokens)
}
