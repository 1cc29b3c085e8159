package gcal

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"html/template"
	"net/http"

	"golang.org/x/oauth2"
)

var callbackPage = template.Must(template.New("callback").Parse(`<h3>Authorization complete!</h3>
<p>Copy this refresh token into GOOGLE_REFRESH_TOKEN:</p>
<pre>{{.}}</pre>`))

// Authorizer runs the one-time consent flow that yields a refresh token.
type Authorizer struct {
	config *oauth2.Config
	state  string
}

// NewAuthorizer prepares a consent flow with a random state value.
func NewAuthorizer(config *oauth2.Config) (*Authorizer, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return nil, fmt.Errorf("generate state: %w", err)
	}
	return &Authorizer{config: config, state: hex.EncodeToString(buf)}, nil
}

// AuthURL is the consent page URL. Offline access plus a forced consent
// prompt makes Google issue a refresh token every time.
func (a *Authorizer) AuthURL() string {
	return a.config.AuthCodeURL(a.state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent select_account"),
	)
}

// CallbackHandler exchanges the authorization code and delivers the token on
// tokens. Only the first successful exchange is delivered.
func (a *Authorizer) CallbackHandler(tokens chan<- *oauth2.Token) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		if query.Get("state") != a.state {
			http.Error(w, "invalid state", http.StatusBadRequest)
			return
		}
		code := query.Get("code")
		if code == "" {
			http.Error(w, "No code found in query", http.StatusBadRequest)
			return
		}

		token, err := a.config.Exchange(r.Context(), code)
		if err != nil {
			http.Error(w, "Error retrieving tokens", http.StatusBadGateway)
			return
		}
		if token.RefreshToken == "" {
			http.Error(w, "Google did not return a refresh token; revoke access and retry", http.StatusBadGateway)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_ = callbackPage.Execute(w, token.RefreshToken)

		select {
		case tokens <- token:
		default:
		}
	})
}
