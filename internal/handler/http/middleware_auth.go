// SPDX-License-Identifier: Apache-2.0

package http

import (
	"crypto/subtle"
	"net/http"

	"github.com/heydancer/dancer-profile/internal/logger"
	"golang.org/x/crypto/bcrypt"
)

// CredentialVerifier checks a username/password pair presented via HTTP
// Basic authentication.
type CredentialVerifier interface {
	Verify(username, password string) bool
}

// staticVerifier matches credentials against the single account the
// server is configured with. The password is held as a bcrypt hash so
// the plaintext never lives longer than construction.
type staticVerifier struct {
	username     string
	passwordHash []byte
}

// NewStaticVerifier builds a [CredentialVerifier] for the configured
// account.
func NewStaticVerifier(username, password string) (CredentialVerifier, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	return &staticVerifier{
		username:     username,
		passwordHash: hash,
	}, nil
}

func (v *staticVerifier) Verify(username, password string) bool {
	usernameMatch := subtle.ConstantTimeCompare([]byte(v.username), []byte(username)) == 1
	passwordMatch := bcrypt.CompareHashAndPassword(v.passwordHash, []byte(password)) == nil

	return usernameMatch && passwordMatch
}

// basicAuth is an HTTP middleware enforcing Basic authentication on every
// route. Requests without valid credentials are rejected with HTTP 401
// before reaching any handler.
func (h *Handler) basicAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		username, password, ok := r.BasicAuth()
		if !ok || !h.verifier.Verify(username, password) {
			log.Warn().Str("func", "*Handler.basicAuth").Msg("rejected unauthenticated request")

			w.Header().Set("WWW-Authenticate", `Basic realm="restricted"`)
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
