package middleware

import (
	"net/http"

	"github.com/fernet/fernet-go"

	"github.com/herdfolio/Livestock-Portfolio-Backend/internal/api/response"
)

// NewAPIKey returns a middleware that protects mutating endpoints. Clients
// present a fernet token in the X-API-Key header; the token must verify
// against the configured key. Tokens do not expire (ttl 0): revocation is
// done by rotating the key.
//
// An empty key disables authentication, for local development.
func NewAPIKey(fernetKey string) (func(http.Handler) http.Handler, error) {
	if fernetKey == "" {
		return func(next http.Handler) http.Handler { return next }, nil
	}

	key, err := fernet.DecodeKey(fernetKey)
	if err != nil {
		return nil, err
	}
	keys := []*fernet.Key{key}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get("X-API-Key")
			if token == "" {
				response.RespondError(w, http.StatusUnauthorized, "unauthorized", "Missing API key")
				return
			}

			if payload := fernet.VerifyAndDecrypt([]byte(token), 0, keys); payload == nil {
				response.RespondError(w, http.StatusUnauthorized, "unauthorized", "Invalid API key")
				return
			}

			next.ServeHTTP(w, r)
		})
	}, nil
}
