package middleware

import (
	"github.com/go-chi/cors"
)

// NewCORS builds the CORS policy for the given allowed origins. The API
// exposes GET/POST/PUT routes only, and mutating requests authenticate
// with the X-API-Key header, so that header must be allowed through
// preflight.
func NewCORS(allowedOrigins []string) *cors.Cors {
	return cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders: []string{
			"Content-Type",
			"X-API-Key",
		},
		ExposedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	})
}
