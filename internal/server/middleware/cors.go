package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// NewCORSHandler returns a middleware that applies CORS headers for allowedOrigins.
// Each origin must be a full origin (scheme + host, no trailing slash).
// htmx request headers are allowed so the contact form can post cross-origin.
func NewCORSHandler(allowedOrigins []string) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "HX-Request", "HX-Current-URL", "HX-Target", "HX-Trigger"},
	})
	return c.Handler
}
