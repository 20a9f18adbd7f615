package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/xy-planning-network/respond"
)

const requestIDHeader = "X-Request-Id"

// RequestID adds a uuid to the request context under respond.RequestIDKey
// and echoes it in the X-Request-Id response header.
//
// An X-Request-Id sent by the client that parses as a uuid is kept.
func RequestID() Adapter {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(requestIDHeader)
			if _, err := uuid.Parse(id); err != nil {
				id = uuid.NewString()
			}

			w.Header().Set(requestIDHeader, id)
			h.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), respond.RequestIDKey, id)))
		})
	}
}
