package middleware

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/vuxmai/product-updated-sink/pkg/correlationid"
)

// CorrelationID reads the correlation ID header from the request, generating
// one when absent, echoes it on the response and stores it in the request
// context for log enrichment.
func CorrelationID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(correlationid.Header)
			if id == "" {
				id = uuid.NewString()
			}

			w.Header().Set(correlationid.Header, id)
			next.ServeHTTP(w, r.WithContext(correlationid.NewContext(r.Context(), id)))
		})
	}
}
