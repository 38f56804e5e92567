// Package middleware provides HTTP middleware for the Carte API.
//
// Middleware is composed with Chain, applied outermost-first:
//
//	wrapped := middleware.Chain(mux,
//	    middleware.RequestID,
//	    middleware.Logger,
//	    middleware.Recovery,
//	    middleware.CORS(origins),
//	    middleware.RateLimit(limiter),
//	    middleware.Idempotency(store),
//	    middleware.Compress,
//	)
//
// RequestID tags every request with a UUID (client-supplied X-Request-ID
// is honored) that the logger and error responses carry. Recovery turns
// panics into problem-JSON 500s. RateLimit is a per-client token bucket;
// Idempotency caches responses for mutating requests that carry an
// Idempotency-Key header. Both key on the client address since the API
// has no authentication surface.
package middleware
