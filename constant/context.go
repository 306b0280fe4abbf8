package constant

type contextKey string

const (
	// ActorIDKey carries the authenticated operator id extracted from
	// the gateway token.
	ActorIDKey contextKey = "actor_id"
	// RequestIDKey carries the correlation id for exactly-once retries.
	RequestIDKey contextKey = "request_id"
)
