package instrument

import "context"

type correlationIDKey struct{}

// SetCorrelationID returns a context carrying the request correlation ID.
func SetCorrelationID(ctx context.Context, cid string) context.Context {
	return context.WithValue(ctx, correlationIDKey{}, cid)
}

// GetCorrelationID returns the correlation ID stored in ctx. It returns an
// empty string when none is set and a sentinel when the stored value is not a
// string, so log output never silently drops a bad chain.
func GetCorrelationID(ctx context.Context) string {
	v := ctx.Value(correlationIDKey{})
	if v == nil {
		return ""
	}

	cid, ok := v.(string)
	if !ok {
		return "[invalid_chain_id]"
	}

	return cid
}
