package pkglog

import "context"

type chainIDContextKey struct{}

const invalidChainID = "[invalid_chain_id]"

// GetCorrelationID returns the correlation ID stored in the context.
//
// Middleware is expected to set this value early in the request lifecycle so
// it can be attached to logs and propagated to downstream calls.
func GetCorrelationID(ctx context.Context) string {
	clm, ok := ctx.Value(chainIDContextKey{}).(string)
	if !ok {
		return invalidChainID
	}
	return clm
}

// LookupCorrelationID returns the correlation ID stored in the context and
// whether one was set.
func LookupCorrelationID(ctx context.Context) (string, bool) {
	clm, ok := ctx.Value(chainIDContextKey{}).(string)
	if !ok || clm == "" {
		return "", false
	}
	return clm, true
}

// SetCorrelationID stores a correlation ID into the context.
func SetCorrelationID(ctx context.Context, cid string) context.Context {
	return context.WithValue(ctx, chainIDContextKey{}, cid)
}

// CorrelationSource supplies the correlation ID of the current operation.
// It is queried every time a record is built.
type CorrelationSource interface {
	CurrentCorrelationID() (string, bool)
}

// CorrelationFunc adapts a function to CorrelationSource.
type CorrelationFunc func() (string, bool)

// CurrentCorrelationID implements CorrelationSource.
func (f CorrelationFunc) CurrentCorrelationID() (string, bool) {
	return f()
}

// ContextCorrelation returns a source reading the correlation ID from ctx.
func ContextCorrelation(ctx context.Context) CorrelationSource {
	return CorrelationFunc(func() (string, bool) {
		return LookupCorrelationID(ctx)
	})
}

type noCorrelation struct{}

func (noCorrelation) CurrentCorrelationID() (string, bool) { return "", false }
