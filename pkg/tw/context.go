package tw

import "context"

type contextKey struct{}

// WithResolver returns a context carrying r for FromContext.
func WithResolver(ctx context.Context, r *Resolver) context.Context {
	return context.WithValue(ctx, contextKey{}, r)
}

// FromContext returns the resolver stored by WithResolver, or Default.
func FromContext(ctx context.Context) *Resolver {
	if ctx != nil {
		if r, ok := ctx.Value(contextKey{}).(*Resolver); ok && r != nil {
			return r
		}
	}
	return Default
}
