package engine

import (
	"context"

	"github.com/simplecontainer/deployer/pkg/static"
)

type tokenKey struct{}

// WithToken marks ctx so that engine calls made with it share one pooled
// connection.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenKey{}, token)
}

// Token returns the pool token carried by ctx, or the default one.
func Token(ctx context.Context) string {
	if token, ok := ctx.Value(tokenKey{}).(string); ok && token != "" {
		return token
	}

	return static.DEFAULT_POOL_TOKEN
}
