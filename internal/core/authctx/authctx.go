// Package authctx carries the current access token through a request context
// so the upstream transport can attach it to outgoing calls. Clearing the
// session therefore detaches the token without any transport-level state.
package authctx

import "context"

type tokenKey struct{}

// WithToken returns a context carrying the access token.
func WithToken(ctx context.Context, token string) context.Context {
	if token == "" {
		return ctx
	}
	return context.WithValue(ctx, tokenKey{}, token)
}

// Token returns the access token carried by ctx, or "" when anonymous.
func Token(ctx context.Context) string {
	tok, _ := ctx.Value(tokenKey{}).(string)
	return tok
}
