package atlas

import "context"

type tokenContextKey struct{}

// WithToken returns a context whose requests authenticate with token instead
// of the pending one-shot token or the static API key. The override is scoped
// to calls made with the returned context, which makes it the safe choice when
// requests run concurrently.
func WithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenContextKey{}, token)
}

// TokenFromContext returns the token set with WithToken, if any.
func TokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenContextKey{}).(string)
	if !ok || token == "" {
		return "", false
	}

	return token, true
}
