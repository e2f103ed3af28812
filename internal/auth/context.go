package auth

import (
	"context"
	"errors"
)

type ctxKey int

const ctxAccountID ctxKey = iota

// WithAccount stores the authenticated account id in context.
func WithAccount(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, ctxAccountID, userID)
}

// AccountID returns the authenticated account id.
func AccountID(ctx context.Context) (string, error) {
	if s, ok := ctx.Value(ctxAccountID).(string); ok && s != "" {
		return s, nil
	}
	return "", errors.New("account not in context")
}
