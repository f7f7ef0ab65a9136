package ctxdata

import (
	"context"

	"coursework_service/internal/domain"
)

type traceIDKey struct{}
type identityKey struct{}

var (
	traceIDKeyInstance  = traceIDKey{}
	identityKeyInstance = identityKey{}
)

func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, traceIDKeyInstance, traceID)
}

func GetTraceID(ctx context.Context) (string, bool) {
	v := ctx.Value(traceIDKeyInstance)
	traceID, ok := v.(string)
	return traceID, ok
}

func WithIdentity(ctx context.Context, identity domain.Identity) context.Context {
	return context.WithValue(ctx, identityKeyInstance, identity)
}

func GetIdentity(ctx context.Context) (domain.Identity, bool) {
	v := ctx.Value(identityKeyInstance)
	identity, ok := v.(domain.Identity)
	return identity, ok
}
