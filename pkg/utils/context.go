package utils

import (
	"context"
)

type contextKey string

const (
	ActorIDKey   contextKey = "actor_id"
	RequestIDKey contextKey = "request_id"
)

// GetActorIDFromContext returns the acting admin id placed in the context
// by the identity middleware. Zero means no identity was supplied.
func GetActorIDFromContext(ctx context.Context) (int64, bool) {
	actorVal := ctx.Value(ActorIDKey)
	if actorVal == nil {
		return 0, false
	}

	actorID, ok := actorVal.(int64)
	if !ok || actorID == 0 {
		return 0, false
	}

	return actorID, true
}

func SetActorContext(ctx context.Context, actorID int64) context.Context {
	return context.WithValue(ctx, ActorIDKey, actorID)
}

func GetRequestIDFromContext(ctx context.Context) (string, bool) {
	requestVal := ctx.Value(RequestIDKey)
	if requestVal == nil {
		return "", false
	}

	requestID, ok := requestVal.(string)
	return requestID, ok
}

func SetRequestIDContext(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}
