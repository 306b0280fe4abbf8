package context

import (
	"context"

	"github.com/muhammadheryan/warehouse/constant"
)

func GetActorID(ctx context.Context) (uint64, bool) {
	v := ctx.Value(constant.ActorIDKey)
	if v == nil {
		return 0, false
	}
	id, ok := v.(uint64)
	return id, ok
}

func GetRequestID(ctx context.Context) (string, bool) {
	v := ctx.Value(constant.RequestIDKey)
	if v == nil {
		return "", false
	}
	id, ok := v.(string)
	return id, ok
}
