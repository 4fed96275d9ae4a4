package requestid

import "context"

type key struct{}

func With(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, key{}, id)
}

// From returns "" when no request id is attached.
func From(ctx context.Context) string {
	id, _ := ctx.Value(key{}).(string)
	return id
}
