package domain

import "context"

type CtxKey string

const (
	KeyIdentity    CtxKey = "Identity"
	KeyRequestID   CtxKey = "RequestID"
	KeyRequestedAt CtxKey = "RequestedAt"
)

// Identity is the minimal caller descriptor decoded from a credential.
// It deliberately carries no role; roles are always re-read from the store.
type Identity struct {
	ID       string `json:"id"`
	UserName string `json:"userName"`
}

// WithIdentity returns a copy of ctx carrying id.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, KeyIdentity, id)
}

// IdentityFrom returns the identity attached by the authentication stage.
func IdentityFrom(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(KeyIdentity).(Identity)
	return id, ok && id.ID != ""
}
