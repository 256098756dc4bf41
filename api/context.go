package api

import (
	"context"
	"errors"

	"github.com/fableration/site-backend/auth"
)

type keyType string

const identityKey keyType = "identity"

// ctxWithIdentity adds the verified identity to the context
func ctxWithIdentity(ctx context.Context, id *auth.Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// ctxGetIdentity retrieves the verified identity from the context
func ctxGetIdentity(ctx context.Context) (*auth.Identity, error) {
	ctxValue := ctx.Value(identityKey)
	if ctxValue == nil {
		return nil, errors.New("identity not found in context")
	}
	id, ok := ctxValue.(*auth.Identity)
	if !ok {
		return nil, errors.New("context value is not an identity")
	}
	return id, nil
}
