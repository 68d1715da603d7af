package api

import (
	"context"
	"errors"

	"github.com/rpupo63/portfolio-backend/auth"
)

type keyType string

const (
	adminClaimsKey keyType = "adminClaims"
)

// ctxWithAdminClaims adds verified admin token claims to the context
func ctxWithAdminClaims(ctx context.Context, claims *auth.Claims) context.Context {
	return context.WithValue(ctx, adminClaimsKey, claims)
}

// ctxGetAdminClaims retrieves verified admin token claims from the context
func ctxGetAdminClaims(ctx context.Context) (*auth.Claims, error) {
	ctxValue := ctx.Value(adminClaimsKey)
	if ctxValue == nil {
		return nil, errors.New("admin claims not found in context")
	}
	claims, ok := ctxValue.(*auth.Claims)
	if !ok {
		return nil, errors.New("value is not of type `*auth.Claims`")
	}
	return claims, nil
}
