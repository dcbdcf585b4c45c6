// Package auth carries the caller identity resolved by the surrounding
// middleware into the engine as explicit values. It does not authenticate
// anything itself.
package auth

import (
	"context"

	"github.com/pkg/errors"
)

const (
	XUserNameHeader = "X-User-Name"
	XUserRoleHeader = "X-User-Role"
)

type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RolePartner  Role = "PARTNER"
	RoleDriver   Role = "DRIVER"
)

var ErrNoActor = errors.New("actor is not set")

// Actor is the identity on whose behalf a request is executed.
type Actor struct {
	ID   string
	Role Role
}

type actorKey struct{}

func SetAuthContext(ctx context.Context, id string, role Role) context.Context {
	return context.WithValue(ctx, actorKey{}, Actor{ID: id, Role: role})
}

func ActorFromContext(ctx context.Context) (Actor, error) {
	a, ok := ctx.Value(actorKey{}).(Actor)
	if !ok || a.ID == "" {
		return Actor{}, ErrNoActor
	}
	return a, nil
}
