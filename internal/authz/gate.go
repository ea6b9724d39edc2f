// Package authz answers "does this actor hold that permission". The gate
// is read-only; callers decide what a refusal means.
package authz

import (
	"context"
	"time"

	"go-tenant-user-api/internal/core/cache"
	"go-tenant-user-api/internal/domain"
)

type Gate struct {
	access domain.AccessRepository
	cache  *cache.Cache // optional; nil hits the store directly
	ttl    time.Duration
}

func NewGate(access domain.AccessRepository) *Gate {
	return &Gate{access: access}
}

// WithCache caches each actor's permission-name set for ttl.
func (g *Gate) WithCache(c *cache.Cache, ttl time.Duration) *Gate {
	g.cache = c
	g.ttl = ttl
	return g
}

// Allows reports whether any role held by the actor contains permission.
func (g *Gate) Allows(ctx context.Context, actorID, permission string) (bool, error) {
	names, err := g.permissionNames(ctx, actorID)
	if err != nil {
		return false, err
	}
	for _, n := range names {
		if n == permission {
			return true, nil
		}
	}
	return false, nil
}

// Forget drops the cached permission set after a grant or revoke.
func (g *Gate) Forget(ctx context.Context, actorID string) error {
	if g.cache == nil {
		return nil
	}
	return g.cache.Forget(ctx, permKey(actorID))
}

func (g *Gate) permissionNames(ctx context.Context, actorID string) ([]string, error) {
	if g.cache == nil {
		return g.access.PermissionNames(ctx, actorID)
	}
	names, err := cache.GetOrLoadJSON(g.cache, ctx, permKey(actorID), g.ttl,
		func(ctx context.Context) (*[]string, error) {
			ns, e := g.access.PermissionNames(ctx, actorID)
			if e != nil {
				return nil, e
			}
			return &ns, nil
		})
	if err != nil {
		return nil, err
	}
	if names == nil {
		return nil, nil
	}
	return *names, nil
}

func permKey(actorID string) string { return "perms:" + actorID }
