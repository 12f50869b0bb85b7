// Package auth verifies bearer tokens against a JWKS fetched from the
// configured issuer and derives the authenticated user's role.
package auth

import (
	"context"
	"sync"
	"time"

	"github.com/lestrrat-go/jwx/v2/jwk"
	"github.com/patrickmn/go-cache"
)

// JWKProvider fetches and caches a signing key set, refetching on a
// cache miss rather than on a fixed schedule.
type JWKProvider struct {
	URL      string
	CacheTTL time.Duration

	cache *cache.Cache
	once  sync.Once
}

const jwksCacheKey = "jwks"

// Fetch returns the cached key set, fetching and caching it on a miss.
func (p *JWKProvider) Fetch(ctx context.Context) (jwk.Set, error) {
	p.once.Do(func() {
		p.cache = cache.New(p.CacheTTL, p.CacheTTL)
	})

	if set, found := p.cache.Get(jwksCacheKey); found {
		return set.(jwk.Set), nil
	}

	set, err := jwk.Fetch(ctx, p.URL)
	if err != nil {
		return nil, err
	}

	p.cache.Set(jwksCacheKey, set, p.CacheTTL)

	return set, nil
}
