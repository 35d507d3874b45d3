package memcache_fx

import (
	"go.uber.org/fx"
	mem "voyago/pkg/memcache"
)

var Module = fx.Provide(
	provideShareTokens)

func provideShareTokens() mem.ShareTokenStore {
	return mem.NewShareTokens()
}
