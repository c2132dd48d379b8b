//go:build wireinject
// +build wireinject

package di

import (
	"context"

	"github.com/google/wire"
	"github.com/listique/client/internal/clients"
	"github.com/listique/client/internal/controllers"
	"github.com/listique/client/internal/session"
	"github.com/redis/go-redis/v9"
	gomock "go.uber.org/mock/gomock"

	bk "github.com/listique/client/internal/broker"
	cache "github.com/listique/client/internal/cache"
	cfg "github.com/listique/client/internal/config"
	tcfg "github.com/listique/client/internal/testutils/config"
	c "github.com/listique/client/internal/testutils/containers"
	mk "github.com/listique/client/internal/testutils/mocks"
)

var EnvConfigSet = wire.NewSet(
	cfg.NewEnvConfig,
	wire.Bind(new(session.TokenSourceConfigurator), new(*cfg.EnvConfig)),
	wire.Bind(new(clients.ClientConfigurator), new(*cfg.EnvConfig)),
	wire.Bind(new(cache.CacheConfigurator), new(*cfg.EnvConfig)),
	wire.Bind(new(cache.RedisConfigurator), new(*cfg.EnvConfig)),
	wire.Bind(new(bk.BrokerConfigurator), new(*cfg.EnvConfig)),
	wire.Bind(new(PageSizeConfigurator), new(*cfg.EnvConfig)),
)

var SessionSet = wire.NewSet(
	session.NewTokenSource,
	wire.Struct(new(session.SessionCfg), "Source"),
	session.NewSession,
	wire.Bind(new(clients.Session), new(*session.Session)),
)

var ResourceClientSet = wire.NewSet(
	wire.Struct(new(clients.ResourceClientCfg), "Session", "Configurator"),
	clients.NewResourceClient,
	wire.Bind(new(controllers.ResourceApi), new(*clients.ResourceClient)),
)

var MemoryCacheSet = wire.NewSet(
	cache.NewMemoryStore,
	wire.Bind(new(cache.Store), new(*cache.MemoryStore)),
	wire.Struct(new(cache.QueryCacheCfg), "*"),
	cache.NewQueryCache,
	wire.Bind(new(controllers.PageCache), new(*cache.QueryCache)),
)

var RedisCacheSet = wire.NewSet(
	cache.NewRedisClient,
	wire.Bind(new(cache.StoreRedisApi), new(*redis.Client)),
	cache.NewRedisStore,
	wire.Bind(new(cache.Store), new(*cache.RedisStore)),
	wire.Struct(new(cache.QueryCacheCfg), "*"),
	cache.NewQueryCache,
	wire.Bind(new(controllers.PageCache), new(*cache.QueryCache)),
)

var RedisBrokerSet = wire.NewSet(
	bk.NewRedisBroker,
	wire.Bind(new(bk.BrokerRedisApi), new(*redis.Client)),
	wire.Bind(new(controllers.Invalidations), new(*bk.Redis)),
)

var LocalConfigSet = wire.NewSet(
	NewLocalConfig,
	wire.Bind(new(session.TokenSourceConfigurator), new(*tcfg.TestConfig)),
	wire.Bind(new(clients.ClientConfigurator), new(*tcfg.TestConfig)),
	wire.Bind(new(cache.CacheConfigurator), new(*tcfg.TestConfig)),
	wire.Bind(new(PageSizeConfigurator), new(*tcfg.TestConfig)),
)

var ScenarioConfigSet = wire.NewSet(
	NewScenarioConfig,
	wire.Bind(new(cache.CacheConfigurator), new(*tcfg.TestConfig)),
	wire.Bind(new(PageSizeConfigurator), new(*tcfg.TestConfig)),
)

var MockedResourceApiSet = wire.NewSet(
	mk.NewMockResourceApi,
	wire.Bind(new(controllers.ResourceApi), new(*mk.MockResourceApi)),
)

var MockedNotifierSet = wire.NewSet(
	mk.NewMockNotifier,
	wire.Bind(new(controllers.Notifier), new(*mk.MockNotifier)),
)

var RedisContainerSet = wire.NewSet(
	c.NewRedisContainer,
	wire.Bind(new(cache.RedisConfigurator), new(*c.RedisContainer)),
	wire.Bind(new(bk.BrokerConfigurator), new(*c.RedisContainer)),
)

func InjectBrowser(ctx context.Context, envFile *string, lc ListingCfg) (*Browser, func(), error) {

	wire.Build(
		EnvConfigSet,
		SessionSet,
		ResourceClientSet,
		MemoryCacheSet,
		controllers.NewSlogNotifier,
		NewRawController,
		wire.Struct(new(Browser), "*"),
	)

	return nil, nil, nil
}

func InjectSyncedBrowser(ctx context.Context, envFile *string, lc ListingCfg) (*Browser, func(), error) {

	wire.Build(
		EnvConfigSet,
		SessionSet,
		ResourceClientSet,
		RedisCacheSet,
		RedisBrokerSet,
		controllers.NewSlogNotifier,
		NewSyncedRawController,
		wire.Struct(new(Browser), "*"),
	)

	return nil, nil, nil
}

func InjectLocalBrowser(ctx context.Context, lc ListingCfg) (*LocalBrowser, func(), error) {

	wire.Build(
		NewLocalApi,
		NewLocalServer,
		LocalConfigSet,
		SessionSet,
		ResourceClientSet,
		MemoryCacheSet,
		controllers.NewSlogNotifier,
		NewRawController,
		wire.Struct(new(Browser), "*"),
		wire.Struct(new(LocalBrowser), "*"),
	)

	return nil, nil, nil
}

func InjectMockedScenario(ctx context.Context, mockController *gomock.Controller, lc ListingCfg) (*MockedScenario, func(), error) {

	wire.Build(
		ScenarioConfigSet,
		MockedResourceApiSet,
		MockedNotifierSet,
		MemoryCacheSet,
		NewMockedController,
		wire.Struct(new(MockedScenario), "*"),
	)

	return nil, nil, nil
}

func InjectRedisScenario(ctx context.Context) (*RedisScenario, func(), error) {

	wire.Build(
		RedisContainerSet,
		cache.NewRedisClient,
		wire.Bind(new(cache.StoreRedisApi), new(*redis.Client)),
		cache.NewRedisStore,
		RedisBrokerSet,
		wire.Struct(new(RedisScenario), "*"),
	)

	return nil, nil, nil
}
