package di

import (
	"context"
	"encoding/json"
	"net/http/httptest"

	"github.com/listique/client/internal/controllers"
	"github.com/listique/client/internal/session"
	"github.com/listique/client/internal/testutils"

	bk "github.com/listique/client/internal/broker"
	cache "github.com/listique/client/internal/cache"
	tcfg "github.com/listique/client/internal/testutils/config"
	c "github.com/listique/client/internal/testutils/containers"
	mk "github.com/listique/client/internal/testutils/mocks"
	sv "github.com/listique/client/internal/testutils/servers"
)

const localToken = "local-dev-token"

// ListingCfg selects the listing an injector should build. A zero
// PageSize falls back to the configured default.
type ListingCfg struct {
	Resource string
	PageSize int
	Prefetch bool
}

type PageSizeConfigurator interface {
	GetPageSize() (int, error)
}

// Browser bundles a raw listing controller with the session backing it,
// so callers can watch for the session being torn down.
type Browser struct {
	Controller *controllers.Controller[json.RawMessage]
	Session    *session.Session
}

// LocalBrowser is a browser wired against an embedded in-memory backend,
// for trying the client out without a real deployment.
type LocalBrowser struct {
	Browser *Browser
	Api     *sv.ResourceApi
	Server  *httptest.Server
}

// MockedScenario is a ticket listing controller backed by a real
// in-memory cache and mocked api/notifier, for controller tests.
type MockedScenario struct {
	Api        *mk.MockResourceApi
	Notifier   *mk.MockNotifier
	Controller *controllers.Controller[testutils.Ticket]
}

// RedisScenario hands integration tests a throwaway redis with the
// store and broker already pointed at it.
type RedisScenario struct {
	Container *c.RedisContainer
	Store     *cache.RedisStore
	Broker    *bk.Redis
}

func resolvePageSize(lc ListingCfg, c PageSizeConfigurator) (int, error) {

	if lc.PageSize > 0 {
		return lc.PageSize, nil
	}

	return c.GetPageSize()
}

func NewRawController(ctx context.Context, lc ListingCfg, c PageSizeConfigurator,
	api controllers.ResourceApi, pageCache controllers.PageCache,
	notifier controllers.Notifier) (*controllers.Controller[json.RawMessage], func(), error) {

	pageSize, err := resolvePageSize(lc, c)

	if err != nil {
		return nil, nil, err
	}

	controller, err := controllers.NewController[json.RawMessage](ctx, controllers.ControllerCfg{
		Resource: lc.Resource,
		PageSize: pageSize,
		Api:      api,
		Cache:    pageCache,
		Notifier: notifier,
		Prefetch: lc.Prefetch,
	})

	if err != nil {
		return nil, nil, err
	}

	return controller, controller.Close, nil
}

// NewSyncedRawController is NewRawController plus an invalidation feed,
// so listings refresh when other sessions mutate the resource.
func NewSyncedRawController(ctx context.Context, lc ListingCfg, c PageSizeConfigurator,
	api controllers.ResourceApi, pageCache controllers.PageCache,
	notifier controllers.Notifier,
	invalidations controllers.Invalidations) (*controllers.Controller[json.RawMessage], func(), error) {

	pageSize, err := resolvePageSize(lc, c)

	if err != nil {
		return nil, nil, err
	}

	controller, err := controllers.NewController[json.RawMessage](ctx, controllers.ControllerCfg{
		Resource:      lc.Resource,
		PageSize:      pageSize,
		Api:           api,
		Cache:         pageCache,
		Notifier:      notifier,
		Invalidations: invalidations,
		Prefetch:      lc.Prefetch,
	})

	if err != nil {
		return nil, nil, err
	}

	return controller, controller.Close, nil
}

func NewMockedController(ctx context.Context, lc ListingCfg, c PageSizeConfigurator,
	api controllers.ResourceApi, pageCache controllers.PageCache,
	notifier controllers.Notifier) (*controllers.Controller[testutils.Ticket], func(), error) {

	pageSize, err := resolvePageSize(lc, c)

	if err != nil {
		return nil, nil, err
	}

	controller, err := controllers.NewController[testutils.Ticket](ctx, controllers.ControllerCfg{
		Resource: lc.Resource,
		PageSize: pageSize,
		Api:      api,
		Cache:    pageCache,
		Notifier: notifier,
		Prefetch: lc.Prefetch,
	})

	if err != nil {
		return nil, nil, err
	}

	return controller, controller.Close, nil
}

// NewLocalApi builds the embedded backend pre-seeded with a ticket
// resource, so the local browser has something to page through.
func NewLocalApi() (*sv.ResourceApi, error) {

	api := sv.NewResourceApi(sv.ResourceApiCfg{
		Token: localToken,
		Required: map[string][]string{
			"tickets": {"title", "status"},
		},
	})

	tickets, err := testutils.MakeTickets(25)

	if err != nil {
		return nil, err
	}

	bodies, err := testutils.MarshalAll(tickets)

	if err != nil {
		return nil, err
	}

	if err := api.Seed("tickets", bodies); err != nil {
		return nil, err
	}

	return api, nil
}

func NewLocalServer(api *sv.ResourceApi) (*httptest.Server, func()) {
	server := httptest.NewServer(api.Engine)
	return server, server.Close
}

func NewLocalConfig(server *httptest.Server) *tcfg.TestConfig {
	return tcfg.NewTestConfig(server.URL, localToken)
}

func NewScenarioConfig() *tcfg.TestConfig {
	return tcfg.NewTestConfig("http://localhost", localToken)
}
