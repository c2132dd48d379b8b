package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/listique/client/internal"
	"github.com/listique/client/internal/dto"
)

const (
	defaultChannelSize = 8
	prefetchTimeout    = 10 * time.Second
)

type Phase string

const (
	Idle    Phase = "IDLE"
	Loading Phase = "LOADING"
	Success Phase = "SUCCESS"
	Error   Phase = "ERROR"
)

type ResourceApi interface {
	FetchPage(ctx context.Context, resource string, page dto.PageRequest) ([]byte, error)
	Get(ctx context.Context, resource, id string) ([]byte, error)
	Create(ctx context.Context, resource string, payload json.RawMessage) ([]byte, error)
	Update(ctx context.Context, resource, id string, payload json.RawMessage) ([]byte, error)
	Delete(ctx context.Context, resource, id string) error
}

type PageCache interface {
	LoadPage(ctx context.Context, resource string, page dto.PageRequest, load func(ctx context.Context) ([]byte, error)) ([]byte, bool, error)
	Bump(ctx context.Context, resource string) error
}

type Invalidations interface {
	Subscribe(ctx context.Context, resource string) (<-chan dto.Invalidation, error)
	Unsubscribe(ctx context.Context, resource string) error
	Publish(ctx context.Context, resource string) error
}

// Snapshot is what a view renders. Page is only meaningful in the Success
// phase, Err in the Error phase.
type Snapshot[T any] struct {
	Phase   Phase
	Request dto.PageRequest
	Page    dto.Page[T]
	Err     error
}

type ControllerCfg struct {
	Resource      string
	PageSize      int
	Api           ResourceApi
	Cache         PageCache
	Notifier      Notifier
	Invalidations Invalidations
	ChannelSize   int
	Prefetch      bool
}

// Controller drives one paginated listing of a resource. Loads go through
// the page cache, mutations go straight to the api and invalidate the
// cache afterwards. Every state change is broadcast to subscribers, and a
// load whose view token went stale resolves without touching the state.
type Controller[T any] struct {
	resource      string
	api           ResourceApi
	cache         PageCache
	notifier      Notifier
	invalidations Invalidations
	channelSize   int
	prefetch      bool

	mutex       sync.Mutex
	pageSize    int
	filters     map[string]string
	viewToken   string
	snapshot    Snapshot[T]
	subscribers map[string]chan Snapshot[T]
	quit        chan bool
	closed      bool
}

func NewController[T any](ctx context.Context, cfg ControllerCfg) (*Controller[T], error) {

	if cfg.Resource == "" {
		return nil, fmt.Errorf("resource name is required")
	}

	if cfg.Api == nil {
		return nil, fmt.Errorf("resource api is required")
	}

	if cfg.Cache == nil {
		return nil, fmt.Errorf("page cache is required")
	}

	if cfg.PageSize <= 0 {
		return nil, fmt.Errorf("page size must be > 0")
	}

	notifier := cfg.Notifier

	if notifier == nil {
		notifier = slogNotifier{}
	}

	channelSize := cfg.ChannelSize

	if channelSize <= 0 {
		channelSize = defaultChannelSize
	}

	lc := &Controller[T]{
		resource:      cfg.Resource,
		api:           cfg.Api,
		cache:         cfg.Cache,
		notifier:      notifier,
		invalidations: cfg.Invalidations,
		channelSize:   channelSize,
		prefetch:      cfg.Prefetch,
		pageSize:      cfg.PageSize,
		viewToken:     uuid.NewString(),
		snapshot:      Snapshot[T]{Phase: Idle},
		subscribers:   make(map[string]chan Snapshot[T]),
		quit:          make(chan bool),
	}

	if lc.invalidations != nil {
		go lc.listenInvalidations(ctx)
	}

	return lc, nil
}

func (lc *Controller[T]) Resource() string {
	return lc.resource
}

func (lc *Controller[T]) Snapshot() Snapshot[T] {

	lc.mutex.Lock()
	defer lc.mutex.Unlock()

	return lc.snapshot
}

// LoadPage fetches one page through the cache and moves the state machine
// to Loading and then Success or Error. The result is returned to the
// caller even when a newer request has made this one stale.
func (lc *Controller[T]) LoadPage(ctx context.Context, page int) (dto.Page[T], error) {

	request, token, err := lc.beginLoad(page)

	if err != nil {
		return dto.Page[T]{}, err
	}

	raw, fromCache, err := lc.cache.LoadPage(ctx, lc.resource, request, func(ctx context.Context) ([]byte, error) {
		return lc.api.FetchPage(ctx, lc.resource, request)
	})

	if err != nil {
		lc.failLoad(token, request, err)
		return dto.Page[T]{}, err
	}

	envelope, err := dto.DecodePage[T](raw)

	if err != nil {
		lc.failLoad(token, request, err)
		return dto.Page[T]{}, err
	}

	lc.completeLoad(token, request, envelope)

	if lc.prefetch && !fromCache {
		go lc.prefetchNext(request, envelope)
	}

	return envelope, nil
}

// Retry re-issues the last failed request. It only applies to the Error
// phase - the controller never re-fetches a failed page on its own.
func (lc *Controller[T]) Retry(ctx context.Context) (dto.Page[T], error) {

	lc.mutex.Lock()
	phase := lc.snapshot.Phase
	page := lc.snapshot.Request.Page
	lc.mutex.Unlock()

	if phase != Error {
		return dto.Page[T]{}, fmt.Errorf("nothing to retry in phase %v", phase)
	}

	return lc.LoadPage(ctx, page)
}

// SubmitMutation runs a write against the resource and, when it succeeds,
// invalidates the cached listings and reloads the visible page. The
// decoded response is returned for Create and Update, nil for Delete.
func (lc *Controller[T]) SubmitMutation(ctx context.Context, intent dto.MutationIntent) (*T, error) {

	if err := intent.Validate(); err != nil {
		return nil, fmt.Errorf("invalid mutation - %w", err)
	}

	var body []byte
	var err error

	switch intent.Kind {
	case dto.Create:
		body, err = lc.api.Create(ctx, lc.resource, intent.Payload)
	case dto.Update:
		body, err = lc.api.Update(ctx, lc.resource, intent.ResourceId, intent.Payload)
	case dto.Delete:
		err = lc.api.Delete(ctx, lc.resource, intent.ResourceId)
	}

	if err != nil {
		lc.notifyMutationFailure(intent, err)
		return nil, err
	}

	var decoded *T

	if len(body) > 0 {
		decoded = new(T)

		if err := json.Unmarshal(body, decoded); err != nil {
			return nil, fmt.Errorf("failed to unmarshal mutation response - %w", err)
		}
	}

	lc.afterMutation(ctx)

	return decoded, nil
}

// Preview fetches a single resource, e.g. for a detail pane or an edit
// form. Failures only log - the listing state stays as-is.
func (lc *Controller[T]) Preview(ctx context.Context, id string) *T {

	body, err := lc.api.Get(ctx, lc.resource, id)

	if err != nil {
		slog.Debug(fmt.Errorf("failed to preview %v - %w", id, err).Error())
		return nil
	}

	preview := new(T)

	if err := json.Unmarshal(body, preview); err != nil {
		slog.Debug(fmt.Errorf("failed to unmarshal the preview of %v - %w", id, err).Error())
		return nil
	}

	return preview
}

// SetFilters replaces the filter set and resets the state machine. Loads
// still in flight for the old filters resolve without rendering. Cached
// pages stay valid - the filters are part of their keys.
func (lc *Controller[T]) SetFilters(filters map[string]string) {

	lc.mutex.Lock()
	defer lc.mutex.Unlock()

	lc.filters = maps.Clone(filters)
	lc.viewToken = uuid.NewString()
	lc.snapshot = Snapshot[T]{Phase: Idle}
	lc.broadcast(lc.snapshot)
}

// SetPageSize changes the page length. Cached pages of the resource are
// invalidated since their boundaries no longer line up.
func (lc *Controller[T]) SetPageSize(ctx context.Context, pageSize int) error {

	if pageSize <= 0 {
		return fmt.Errorf("page size must be > 0")
	}

	lc.mutex.Lock()
	lc.pageSize = pageSize
	lc.viewToken = uuid.NewString()
	lc.snapshot = Snapshot[T]{Phase: Idle}
	lc.broadcast(lc.snapshot)
	lc.mutex.Unlock()

	if err := lc.cache.Bump(ctx, lc.resource); err != nil {
		return fmt.Errorf("failed to invalidate after page size change - %w", err)
	}

	return nil
}

// Subscribe registers a view for state broadcasts. The current snapshot is
// replayed right away. The returned cancel removes the subscription.
func (lc *Controller[T]) Subscribe() (<-chan Snapshot[T], func(), error) {

	lc.mutex.Lock()
	defer lc.mutex.Unlock()

	if lc.closed {
		return nil, nil, fmt.Errorf("controller is closed")
	}

	id := uuid.NewString()
	ch := make(chan Snapshot[T], lc.channelSize)
	lc.subscribers[id] = ch

	ch <- lc.snapshot

	cancel := func() {
		lc.mutex.Lock()
		defer lc.mutex.Unlock()

		if sub, ok := lc.subscribers[id]; ok {
			delete(lc.subscribers, id)
			close(sub)
		}
	}

	return ch, cancel, nil
}

func (lc *Controller[T]) Close() {

	lc.mutex.Lock()

	if lc.closed {
		lc.mutex.Unlock()
		return
	}

	lc.closed = true
	close(lc.quit)

	for id, ch := range lc.subscribers {
		delete(lc.subscribers, id)
		close(ch)
	}

	lc.mutex.Unlock()

	if lc.invalidations != nil {
		if err := lc.invalidations.Unsubscribe(context.Background(), lc.resource); err != nil {
			slog.Error(err.Error())
		}
	}
}

func (lc *Controller[T]) beginLoad(page int) (dto.PageRequest, string, error) {

	lc.mutex.Lock()
	defer lc.mutex.Unlock()

	request := dto.PageRequest{
		Page:     page,
		PageSize: lc.pageSize,
		Filters:  maps.Clone(lc.filters),
	}

	if err := request.Validate(); err != nil {
		return request, "", fmt.Errorf("invalid page request - %w", err)
	}

	token := uuid.NewString()
	lc.viewToken = token

	lc.snapshot = Snapshot[T]{Phase: Loading, Request: request}
	lc.broadcast(lc.snapshot)

	return request, token, nil
}

func (lc *Controller[T]) failLoad(token string, request dto.PageRequest, cause error) {

	lc.mutex.Lock()
	defer lc.mutex.Unlock()

	if lc.viewToken != token {
		return
	}

	lc.snapshot = Snapshot[T]{Phase: Error, Request: request, Err: cause}
	lc.broadcast(lc.snapshot)
}

func (lc *Controller[T]) completeLoad(token string, request dto.PageRequest, envelope dto.Page[T]) {

	lc.mutex.Lock()
	defer lc.mutex.Unlock()

	if lc.viewToken != token {
		return
	}

	lc.snapshot = Snapshot[T]{Phase: Success, Request: request, Page: envelope}
	lc.broadcast(lc.snapshot)
}

// broadcast runs under the controller mutex. A lagging subscriber loses
// its oldest snapshot, never the newest one.
func (lc *Controller[T]) broadcast(snapshot Snapshot[T]) {

	for _, ch := range lc.subscribers {
		select {
		case ch <- snapshot:
			continue
		default:
		}

		select {
		case <-ch:
		default:
		}

		select {
		case ch <- snapshot:
		default:
		}
	}
}

func (lc *Controller[T]) notifyMutationFailure(intent dto.MutationIntent, err error) {

	// Validation problems surface inline next to the form, and an auth
	// rejection already terminated the session.
	if errors.As(err, &internal.ValidationError{}) || errors.As(err, &internal.AuthError{}) {
		return
	}

	kind := strings.ToLower(string(intent.Kind))

	lc.notifier.Notify(Notice{
		Level:   NoticeError,
		Message: fmt.Sprintf("failed to %v %v - %v", kind, lc.resource, err),
	})
}

func (lc *Controller[T]) afterMutation(ctx context.Context) {

	if err := lc.cache.Bump(ctx, lc.resource); err != nil {
		slog.Error(fmt.Errorf("failed to invalidate %v - %w", lc.resource, err).Error())
	}

	if lc.invalidations != nil {
		if err := lc.invalidations.Publish(ctx, lc.resource); err != nil {
			slog.Error(fmt.Errorf("failed to publish the invalidation of %v - %w", lc.resource, err).Error())
		}
	}

	lc.mutex.Lock()
	phase := lc.snapshot.Phase
	page := lc.snapshot.Request.Page
	lc.mutex.Unlock()

	if phase != Success && phase != Loading {
		return
	}

	if _, err := lc.LoadPage(ctx, page); err != nil {
		slog.Error(fmt.Errorf("failed to refresh %v after a mutation - %w", lc.resource, err).Error())
	}
}

func (lc *Controller[T]) listenInvalidations(ctx context.Context) {

	invCh, err := lc.invalidations.Subscribe(ctx, lc.resource)

	if err != nil {
		slog.Error(fmt.Errorf("failed to subscribe to invalidations - %w", err).Error())
		return
	}

	for {
		select {
		case <-ctx.Done():
			return
		case <-lc.quit:
			return
		case inv, ok := <-invCh:
			if !ok {
				return
			}

			lc.onRemoteInvalidation(ctx, inv)
		}
	}
}

func (lc *Controller[T]) onRemoteInvalidation(ctx context.Context, inv dto.Invalidation) {

	slog.Debug("resource invalidated remotely",
		"resource", inv.Resource, "origin", inv.Origin)

	if err := lc.cache.Bump(ctx, lc.resource); err != nil {
		slog.Error(fmt.Errorf("failed to invalidate %v - %w", lc.resource, err).Error())
	}

	lc.mutex.Lock()
	phase := lc.snapshot.Phase
	page := lc.snapshot.Request.Page
	lc.mutex.Unlock()

	if phase != Success {
		return
	}

	if _, err := lc.LoadPage(ctx, page); err != nil {
		slog.Error(fmt.Errorf("failed to refresh %v after an invalidation - %w", lc.resource, err).Error())
	}
}

func (lc *Controller[T]) prefetchNext(request dto.PageRequest, envelope dto.Page[T]) {

	if request.Page >= envelope.TotalPages(request.PageSize) {
		return
	}

	next := request
	next.Page += 1

	ctx, cancel := context.WithTimeout(context.Background(), prefetchTimeout)
	defer cancel()

	_, _, err := lc.cache.LoadPage(ctx, lc.resource, next, func(ctx context.Context) ([]byte, error) {
		return lc.api.FetchPage(ctx, lc.resource, next)
	})

	if err != nil {
		slog.Debug(fmt.Errorf("failed to prefetch page %d of %v - %w", next.Page, lc.resource, err).Error())
	}
}
