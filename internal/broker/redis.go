package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	redis "github.com/redis/go-redis/v9"

	"github.com/listique/client/internal/dto"
)

type BrokerConfigurator interface {
	GetChannelSize() (int, error)
}

type resourceChannel struct {
	InvalidationCh chan dto.Invalidation
	Quit           chan bool
}

type BrokerRedisApi interface {
	Subscribe(ctx context.Context, channels ...string) *redis.PubSub
	Publish(ctx context.Context, channel string, message interface{}) *redis.IntCmd
}

func GetInvalidationChannel(resource string) string {
	return fmt.Sprintf("invalidations:%s", resource)
}

// Redis fans resource invalidations out to other processes. Each broker
// carries an origin id and drops its own events on the subscribe side, so
// a process only reacts to invalidations made elsewhere.
type Redis struct {
	client          BrokerRedisApi
	origin          string
	mutex           sync.Mutex
	channels        map[string]resourceChannel
	channelCapacity int
}

func (rb *Redis) Subscribe(ctx context.Context, resource string) (<-chan dto.Invalidation, error) {

	if rb == nil {
		return nil, fmt.Errorf("redis broker is nil")
	}

	rb.mutex.Lock()
	defer rb.mutex.Unlock()

	if ch, ok := rb.channels[resource]; ok {
		return ch.InvalidationCh, nil
	}

	resourceCh := resourceChannel{
		InvalidationCh: make(chan dto.Invalidation, rb.channelCapacity),
		Quit:           make(chan bool),
	}

	rb.channels[resource] = resourceCh

	pubsub := rb.client.Subscribe(ctx, GetInvalidationChannel(resource))

	go func() {
		defer pubsub.Close()
		redisCh := pubsub.Channel()

		for {
			select {
			case <-resourceCh.Quit:
				return
			case msg, ok := <-redisCh:
				if !ok {
					return
				}

				inv := dto.Invalidation{}
				err := json.Unmarshal([]byte(msg.Payload), &inv)

				if err != nil {
					slog.Error(err.Error())
					continue
				}

				if inv.Origin == rb.origin {
					continue
				}

				select {
				case <-resourceCh.Quit:
					return
				case resourceCh.InvalidationCh <- inv:
				}
			}
		}
	}()

	return resourceCh.InvalidationCh, nil
}

func (rb *Redis) Unsubscribe(ctx context.Context, resource string) error {

	if rb == nil {
		return fmt.Errorf("redis broker is nil")
	}

	rb.mutex.Lock()
	defer rb.mutex.Unlock()

	if ch, ok := rb.channels[resource]; ok {
		close(ch.Quit)
		delete(rb.channels, resource)
	}

	return nil
}

func (rb *Redis) Publish(ctx context.Context, resource string) error {

	if rb == nil {
		return fmt.Errorf("redis broker is nil")
	}

	inv := dto.Invalidation{
		Resource: resource,
		Origin:   rb.origin,
		At:       time.Now().UTC(),
	}

	marshalled, err := json.Marshal(inv)

	if err != nil {
		return fmt.Errorf("failed to marshall invalidation - %w", err)
	}

	channel := GetInvalidationChannel(resource)

	if err = rb.client.Publish(ctx, channel, string(marshalled)).Err(); err != nil {
		return fmt.Errorf("failed to publish invalidation - %w", err)
	}

	return nil
}

func NewRedisBroker(client BrokerRedisApi, bc BrokerConfigurator) (*Redis, error) {

	channelSize, err := bc.GetChannelSize()

	if err != nil {
		return nil, err
	}

	if channelSize == 0 {
		return nil, fmt.Errorf("broker channel size must be > 0")
	}

	broker := &Redis{
		client:          client,
		origin:          uuid.NewString(),
		channels:        make(map[string]resourceChannel),
		channelCapacity: channelSize,
	}

	return broker, nil
}
