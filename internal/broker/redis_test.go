package broker_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/listique/client/internal/broker"
	"github.com/listique/client/internal/cache"
	"github.com/listique/client/internal/di"
)

func TestRedisBroker(t *testing.T) {

	ctx := context.Background()

	scenario, closer, err := di.InjectRedisScenario(ctx)

	if err != nil {
		t.Fatal(err)
		return
	}

	defer closer()

	// A second broker with its own origin, standing in for another
	// process mutating the same resource.
	client, err := cache.NewRedisClient(scenario.Container)

	if err != nil {
		t.Fatal(err)
		return
	}

	remote, err := broker.NewRedisBroker(client, scenario.Container)

	if err != nil {
		t.Fatal(err)
		return
	}

	t.Run("Delivers invalidations published by other origins", func(t *testing.T) {
		invalidations, err := scenario.Broker.Subscribe(ctx, "tickets")
		assert.Nil(t, err)

		// Redis pubsub drops messages published before the
		// subscription registers.
		time.Sleep(100 * time.Millisecond)

		assert.Nil(t, remote.Publish(ctx, "tickets"))

		select {
		case inv := <-invalidations:
			assert.Equal(t, "tickets", inv.Resource)
			assert.NotEmpty(t, inv.Origin)
			assert.False(t, inv.At.IsZero())
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for an invalidation")
		}
	})

	t.Run("Drops its own invalidations", func(t *testing.T) {
		invalidations, err := scenario.Broker.Subscribe(ctx, "tickets")
		assert.Nil(t, err)

		assert.Nil(t, scenario.Broker.Publish(ctx, "tickets"))

		select {
		case inv := <-invalidations:
			t.Fatalf("received an invalidation from our own origin - %v", inv)
		case <-time.After(300 * time.Millisecond):
		}
	})

	t.Run("Reuses the channel of an already subscribed resource", func(t *testing.T) {
		first, err := scenario.Broker.Subscribe(ctx, "orders")
		assert.Nil(t, err)

		second, err := scenario.Broker.Subscribe(ctx, "orders")
		assert.Nil(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("Stops delivering after an unsubscribe", func(t *testing.T) {
		invalidations, err := scenario.Broker.Subscribe(ctx, "users")
		assert.Nil(t, err)

		time.Sleep(100 * time.Millisecond)

		assert.Nil(t, scenario.Broker.Unsubscribe(ctx, "users"))
		assert.Nil(t, remote.Publish(ctx, "users"))

		select {
		case inv := <-invalidations:
			t.Fatalf("received an invalidation after unsubscribing - %v", inv)
		case <-time.After(300 * time.Millisecond):
		}
	})

	t.Run("Knows the channel a resource is announced on", func(t *testing.T) {
		assert.Equal(t, "invalidations:tickets", broker.GetInvalidationChannel("tickets"))
	})
}
