package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPublishReachesAllSubscribers(t *testing.T) {
	bus := NewBus()
	a := bus.Subscribe()
	b := bus.Subscribe()

	bus.Publish()

	select {
	case <-a.C:
	default:
		t.Fatal("subscriber a did not receive the signal")
	}
	select {
	case <-b.C:
	default:
		t.Fatal("subscriber b did not receive the signal")
	}
}

func TestPublishNeverBlocksAndCoalesces(t *testing.T) {
	bus := NewBus()
	sub := bus.Subscribe()

	// a slow subscriber accumulates exactly one pending signal
	bus.Publish()
	bus.Publish()
	bus.Publish()

	<-sub.C
	select {
	case <-sub.C:
		t.Fatal("repeated publishes must coalesce into one pending signal")
	default:
	}
}

func TestCloseRemovesSubscription(t *testing.T) {
	bus := NewBus()
	sub := bus.Subscribe()
	require.Equal(t, 1, bus.Len())

	sub.Close()
	assert.Zero(t, bus.Len())

	// closing twice is fine
	sub.Close()
	assert.Zero(t, bus.Len())

	bus.Publish()
	select {
	case <-sub.C:
		t.Fatal("closed subscription must not receive signals")
	default:
	}
}

func TestPublishWithNoSubscribers(t *testing.T) {
	bus := NewBus()
	bus.Publish()
}
