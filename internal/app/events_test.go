package app_test

import (
	"testing"

	"justice-play/internal/app"
	"justice-play/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusFiltersByUser(t *testing.T) {
	bus := app.NewBus()
	mine, cancelMine := bus.Subscribe("u1")
	defer cancelMine()
	all, cancelAll := bus.Subscribe("")
	defer cancelAll()

	bus.Publish(domain.ProfileEvent{Kind: domain.EventPointsChanged, UserID: "u2", TotalPoints: 5})
	bus.Publish(domain.ProfileEvent{Kind: domain.EventPointsChanged, UserID: "u1", TotalPoints: 10})

	got := <-mine
	assert.Equal(t, "u1", got.UserID)
	assert.Equal(t, 10, got.TotalPoints)
	assert.Len(t, mine, 0)
	assert.Len(t, all, 2)
}

func TestBusDropsOldestForSlowSubscriber(t *testing.T) {
	bus := app.NewBus()
	ch, cancel := bus.Subscribe("u1")
	defer cancel()

	for i := 1; i <= 20; i++ {
		bus.Publish(domain.ProfileEvent{Kind: domain.EventPointsChanged, UserID: "u1", TotalPoints: i})
	}

	require.Len(t, ch, 16)
	first := <-ch
	assert.Equal(t, 5, first.TotalPoints)
}

func TestBusCancelClosesChannel(t *testing.T) {
	bus := app.NewBus()
	ch, cancel := bus.Subscribe("u1")
	cancel()
	cancel()

	_, open := <-ch
	assert.False(t, open)
	bus.Publish(domain.ProfileEvent{Kind: domain.EventLoggedOut, UserID: "u1"})
}

func TestBusObserverUnregister(t *testing.T) {
	bus := app.NewBus()
	seen := 0
	stop := bus.Observe(func(domain.ProfileEvent) { seen++ })

	bus.Publish(domain.ProfileEvent{Kind: domain.EventStatsChanged, UserID: "u1"})
	stop()
	bus.Publish(domain.ProfileEvent{Kind: domain.EventStatsChanged, UserID: "u1"})

	assert.Equal(t, 1, seen)
}
