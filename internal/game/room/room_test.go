package room

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/palemoky/the-game-99/internal/apperrors"
	"github.com/palemoky/the-game-99/internal/game/engine"
	"github.com/palemoky/the-game-99/internal/game/rng"
)

func newTestRegistry() *Registry {
	return NewRegistry(engine.DefaultConfig(), rng.NewSeeded(42))
}

func TestRoom_SubscribePushesCurrentView(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry()
	r, err := reg.CreateRoom("Alice", "host-conn")
	require.NoError(t, err)

	var views []*engine.View
	r.Subscribe("host-conn", func(v *engine.View) { views = append(views, v) })

	require.Len(t, views, 1, "subscribing delivers the current view immediately")
	assert.Equal(t, []string{"Alice"}, views[0].Players)
	assert.False(t, views[0].Started)
}

func TestRoom_DispatchPushesToAllSubscribers(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry()
	r, err := reg.CreateRoom("Alice", "host-conn")
	require.NoError(t, err)

	var hostViews, guestViews []*engine.View
	r.Subscribe("host-conn", func(v *engine.View) { hostViews = append(hostViews, v) })

	_, err = r.Dispatch(engine.PlayerJoin{ActorID: "guest-conn", Name: "Bob"})
	require.NoError(t, err)
	r.Subscribe("guest-conn", func(v *engine.View) { guestViews = append(guestViews, v) })

	require.Len(t, hostViews, 2)
	assert.Equal(t, []string{"Alice", "Bob"}, hostViews[1].Players)
	require.Len(t, guestViews, 1)
	assert.Equal(t, []string{"Alice", "Bob"}, guestViews[0].Players)
}

func TestRoom_RejectedEventPushesNothing(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry()
	r, err := reg.CreateRoom("Alice", "host-conn")
	require.NoError(t, err)

	pushes := 0
	r.Subscribe("host-conn", func(*engine.View) { pushes++ })
	require.Equal(t, 1, pushes)

	before := r.State()
	_, err = r.Dispatch(engine.PlayerJoin{ActorID: "guest-conn", Name: "Alice"})
	assert.ErrorIs(t, err, apperrors.ErrNameTaken)

	assert.Equal(t, 1, pushes, "a rejected event must not re-push views")
	assert.Same(t, before, r.State(), "a rejected event must not replace the snapshot")
}

func TestRoom_UnsubscribeStopsPushes(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry()
	r, err := reg.CreateRoom("Alice", "host-conn")
	require.NoError(t, err)

	pushes := 0
	r.Subscribe("host-conn", func(*engine.View) { pushes++ })
	r.Unsubscribe("host-conn")

	_, err = r.Dispatch(engine.PlayerJoin{ActorID: "guest-conn", Name: "Bob"})
	require.NoError(t, err)

	assert.Equal(t, 1, pushes, "only the initial subscription push is delivered")
	assert.Equal(t, 0, r.SubscriberCount())
}

func TestRoom_NonSeatedSubscriberGetsNoView(t *testing.T) {
	t.Parallel()

	reg := newTestRegistry()
	r, err := reg.CreateRoom("Alice", "host-conn")
	require.NoError(t, err)

	pushes := 0
	r.Subscribe("watcher-conn", func(*engine.View) { pushes++ })

	_, err = r.Dispatch(engine.PlayerJoin{ActorID: "guest-conn", Name: "Bob"})
	require.NoError(t, err)

	assert.Equal(t, 0, pushes, "a connection without a seat has no projected view")
}
