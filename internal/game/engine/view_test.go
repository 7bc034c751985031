package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startedGame(t *testing.T, players int) (*Engine, *GameState) {
	t.Helper()

	e := newTestEngine(DefaultConfig())
	s := seatPlayers(t, e, players)
	s, err := e.Apply(s, StartGame{ActorID: actorID(0)})
	require.NoError(t, err)
	return e, s
}

func TestProject_NotSeated(t *testing.T) {
	t.Parallel()

	_, s := startedGame(t, 2)
	view, ok := Project(s, "stranger")
	assert.False(t, ok)
	assert.Nil(t, view)
}

func TestProject_HidesOtherHands(t *testing.T) {
	t.Parallel()

	_, s := startedGame(t, 3)

	for i := range s.Players {
		view, ok := Project(s, actorID(i))
		require.True(t, ok)

		assert.Equal(t, s.Players[i].Hand, view.Hand, "own hand is visible")
		assert.Equal(t, []string{"Player0", "Player1", "Player2"}, view.Players)
		assert.True(t, view.Started)

		// Other players appear only as a name and a hand size
		for j := range s.Players {
			assert.Equal(t, len(s.Players[j].Hand), view.HandSizes[j])
			if j == i {
				continue
			}
			for _, hidden := range s.Players[j].Hand {
				assert.NotContains(t, view.Hand, hidden,
					"player %d must not see a card of player %d", i, j)
			}
		}
	}
}

func TestProject_LegalActions(t *testing.T) {
	t.Parallel()

	e, s := startedGame(t, 2)

	active := s.ActivePlayer
	other := (active + 1) % 2

	view, ok := Project(s, actorID(active))
	require.True(t, ok)
	assert.Equal(t, []PlayerAction{ActionPlayCard}, view.Actions, "play_required offers only play_card")

	view, ok = Project(s, actorID(other))
	require.True(t, ok)
	assert.Empty(t, view.Actions, "only the active player has actions")

	// Satisfy the minimum: end_turn becomes available
	hand := s.Players[active].Hand
	s, err := e.Apply(s, PlayCard{ActorID: actorID(active), Card: hand[0], Pile: PileA})
	require.NoError(t, err)
	s, err = e.Apply(s, PlayCard{ActorID: actorID(active), Card: hand[1], Pile: PileA})
	require.NoError(t, err)
	require.Equal(t, PhasePlayOptional, s.Phase)

	view, ok = Project(s, actorID(active))
	require.True(t, ok)
	assert.Equal(t, []PlayerAction{ActionPlayCard, ActionEndTurn}, view.Actions)
}

func TestProject_LobbyHasNoActions(t *testing.T) {
	t.Parallel()

	e := newTestEngine(DefaultConfig())
	s := seatPlayers(t, e, 2)

	view, ok := Project(s, actorID(0))
	require.True(t, ok)
	assert.False(t, view.Started)
	assert.Empty(t, view.Actions)
	assert.Empty(t, view.Hand)
}

func TestProject_CopiesAreIndependent(t *testing.T) {
	t.Parallel()

	_, s := startedGame(t, 2)

	view, ok := Project(s, actorID(0))
	require.True(t, ok)

	before := snapshotJSON(t, s)
	view.Hand[0] = -1
	view.Piles[PileA] = append(view.Piles[PileA], -1)
	view.Players[0] = "tampered"

	assert.Equal(t, before, snapshotJSON(t, s), "mutating a view must not touch the snapshot")
}
