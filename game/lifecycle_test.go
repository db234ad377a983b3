package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func playedOutHand(t *testing.T) *GameState {
	t.Helper()
	scenarioDeck(t)
	state := threePlayerGame()
	require.NoError(t, state.StartHand())
	require.NoError(t, state.ApplyAction(ActionFold, 0))
	require.NoError(t, state.ApplyAction(ActionFold, 0))
	require.True(t, state.HandEnded())
	return state
}

func TestResetGameRotatesBlindsAndDealsNextHand(t *testing.T) {
	state := playedOutHand(t)
	chipsBefore := []int64{
		state.Players[0].Chips,
		state.Players[1].Chips,
		state.Players[2].Chips,
	}

	require.NoError(t, state.ResetGame())

	assert.Equal(t, 1, state.SmallBlindIndex)
	assert.Equal(t, 2, state.BigBlindIndex)
	assert.Equal(t, uint32(2), state.HandNum)
	assert.Equal(t, RoundPreFlop, state.CurrentBettingRound)
	assert.Empty(t, state.Winners)
	assert.Empty(t, state.CommunityCards)
	// blinds from the new hand, otherwise chips persisted
	assert.Equal(t, chipsBefore[0], state.Players[0].Chips)
	assert.Equal(t, chipsBefore[1]-10, state.Players[1].Chips)
	assert.Equal(t, chipsBefore[2]-20, state.Players[2].Chips)
	assert.Equal(t, int64(30), state.Pot)
	assert.Equal(t, 0, state.CurrentPlayerIndex) // seat after the big blind
	for _, p := range state.Players {
		assert.True(t, p.InGame)
		assert.Equal(t, 2, len(p.Hand))
		assert.Equal(t, ActionNone, p.LastAction)
	}
}

func TestResetGameWaitsWithOnePlayer(t *testing.T) {
	state := NewGameState(DefaultGameConfig())
	state.addPlayer("u1", "alice")
	require.NoError(t, state.ResetGame())
	assert.Equal(t, uint32(0), state.HandNum)
	assert.Equal(t, 0, len(state.Players[0].Hand))
}

func TestStartGameSeatsRoster(t *testing.T) {
	scenarioDeck(t)
	state := NewGameState(DefaultGameConfig())
	err := state.StartGame([]RoomMember{
		{ID: "u1", Name: "alice"},
		{ID: "u2", Name: "bob"},
		{ID: "u3", Name: "carol"},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, len(state.Players))
	assert.Equal(t, "alice", state.Players[0].Name)
	assert.Equal(t, int64(990), state.Players[0].Chips)
}

func TestReconcileAppliesChurn(t *testing.T) {
	state := playedOutHand(t)

	state.Reconcile([]RoomMember{
		{ID: "u2", Name: "bob"},
		{ID: "u3", Name: "carol"},
		{ID: "u4", Name: "dave"},
	})

	require.Equal(t, 3, len(state.Players))
	assert.Equal(t, "u2", state.Players[0].ID)
	assert.Equal(t, "u3", state.Players[1].ID)
	assert.Equal(t, "u4", state.Players[2].ID)
	// survivor chips persist, joiner gets the buy-in
	assert.Equal(t, int64(1010), state.Players[0].Chips)
	assert.Equal(t, int64(1000), state.Players[2].Chips)
	// blind indices stay valid for the new table size
	assert.Less(t, state.SmallBlindIndex, len(state.Players))
	assert.Equal(t, (state.SmallBlindIndex+1)%len(state.Players), state.BigBlindIndex)
}

func TestRemovePlayerMidHandSettlesForSurvivor(t *testing.T) {
	scenarioDeck(t)
	state := threePlayerGame()
	require.NoError(t, state.StartHand())
	require.NoError(t, state.ApplyAction(ActionFold, 0)) // carol

	// bob leaves mid-hand; alice is the only contender left
	require.True(t, state.RemovePlayer("u2"))

	assert.True(t, state.HandEnded())
	assert.Equal(t, []string{"u1"}, state.Winners)
	assert.Equal(t, int64(1020), state.Players[0].Chips)
	assert.Equal(t, int64(0), state.Pot)
}

func TestRemovePlayerKeepsTurnOnSamePlayer(t *testing.T) {
	scenarioDeck(t)
	state := threePlayerGame()
	require.NoError(t, state.StartHand())
	require.Equal(t, "u3", state.CurrentPlayer().ID)

	// removing a seat below the current one shifts the slice; the turn
	// must stay with carol
	require.True(t, state.RemovePlayer("u1"))
	assert.Equal(t, "u3", state.CurrentPlayer().ID)
	assert.False(t, state.HandEnded())
}

func TestRemovePlayerClampsIndices(t *testing.T) {
	state := playedOutHand(t)
	state.SmallBlindIndex = 2

	assert.True(t, state.RemovePlayer("u3"))
	assert.False(t, state.RemovePlayer("nobody"))
	require.Equal(t, 2, len(state.Players))
	assert.Less(t, state.SmallBlindIndex, len(state.Players))
	assert.Less(t, state.CurrentPlayerIndex, len(state.Players))
}
