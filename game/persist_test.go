package game

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameStateRoundTrip(t *testing.T) {
	scenarioDeck(t)
	state := threePlayerGame()
	require.NoError(t, state.StartHand())
	require.NoError(t, state.ApplyAction(ActionCall, 20))

	data, err := state.MarshalBytes()
	require.NoError(t, err)
	restored, err := GameStateFromBytes(data)
	require.NoError(t, err)

	if diff := cmp.Diff(state, restored); diff != "" {
		t.Errorf("state did not survive the round trip (-want +got):\n%s", diff)
	}
}

func TestRestoredGameContinuesPlaying(t *testing.T) {
	scenarioDeck(t)
	state := threePlayerGame()
	require.NoError(t, state.StartHand())
	require.NoError(t, state.ApplyAction(ActionCall, 20))

	data, err := state.MarshalBytes()
	require.NoError(t, err)
	restored, err := GameStateFromBytes(data)
	require.NoError(t, err)

	// the restored game finishes the hand exactly like the original would
	require.NoError(t, restored.ApplyAction(ActionCall, 10))
	require.NoError(t, restored.ApplyAction(ActionCall, 0))
	assert.Equal(t, RoundFlop, restored.CurrentBettingRound)
	assert.Equal(t, 3, len(restored.CommunityCards))
}

func TestMemoryTracker(t *testing.T) {
	tracker := NewMemoryGameTracker()

	_, err := tracker.Load("room1")
	require.Error(t, err)
	assert.IsType(t, GameStateNotFoundError{}, err)

	state := threePlayerGame()
	require.NoError(t, tracker.Save("room1", state))

	loaded, err := tracker.Load("room1")
	require.NoError(t, err)
	assert.Equal(t, 3, len(loaded.Players))

	require.NoError(t, tracker.Remove("room1"))
	_, err = tracker.Load("room1")
	assert.Error(t, err)
}
