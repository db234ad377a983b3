package game

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultGameConfig(t *testing.T) {
	config := DefaultGameConfig()
	assert.Equal(t, int64(10), config.SmallBlind)
	assert.Equal(t, int64(20), config.BigBlind)
	assert.Equal(t, int64(10), config.RaiseStep)
	assert.Equal(t, int64(1000), config.StartingChips)
}

func TestParseGameConfig(t *testing.T) {
	yamlText := `
smallBlind: 25
bigBlind: 50
startingChips: 5000
`
	f, err := ioutil.TempFile("", "game-config-*.yaml")
	require.NoError(t, err)
	defer os.Remove(f.Name())
	_, err = f.WriteString(yamlText)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	config, err := ParseGameConfig(f.Name())
	require.NoError(t, err)
	assert.Equal(t, int64(25), config.SmallBlind)
	assert.Equal(t, int64(50), config.BigBlind)
	assert.Equal(t, int64(5000), config.StartingChips)
	// omitted fields keep their defaults
	assert.Equal(t, int64(10), config.RaiseStep)
}

func TestParseGameConfigMissingFile(t *testing.T) {
	_, err := ParseGameConfig("/does/not/exist.yaml")
	assert.Error(t, err)
}
