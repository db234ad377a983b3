package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewCard(t *testing.T) {
	aceSpades := NewCard("As")
	assert.Equal(t, int32(12), aceSpades.Rank())
	assert.Equal(t, int32(1), aceSpades.Suit())
	assert.Equal(t, int32(41), aceSpades.Prime())
	assert.Equal(t, "As", aceSpades.String())

	twoClubs := NewCard("2c")
	assert.Equal(t, int32(0), twoClubs.Rank())
	assert.Equal(t, int32(8), twoClubs.Suit())
	assert.Equal(t, int32(2), twoClubs.Prime())
	assert.Equal(t, "2c", twoClubs.String())

	tenHearts := NewCard("Th")
	assert.Equal(t, int32(8), tenHearts.Rank())
	assert.Equal(t, int32(2), tenHearts.Suit())
}

func TestCardByteRoundTrip(t *testing.T) {
	for _, str := range []string{"As", "2c", "Th", "Kd", "9h", "Qs"} {
		card := NewCard(str)
		decoded := NewCardFromByte(card.GetByte())
		assert.Equal(t, card, decoded, "byte round trip for %s", str)
	}
}

func TestCardsByteRoundTrip(t *testing.T) {
	cards := []Card{NewCard("Ah"), NewCard("Kd"), NewCard("2s")}
	decoded := FromByteCards(CardsToByteCards(cards))
	assert.Equal(t, cards, decoded)
}

func TestCardsToString(t *testing.T) {
	cards := []Card{NewCard("Ah"), NewCard("Td")}
	assert.Equal(t, "[Ah Td]", CardsToString(cards))
}
