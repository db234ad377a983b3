package poker

import (
	crypto_rand "crypto/rand"
	"encoding/binary"
	"errors"
	"math/rand"
)

// ErrEmptyDeck is returned when a draw is attempted on an exhausted deck.
var ErrEmptyDeck = errors.New("poker: deck is empty")

var fullDeck *Deck

func init() {
	fullDeck = &Deck{cards: initializeFullCards()}
}

// Deck is an ordered sequence of the 52 unique cards. A deck belongs to
// exactly one hand; cards leave it through Draw/DrawOne and never return.
type Deck struct {
	cards   []Card
	randGen *rand.Rand
}

func newSeed() rand.Source {
	var b [8]byte
	_, err := crypto_rand.Read(b[:])
	if err != nil {
		panic("cannot seed math/rand package with cryptographically secure random number generator")
	}
	return rand.NewSource(int64(binary.LittleEndian.Uint64(b[:])))
}

// NewDeck returns a freshly shuffled deck. A nil source falls back to a
// crypto-seeded source.
func NewDeck(source rand.Source) *Deck {
	if source == nil {
		source = newSeed()
	}
	deck := &Deck{randGen: rand.New(source)}
	deck.Shuffle()
	return deck
}

// NewDeckNoShuffle returns the 52 cards in canonical order. Used by tests
// that need a known card sequence.
func NewDeckNoShuffle() *Deck {
	deck := &Deck{}
	deck.cards = make([]Card, len(fullDeck.cards))
	copy(deck.cards, fullDeck.cards)
	return deck
}

// Shuffle resets the deck to all 52 cards and permutes them with
// Fisher-Yates.
func (deck *Deck) Shuffle() *Deck {
	deck.cards = make([]Card, len(fullDeck.cards))
	copy(deck.cards, fullDeck.cards)

	randGen := deck.randGen
	if randGen == nil {
		randGen = rand.New(newSeed())
	}
	for i := len(deck.cards) - 1; i > 0; i-- {
		j := randGen.Intn(i + 1)
		deck.cards[i], deck.cards[j] = deck.cards[j], deck.cards[i]
	}
	return deck
}

// Draw removes and returns the top n cards.
func (deck *Deck) Draw(n int) ([]Card, error) {
	if n > len(deck.cards) {
		return nil, ErrEmptyDeck
	}
	cards := make([]Card, n)
	copy(cards, deck.cards[:n])
	deck.cards = deck.cards[n:]
	return cards, nil
}

// DrawOne removes and returns the top card.
func (deck *Deck) DrawOne() (Card, error) {
	if len(deck.cards) == 0 {
		return 0, ErrEmptyDeck
	}
	card := deck.cards[0]
	deck.cards = deck.cards[1:]
	return card, nil
}

// Empty reports whether all cards have been dealt.
func (deck *Deck) Empty() bool {
	return len(deck.cards) == 0
}

// Remaining returns the number of undealt cards.
func (deck *Deck) Remaining() int {
	return len(deck.cards)
}

// GetBytes returns the remaining cards in compact byte form for
// persistence.
func (deck *Deck) GetBytes() []uint8 {
	return CardsToByteCards(deck.cards)
}

// DeckFromBytes rebuilds a deck from its persisted byte form.
func DeckFromBytes(cardsInByte []uint8) *Deck {
	return &Deck{cards: FromByteCards(cardsInByte)}
}

// PrettyPrint renders the remaining cards for logs.
func (deck *Deck) PrettyPrint() string {
	return CardsToString(deck.cards)
}

func initializeFullCards() []Card {
	var cards []Card
	for _, rank := range strRanks {
		for _, suit := range []byte{'s', 'h', 'd', 'c'} {
			cards = append(cards, NewCard(string(rank)+string(suit)))
		}
	}
	return cards
}
