package poker

import (
	"fmt"
	"strings"
)

// Card packs rank, suit, a one-hot rank bit and the rank prime into an int32:
//
//	+--------+--------+--------+--------+
//	|xxxAKQJT|98765432|CDHSrrrr|xxPPPPPP|
//	+--------+--------+--------+--------+
//
// P = prime of the rank (2..41), r = rank (0..12), CDHS = suit bits,
// AKQJT98765432 = one-hot rank bit. The prime fields make hand ranks
// computable as prime products.
type Card int32

const (
	suitSpade   int32 = 1
	suitHeart   int32 = 2
	suitDiamond int32 = 4
	suitClub    int32 = 8
)

var strRanks = "23456789TJQKA"
var intRanks [13]int32
var primes = [13]int32{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41}

var charRankToIntRank = map[byte]int32{}
var charSuitToIntSuit = map[byte]int32{
	's': suitSpade,
	'h': suitHeart,
	'd': suitDiamond,
	'c': suitClub,
}
var intSuitToCharSuit = "xshxdxxxc"

// pretty suit symbols for logs
var prettySuits = map[int32]string{
	suitSpade:   "♠",
	suitHeart:   "♥",
	suitDiamond: "♦",
	suitClub:    "♣",
}

func init() {
	for i := 0; i < 13; i++ {
		intRanks[i] = int32(i)
		charRankToIntRank[strRanks[i]] = int32(i)
	}
}

// NewCard creates a card from a two character string, e.g. "As", "Th", "2c".
func NewCard(arg string) Card {
	if len(arg) != 2 {
		panic(fmt.Sprintf("invalid card string %q", arg))
	}
	rank, ok := charRankToIntRank[arg[0]]
	if !ok {
		panic(fmt.Sprintf("invalid card rank %q", arg))
	}
	suit, ok := charSuitToIntSuit[arg[1]]
	if !ok {
		panic(fmt.Sprintf("invalid card suit %q", arg))
	}

	rankPrime := primes[rank]
	bitRank := int32(1) << uint(rank) << 16
	suitBits := suit << 12
	rankBits := rank << 8

	return Card(bitRank | suitBits | rankBits | rankPrime)
}

// NewCardFromByte decodes the compact byte form: high 4 bits rank,
// low 4 bits suit (0001 spade, 0010 heart, 0100 diamond, 1000 club).
func NewCardFromByte(b uint8) Card {
	rank := int32(b >> 4)
	suit := int32(b & 0xF)
	return NewCard(string(strRanks[rank]) + string(intSuitToCharSuit[suit]))
}

// Rank returns the card rank, 0 (deuce) through 12 (ace).
func (c Card) Rank() int32 {
	return (int32(c) >> 8) & 0xF
}

// Suit returns the suit bit (1 spade, 2 heart, 4 diamond, 8 club).
func (c Card) Suit() int32 {
	return (int32(c) >> 12) & 0xF
}

// Prime returns the prime number assigned to the card rank.
func (c Card) Prime() int32 {
	return int32(c) & 0x3F
}

// GetByte returns the compact persistable form of the card.
func (c Card) GetByte() uint8 {
	return uint8(c.Rank()<<4 | c.Suit())
}

func (c Card) String() string {
	return string(strRanks[c.Rank()]) + string(intSuitToCharSuit[c.Suit()])
}

// PrettyString renders the card with a suit symbol for logging.
func (c Card) PrettyString() string {
	return string(strRanks[c.Rank()]) + prettySuits[c.Suit()]
}

// CardToString is the package level form of Card.String, kept for call
// sites that format raw values.
func CardToString(c Card) string {
	return c.String()
}

// CardsToString formats a card slice like [Ah Kd 2s].
func CardsToString(cards []Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}

// FromByteCards converts the persisted byte form back to cards.
func FromByteCards(bytes []uint8) []Card {
	cards := make([]Card, len(bytes))
	for i, b := range bytes {
		cards[i] = NewCardFromByte(b)
	}
	return cards
}

// CardsToByteCards converts cards to the persisted byte form.
func CardsToByteCards(cards []Card) []uint8 {
	bytes := make([]uint8, len(cards))
	for i, c := range cards {
		bytes[i] = c.GetByte()
	}
	return bytes
}

func primeProductFromHand(cards []Card) int32 {
	product := int32(1)
	for _, c := range cards {
		product *= c.Prime()
	}
	return product
}

func primeProductFromRankBits(rankBits int32) int32 {
	product := int32(1)
	for i := range intRanks {
		if rankBits&(1<<uint(i)) != 0 {
			product *= primes[i]
		}
	}
	return product
}
