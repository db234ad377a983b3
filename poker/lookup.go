package poker

// Hand rank boundaries. Ranks run 1 (royal flush) to 7462 (7-5-4-3-2
// unsuited); lower is stronger. Each constant is the worst rank of its
// category.
const (
	MaxStraightFlush = 10
	MaxFourOfAKind   = 166
	MaxFullHouse     = 322
	MaxFlush         = 1599
	MaxStraight      = 1609
	MaxThreeOfAKind  = 2467
	MaxTwoPair       = 3325
	MaxPair          = 6185
	MaxHighCard      = 7462
)

// Rank classes, strongest first.
const (
	StraightFlush int32 = iota + 1
	FourOfAKind
	FullHouse
	Flush
	Straight
	ThreeOfAKind
	TwoPair
	Pair
	HighCard
)

var maxToRankClass = map[int32]int32{
	MaxStraightFlush: StraightFlush,
	MaxFourOfAKind:   FourOfAKind,
	MaxFullHouse:     FullHouse,
	MaxFlush:         Flush,
	MaxStraight:      Straight,
	MaxThreeOfAKind:  ThreeOfAKind,
	MaxTwoPair:       TwoPair,
	MaxPair:          Pair,
	MaxHighCard:      HighCard,
}

var rankClassToString = map[int32]string{
	StraightFlush: "Straight Flush",
	FourOfAKind:   "Four of a Kind",
	FullHouse:     "Full House",
	Flush:         "Flush",
	Straight:      "Straight",
	ThreeOfAKind:  "Three of a Kind",
	TwoPair:       "Two Pair",
	Pair:          "Pair",
	HighCard:      "High Card",
}

// The five-card rank bit patterns of the ten straights, ace high down to
// the wheel.
var straightRankBits = []int32{
	7936, // 0b1111100000000 A K Q J T
	3968, // 0b0111110000000
	1984, // 0b0011111000000
	992,  // 0b0001111100000
	496,  // 0b0000111110000
	248,  // 0b0000011111000
	124,  // 0b0000001111100
	62,   // 0b0000000111110
	31,   // 0b0000000011111
	4111, // 0b1000000001111 5 high (wheel)
}

// lookupTable maps the prime product of a five card hand to its rank.
// Suited hands go through flushLookup, everything else through
// unsuitedLookup.
type lookupTable struct {
	flushLookup    map[int32]int32
	unsuitedLookup map[int32]int32
}

func newLookupTable() *lookupTable {
	table := &lookupTable{
		flushLookup:    map[int32]int32{},
		unsuitedLookup: map[int32]int32{},
	}
	table.buildFlushes()
	table.buildMultiples()
	return table
}

// buildFlushes fills the flush lookup (straight flushes and plain flushes)
// and, from the same bit patterns, the unsuited straights and high cards.
func (table *lookupTable) buildFlushes() {
	// all other 5-distinct-rank patterns, generated in ascending
	// lexicographic order then reversed so stronger hands come first
	var flushes []int32
	bits := int32(31) // 0b11111
	for i := 0; i < 1277+len(straightRankBits)-1; i++ {
		bits = nextBitPermutation(bits)
		isStraight := false
		for _, s := range straightRankBits {
			if bits^s == 0 {
				isStraight = true
				break
			}
		}
		if !isStraight {
			flushes = append(flushes, bits)
		}
	}
	for i, j := 0, len(flushes)-1; i < j; i, j = i+1, j-1 {
		flushes[i], flushes[j] = flushes[j], flushes[i]
	}

	rank := int32(1)
	for _, sf := range straightRankBits {
		table.flushLookup[primeProductFromRankBits(sf)] = rank
		rank++
	}

	rank = MaxFullHouse + 1
	for _, f := range flushes {
		table.flushLookup[primeProductFromRankBits(f)] = rank
		rank++
	}

	// same rank-bit patterns, unsuited
	rank = MaxFlush + 1
	for _, s := range straightRankBits {
		table.unsuitedLookup[primeProductFromRankBits(s)] = rank
		rank++
	}
	rank = MaxPair + 1
	for _, h := range flushes {
		table.unsuitedLookup[primeProductFromRankBits(h)] = rank
		rank++
	}
}

// buildMultiples fills the unsuited lookup for quads, full houses, trips,
// two pair and one pair.
func (table *lookupTable) buildMultiples() {
	// ranks from ace down to deuce
	backwardRanks := make([]int32, len(intRanks))
	for i := range intRanks {
		backwardRanks[len(intRanks)-1-i] = intRanks[i]
	}

	rank := int32(MaxStraightFlush + 1)
	for _, quad := range backwardRanks {
		for _, kicker := range ranksExcluding(backwardRanks, quad) {
			product := primes[quad] * primes[quad] * primes[quad] * primes[quad] * primes[kicker]
			table.unsuitedLookup[product] = rank
			rank++
		}
	}

	rank = MaxFourOfAKind + 1
	for _, trip := range backwardRanks {
		for _, pair := range ranksExcluding(backwardRanks, trip) {
			product := primes[trip] * primes[trip] * primes[trip] * primes[pair] * primes[pair]
			table.unsuitedLookup[product] = rank
			rank++
		}
	}

	rank = MaxStraight + 1
	for _, trip := range backwardRanks {
		kickers := ranksExcluding(backwardRanks, trip)
		for i := 0; i < len(kickers)-1; i++ {
			for j := i + 1; j < len(kickers); j++ {
				product := primes[trip] * primes[trip] * primes[trip] * primes[kickers[i]] * primes[kickers[j]]
				table.unsuitedLookup[product] = rank
				rank++
			}
		}
	}

	rank = MaxThreeOfAKind + 1
	for i := 0; i < len(backwardRanks)-1; i++ {
		for j := i + 1; j < len(backwardRanks); j++ {
			highPair, lowPair := backwardRanks[i], backwardRanks[j]
			kickers := ranksExcluding(ranksExcluding(backwardRanks, highPair), lowPair)
			for _, kicker := range kickers {
				product := primes[highPair] * primes[highPair] * primes[lowPair] * primes[lowPair] * primes[kicker]
				table.unsuitedLookup[product] = rank
				rank++
			}
		}
	}

	rank = MaxTwoPair + 1
	for _, pair := range backwardRanks {
		kickers := ranksExcluding(backwardRanks, pair)
		for i := 0; i < len(kickers)-2; i++ {
			for j := i + 1; j < len(kickers)-1; j++ {
				for k := j + 1; k < len(kickers); k++ {
					product := primes[pair] * primes[pair] * primes[kickers[i]] * primes[kickers[j]] * primes[kickers[k]]
					table.unsuitedLookup[product] = rank
					rank++
				}
			}
		}
	}
}

func ranksExcluding(ranks []int32, exclude int32) []int32 {
	out := make([]int32, 0, len(ranks))
	for _, r := range ranks {
		if r != exclude {
			out = append(out, r)
		}
	}
	return out
}

// nextBitPermutation computes the lexicographically next bit pattern with
// the same number of set bits.
// https://graphics.stanford.edu/~seander/bithacks.html#NextBitPermutation
func nextBitPermutation(bits int32) int32 {
	t := (bits | (bits - 1)) + 1
	return t | ((((t & -t) / (bits & -bits)) >> 1) - 1)
}
