package holdem

import (
	"fmt"
	"sort"

	"holdemsim/pkg/deck"
)

// Evaluate5 evaluates exactly five distinct cards and returns the best
// category they form along with its tie-break key.
func Evaluate5(cards []*deck.Card) (HandValue, error) {
	if len(cards) != 5 {
		return HandValue{}, fmt.Errorf("expected 5 cards, got %d", len(cards))
	}

	if err := ensureDistinct(cards); err != nil {
		return HandValue{}, err
	}

	return evaluate5(cards), nil
}

// EvaluateBest evaluates five to seven distinct cards and returns the best
// value any five-card selection can make.
func EvaluateBest(cards []*deck.Card) (HandValue, error) {
	if len(cards) < 5 || len(cards) > 7 {
		return HandValue{}, fmt.Errorf("expected 5 to 7 cards, got %d", len(cards))
	}

	if err := ensureDistinct(cards); err != nil {
		return HandValue{}, err
	}

	best := HandValue{Category: -1}
	for _, combo := range combinations(cards, 5) {
		if value := evaluate5(combo); best.Category < 0 || value.Compare(best) > 0 {
			best = value
		}
	}

	return best, nil
}

func ensureDistinct(cards []*deck.Card) error {
	seen := make(map[deck.Card]bool, len(cards))
	for _, card := range cards {
		if seen[*card] {
			return fmt.Errorf("duplicate card: %s", card)
		}

		seen[*card] = true
	}

	return nil
}

func evaluate5(cards []*deck.Card) HandValue {
	rankCounts := make(map[int]int)
	suitRanks := make(map[deck.Suit][]int)
	ranks := make([]int, 0, len(cards))

	for _, card := range cards {
		rankCounts[card.Rank]++
		suitRanks[card.Suit] = append(suitRanks[card.Suit], card.Rank)
		ranks = append(ranks, card.Rank)
	}

	// a five-card hand is a flush iff a single suit holds all five cards
	var flush []int
	for _, suited := range suitRanks {
		if len(suited) >= 5 {
			flush = append([]int{}, suited...)
			sort.Sort(sort.Reverse(sort.IntSlice(flush)))
			break
		}
	}

	straight := straightHigh(ranks)

	if flush != nil {
		if high := straightHigh(flush); high > 0 {
			if high == deck.Ace {
				return HandValue{Category: RoyalFlush, Key: []int{deck.Ace}}
			}

			return HandValue{Category: StraightFlush, Key: []int{high}}
		}
	}

	quads, trips, pairs := groupByCount(rankCounts)

	if len(quads) > 0 {
		quad := quads[0]
		return HandValue{Category: FourOfAKind, Key: []int{quad, bestKicker(ranks, quad)}}
	}

	if len(trips) > 0 && (len(pairs) > 0 || len(trips) > 1) {
		trip := trips[0]
		pair := 0
		if len(pairs) > 0 {
			pair = pairs[0]
		}
		if len(trips) > 1 && trips[1] > pair {
			pair = trips[1]
		}

		return HandValue{Category: FullHouse, Key: []int{trip, pair}}
	}

	if flush != nil {
		return HandValue{Category: Flush, Key: flush[0:5]}
	}

	if straight > 0 {
		return HandValue{Category: Straight, Key: []int{straight}}
	}

	if len(trips) > 0 {
		trip := trips[0]
		return HandValue{Category: ThreeOfAKind, Key: append([]int{trip}, kickers(ranks, 2, trip)...)}
	}

	if len(pairs) >= 2 {
		return HandValue{
			Category: TwoPair,
			Key:      []int{pairs[0], pairs[1], bestKicker(ranks, pairs[0], pairs[1])},
		}
	}

	if len(pairs) == 1 {
		pair := pairs[0]
		return HandValue{Category: OnePair, Key: append([]int{pair}, kickers(ranks, 3, pair)...)}
	}

	return HandValue{Category: HighCard, Key: kickers(ranks, 5)}
}

// straightHigh returns the high card of the best straight the ranks can form,
// or 0 if there is none. An ace counts both high and low.
func straightHigh(ranks []int) int {
	present := make(map[int]bool, len(ranks))
	for _, rank := range ranks {
		present[rank] = true
		if rank == deck.Ace {
			present[deck.LowAce] = true
		}
	}

	for high := deck.Ace; high >= 5; high-- {
		run := true
		for i := 0; i < 5; i++ {
			if !present[high-i] {
				run = false
				break
			}
		}

		if run {
			return high
		}
	}

	return 0
}

// groupByCount buckets ranks into quads, trips, and pairs, each sorted descending
func groupByCount(rankCounts map[int]int) (quads, trips, pairs []int) {
	for rank, count := range rankCounts {
		switch count {
		case 4:
			quads = append(quads, rank)
		case 3:
			trips = append(trips, rank)
		case 2:
			pairs = append(pairs, rank)
		}
	}

	sort.Sort(sort.Reverse(sort.IntSlice(quads)))
	sort.Sort(sort.Reverse(sort.IntSlice(trips)))
	sort.Sort(sort.Reverse(sort.IntSlice(pairs)))

	return
}

// kickers returns the best {want} ranks excluding the listed ranks, descending
func kickers(ranks []int, want int, exclude ...int) []int {
	excluded := make(map[int]bool, len(exclude))
	for _, rank := range exclude {
		excluded[rank] = true
	}

	remaining := make([]int, 0, len(ranks))
	for _, rank := range ranks {
		if !excluded[rank] {
			remaining = append(remaining, rank)
		}
	}

	sort.Sort(sort.Reverse(sort.IntSlice(remaining)))
	if len(remaining) > want {
		remaining = remaining[0:want]
	}

	return remaining
}

func bestKicker(ranks []int, exclude ...int) int {
	k := kickers(ranks, 1, exclude...)
	if len(k) == 0 {
		return 0
	}

	return k[0]
}

// combinations returns every way to choose k cards from the slice
func combinations(cards []*deck.Card, k int) [][]*deck.Card {
	if k > len(cards) || k <= 0 {
		return nil
	}

	if k == len(cards) {
		return [][]*deck.Card{cards}
	}

	var result [][]*deck.Card

	var generate func(start int, current []*deck.Card)
	generate = func(start int, current []*deck.Card) {
		if len(current) == k {
			combo := make([]*deck.Card, k)
			copy(combo, current)
			result = append(result, combo)
			return
		}

		for i := start; i <= len(cards)-(k-len(current)); i++ {
			generate(i+1, append(current, cards[i]))
		}
	}

	generate(0, make([]*deck.Card, 0, k))
	return result
}
