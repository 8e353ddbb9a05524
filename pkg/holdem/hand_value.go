package holdem

import (
	"math"
)

// HandValue is the result of evaluating a hand: a category plus an ordered
// tie-break key. Keys are rank lists in descending significance; two values
// in the same category compare element-wise on their keys.
type HandValue struct {
	Category Category `json:"category"`
	Key      []int    `json:"key"`
}

// Compare returns -1, 0, or 1 if v is worse than, equal to, or better than other
func (v HandValue) Compare(other HandValue) int {
	if v.Category != other.Category {
		if v.Category < other.Category {
			return -1
		}

		return 1
	}

	n := len(v.Key)
	if len(other.Key) < n {
		n = len(other.Key)
	}

	for i := 0; i < n; i++ {
		if v.Key[i] != other.Key[i] {
			if v.Key[i] < other.Key[i] {
				return -1
			}

			return 1
		}
	}

	return 0
}

// Strength packs the hand value into a single comparable integer using
// base-15 positional encoding. Stronger hands always have higher strengths.
func (v HandValue) Strength() int {
	fiveCards := make([]int, 5)
	copy(fiveCards, v.Key)

	strength := math.Pow(15, 5) * float64(v.Category)
	for i := 0; i < 5; i++ {
		val := fiveCards[4-i]
		strength += math.Pow(15, float64(i)) * float64(val)
	}

	return int(strength)
}

func (v HandValue) String() string {
	return v.Category.String()
}
