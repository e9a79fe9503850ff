package fixture

import (
	"math/rand/v2"
	"time"
)

// Bounds of the random draws, all closed intervals.
const (
	RatingMin   = 3
	RatingMax   = 5
	QuantityMin = 1
	QuantityMax = 3
	ItemsMin    = 1
	ItemsMax    = 4
	LoyaltyMin  = 0
	LoyaltyMax  = 499
)

// Draw is the bounded pseudo-random source of a run. It is not safe for
// concurrent use; all draws happen while planning a kind.
type Draw struct {
	seed uint64
	rng  *rand.Rand
}

// NewDraw creates a seeded source. A zero seed is replaced by a time-based
// one, available from Seed so the run can be reproduced.
func NewDraw(seed uint64) *Draw {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	return &Draw{
		seed: seed,
		rng:  rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// Seed returns the effective seed.
func (d *Draw) Seed() uint64 {
	return d.seed
}

// Between returns a value in [lo, hi]. It returns lo when lo >= hi.
func (d *Draw) Between(lo, hi int) int {
	if lo >= hi {
		return lo
	}

	return lo + d.rng.IntN(hi-lo+1)
}

// Chance returns true with probability one half.
func (d *Draw) Chance() bool {
	return d.rng.IntN(2) == 1
}

// Rating draws a review rating.
func (d *Draw) Rating() int {
	return d.Between(RatingMin, RatingMax)
}

// Quantity draws an order item quantity.
func (d *Draw) Quantity() int {
	return d.Between(QuantityMin, QuantityMax)
}

// ItemCount draws how many items an order gets.
func (d *Draw) ItemCount() int {
	return d.Between(ItemsMin, ItemsMax)
}

// Loyalty draws a profile's loyalty points.
func (d *Draw) Loyalty() int {
	return d.Between(LoyaltyMin, LoyaltyMax)
}
