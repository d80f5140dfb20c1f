package crafting

import (
	"math/rand"
	"time"
)

func newTestRand() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func fixedTime() time.Time {
	return time.Unix(1_700_000_000, 0).UTC()
}
