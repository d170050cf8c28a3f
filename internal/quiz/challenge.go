package quiz

import (
	"math/rand"

	"github.com/vovakirdan/tui-flags/internal/countries"
)

// Drawable reports whether a country's flag can be shown.
type Drawable func(code string) bool

// SelectChallenge draws a new challenge for mode from pool.
//
// Entries are drawn uniformly without replacement, so a challenge never
// repeats a country. When the mode has Options, that many entries are
// drawn and one of them, chosen uniformly, becomes the single item.
// A pool smaller than requested yields a smaller challenge.
//
// If the mode requires art and drawable is non-nil, countries without a
// drawable flag are left out of the draw.
func SelectChallenge(rng *rand.Rand, pool countries.Pool, mode Mode, drawable Drawable) Challenge {
	mode = mode.normalized()

	candidates := pool
	if mode.RequireArt && drawable != nil {
		candidates = pool.Filter(func(c countries.Country) bool {
			return drawable(c.Code)
		})
	}

	count := mode.Items
	if mode.Options > 0 {
		count = mode.Options
	}
	picked := sample(rng, candidates, count)

	if mode.Options > 0 {
		if len(picked) == 0 {
			return Challenge{Target: -1}
		}
		target := rng.Intn(len(picked))
		return Challenge{
			Items:   []countries.Country{picked[target]},
			Options: picked,
			Target:  target,
		}
	}

	return Challenge{Items: picked, Target: -1}
}

// sample returns up to n distinct entries of from in random order.
func sample(rng *rand.Rand, from countries.Pool, n int) []countries.Country {
	if n > from.Len() {
		n = from.Len()
	}
	out := make([]countries.Country, n)
	for i, j := range rng.Perm(from.Len())[:n] {
		out[i] = from.At(j)
	}
	return out
}
