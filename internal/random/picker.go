package random

import (
	"math/rand/v2"
	"sync"

	"go.uber.org/zap"
)

// FallbackPhrase is returned by Picker.Phrase when there is nothing to choose from.
const FallbackPhrase = "No phrases available."

type Picker struct {
	intN func(n int) int
}

// Phrase returns a uniformly chosen phrase. An empty collection yields FallbackPhrase.
func (p *Picker) Phrase(phrases []string) string {
	phrase, ok := Element(p, phrases)
	if !ok {
		zap.L().Error("the phrases collection is empty")

		return FallbackPhrase
	}

	return phrase
}

// Element returns a uniformly chosen item, ok is false when items is empty.
func Element[T any](p *Picker, items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}

	return items[p.intN(len(items))], true
}

func NewPicker() *Picker {
	return &Picker{
		intN: rand.IntN,
	}
}

// NewSeededPicker returns a deterministic picker that is safe for concurrent use.
func NewSeededPicker(seed uint64) *Picker {
	var mu sync.Mutex
	rnd := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	return &Picker{
		intN: func(n int) int {
			mu.Lock()
			defer mu.Unlock()

			return rnd.IntN(n)
		},
	}
}
