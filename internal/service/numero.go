package service

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// NumeroTermoGenerator issues tracking numbers in the form
// TRM<ano><unix><sufixo>, where sufixo is a uniform draw in [1000, 9999].
// The clock and the random source are injectable for deterministic tests.
type NumeroTermoGenerator struct {
	now func() time.Time

	mu  sync.Mutex
	rnd *rand.Rand
}

// NewNumeroTermoGenerator builds a generator backed by the wall clock and an
// independently seeded source.
func NewNumeroTermoGenerator() *NumeroTermoGenerator {
	return &NumeroTermoGenerator{
		now: time.Now,
		rnd: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// NewNumeroTermoGeneratorWith accepts an explicit clock and source.
func NewNumeroTermoGeneratorWith(now func() time.Time, rnd *rand.Rand) *NumeroTermoGenerator {
	return &NumeroTermoGenerator{now: now, rnd: rnd}
}

// Gerar returns a fresh numero. Uniqueness is not guaranteed here; the
// database enforces it and callers regenerate on collision.
func (g *NumeroTermoGenerator) Gerar() string {
	t := g.now()

	g.mu.Lock()
	sufixo := g.rnd.Intn(9000) + 1000
	g.mu.Unlock()

	return fmt.Sprintf("TRM%d%d%d", t.Year(), t.Unix(), sufixo)
}
