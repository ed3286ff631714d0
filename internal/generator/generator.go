// Package generator builds typing text sequences.
package generator

import (
	"math/rand"
	"strings"
	"time"
)

// Generator produces randomized typing text.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded returns a Generator with a fixed seed.
func NewSeeded(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Pick draws count distinct entries from pool in random order.
// When count exceeds the pool size the whole pool is returned shuffled.
func (g *Generator) Pick(pool []string, count int) []string {
	if count <= 0 || len(pool) == 0 {
		return nil
	}
	if count > len(pool) {
		count = len(pool)
	}
	perm := g.rnd.Perm(len(pool))
	result := make([]string, 0, count)
	for _, idx := range perm[:count] {
		result = append(result, pool[idx])
	}
	return result
}

// Generate joins count sentences drawn from pool with single spaces.
func (g *Generator) Generate(pool []string, count int) string {
	return strings.Join(g.Pick(pool, count), " ")
}
