package rng

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntBetweenStaysInRange(t *testing.T) {
	roller := New(&Config{Seed: 42})

	for i := 0; i < 1000; i++ {
		v := roller.IntBetween(15, 25)
		assert.GreaterOrEqual(t, v, 15)
		assert.LessOrEqual(t, v, 25)
	}
}

func TestIntBetweenDegenerateRange(t *testing.T) {
	roller := New(&Config{Seed: 42})

	assert.Equal(t, 7, roller.IntBetween(7, 7))
	assert.Equal(t, 9, roller.IntBetween(9, 3))
}

func TestSampleWithoutReplacement(t *testing.T) {
	roller := New(&Config{Seed: 42})
	items := []string{"a", "b", "c", "d", "e"}

	picked := roller.Sample(items, 3)
	assert.Len(t, picked, 3)

	seen := make(map[string]bool)
	for _, p := range picked {
		assert.False(t, seen[p], "duplicate winner %s", p)
		seen[p] = true
		assert.Contains(t, items, p)
	}
}

func TestSampleBoundedByItems(t *testing.T) {
	roller := New(&Config{Seed: 42})

	picked := roller.Sample([]string{"a", "b"}, 5)
	assert.Len(t, picked, 2)

	assert.Empty(t, roller.Sample(nil, 3))
	assert.Empty(t, roller.Sample([]string{"a"}, 0))
}

func TestConcurrentUse(t *testing.T) {
	// One roller is shared by the game, giveaway, and handler layers, whose
	// callbacks run on separate goroutines. Run under -race.
	roller := New(&Config{Seed: 42})
	items := []string{"a", "b", "c", "d", "e"}

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				v := roller.IntBetween(15, 25)
				assert.GreaterOrEqual(t, v, 15)
				assert.LessOrEqual(t, v, 25)
				roller.Pick(items)
				roller.Sample(items, 3)
			}
		}()
	}
	wg.Wait()
}

func TestPick(t *testing.T) {
	roller := New(&Config{Seed: 42})

	assert.Equal(t, "", roller.Pick(nil))
	assert.Equal(t, "only", roller.Pick([]string{"only"}))
	assert.Contains(t, []string{"a", "b"}, roller.Pick([]string{"a", "b"}))
}
