package rng

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequenceIsDeterministic(t *testing.T) {
	a := NewSequence(HashString("2025-03-09"))
	b := NewSequence(HashString("2025-03-09"))

	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Next(), b.Next())
	}
}

func TestSequenceIntnStaysInBounds(t *testing.T) {
	seq := NewSequence(HashString("2025-03-09"))

	for i := 0; i < 1000; i++ {
		v := seq.Intn(24)
		assert.GreaterOrEqual(t, v, 0)
		assert.Less(t, v, 24)
	}
}

func TestSequenceIntnHandlesDegenerateSizes(t *testing.T) {
	seq := NewSequence(1)

	assert.Equal(t, 0, seq.Intn(0))
	assert.Equal(t, 0, seq.Intn(1))
}

func TestHashStringIsStableAndNonNegative(t *testing.T) {
	first := HashString("2025-03-09")
	second := HashString("2025-03-09")

	assert.Equal(t, first, second)
	assert.GreaterOrEqual(t, first, int64(0))
	assert.NotEqual(t, HashString("2025-03-09"), HashString("2025-03-10"))
}

func TestDifferentSeedsDiverge(t *testing.T) {
	a := NewSequence(HashString("2025-03-09"))
	b := NewSequence(HashString("2025-03-10"))

	diverged := false
	for i := 0; i < 10; i++ {
		if a.Next() != b.Next() {
			diverged = true
			break
		}
	}
	assert.True(t, diverged)
}
