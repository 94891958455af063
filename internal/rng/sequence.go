package rng

// Sequence is a small linear congruential generator with fixed constants.
// The daily riddle set is keyed by calendar date, so every player on the
// same date must draw the same sequence regardless of platform. The
// constants are load-bearing and must not change across releases.
type Sequence struct {
	state int64
}

const (
	lcgModulus    = 0x80000000
	lcgMultiplier = 1103515245
	lcgIncrement  = 12345
)

// NewSequence creates a sequence from a seed
func NewSequence(seed int64) *Sequence {
	return &Sequence{state: seed}
}

// Next returns the next value in [0, 1)
func (s *Sequence) Next() float64 {
	s.state = (lcgMultiplier*s.state + lcgIncrement) % lcgModulus
	return float64(s.state) / float64(lcgModulus-1)
}

// Intn returns the next value scaled to [0, n)
func (s *Sequence) Intn(n int) int {
	if n < 1 {
		return 0
	}
	v := int(s.Next() * float64(n))
	if v >= n {
		v = n - 1
	}
	return v
}

// HashString reduces a string to a non-negative 32-bit seed with a
// rolling 31x hash. Like the Sequence constants, the result must stay
// bit-for-bit stable so daily sets line up across clients.
func HashString(s string) int64 {
	var hash int32
	for _, ch := range s {
		hash = (hash << 5) - hash + int32(ch)
	}
	if hash < 0 {
		hash = -hash
	}
	return int64(hash)
}
