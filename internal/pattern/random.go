package pattern

const (
	multiplier = 9301
	increment  = 49297
	modulus    = 233280
)

// Random is a linear congruential generator. The same seed always yields the same
// sequence, which is what makes every player see the same pattern on the same day.
type Random struct {
	state int64
}

func NewRandom(seed int) *Random {
	return &Random{state: int64(seed)}
}

// Float64 returns the next draw in [0, 1)
func (r *Random) Float64() float64 {
	r.state = (r.state*multiplier + increment) % modulus
	return float64(r.state) / modulus
}
