package game

import "sort"

const (
	MinFrequency     = 0.5
	MaxFrequency     = 2.0
	DefaultFrequency = 1.0
)

// Difficulty presets map to note frequency multipliers
var Difficulties = map[string]float64{
	"relaxed": 0.5,
	"normal":  1.0,
	"expert":  1.5,
	"frantic": 2.0,
}

func DifficultyNames() []string {
	names := make([]string, 0, len(Difficulties))
	for name := range Difficulties {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return Difficulties[names[i]] < Difficulties[names[j]]
	})
	return names
}

func ClampFrequency(f float64) float64 {
	if f < MinFrequency {
		return MinFrequency
	}
	if f > MaxFrequency {
		return MaxFrequency
	}
	return f
}
