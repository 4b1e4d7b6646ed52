package score

// Field is the geometry of a lane. Distances are in the same unit as Speed
// multiplied by seconds, pixels in the browser layout the numbers come from.
type Field struct {
	Length  float64 // Length of a lane
	Margin  float64 // How far past the end a note is still live
	TapLine float64 // Offset at which a note is due
	Speed   float64 // Units per second
}

const (
	DefaultSpeed = 450
	MinSpeed     = 200
	MaxSpeed     = 600
)

func DefaultField() Field {
	return Field{
		Length:  400,
		Margin:  50,
		TapLine: 350,
		Speed:   DefaultSpeed,
	}
}

func ClampSpeed(s float64) float64 {
	if s < MinSpeed {
		return MinSpeed
	}
	if s > MaxSpeed {
		return MaxSpeed
	}
	return s
}

// DueAt is the elapsed time at which a note scheduled at t reaches the tap line
func (f Field) DueAt(t float64) float64 {
	return t + f.TapLine/f.Speed
}
