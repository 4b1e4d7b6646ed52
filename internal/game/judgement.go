package game

type Judgement int

const (
	Perfect Judgement = iota
	Good
	Okay
	Miss
)

// Window is the widest absolute distance, in field units, that still earns the judgement
type Window struct {
	Judgement Judgement
	Distance  float64
	Points    int
	Name      string
}

// Judgements is ordered from tightest to loosest, Miss catches everything else
var Judgements = []Window{
	{Judgement: Perfect, Distance: 15, Points: 100, Name: "Perfect"},
	{Judgement: Good, Distance: 25, Points: 70, Name: "Good"},
	{Judgement: Okay, Distance: 35, Points: 40, Name: "Okay"},
	{Judgement: Miss, Distance: -1, Points: 0, Name: "Miss"},
}

// Judge classifies an absolute distance to the tap line
func Judge(d float64) Judgement {
	if d < 0 {
		d = -d
	}
	for i := 0; i < len(Judgements)-1; i++ {
		if d <= Judgements[i].Distance {
			return Judgements[i].Judgement
		}
	}
	return Miss
}

func (j Judgement) Points() int {
	if j < Perfect || j > Miss {
		return 0
	}
	return Judgements[j].Points
}

func (j Judgement) String() string {
	if j < Perfect || j > Miss {
		return "Unknown"
	}
	return Judgements[j].Name
}

// Buckets counts judgements for one session
type Buckets struct {
	Perfect int `json:"perfect"`
	Good    int `json:"good"`
	Okay    int `json:"okay"`
	Miss    int `json:"miss"`
}

func (b *Buckets) Add(j Judgement) {
	switch j {
	case Perfect:
		b.Perfect++
	case Good:
		b.Good++
	case Okay:
		b.Okay++
	case Miss:
		b.Miss++
	}
}

func (b Buckets) Count(j Judgement) int {
	switch j {
	case Perfect:
		return b.Perfect
	case Good:
		return b.Good
	case Okay:
		return b.Okay
	case Miss:
		return b.Miss
	}
	return 0
}

// Hits is every judgement that landed on a note
func (b Buckets) Hits() int {
	return b.Perfect + b.Good + b.Okay
}

func (b Buckets) Total() int {
	return b.Hits() + b.Miss
}

func (b Buckets) Weighted() int {
	return b.Perfect*Perfect.Points() + b.Good*Good.Points() + b.Okay*Okay.Points()
}
