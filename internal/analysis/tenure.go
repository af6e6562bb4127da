package analysis

import "github.com/san-kum/thorny/internal/sim"

// Tenure is one uninterrupted holding of the token.
type Tenure struct {
	Body   int
	Start  uint64
	Frames int
}

func Tenures(records []sim.Record) []Tenure {
	out := make([]Tenure, 0)
	for _, r := range records {
		n := len(out)
		if n == 0 || out[n-1].Body != r.Active {
			out = append(out, Tenure{Body: r.Active, Start: r.Frame, Frames: 1})
			continue
		}
		out[n-1].Frames++
	}
	return out
}

// Visits counts, per body, the recorded frames it held the token.
// Records naming bodies outside [0, bodies) are ignored.
func Visits(records []sim.Record, bodies int) []int {
	visits := make([]int, bodies)
	for _, r := range records {
		if r.Active >= 0 && r.Active < bodies {
			visits[r.Active]++
		}
	}
	return visits
}

// Longest returns the longest tenure; the first one wins ties.
func Longest(tenures []Tenure) (Tenure, bool) {
	if len(tenures) == 0 {
		return Tenure{}, false
	}
	best := tenures[0]
	for _, t := range tenures[1:] {
		if t.Frames > best.Frames {
			best = t
		}
	}
	return best, true
}
