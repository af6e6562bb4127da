// Package analysis summarizes recorded runs.
//
//   - [PowerSpectrum]: FFT magnitudes of a series (go-dsp)
//   - [DominantPeriod]: strongest repeating period of the token's holder, in frames
//   - [Tenures]: consecutive holdings of the token
//   - [Visits]: frames each body spent holding the token
//
// # Example
//
//	period, ok := analysis.DominantPeriod(result.ActiveSeries())
//	if ok {
//	    fmt.Printf("token pattern repeats every %.0f frames\n", period)
//	}
package analysis
