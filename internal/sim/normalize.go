// internal/sim/normalize.go
package sim

// Physical constants shared by the rink model.
const (
	FeetInMeter         = 0.3048
	GravityAcceleration = 9.81 // m/s²
	TimePerFrame        = 1.0 / 20
)

// Normalize linearly maps v from [oldMin, oldMax] onto [newMin, newMax].
// A zero-width old range maps everything to newMin.
func Normalize(v, newMin, newMax, oldMin, oldMax float64) float64 {
	oldRange := oldMax - oldMin
	if oldRange == 0 {
		return newMin
	}
	return (v-oldMin)*(newMax-newMin)/oldRange + newMin
}
