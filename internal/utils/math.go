// internal/utils/math.go
package utils

import "math"

// NormalizeAngle folds angle into [-π, π].
func NormalizeAngle(angle float64) float64 {
	if math.IsInf(angle, 0) || math.IsNaN(angle) {
		return angle
	}
	angle = math.Mod(angle, 2*math.Pi)
	if angle > math.Pi {
		angle -= 2 * math.Pi
	} else if angle < -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}

// Sign returns -1, 0 or 1 matching the sign of x.
func Sign(x float64) float64 {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}
