package gamemath

import (
	"math"

	"github.com/automoto/poetry-duel/shared/simconfig"
)

// ElasticBounce returns body 1's velocity on one axis after a 1-D elastic
// collision with body 2. Results at or below p.MinForce collapse to exactly
// zero; anything else is scaled by the global p.Efficiency and the per-call
// efficiency factor.
func ElasticBounce(m1, v1, m2, v2, efficiency float64, p simconfig.PhysicsConfig) float64 {
	force := ((m1-m2)/(m1+m2))*v1 + ((2*m2)/(m1+m2))*v2
	if math.Abs(force) <= p.MinForce {
		return 0
	}
	return force * p.Efficiency * efficiency
}

// ClampSpeed clamps a value to [-max, max].
func ClampSpeed(speed, max float64) float64 {
	if speed > max {
		return max
	}
	if speed < -max {
		return -max
	}
	return speed
}
