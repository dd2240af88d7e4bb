package refract

// SPEED_OF_LIGHT is the vacuum speed of light in meters per second, the
// usual reference speed for optical refractive indices.
const SPEED_OF_LIGHT = 299792458.0

// Medium is a homogeneous propagation medium, characterized entirely by
// its wave speed.
type Medium struct {
	// Speed is the propagation speed in the medium, in the same units
	// as the reference speed. Must be strictly positive.
	Speed float64
}

// RefractiveIndex returns the index of the medium relative to the given
// reference speed. A higher index means slower propagation.
func (m Medium) RefractiveIndex(referenceSpeed float64) float64 {
	return referenceSpeed / m.Speed
}

// Common optical media, indexed against SPEED_OF_LIGHT.
var (
	VACUUM      = Medium{Speed: SPEED_OF_LIGHT}
	AIR         = Medium{Speed: SPEED_OF_LIGHT / 1.000293}
	WATER       = Medium{Speed: SPEED_OF_LIGHT / 1.333}
	CROWN_GLASS = Medium{Speed: SPEED_OF_LIGHT / 1.52}
	DIAMOND     = Medium{Speed: SPEED_OF_LIGHT / 2.417}
)
