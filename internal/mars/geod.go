package mars

import "math"

// RadiusKm is the volumetric mean radius of Mars.
const RadiusKm = 3389.5

// InSight lander coordinates, the reference point for all distance and
// back-azimuth calculations.
const (
	LanderLatitude  = 4.502384
	LanderLongitude = 135.623447
)

// DegreesToKilometers converts an epicentral distance in degrees to
// kilometers along the Martian surface.
func DegreesToKilometers(degrees float64) float64 {
	return degrees * (RadiusKm * 2 * math.Pi / 360)
}

// KilometersToDegrees converts a surface distance in kilometers to
// degrees of arc on Mars.
func KilometersToDegrees(km float64) float64 {
	return km / (RadiusKm * 2 * math.Pi / 360)
}

// DistBAZToLatLon computes the coordinates of a point at the given
// epicentral distance (degrees) and back-azimuth (degrees, clockwise
// from north) as seen from the lander, on a spherical Mars.
func DistBAZToLatLon(distance, backazimuth float64) (lat, lon float64) {
	lat1 := radians(LanderLatitude)
	lon1 := radians(LanderLongitude)
	delta := radians(distance)
	theta := radians(backazimuth)

	lat2 := math.Asin(math.Sin(lat1)*math.Cos(delta) +
		math.Cos(lat1)*math.Sin(delta)*math.Cos(theta))
	lon2 := lon1 + math.Atan2(
		math.Sin(theta)*math.Sin(delta)*math.Cos(lat1),
		math.Cos(delta)-math.Sin(lat1)*math.Sin(lat2))

	return degrees(lat2), normalizeLongitude(degrees(lon2))
}

// LatLonToDistBAZ computes the epicentral distance (degrees) and
// back-azimuth (degrees, clockwise from north) from the lander to the
// given coordinates, on a spherical Mars.
func LatLonToDistBAZ(lat, lon float64) (distance, backazimuth float64) {
	lat1 := radians(LanderLatitude)
	lat2 := radians(lat)
	dlon := radians(lon - LanderLongitude)

	delta := math.Acos(clamp(math.Sin(lat1)*math.Sin(lat2)+
		math.Cos(lat1)*math.Cos(lat2)*math.Cos(dlon), -1, 1))
	theta := math.Atan2(
		math.Sin(dlon)*math.Cos(lat2),
		math.Cos(lat1)*math.Sin(lat2)-math.Sin(lat1)*math.Cos(lat2)*math.Cos(dlon))

	backazimuth = math.Mod(degrees(theta)+360, 360)
	return degrees(delta), backazimuth
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }
func degrees(rad float64) float64 { return rad * 180 / math.Pi }

func normalizeLongitude(lon float64) float64 {
	lon = math.Mod(lon+180, 360)
	if lon < 0 {
		lon += 360
	}
	return lon - 180
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
