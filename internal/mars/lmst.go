package mars

import (
	"math"
	"time"
)

// Sol 0 start, the InSight landing. Value from the JPL chronos tool for
// Sol 0: https://naif.jpl.nasa.gov/cgi-bin/chronos_nsyt.pl?setup=nsyttime
var Landing = time.Date(2018, 11, 26, 5, 10, 50, 336037000, time.UTC)

// Sol 1 and sol 2 start times, used to measure one Martian day. The
// landing time cannot serve as the first endpoint because sol 0 was
// shorter than a full sol.
var (
	sol1Start = time.Date(2018, 11, 27, 5, 50, 25, 580014000, time.UTC)
	sol2Start = time.Date(2018, 11, 28, 6, 30, 0, 823990000, time.UTC)
)

// SecondsPerSol is the length of one Martian day. The 5 microsecond
// correction keeps sol-midnight timestamps from rounding into the
// neighboring sol.
var SecondsPerSol = sol2Start.Sub(sol1Start).Seconds() - 0.000005

const secondsPerEarthDay = 86400.0

// UTCToLMST converts a UTC timestamp to local mean solar time at the
// landing site. The returned timestamp counts from the Unix epoch with
// its date part carrying the sol number; the clock part reads as a Mars
// wall clock. The sol number is also returned directly.
func UTCToLMST(utc time.Time) (time.Time, int) {
	elapsed := elapsedSols(utc)
	lmst := time.Unix(0, 0).UTC().Add(secondsToDuration((elapsed - 1) * secondsPerEarthDay))
	return lmst, int(math.Floor(elapsed))
}

// UTCToSol returns the sol number for a UTC timestamp. The first sol
// is 0.
func UTCToSol(utc time.Time) int {
	return int(math.Floor(elapsedSols(utc)))
}

// UTCToSolFraction returns the sol number including the fractional part
// of the current sol.
func UTCToSolFraction(utc time.Time) float64 {
	return elapsedSols(utc)
}

// LMSTToUTC converts a local mean solar time (as produced by UTCToLMST)
// back to UTC.
func LMSTToUTC(lmst time.Time) time.Time {
	seconds := float64(lmst.UnixNano()) / 1e9
	elapsed := seconds/secondsPerEarthDay + 1
	return Landing.Add(secondsToDuration(elapsed * SecondsPerSol))
}

// SolSpan returns the UTC start and end of the given sol.
func SolSpan(sol int) (start, end time.Time) {
	start = Landing.Add(secondsToDuration(float64(sol) * SecondsPerSol))
	return start, start.Add(secondsToDuration(SecondsPerSol))
}

func elapsedSols(utc time.Time) float64 {
	return utc.Sub(Landing).Seconds() / SecondsPerSol
}

func secondsToDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
