// Package mars provides planetary time and geometry utilities for the
// InSight landing site: UTC to Local Mean Solar Time (LMST) conversion
// with sol numbering, and spherical geodesy for translating between
// coordinates and epicentral distance / back-azimuth pairs.
package mars
