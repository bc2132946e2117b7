// Package catalog defines the public data model for Mars seismic event
// catalogs: a Catalog of Events, each holding Origins, Magnitudes, Picks
// and their cross-references, plus the single-station extension records
// that augment them.
//
// Values of these types are produced by the QuakeML ingestion pipeline
// (internal/quakeml) and are consumed read-only through accessors.
// Mutation after ingestion happens only through the explicit setter
// methods, which validate the value being assigned but never re-run
// reference resolution.
package catalog
