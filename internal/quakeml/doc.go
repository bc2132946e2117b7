// Package quakeml ingests Mars seismic event catalogs from QuakeML
// documents carrying the mars and sst (single-station) extension
// namespaces.
//
// The pipeline runs in strictly ordered stages: a generic structural
// decode of the XML into a node tree, translation of long enumerated
// code strings into short internal codes, per-entity builders with
// documented defaulting rules, and a linking pass that resolves all
// identifier-based cross-references (arrival→pick, magnitude→origin,
// preferred origin/magnitude, extension records→base entities) into
// direct relationships.
//
// Ingestion of one document is synchronous and all-or-nothing: a
// structural problem aborts the whole document, while dangling
// identifier references degrade to unset fields by design.
package quakeml
