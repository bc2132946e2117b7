// Package store exports linked catalogs to PostgreSQL.
//
// The exporter creates the relational schema on first use and writes
// each catalog in a single transaction: either every event lands or
// none do. Identifiers from the catalog document serve as primary keys,
// so re-exporting the same document replaces its rows.
package store
