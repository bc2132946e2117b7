package catalog

// Reader is the interface for ingesting a catalog document into a fully
// linked Catalog. Ingestion is all-or-nothing: implementations return a
// catalog in which every resolvable cross-reference has been resolved,
// or an error and no catalog.
type Reader interface {
	// ReadFile ingests the catalog document at the given path.
	ReadFile(path string) (*Catalog, error)
}
