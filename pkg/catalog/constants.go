package catalog

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess         = 0  // Operation completed successfully
	ExitGeneralError    = 1  // Unknown or unclassified error
	ExitUsageError      = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic           = 3  // Internal panic (unexpected crash)
	ExitConfigError     = 10 // Invalid configuration or parameters
	ExitConnectionError = 11 // Failed to connect to the export database
	ExitParseError      = 12 // Catalog document could not be ingested
	ExitExportFailed    = 13 // Catalog export failed
	ExitCatalogMissing  = 14 // Catalog document not found
)

const (
	// DefaultDepthMeters is assumed for origins whose document entry
	// carries no depth element. 50 km, in meters.
	DefaultDepthMeters = 50 * 1000.0

	// PublicIDNamespace prefixes all generated public identifiers,
	// matching the identifier scheme of the mission catalog.
	PublicIDNamespace = "smi:insight.mqs"
)

// Origin provenance values. Operator-located origins come out of the
// MQS GUI; automatically detected ones out of the deep-learning pipeline.
const (
	OriginSourceGUI = "GUI"
	OriginSourceDL  = "DL"
)
