package store

// Relational schema for exported catalogs. Optional fields are nullable
// columns; identifier references are not enforced as foreign keys so
// that dangling document references survive the round trip.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS events (
		public_id              TEXT PRIMARY KEY,
		name                   TEXT NOT NULL DEFAULT '',
		mars_type              TEXT NOT NULL DEFAULT '',
		earth_type             TEXT NOT NULL DEFAULT '',
		interpretation         TEXT NOT NULL DEFAULT '',
		preferred_origin_id    TEXT,
		preferred_magnitude_id TEXT,
		source                 TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE TABLE IF NOT EXISTS origins (
		public_id     TEXT PRIMARY KEY,
		event_id      TEXT NOT NULL,
		origin_time   TIMESTAMPTZ NOT NULL,
		latitude      DOUBLE PRECISION NOT NULL,
		longitude     DOUBLE PRECISION NOT NULL,
		depth_m       DOUBLE PRECISION NOT NULL,
		quality       TEXT NOT NULL DEFAULT '',
		distance_deg  DOUBLE PRECISION,
		baz_deg       DOUBLE PRECISION,
		snr           DOUBLE PRECISION,
		origin_source TEXT NOT NULL DEFAULT ''
	)`,

	`CREATE TABLE IF NOT EXISTS magnitudes (
		public_id         TEXT PRIMARY KEY,
		event_id          TEXT NOT NULL,
		origin_id         TEXT,
		magnitude_type    TEXT NOT NULL DEFAULT '',
		value             DOUBLE PRECISION NOT NULL,
		lower_uncertainty DOUBLE PRECISION,
		upper_uncertainty DOUBLE PRECISION
	)`,

	`CREATE TABLE IF NOT EXISTS picks (
		public_id         TEXT PRIMARY KEY,
		event_id          TEXT NOT NULL,
		pick_time         TIMESTAMPTZ NOT NULL,
		phase_hint        TEXT NOT NULL DEFAULT '',
		lower_uncertainty DOUBLE PRECISION,
		upper_uncertainty DOUBLE PRECISION,
		frequency         DOUBLE PRECISION
	)`,

	`CREATE TABLE IF NOT EXISTS arrivals (
		public_id         TEXT PRIMARY KEY,
		origin_id         TEXT NOT NULL,
		pick_id           TEXT NOT NULL DEFAULT '',
		phase             TEXT NOT NULL DEFAULT '',
		arrival_time      TIMESTAMPTZ,
		lower_uncertainty DOUBLE PRECISION,
		upper_uncertainty DOUBLE PRECISION
	)`,

	`CREATE INDEX IF NOT EXISTS origins_event_id_idx ON origins (event_id)`,
	`CREATE INDEX IF NOT EXISTS magnitudes_event_id_idx ON magnitudes (event_id)`,
	`CREATE INDEX IF NOT EXISTS picks_event_id_idx ON picks (event_id)`,
	`CREATE INDEX IF NOT EXISTS arrivals_origin_id_idx ON arrivals (origin_id)`,
	`CREATE INDEX IF NOT EXISTS events_name_idx ON events (name)`,
}
