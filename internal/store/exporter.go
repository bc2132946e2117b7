package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/vvka-141/marsquake/internal/logging"
	"github.com/vvka-141/marsquake/pkg/catalog"
)

// Exporter writes catalogs to a PostgreSQL database.
type Exporter struct {
	pool   *pgxpool.Pool
	logger catalog.Logger
}

// NewExporter creates an exporter over an established connection pool.
// A nil logger disables progress output. Panics on a nil pool.
func NewExporter(pool *pgxpool.Pool, logger catalog.Logger) *Exporter {
	if pool == nil {
		panic("pool cannot be nil")
	}
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	return &Exporter{pool: pool, logger: logger}
}

// Export writes the whole catalog in one transaction, creating the
// schema first when needed. Events already present, keyed by document
// identifier, are replaced along with their dependent rows.
func (e *Exporter) Export(ctx context.Context, cat *catalog.Catalog) error {
	if cat == nil {
		return fmt.Errorf("catalog must not be nil: %w", catalog.ErrInvalidValue)
	}

	if err := e.ensureSchema(ctx); err != nil {
		return fmt.Errorf("creating export schema: %v: %w", err, catalog.ErrExportFailed)
	}

	tx, err := e.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning export transaction: %v: %w", err, catalog.ErrExportFailed)
	}
	defer tx.Rollback(ctx)

	for _, ev := range cat.Events() {
		if err := e.insertEvent(ctx, tx, cat.Source(), ev); err != nil {
			return fmt.Errorf("exporting event %s: %v: %w", ev.Name(), err, catalog.ErrExportFailed)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing export: %v: %w", err, catalog.ErrExportFailed)
	}

	e.logger.Info("Exported %d events", cat.Len())
	return nil
}

func (e *Exporter) ensureSchema(ctx context.Context) error {
	for _, stmt := range schemaStatements {
		if _, err := e.pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

func (e *Exporter) insertEvent(ctx context.Context, tx pgx.Tx, source string, ev *catalog.Event) error {
	if err := e.deleteEvent(ctx, tx, ev.PublicID()); err != nil {
		return err
	}

	_, err := tx.Exec(ctx, `
		INSERT INTO events (public_id, name, mars_type, earth_type, interpretation,
			preferred_origin_id, preferred_magnitude_id, source)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		ev.PublicID(), ev.Name(), ev.MarsType(), ev.EarthType(), ev.Interpretation(),
		emptyAsNull(ev.PreferredOriginID()), emptyAsNull(ev.PreferredMagnitudeID()), source)
	if err != nil {
		return err
	}

	for _, o := range ev.Origins() {
		if err := e.insertOrigin(ctx, tx, ev.PublicID(), o); err != nil {
			return err
		}
	}
	for _, m := range ev.Magnitudes() {
		if err := e.insertMagnitude(ctx, tx, ev.PublicID(), m); err != nil {
			return err
		}
	}
	for _, p := range ev.Picks() {
		if err := e.insertPick(ctx, tx, ev.PublicID(), p); err != nil {
			return err
		}
	}
	return nil
}

func (e *Exporter) deleteEvent(ctx context.Context, tx pgx.Tx, publicID string) error {
	statements := []string{
		`DELETE FROM arrivals WHERE origin_id IN (SELECT public_id FROM origins WHERE event_id = $1)`,
		`DELETE FROM origins WHERE event_id = $1`,
		`DELETE FROM magnitudes WHERE event_id = $1`,
		`DELETE FROM picks WHERE event_id = $1`,
		`DELETE FROM events WHERE public_id = $1`,
	}
	for _, stmt := range statements {
		if _, err := tx.Exec(ctx, stmt, publicID); err != nil {
			return err
		}
	}
	return nil
}

func (e *Exporter) insertOrigin(ctx context.Context, tx pgx.Tx, eventID string, o *catalog.Origin) error {
	_, err := tx.Exec(ctx, `
		INSERT INTO origins (public_id, event_id, origin_time, latitude, longitude, depth_m,
			quality, distance_deg, baz_deg, snr, origin_source)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		o.PublicID(), eventID, o.Time(), o.Latitude(), o.Longitude(), o.Depth(),
		o.Quality(), nullable(o.Distance()), nullable(o.BAZ()), nullable(o.SNR()),
		o.Source())
	if err != nil {
		return err
	}

	for _, a := range o.Arrivals() {
		if err := e.insertArrival(ctx, tx, o.PublicID(), a); err != nil {
			return err
		}
	}
	return nil
}

func (e *Exporter) insertMagnitude(ctx context.Context, tx pgx.Tx, eventID string, m *catalog.Magnitude) error {
	var originID any
	if m.OriginID() != "" {
		originID = m.OriginID()
	}
	_, err := tx.Exec(ctx, `
		INSERT INTO magnitudes (public_id, event_id, origin_id, magnitude_type, value,
			lower_uncertainty, upper_uncertainty)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		m.PublicID(), eventID, originID, m.Type(), m.Value(),
		nullable(m.LowerUncertainty()), nullable(m.UpperUncertainty()))
	return err
}

func (e *Exporter) insertPick(ctx context.Context, tx pgx.Tx, eventID string, p *catalog.Pick) error {
	var frequency any
	if sst := p.SingleStationPick(); sst != nil {
		if f, ok := sst.Frequency(); ok {
			frequency = f
		}
	}
	_, err := tx.Exec(ctx, `
		INSERT INTO picks (public_id, event_id, pick_time, phase_hint,
			lower_uncertainty, upper_uncertainty, frequency)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		p.PublicID(), eventID, p.Time(), p.PhaseHint(),
		nullable(p.LowerUncertainty()), nullable(p.UpperUncertainty()), frequency)
	return err
}

func (e *Exporter) insertArrival(ctx context.Context, tx pgx.Tx, originID string, a *catalog.Arrival) error {
	var arrivalTime any
	if t, ok := a.Time(); ok {
		arrivalTime = t
	}
	_, err := tx.Exec(ctx, `
		INSERT INTO arrivals (public_id, origin_id, pick_id, phase, arrival_time,
			lower_uncertainty, upper_uncertainty)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		a.PublicID(), originID, a.PickID(), a.PhaseLabel(), arrivalTime,
		nullable(a.LowerUncertainty()), nullable(a.UpperUncertainty()))
	return err
}

// nullable maps a comma-ok accessor result to a SQL value.
func nullable(v float64, ok bool) any {
	if !ok {
		return nil
	}
	return v
}

func emptyAsNull(s string) any {
	if s == "" {
		return nil
	}
	return s
}
