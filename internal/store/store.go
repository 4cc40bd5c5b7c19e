// Package store persists Camtrap DP records in PostgreSQL. Imports are
// all-or-nothing: each import runs in one transaction using the COPY
// protocol, and every import is recorded in the imports table under a fresh
// UUID.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/camtraplabs/camtrapdp/internal/camtrap"
)

// DB is the subset of pgxpool.Pool the store needs. Satisfied by
// *pgxpool.Pool; tests substitute a fake.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Store provides record persistence on top of a pgx connection pool.
type Store struct {
	db DB
}

// New creates a store. The caller owns the pool's lifecycle.
func New(db DB) *Store {
	return &Store{db: db}
}

// Import describes one completed import.
type Import struct {
	ID         uuid.UUID `json:"importID"`
	Resource   string    `json:"resource"`
	Rows       int64     `json:"rows"`
	ImportedAt time.Time `json:"importedAt"`
}

// EnsureSchema creates the record and import-log tables if they do not
// exist.
func (s *Store) EnsureSchema(ctx context.Context) error {
	for _, ddl := range []string{ddlImports, ddlDeployments, ddlMedia, ddlObservations} {
		if _, err := s.db.Exec(ctx, ddl); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

// ImportDeployments stores the records atomically and logs the import.
func (s *Store) ImportDeployments(ctx context.Context, ds camtrap.Deployments) (Import, error) {
	rows := make([][]any, len(ds))
	for i, d := range ds {
		rows[i] = []any{
			d.DeploymentID,
			textOrNil(d.LocationID),
			textOrNil(d.LocationName),
			d.Latitude,
			d.Longitude,
			d.CoordinateUncertainty,
			d.DeploymentStart,
			d.DeploymentEnd,
			textOrNil(d.SetupBy),
			textOrNil(d.CameraID),
			textOrNil(d.CameraModel),
			d.CameraDelay,
			d.CameraHeight,
			d.CameraDepth,
			d.CameraTilt,
			d.CameraHeading,
			d.DetectionDistance,
			d.TimestampIssues,
			d.BaitUse,
			textOrNil(string(d.FeatureType)),
			textOrNil(d.Habitat),
			textOrNil(d.DeploymentGroups),
			textOrNil(d.DeploymentTags),
			textOrNil(d.DeploymentComments),
		}
	}
	return s.importRows(ctx, "deployments", deploymentColumns, rows)
}

// ImportMedia stores the records atomically and logs the import.
func (s *Store) ImportMedia(ctx context.Context, ms camtrap.MediaSet) (Import, error) {
	rows := make([][]any, len(ms))
	for i, m := range ms {
		rows[i] = []any{
			m.MediaID,
			m.DeploymentID,
			textOrNil(string(m.CaptureMethod)),
			m.Timestamp,
			m.FilePath,
			m.FilePublic,
			textOrNil(m.FileName),
			m.FileMediatype,
			textOrNil(m.ExifData),
			m.Favorite,
			textOrNil(m.MediaComments),
		}
	}
	return s.importRows(ctx, "media", mediaColumns, rows)
}

// ImportObservations stores the records atomically and logs the import.
func (s *Store) ImportObservations(ctx context.Context, obs camtrap.Observations) (Import, error) {
	rows := make([][]any, len(obs))
	for i, o := range obs {
		rows[i] = []any{
			o.ObservationID,
			o.DeploymentID,
			textOrNil(o.MediaID),
			textOrNil(o.EventID),
			o.EventStart,
			o.EventEnd,
			string(o.ObservationLevel),
			string(o.ObservationType),
			textOrNil(string(o.CameraSetupType)),
			textOrNil(o.ScientificName),
			o.Count,
			textOrNil(string(o.LifeStage)),
			textOrNil(o.Sex),
			textOrNil(o.Behavior),
			textOrNil(o.IndividualID),
			o.IndividualPositionRadius,
			o.IndividualPositionAngle,
			o.IndividualSpeed,
			o.BboxX,
			o.BboxY,
			o.BboxWidth,
			o.BboxHeight,
			textOrNil(string(o.ClassificationMethod)),
			textOrNil(o.ClassifiedBy),
			textOrNil(o.ClassificationTimestamp),
			o.ClassificationProbability,
			textOrNil(o.ObservationTags),
			textOrNil(o.ObservationComments),
		}
	}
	return s.importRows(ctx, "observations", observationColumns, rows)
}

// importRows copies rows into the named table and records the import, all in
// one transaction.
func (s *Store) importRows(ctx context.Context, resource string, columns []string, rows [][]any) (Import, error) {
	imp := Import{
		ID:         uuid.New(),
		Resource:   resource,
		ImportedAt: time.Now().UTC(),
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return Import{}, fmt.Errorf("import %s: begin: %w", resource, err)
	}
	defer tx.Rollback(ctx) // No-op after commit

	n, err := tx.CopyFrom(ctx, pgx.Identifier{resource}, columns, pgx.CopyFromRows(rows))
	if err != nil {
		return Import{}, fmt.Errorf("import %s: copy: %w", resource, err)
	}
	imp.Rows = n

	if _, err := tx.Exec(ctx,
		`INSERT INTO imports (id, resource, row_count, imported_at) VALUES ($1, $2, $3, $4)`,
		imp.ID, imp.Resource, imp.Rows, imp.ImportedAt,
	); err != nil {
		return Import{}, fmt.Errorf("import %s: log: %w", resource, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return Import{}, fmt.Errorf("import %s: commit: %w", resource, err)
	}
	return imp, nil
}

// RowCounts returns the stored row count per resource table.
func (s *Store) RowCounts(ctx context.Context) (map[string]int64, error) {
	counts := make(map[string]int64, 3)
	for _, resource := range []string{"deployments", "media", "observations"} {
		var n int64
		if err := s.db.QueryRow(ctx, "SELECT count(*) FROM "+resource).Scan(&n); err != nil {
			return nil, fmt.Errorf("count %s: %w", resource, err)
		}
		counts[resource] = n
	}
	return counts, nil
}

// textOrNil stores empty optional text as NULL instead of the empty string.
func textOrNil(s string) any {
	if s == "" {
		return nil
	}
	return s
}
