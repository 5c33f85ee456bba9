package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/stellium-labs/stellium-cli/internal/core/domain"
	"github.com/stellium-labs/stellium-cli/internal/core/ports/driven"
)

// chartStore implements driven.ChartStore.
type chartStore struct {
	store *Store
}

var _ driven.ChartStore = (*chartStore)(nil)

// SaveChart stores or updates a catalogued chart.
func (s *chartStore) SaveChart(ctx context.Context, record *domain.ChartRecord) error {
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO charts (id, name, theme, language, style, output_dir, svg_path, png_path, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			theme = excluded.theme,
			language = excluded.language,
			style = excluded.style,
			output_dir = excluded.output_dir,
			svg_path = excluded.svg_path,
			png_path = excluded.png_path,
			created_at = excluded.created_at
	`, record.ID, record.Name, string(record.Theme), string(record.Language), string(record.Style),
		record.OutputDir, nullString(record.SVGPath), nullString(record.PNGPath),
		record.CreatedAt.Format(time.RFC3339))

	if err != nil {
		return fmt.Errorf("saving chart: %w", err)
	}
	return nil
}

// GetChart retrieves a catalogued chart by ID.
func (s *chartStore) GetChart(ctx context.Context, id string) (*domain.ChartRecord, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, name, theme, language, style, output_dir, svg_path, png_path, created_at
		FROM charts WHERE id = ?
	`, id)

	return scanChart(row)
}

// ListRecent returns up to limit charts, newest first.
func (s *chartStore) ListRecent(ctx context.Context, limit int) ([]domain.ChartRecord, error) {
	if limit <= 0 {
		limit = -1 // SQLite treats a negative LIMIT as unbounded
	}

	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, name, theme, language, style, output_dir, svg_path, png_path, created_at
		FROM charts
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing charts: %w", err)
	}
	defer rows.Close()

	var records []domain.ChartRecord //nolint:prealloc // size unknown from query
	for rows.Next() {
		record, err := scanChartRows(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating charts: %w", err)
	}

	return records, nil
}

// DeleteChart removes a catalogued chart. Artifact files are untouched.
func (s *chartStore) DeleteChart(ctx context.Context, id string) error {
	res, err := s.store.db.ExecContext(ctx, "DELETE FROM charts WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting chart: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting chart: %w", err)
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ==================== Helper Functions ====================

// scanChart scans a single chart row.
func scanChart(row *sql.Row) (*domain.ChartRecord, error) {
	var record domain.ChartRecord
	var theme, language, style, createdAt string
	var svgPath, pngPath sql.NullString

	if err := row.Scan(&record.ID, &record.Name, &theme, &language, &style,
		&record.OutputDir, &svgPath, &pngPath, &createdAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning chart: %w", err)
	}

	record.Theme = domain.Theme(theme)
	record.Language = domain.Language(language)
	record.Style = domain.ChartStyle(style)
	record.SVGPath = svgPath.String
	record.PNGPath = pngPath.String
	if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
		record.CreatedAt = t
	}

	return &record, nil
}

// scanChartRows scans a chart from *sql.Rows.
func scanChartRows(rows *sql.Rows) (*domain.ChartRecord, error) {
	var record domain.ChartRecord
	var theme, language, style, createdAt string
	var svgPath, pngPath sql.NullString

	if err := rows.Scan(&record.ID, &record.Name, &theme, &language, &style,
		&record.OutputDir, &svgPath, &pngPath, &createdAt); err != nil {
		return nil, fmt.Errorf("scanning chart: %w", err)
	}

	record.Theme = domain.Theme(theme)
	record.Language = domain.Language(language)
	record.Style = domain.ChartStyle(style)
	record.SVGPath = svgPath.String
	record.PNGPath = pngPath.String
	if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
		record.CreatedAt = t
	}

	return &record, nil
}

// nullString returns nil for empty strings, for nullable columns.
func nullString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
