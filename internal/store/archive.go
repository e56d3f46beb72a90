package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mathvm/mvmir/internal/ir"
	"github.com/mathvm/mvmir/internal/irtext"
)

// ErrNotFound marks lookups for ids the archive does not hold.
var ErrNotFound = errors.New("not found")

// ProgramRecord is one archived program.
type ProgramRecord struct {
	ProgramID     string
	Document      string // canonical JSON
	FunctionCount int
	CreatedAt     string
}

// Build is one entry in the append-only build log.
type Build struct {
	ID        string
	ProgramID string
	Seq       int64
	Label     string
	CreatedAt string
}

// SaveProgram archives a program under its content-addressed id.
// Uses ON CONFLICT(program_id) DO NOTHING for idempotency: archiving
// the same program twice returns the same id with inserted=false.
func (s *Store) SaveProgram(ctx context.Context, p *ir.Program) (programID string, inserted bool, err error) {
	programID, err = irtext.ProgramID(p)
	if err != nil {
		return "", false, fmt.Errorf("save program: %w", err)
	}
	canonical, err := irtext.MarshalCanonical(p)
	if err != nil {
		return "", false, fmt.Errorf("save program: %w", err)
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO programs (program_id, document, function_count)
		VALUES (?, ?, ?)
		ON CONFLICT(program_id) DO NOTHING
	`, programID, string(canonical), len(p.Functions()))
	if err != nil {
		return "", false, fmt.Errorf("save program: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return "", false, fmt.Errorf("save program: rows affected: %w", err)
	}
	return programID, affected > 0, nil
}

// GetProgram loads an archived program by id and lowers its document
// back into IR.
func (s *Store) GetProgram(ctx context.Context, programID string) (*ir.Program, error) {
	var document string
	err := s.db.QueryRowContext(ctx, `
		SELECT document FROM programs WHERE program_id = ?
	`, programID).Scan(&document)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("program %s: %w", programID, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get program: %w", err)
	}
	p, err := irtext.UnmarshalJSON([]byte(document))
	if err != nil {
		return nil, fmt.Errorf("get program %s: %w", programID, err)
	}
	return p, nil
}

// ListPrograms returns every archived program with deterministic
// ordering. Returns an empty slice (not nil) for an empty archive.
func (s *Store) ListPrograms(ctx context.Context) ([]ProgramRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT program_id, document, function_count, created_at
		FROM programs
		ORDER BY created_at ASC, program_id COLLATE BINARY ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("list programs: %w", err)
	}
	defer rows.Close()

	records := []ProgramRecord{}
	for rows.Next() {
		var rec ProgramRecord
		if err := rows.Scan(&rec.ProgramID, &rec.Document, &rec.FunctionCount, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan program: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate programs: %w", err)
	}
	return records, nil
}

// RecordBuild appends a build-log entry referencing an archived
// program. The sequence number is allocated inside the transaction, so
// the log is gapless and strictly increasing under the single-writer
// connection.
func (s *Store) RecordBuild(ctx context.Context, programID, label string) (Build, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Build{}, fmt.Errorf("record build: begin tx: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	var exists int
	err = tx.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM programs WHERE program_id = ?
	`, programID).Scan(&exists)
	if err != nil {
		return Build{}, fmt.Errorf("record build: %w", err)
	}
	if exists == 0 {
		return Build{}, fmt.Errorf("record build: program %s: %w", programID, ErrNotFound)
	}

	var seq int64
	err = tx.QueryRowContext(ctx, `
		SELECT COALESCE(MAX(seq), 0) + 1 FROM builds
	`).Scan(&seq)
	if err != nil {
		return Build{}, fmt.Errorf("record build: allocate seq: %w", err)
	}

	build := Build{
		ID:        s.ids.Generate(),
		ProgramID: programID,
		Seq:       seq,
		Label:     label,
	}
	_, err = tx.ExecContext(ctx, `
		INSERT INTO builds (id, program_id, seq, label)
		VALUES (?, ?, ?, ?)
	`, build.ID, build.ProgramID, build.Seq, build.Label)
	if err != nil {
		return Build{}, fmt.Errorf("record build: insert: %w", err)
	}

	err = tx.QueryRowContext(ctx, `
		SELECT created_at FROM builds WHERE id = ?
	`, build.ID).Scan(&build.CreatedAt)
	if err != nil {
		return Build{}, fmt.Errorf("record build: read back: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return Build{}, fmt.Errorf("record build: commit: %w", err)
	}
	return build, nil
}

// ListBuilds returns the build-log entries for one program, oldest
// first.
func (s *Store) ListBuilds(ctx context.Context, programID string) ([]Build, error) {
	return s.queryBuilds(ctx, `
		SELECT id, program_id, seq, label, created_at
		FROM builds
		WHERE program_id = ?
		ORDER BY seq ASC
	`, programID)
}

// BuildLog returns the most recent build-log entries across all
// programs, newest first. A limit <= 0 returns the whole log.
func (s *Store) BuildLog(ctx context.Context, limit int) ([]Build, error) {
	if limit <= 0 {
		return s.queryBuilds(ctx, `
			SELECT id, program_id, seq, label, created_at
			FROM builds
			ORDER BY seq DESC
		`)
	}
	return s.queryBuilds(ctx, `
		SELECT id, program_id, seq, label, created_at
		FROM builds
		ORDER BY seq DESC
		LIMIT ?
	`, limit)
}

func (s *Store) queryBuilds(ctx context.Context, query string, args ...any) ([]Build, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query builds: %w", err)
	}
	defer rows.Close()

	builds := []Build{}
	for rows.Next() {
		var b Build
		if err := rows.Scan(&b.ID, &b.ProgramID, &b.Seq, &b.Label, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan build: %w", err)
		}
		builds = append(builds, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate builds: %w", err)
	}
	return builds, nil
}
