package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &PostgresStore{pool: pool}, nil
}

func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

const snapshotColumns = `snapshot_id, name, session_id, score_min, score_max,
	criteria, alternatives, scores, result, created_at`

func (s *PostgresStore) SaveSnapshot(ctx context.Context, snap *Snapshot) error {
	criteriaJSON, err := json.Marshal(snap.Criteria)
	if err != nil {
		return fmt.Errorf("marshal criteria: %w", err)
	}
	alternativesJSON, err := json.Marshal(snap.Alternatives)
	if err != nil {
		return fmt.Errorf("marshal alternatives: %w", err)
	}
	scoresJSON, err := json.Marshal(snap.Scores)
	if err != nil {
		return fmt.Errorf("marshal scores: %w", err)
	}
	var resultJSON []byte
	if snap.Result != nil {
		if resultJSON, err = json.Marshal(snap.Result); err != nil {
			return fmt.Errorf("marshal result: %w", err)
		}
	}

	return s.pool.QueryRow(ctx, `
		INSERT INTO vantage_snapshots (name, session_id, score_min, score_max,
			criteria, alternatives, scores, result)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING snapshot_id, created_at`,
		snap.Name, snap.SessionID, snap.ScoreMin, snap.ScoreMax,
		criteriaJSON, alternativesJSON, scoresJSON, resultJSON,
	).Scan(&snap.ID, &snap.CreatedAt)
}

func (s *PostgresStore) GetSnapshot(ctx context.Context, id uuid.UUID) (*Snapshot, error) {
	row := s.pool.QueryRow(ctx, `
		SELECT `+snapshotColumns+`
		FROM vantage_snapshots WHERE snapshot_id = $1`, id)
	snap, err := scanSnapshot(row)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return snap, nil
}

func (s *PostgresStore) ListSnapshots(ctx context.Context, filter SnapshotFilter) ([]*Snapshot, error) {
	query := `SELECT ` + snapshotColumns + ` FROM vantage_snapshots`
	args := []interface{}{}
	if filter.Name != "" {
		query += ` WHERE name ILIKE '%' || $1 || '%'`
		args = append(args, filter.Name)
	}
	query += ` ORDER BY created_at DESC, snapshot_id`
	if filter.Limit > 0 {
		query += fmt.Sprintf(` LIMIT %d`, filter.Limit)
	}
	if filter.Offset > 0 {
		query += fmt.Sprintf(` OFFSET %d`, filter.Offset)
	}

	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*Snapshot
	for rows.Next() {
		snap, err := scanSnapshot(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, snap)
	}
	return out, rows.Err()
}

func (s *PostgresStore) DeleteSnapshot(ctx context.Context, id uuid.UUID) error {
	_, err := s.pool.Exec(ctx, `DELETE FROM vantage_snapshots WHERE snapshot_id = $1`, id)
	return err
}

func (s *PostgresStore) GetStats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}
	err := s.pool.QueryRow(ctx, `
		SELECT count(*), max(created_at) FROM vantage_snapshots`,
	).Scan(&stats.TotalSnapshots, &stats.LatestSavedAt)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

func scanSnapshot(row pgx.Row) (*Snapshot, error) {
	snap := &Snapshot{}
	var criteriaJSON, alternativesJSON, scoresJSON, resultJSON []byte
	err := row.Scan(
		&snap.ID, &snap.Name, &snap.SessionID, &snap.ScoreMin, &snap.ScoreMax,
		&criteriaJSON, &alternativesJSON, &scoresJSON, &resultJSON, &snap.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if criteriaJSON != nil {
		if err := json.Unmarshal(criteriaJSON, &snap.Criteria); err != nil {
			return nil, fmt.Errorf("unmarshal criteria: %w", err)
		}
	}
	if alternativesJSON != nil {
		if err := json.Unmarshal(alternativesJSON, &snap.Alternatives); err != nil {
			return nil, fmt.Errorf("unmarshal alternatives: %w", err)
		}
	}
	if scoresJSON != nil {
		if err := json.Unmarshal(scoresJSON, &snap.Scores); err != nil {
			return nil, fmt.Errorf("unmarshal scores: %w", err)
		}
	}
	if resultJSON != nil {
		if err := json.Unmarshal(resultJSON, &snap.Result); err != nil {
			return nil, fmt.Errorf("unmarshal result: %w", err)
		}
	}
	return snap, nil
}
