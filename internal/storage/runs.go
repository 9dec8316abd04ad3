package storage

import (
	"fmt"
	"time"
)

// RunRecord is the persisted outcome of one finished round.
type RunRecord struct {
	ID        int64
	GameID    string
	Outcome   string // "won", "caught", "timeout", ...
	Score     int
	Duration  int // seconds played
	TimeLeft  int
	Keys      int
	Coin      int
	Seed      int64 // replays the run with the same inputs
	CreatedAt time.Time
}

// SaveRun records a finished round. Returns the ID of the inserted record.
func (s *Store) SaveRun(r RunRecord) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO runs (game_id, outcome, score, duration_secs, time_left, keys, coin, seed)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.GameID, r.Outcome, r.Score, r.Duration, r.TimeLeft, r.Keys, r.Coin, r.Seed,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentRuns retrieves the newest runs for a game.
func (s *Store) RecentRuns(gameID string, limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, game_id, outcome, score, duration_secs, time_left, keys, coin, seed, created_at
		 FROM runs
		 WHERE game_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		var r RunRecord
		var createdAt any
		if err := rows.Scan(
			&r.ID, &r.GameID, &r.Outcome, &r.Score, &r.Duration,
			&r.TimeLeft, &r.Keys, &r.Coin, &r.Seed, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// OutcomeCounts tallies finished runs of a game by outcome.
func (s *Store) OutcomeCounts(gameID string) (map[string]int, error) {
	rows, err := s.db.Query(
		`SELECT outcome, COUNT(*) FROM runs WHERE game_id = ? GROUP BY outcome`,
		gameID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot count outcomes: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var outcome string
		var n int
		if err := rows.Scan(&outcome, &n); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		counts[outcome] = n
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return counts, nil
}
