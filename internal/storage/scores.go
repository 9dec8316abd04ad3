package storage

import (
	"database/sql"
	"fmt"
	"time"
)

// ScoreEntry is one row of a game's board.
type ScoreEntry struct {
	ID        int64
	GameID    string
	Score     int
	CreatedAt time.Time
}

// GameStats summarizes every score a game has recorded.
type GameStats struct {
	GameID     string
	GamesCount int
	HighScore  int
	AvgScore   float64
	LastPlayed time.Time
}

const statsColumns = `game_id, COUNT(*), MAX(score), AVG(score), MAX(created_at)`

// SaveScore appends a score to the game's board and returns its row id.
func (s *Store) SaveScore(gameID string, score int) (int64, error) {
	res, err := s.db.Exec(`INSERT INTO scores (game_id, score) VALUES (?, ?)`, gameID, score)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// TopScores returns the best limit scores of a game, highest first. Ties keep
// insertion order. A non-positive limit means ten.
func (s *Store) TopScores(gameID string, limit int) ([]ScoreEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.Query(
		`SELECT id, game_id, score, created_at FROM scores
		 WHERE game_id = ? ORDER BY score DESC, id ASC LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var board []ScoreEntry
	for rows.Next() {
		var (
			e  ScoreEntry
			at any
		)
		if err := rows.Scan(&e.ID, &e.GameID, &e.Score, &at); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(at)
		board = append(board, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return board, nil
}

// HighScore is the best score of a game, or 0 before the first one.
func (s *Store) HighScore(gameID string) (int, error) {
	var best sql.NullInt64
	if err := s.db.QueryRow(`SELECT MAX(score) FROM scores WHERE game_id = ?`, gameID).Scan(&best); err != nil {
		return 0, fmt.Errorf("storage: cannot query high score: %w", err)
	}
	return int(best.Int64), nil
}

// ClearScores wipes the board and the run history of one game.
func (s *Store) ClearScores(gameID string) error {
	for _, table := range []string{"scores", "runs"} {
		if _, err := s.db.Exec(`DELETE FROM `+table+` WHERE game_id = ?`, gameID); err != nil {
			return fmt.Errorf("storage: cannot clear %s: %w", table, err)
		}
	}
	return nil
}

// Stats summarizes one game. A game without scores gets zero stats.
func (s *Store) Stats(gameID string) (*GameStats, error) {
	all, err := s.queryStats(`SELECT `+statsColumns+` FROM scores WHERE game_id = ? GROUP BY game_id`, gameID)
	if err != nil {
		return nil, err
	}
	if st, ok := all[gameID]; ok {
		return st, nil
	}
	return &GameStats{GameID: gameID}, nil
}

// AllStats summarizes every game that has at least one score.
func (s *Store) AllStats() (map[string]*GameStats, error) {
	return s.queryStats(`SELECT ` + statsColumns + ` FROM scores GROUP BY game_id`)
}

func (s *Store) queryStats(query string, args ...any) (map[string]*GameStats, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query stats: %w", err)
	}
	defer rows.Close()

	stats := make(map[string]*GameStats)
	for rows.Next() {
		var (
			gs GameStats
			at any
		)
		if err := rows.Scan(&gs.GameID, &gs.GamesCount, &gs.HighScore, &gs.AvgScore, &at); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		gs.LastPlayed = parseTime(at)
		stats[gs.GameID] = &gs
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stats, nil
}
