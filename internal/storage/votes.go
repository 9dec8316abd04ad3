package storage

import "fmt"

// AddVote adds delta (usually +1 or -1) to the local tally of one piece of
// evidence and returns the new tally.
func (s *Store) AddVote(theoryID, evidenceID string, delta int) (int, error) {
	var count int
	err := s.db.QueryRow(
		`INSERT INTO votes (theory_id, evidence_id, count) VALUES (?, ?, ?)
		 ON CONFLICT(theory_id, evidence_id) DO UPDATE SET count = votes.count + excluded.count
		 RETURNING count`,
		theoryID, evidenceID, delta,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save vote: %w", err)
	}
	return count, nil
}

// Votes returns the local tallies of a theory keyed by evidence ID.
func (s *Store) Votes(theoryID string) (map[string]int, error) {
	rows, err := s.db.Query(
		"SELECT evidence_id, count FROM votes WHERE theory_id = ?",
		theoryID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query votes: %w", err)
	}
	defer rows.Close()

	votes := make(map[string]int)
	for rows.Next() {
		var id string
		var n int
		if err := rows.Scan(&id, &n); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		votes[id] = n
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return votes, nil
}
