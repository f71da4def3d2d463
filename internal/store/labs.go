package store

import "fmt"

// ListLabs returns the externally populated lab reference table. The store
// never writes to it.
func (s *Store) ListLabs() ([]Lab, error) {
	db, err := s.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.Query("SELECT id, name FROM Labs ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to list labs: %w", err)
	}
	defer rows.Close()

	var out []Lab
	for rows.Next() {
		var l Lab
		if err := rows.Scan(&l.ID, &l.Name); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
