package store

import (
	"database/sql"
	"fmt"
)

// AddPatient inserts a new demographics row and returns its id.
// Cell, occupation and referred are forced to empty strings regardless of
// what the caller set; those columns are never collected.
func (s *Store) AddPatient(p Patient) (int64, error) {
	db, err := s.open()
	if err != nil {
		return 0, err
	}
	defer db.Close()

	res, err := db.Exec(`
		INSERT INTO Patients (name, address, birthdate, cell, civil_status,
		occupation, referred, gender, phone) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.Name, p.Address, p.Birthdate, "", p.CivilStatus, "", "", p.Gender, p.Phone,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert patient: %w", err)
	}
	return res.LastInsertId()
}

// UpdatePatient overwrites the collected demographic fields for p.ID.
func (s *Store) UpdatePatient(p Patient) error {
	db, err := s.open()
	if err != nil {
		return err
	}
	defer db.Close()

	_, err = db.Exec(`
		UPDATE Patients
		SET name = ?, address = ?, birthdate = ?, phone = ?, civil_status = ?, gender = ?
		WHERE id = ?`,
		p.Name, p.Address, p.Birthdate, p.Phone, p.CivilStatus, p.Gender, p.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update patient %d: %w", p.ID, err)
	}
	return nil
}

// GetPatientByName does an exact-match lookup and returns at most one row.
// Duplicate names are possible; the first match wins, which is what makes
// the save-by-name upsert flow treat duplicates as the same patient.
// Returns (nil, nil) when no patient matches.
func (s *Store) GetPatientByName(name string) (*Patient, error) {
	db, err := s.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	return scanPatient(db.QueryRow(`
		SELECT id, name, address, birthdate, cell, civil_status,
		       occupation, referred, gender, phone
		FROM Patients WHERE name = ? LIMIT 1`, name))
}

// GetPatientDetails returns the full row for id, or (nil, nil) if missing.
func (s *Store) GetPatientDetails(id int64) (*Patient, error) {
	db, err := s.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	return scanPatient(db.QueryRow(`
		SELECT id, name, address, birthdate, cell, civil_status,
		       occupation, referred, gender, phone
		FROM Patients WHERE id = ?`, id))
}

func scanPatient(row *sql.Row) (*Patient, error) {
	var p Patient
	err := row.Scan(&p.ID, &p.Name, &p.Address, &p.Birthdate, &p.Cell,
		&p.CivilStatus, &p.Occupation, &p.Referred, &p.Gender, &p.Phone)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read patient row: %w", err)
	}
	return &p, nil
}

// ListPatients returns id+name pairs for every patient, ordered by name.
func (s *Store) ListPatients() ([]PatientSummary, error) {
	db, err := s.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.Query("SELECT id, name FROM Patients ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}
	defer rows.Close()

	var out []PatientSummary
	for rows.Next() {
		var ps PatientSummary
		if err := rows.Scan(&ps.ID, &ps.Name); err != nil {
			return nil, err
		}
		out = append(out, ps)
	}
	return out, rows.Err()
}

// DeletePatient removes a patient and everything hanging off it as one
// atomic unit: prescriptions first, then checkups, then the patient row.
// LabImages rows are included only when Options.CascadeLabImages is set;
// the historical default is to leave them orphaned. A failure at any step
// rolls the whole deletion back.
func (s *Store) DeletePatient(id int64) error {
	db, err := s.open()
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin delete transaction: %w", err)
	}
	defer tx.Rollback()

	steps := []struct {
		desc string
		sql  string
	}{
		{"prescriptions", "DELETE FROM Prescriptions WHERE patient_id = ?"},
		{"checkups", "DELETE FROM Checkups WHERE patient_id = ?"},
		{"patient", "DELETE FROM Patients WHERE id = ?"},
	}
	for _, st := range steps {
		if _, err := tx.Exec(st.sql, id); err != nil {
			return fmt.Errorf("failed to delete %s for patient %d: %w", st.desc, id, err)
		}
	}

	if s.opts.CascadeLabImages {
		// The table may not exist yet; only touch it if it does.
		exists, err := txTableExists(tx, "LabImages")
		if err != nil {
			return fmt.Errorf("failed to probe LabImages: %w", err)
		}
		if exists {
			if _, err := tx.Exec("DELETE FROM LabImages WHERE patient_id = ?", id); err != nil {
				return fmt.Errorf("failed to delete lab images for patient %d: %w", id, err)
			}
		}
	}

	return tx.Commit()
}

func txTableExists(tx *sql.Tx, name string) (bool, error) {
	var found string
	err := tx.QueryRow(
		"SELECT name FROM sqlite_master WHERE type='table' AND name=?", name,
	).Scan(&found)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
