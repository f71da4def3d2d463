package store

import "fmt"

// AddPrescription inserts one medication line item. There is no existence
// check; re-saving a visit goes through DeletePrescriptionsForCheckup first
// (replace-on-save), never through a diff.
func (s *Store) AddPrescription(rx Prescription) error {
	db, err := s.open()
	if err != nil {
		return err
	}
	defer db.Close()

	_, err = db.Exec(`
		INSERT INTO Prescriptions (patient_id, generic, brand, quantity,
		administration, last_checkup_date)
		VALUES (?, ?, ?, ?, ?, ?)`,
		rx.PatientID, rx.Generic, rx.Brand, rx.Quantity, rx.Administration, rx.LastCheckupDate,
	)
	if err != nil {
		return fmt.Errorf("failed to insert prescription: %w", err)
	}
	return nil
}

// GetPrescriptionsForCheckup returns every line item for a patient on a
// calendar date. "For a checkup" really means "for this patient dated this
// day": two visits on the same day are indistinguishable here.
func (s *Store) GetPrescriptionsForCheckup(patientID int64, checkupDate string) ([]Prescription, error) {
	db, err := s.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.Query(`
		SELECT id, patient_id, generic, brand, quantity, administration, last_checkup_date
		FROM Prescriptions
		WHERE patient_id = ? AND date(last_checkup_date) = date(?)`,
		patientID, checkupDate)
	if err != nil {
		return nil, fmt.Errorf("failed to read prescriptions: %w", err)
	}
	defer rows.Close()

	var out []Prescription
	for rows.Next() {
		var rx Prescription
		if err := rows.Scan(&rx.ID, &rx.PatientID, &rx.Generic, &rx.Brand,
			&rx.Quantity, &rx.Administration, &rx.LastCheckupDate); err != nil {
			return nil, err
		}
		out = append(out, rx)
	}
	return out, rows.Err()
}

// DeletePrescriptionsForCheckup clears every line item for a patient+date,
// the first half of the replace-on-save pattern. Deleting an already-empty
// set is a no-op, not an error.
func (s *Store) DeletePrescriptionsForCheckup(patientID int64, checkupDate string) error {
	db, err := s.open()
	if err != nil {
		return err
	}
	defer db.Close()

	_, err = db.Exec(`
		DELETE FROM Prescriptions
		WHERE patient_id = ? AND date(last_checkup_date) = date(?)`,
		patientID, checkupDate)
	if err != nil {
		return fmt.Errorf("failed to clear prescriptions: %w", err)
	}
	return nil
}
