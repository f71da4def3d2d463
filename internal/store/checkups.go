package store

import (
	"database/sql"
	"fmt"

	"github.com/rs/zerolog/log"
)

// AddCheckup inserts a visit row and returns its id. BloodPressure may be
// left empty; some callers only set it through UpdateCheckup afterwards.
func (s *Store) AddCheckup(c Checkup) (int64, error) {
	db, err := s.open()
	if err != nil {
		return 0, err
	}
	defer db.Close()

	res, err := db.Exec(`
		INSERT INTO Checkups (patient_id, findings, lab_ids, dateOfVisit,
		last_checkup_date, blood_pressure)
		VALUES (?, ?, ?, ?, ?, ?)`,
		c.PatientID, c.Findings, c.LabIDs, c.DateOfVisit, c.LastCheckupDate, c.BloodPressure,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert checkup: %w", err)
	}
	return res.LastInsertId()
}

// GetCheckupByDate finds the visit for a patient on a calendar date,
// comparing last_checkup_date date-only. Returns (nil, nil) on no match.
func (s *Store) GetCheckupByDate(patientID int64, date string) (*Checkup, error) {
	db, err := s.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	var c Checkup
	err = db.QueryRow(`
		SELECT id, patient_id, findings, lab_ids, dateOfVisit, last_checkup_date, blood_pressure
		FROM Checkups
		WHERE patient_id = ? AND date(last_checkup_date) = date(?)
		LIMIT 1`, patientID, date,
	).Scan(&c.ID, &c.PatientID, &c.Findings, &c.LabIDs, &c.DateOfVisit,
		&c.LastCheckupDate, &c.BloodPressure)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read checkup: %w", err)
	}
	return &c, nil
}

// UpdateCheckup rewrites findings, lab_ids and blood_pressure for a visit.
// Unlike the other mutators this one reports failure as a boolean: the
// callers treat a failed checkup update as "show a warning and move on",
// not as a crash.
func (s *Store) UpdateCheckup(findings, labIDs, bloodPressure string, checkupID int64) bool {
	db, err := s.open()
	if err != nil {
		log.Error().Err(err).Int64("checkup_id", checkupID).Msg("checkup update: open failed")
		return false
	}
	defer db.Close()

	_, err = db.Exec(`
		UPDATE Checkups
		SET findings = ?, lab_ids = ?, blood_pressure = ?
		WHERE id = ?`,
		findings, labIDs, bloodPressure, checkupID,
	)
	if err != nil {
		log.Error().Err(err).Int64("checkup_id", checkupID).Msg("checkup update failed")
		return false
	}
	return true
}

// ListCheckupsForPatient returns the visit history newest-first. Failures
// are logged and reported as an empty history; browsing old visits is not
// worth crashing the caller over.
func (s *Store) ListCheckupsForPatient(patientID int64) []Checkup {
	db, err := s.open()
	if err != nil {
		log.Error().Err(err).Int64("patient_id", patientID).Msg("checkup history: open failed")
		return nil
	}
	defer db.Close()

	rows, err := db.Query(`
		SELECT id, patient_id, findings, lab_ids, dateOfVisit, last_checkup_date, blood_pressure
		FROM Checkups
		WHERE patient_id = ?
		ORDER BY dateOfVisit DESC`, patientID)
	if err != nil {
		log.Error().Err(err).Int64("patient_id", patientID).Msg("checkup history query failed")
		return nil
	}
	defer rows.Close()

	var out []Checkup
	for rows.Next() {
		var c Checkup
		if err := rows.Scan(&c.ID, &c.PatientID, &c.Findings, &c.LabIDs,
			&c.DateOfVisit, &c.LastCheckupDate, &c.BloodPressure); err != nil {
			log.Error().Err(err).Msg("checkup history scan failed")
			return nil
		}
		out = append(out, c)
	}
	return out
}

// LatestBloodPressure returns the most recent recorded reading for a
// patient, or "" when none exists. Used to pre-fill the BP field when a
// returning patient is selected.
func (s *Store) LatestBloodPressure(patientID int64) string {
	db, err := s.open()
	if err != nil {
		log.Error().Err(err).Int64("patient_id", patientID).Msg("latest BP: open failed")
		return ""
	}
	defer db.Close()

	var bp string
	err = db.QueryRow(`
		SELECT blood_pressure FROM Checkups
		WHERE patient_id = ? AND blood_pressure != ''
		ORDER BY dateOfVisit DESC LIMIT 1`, patientID,
	).Scan(&bp)
	if err == sql.ErrNoRows {
		return ""
	}
	if err != nil {
		log.Error().Err(err).Int64("patient_id", patientID).Msg("latest BP query failed")
		return ""
	}
	return bp
}
