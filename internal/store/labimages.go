package store

import (
	"database/sql"
	"time"

	"github.com/rs/zerolog/log"
)

// SaveLabImage records an attached lab file for a patient, creating the
// LabImages table on first use. checkupID of zero stores NULL. Returns the
// new row id, or 0 on failure.
func (s *Store) SaveLabImage(patientID int64, filePath string, checkupID int64) int64 {
	db, err := s.open()
	if err != nil {
		log.Error().Err(err).Msg("lab image save: open failed")
		return 0
	}
	defer db.Close()

	if err := ensureLabImagesTable(db); err != nil {
		log.Error().Err(err).Msg("lab image save: table create failed")
		return 0
	}

	var checkup interface{}
	if checkupID != 0 {
		checkup = checkupID
	}
	res, err := db.Exec(`
		INSERT INTO LabImages (patient_id, checkup_id, file_path, upload_date)
		VALUES (?, ?, ?, ?)`,
		patientID, checkup, filePath, time.Now().Format("2006-01-02"))
	if err != nil {
		log.Error().Err(err).Int64("patient_id", patientID).Str("path", filePath).
			Msg("lab image save failed")
		return 0
	}

	id, err := res.LastInsertId()
	if err != nil {
		log.Error().Err(err).Msg("lab image save: no insert id")
		return 0
	}
	return id
}

// ListPatientLabImages returns a patient's attached file paths newest-first.
// A database that has never stored an image has no LabImages table; that is
// an empty list, never an error.
func (s *Store) ListPatientLabImages(patientID int64) []string {
	return s.listLabImages("patient_id", patientID)
}

// ListCheckupLabImages returns the file paths attached to one visit,
// newest-first, with the same missing-table tolerance.
func (s *Store) ListCheckupLabImages(checkupID int64) []string {
	return s.listLabImages("checkup_id", checkupID)
}

func (s *Store) listLabImages(column string, id int64) []string {
	db, err := s.open()
	if err != nil {
		log.Error().Err(err).Msg("lab image list: open failed")
		return nil
	}
	defer db.Close()

	exists, err := tableExists(db, "LabImages")
	if err != nil {
		log.Error().Err(err).Msg("lab image list: table probe failed")
		return nil
	}
	if !exists {
		return nil
	}

	rows, err := db.Query(
		"SELECT file_path FROM LabImages WHERE "+column+" = ? ORDER BY upload_date DESC", id)
	if err != nil {
		log.Error().Err(err).Msg("lab image list query failed")
		return nil
	}
	defer rows.Close()

	var paths []string
	for rows.Next() {
		var p string
		if err := rows.Scan(&p); err != nil {
			log.Error().Err(err).Msg("lab image list scan failed")
			return nil
		}
		paths = append(paths, p)
	}
	return paths
}

// DeletePatientLabImage removes the record for one (patient, file path)
// pair, reporting whether a row was actually removed.
func (s *Store) DeletePatientLabImage(patientID int64, filePath string) bool {
	db, err := s.open()
	if err != nil {
		log.Error().Err(err).Msg("lab image delete: open failed")
		return false
	}
	defer db.Close()

	exists, err := tableExists(db, "LabImages")
	if err != nil || !exists {
		return false
	}

	res, err := db.Exec(
		"DELETE FROM LabImages WHERE patient_id = ? AND file_path = ?", patientID, filePath)
	if err != nil {
		log.Error().Err(err).Int64("patient_id", patientID).Str("path", filePath).
			Msg("lab image delete failed")
		return false
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false
	}
	return n > 0
}

// CountPatientLabImages reports how many rows reference a patient,
// regardless of checkup. Zero when the table does not exist yet.
func (s *Store) CountPatientLabImages(patientID int64) (int64, error) {
	db, err := s.open()
	if err != nil {
		return 0, err
	}
	defer db.Close()

	exists, err := tableExists(db, "LabImages")
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, nil
	}

	var n int64
	err = db.QueryRow("SELECT COUNT(*) FROM LabImages WHERE patient_id = ?", patientID).Scan(&n)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	return n, err
}
