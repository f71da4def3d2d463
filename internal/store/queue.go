package store

import (
	"database/sql"
	"time"

	"github.com/rs/zerolog/log"
)

// AddToQueue inserts a walk-in slot for today with status "waiting" and
// returns the new row id, or 0 when the insert fails. Callers that bumped
// an in-memory counter before calling must roll it back on 0.
func (s *Store) AddToQueue(queueNumber int, patientName, timeOfDay string) int64 {
	db, err := s.open()
	if err != nil {
		log.Error().Err(err).Msg("queue add: open failed")
		return 0
	}
	defer db.Close()

	// queue_date and status come from the column defaults.
	res, err := db.Exec(`
		INSERT INTO Queue (queue_number, patient_name, queue_time)
		VALUES (?, ?, ?)`,
		queueNumber, patientName, timeOfDay)
	if err != nil {
		log.Error().Err(err).Str("patient", patientName).Msg("queue add failed")
		return 0
	}

	id, err := res.LastInsertId()
	if err != nil {
		log.Error().Err(err).Msg("queue add: no insert id")
		return 0
	}
	return id
}

// ListTodaysQueue returns today's waiting entries ordered by queue number.
func (s *Store) ListTodaysQueue() ([]QueueEntry, error) {
	db, err := s.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	rows, err := db.Query(`
		SELECT id, queue_number, patient_name, queue_time, queue_date, status
		FROM Queue
		WHERE queue_date = date('now','localtime') AND status = ?
		ORDER BY queue_number ASC`, QueueWaiting)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []QueueEntry
	for rows.Next() {
		var q QueueEntry
		if err := rows.Scan(&q.ID, &q.Number, &q.PatientName, &q.Time, &q.Date, &q.Status); err != nil {
			return nil, err
		}
		out = append(out, q)
	}
	return out, rows.Err()
}

// NextQueueNumber returns one past the highest number issued today,
// counting every status so a completed patient's slot is not reissued.
// Falls back to 1 when the table cannot be read.
func (s *Store) NextQueueNumber() int {
	db, err := s.open()
	if err != nil {
		log.Error().Err(err).Msg("next queue number: open failed")
		return 1
	}
	defer db.Close()

	var highest sql.NullInt64
	err = db.QueryRow(`
		SELECT MAX(queue_number) FROM Queue
		WHERE queue_date = date('now','localtime')`,
	).Scan(&highest)
	if err != nil {
		log.Error().Err(err).Msg("next queue number query failed")
		return 1
	}
	return int(highest.Int64) + 1
}

// UpdateQueueStatus mutates a slot's status, reporting success as a
// boolean. Updating a missing id is a failure, not an error.
func (s *Store) UpdateQueueStatus(id int64, status string) bool {
	db, err := s.open()
	if err != nil {
		log.Error().Err(err).Int64("queue_id", id).Msg("queue status: open failed")
		return false
	}
	defer db.Close()

	res, err := db.Exec("UPDATE Queue SET status = ? WHERE id = ?", status, id)
	if err != nil {
		log.Error().Err(err).Int64("queue_id", id).Msg("queue status update failed")
		return false
	}
	n, err := res.RowsAffected()
	if err != nil {
		log.Error().Err(err).Int64("queue_id", id).Msg("queue status: rows affected failed")
		return false
	}
	return n > 0
}

// RemoveFromQueue hard-deletes a slot, reporting success as a boolean.
func (s *Store) RemoveFromQueue(id int64) bool {
	db, err := s.open()
	if err != nil {
		log.Error().Err(err).Int64("queue_id", id).Msg("queue remove: open failed")
		return false
	}
	defer db.Close()

	res, err := db.Exec("DELETE FROM Queue WHERE id = ?", id)
	if err != nil {
		log.Error().Err(err).Int64("queue_id", id).Msg("queue remove failed")
		return false
	}
	n, err := res.RowsAffected()
	if err != nil {
		log.Error().Err(err).Int64("queue_id", id).Msg("queue remove: rows affected failed")
		return false
	}
	return n > 0
}

// PurgeOldQueue deletes slots older than the retention window. Errors are
// logged and swallowed; a failed sweep just runs again next startup.
func (s *Store) PurgeOldQueue(retentionDays int) {
	if retentionDays <= 0 {
		retentionDays = 7
	}

	db, err := s.open()
	if err != nil {
		log.Error().Err(err).Msg("queue purge: open failed")
		return
	}
	defer db.Close()

	cutoff := time.Now().AddDate(0, 0, -retentionDays).Format("2006-01-02")
	res, err := db.Exec("DELETE FROM Queue WHERE queue_date < ?", cutoff)
	if err != nil {
		log.Error().Err(err).Str("cutoff", cutoff).Msg("queue purge failed")
		return
	}
	if n, err := res.RowsAffected(); err == nil && n > 0 {
		log.Info().Int64("rows", n).Str("cutoff", cutoff).Msg("purged old queue entries")
	}
}
