package store

import "fmt"

// AddMedicine inserts a catalog row with only brand and generic, the legacy
// 2-field form. quantity/administration fall back to the column default.
func (s *Store) AddMedicine(brand, generic string) (int64, error) {
	db, err := s.open()
	if err != nil {
		return 0, err
	}
	defer db.Close()

	res, err := db.Exec("INSERT INTO medicine (brand, generic) VALUES (?, ?)", brand, generic)
	if err != nil {
		return 0, fmt.Errorf("failed to insert medicine: %w", err)
	}
	return res.LastInsertId()
}

// AddMedicineFull inserts a catalog row with default dosage and route, the
// extended 4-field form. The columns are ensured first since an older file
// may predate them.
func (s *Store) AddMedicineFull(brand, generic, quantity, administration string) (int64, error) {
	db, err := s.open()
	if err != nil {
		return 0, err
	}
	defer db.Close()

	if err := ensureMedicineColumns(db); err != nil {
		return 0, fmt.Errorf("failed to evolve medicine table: %w", err)
	}

	res, err := db.Exec(`
		INSERT INTO medicine (brand, generic, quantity, administration)
		VALUES (?, ?, ?, ?)`,
		brand, generic, quantity, administration)
	if err != nil {
		return 0, fmt.Errorf("failed to insert medicine: %w", err)
	}
	return res.LastInsertId()
}

// UpdateMedicineGeneric updates only the generic name, the legacy 2-tuple
// contract.
func (s *Store) UpdateMedicineGeneric(id int64, generic string) error {
	db, err := s.open()
	if err != nil {
		return err
	}
	defer db.Close()

	_, err = db.Exec("UPDATE medicine SET generic = ? WHERE id = ?", generic, id)
	if err != nil {
		return fmt.Errorf("failed to update medicine %d: %w", id, err)
	}
	return nil
}

// UpdateMedicine updates generic, quantity and administration together,
// the extended 4-tuple contract.
func (s *Store) UpdateMedicine(id int64, generic, quantity, administration string) error {
	db, err := s.open()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := ensureMedicineColumns(db); err != nil {
		return fmt.Errorf("failed to evolve medicine table: %w", err)
	}

	_, err = db.Exec(`
		UPDATE medicine
		SET generic = ?, quantity = ?, administration = ?
		WHERE id = ?`,
		generic, quantity, administration, id)
	if err != nil {
		return fmt.Errorf("failed to update medicine %d: %w", id, err)
	}
	return nil
}

// DeleteMedicine removes a catalog row and returns how many rows matched
// (0 or 1). A miss is not an error.
func (s *Store) DeleteMedicine(id int64) (int64, error) {
	db, err := s.open()
	if err != nil {
		return 0, err
	}
	defer db.Close()

	res, err := db.Exec("DELETE FROM medicine WHERE id = ?", id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete medicine %d: %w", id, err)
	}
	return res.RowsAffected()
}

// ListMedicines returns the whole catalog. The column-evolution check runs
// first so a legacy file lists with empty quantity/administration instead
// of failing.
func (s *Store) ListMedicines() ([]Medicine, error) {
	db, err := s.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	if err := ensureMedicineColumns(db); err != nil {
		return nil, fmt.Errorf("failed to evolve medicine table: %w", err)
	}

	rows, err := db.Query(`
		SELECT id, brand, generic, COALESCE(quantity, ''), COALESCE(administration, '')
		FROM medicine`)
	if err != nil {
		return nil, fmt.Errorf("failed to list medicines: %w", err)
	}
	defer rows.Close()

	var out []Medicine
	for rows.Next() {
		var m Medicine
		if err := rows.Scan(&m.ID, &m.Brand, &m.Generic, &m.Quantity, &m.Administration); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
