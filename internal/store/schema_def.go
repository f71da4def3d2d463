package store

// SchemaSQL defines the base database structure. The Queue and LabImages
// tables are managed separately: Queue goes through a shape probe that may
// rebuild it (see ensureQueueTable), and LabImages is created lazily on
// first use (see ensureLabImagesTable).
const SchemaSQL = `
-- ========================================================
-- 1. PATIENTS & VISITS
-- ========================================================

-- Patients: demographics. Name is the human-facing lookup key even though
-- id is the true key; the name column is deliberately NOT unique.
CREATE TABLE IF NOT EXISTS Patients (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL,
    address TEXT,
    birthdate TEXT,                   -- ISO date (YYYY-MM-DD)
    cell TEXT,                        -- not collected by any caller, always ''
    civil_status TEXT,
    occupation TEXT,                  -- not collected, always ''
    referred TEXT,                    -- not collected, always ''
    gender TEXT,
    phone TEXT
);

-- Checkups: one clinical visit per row. Lookups are by
-- (patient_id, last_checkup_date); uniqueness is NOT enforced, callers
-- check-then-update-or-insert.
CREATE TABLE IF NOT EXISTS Checkups (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    patient_id INTEGER,
    findings TEXT,
    lab_ids TEXT,                     -- free text, historically comma-joined paths
    dateOfVisit TEXT,
    last_checkup_date TEXT,
    blood_pressure TEXT
);

-- Prescriptions: tied to a visit by (patient_id, last_checkup_date),
-- there is no checkup_id column.
CREATE TABLE IF NOT EXISTS Prescriptions (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    patient_id INTEGER,
    generic TEXT,
    brand TEXT,
    quantity TEXT,
    administration TEXT,
    last_checkup_date TEXT
);

-- ========================================================
-- 2. REFERENCE DATA
-- ========================================================

-- medicine: the reusable catalog. Older database files predate the
-- quantity/administration columns; those are added lazily per read
-- (see ensureMedicineColumns).
CREATE TABLE IF NOT EXISTS medicine (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    brand TEXT,
    generic TEXT
);

-- Labs: read-only reference table populated externally.
CREATE TABLE IF NOT EXISTS Labs (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT
);

-- ========================================================
-- 3. INDEXES
-- ========================================================
CREATE INDEX IF NOT EXISTS idx_checkups_patient ON Checkups(patient_id);
CREATE INDEX IF NOT EXISTS idx_prescriptions_patient ON Prescriptions(patient_id, last_checkup_date);
`

// queueSchemaSQL creates the walk-in queue. queue_number is only meaningful
// within a single queue_date. Used both for fresh creation and for the
// destructive rebuild when an old database file has a stale Queue shape.
const queueSchemaSQL = `
CREATE TABLE IF NOT EXISTS Queue (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    queue_number INTEGER,
    patient_name TEXT,
    queue_time TEXT,
    queue_date TEXT DEFAULT (date('now','localtime')),
    status TEXT DEFAULT 'waiting'
);
`

// labImagesSchemaSQL is applied on first lab-image write, not at bootstrap.
const labImagesSchemaSQL = `
CREATE TABLE IF NOT EXISTS LabImages (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    patient_id INTEGER,
    checkup_id INTEGER,
    file_path TEXT,
    upload_date TEXT
);
`
