package store

// Entity structs replace the positional row tuples the old database callers
// indexed into. Field order mirrors the on-disk column order of Login.db.

// Patient holds one demographics row. Cell, Occupation and Referred exist
// only for file compatibility; no caller collects them.
type Patient struct {
	ID          int64
	Name        string
	Address     string
	Birthdate   string // YYYY-MM-DD
	Cell        string
	CivilStatus string
	Occupation  string
	Referred    string
	Gender      string
	Phone       string
}

// PatientSummary is the id+name projection used for pick lists.
type PatientSummary struct {
	ID   int64
	Name string
}

// Checkup is one clinical visit. LabIDs is free text, historically reused
// for comma-joined lab image paths.
type Checkup struct {
	ID              int64
	PatientID       int64
	Findings        string
	LabIDs          string
	DateOfVisit     string // YYYY-MM-DD
	LastCheckupDate string // YYYY-MM-DD
	BloodPressure   string
}

// Prescription is one medication line item. It is tied to a visit by
// (PatientID, LastCheckupDate), not by checkup id.
type Prescription struct {
	ID              int64
	PatientID       int64
	Generic         string
	Brand           string
	Quantity        string
	Administration  string
	LastCheckupDate string // YYYY-MM-DD
}

// Medicine is one catalog row: reusable brand/generic/default-dosage data,
// independent of any patient.
type Medicine struct {
	ID             int64
	Brand          string
	Generic        string
	Quantity       string
	Administration string
}

// Queue entry statuses. Transitions are caller-driven; the store does not
// enforce an order.
const (
	QueueWaiting   = "waiting"
	QueueCompleted = "completed"
	QueueCancelled = "cancelled"
)

// QueueEntry is a same-day waiting-list slot. Number restarts per Date.
type QueueEntry struct {
	ID          int64
	Number      int
	PatientName string
	Time        string // HH:MM
	Date        string // YYYY-MM-DD
	Status      string
}

// LabImage records one attached lab file. CheckupID is zero when the image
// was attached without a visit.
type LabImage struct {
	ID         int64
	PatientID  int64
	CheckupID  int64
	FilePath   string
	UploadDate string // YYYY-MM-DD
}

// Lab is one row of the externally populated reference table.
type Lab struct {
	ID   int64
	Name string
}
