package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListLabImagesBeforeTableExists(t *testing.T) {
	s := newTestStore(t)

	// No image was ever saved, so the table is absent. That is an empty
	// list, never an error.
	assert.Empty(t, s.ListPatientLabImages(1))
	assert.Empty(t, s.ListCheckupLabImages(1))
}

func TestSaveLabImageCreatesTableLazily(t *testing.T) {
	s := newTestStore(t)
	pid := addTestPatient(t, s)

	id := s.SaveLabImage(pid, "/scans/cbc.png", 0)
	require.NotZero(t, id)

	paths := s.ListPatientLabImages(pid)
	require.Len(t, paths, 1)
	assert.Equal(t, "/scans/cbc.png", paths[0])
}

func TestListCheckupLabImages(t *testing.T) {
	s := newTestStore(t)
	pid := addTestPatient(t, s)

	cid, err := s.AddCheckup(Checkup{
		PatientID: pid, Findings: "Lab results/images imported",
		DateOfVisit: "2024-01-10", LastCheckupDate: "2024-01-10",
	})
	require.NoError(t, err)

	require.NotZero(t, s.SaveLabImage(pid, "/scans/cbc.png", cid))
	require.NotZero(t, s.SaveLabImage(pid, "/scans/xray.png", cid))
	// Attached without a visit: belongs to the patient, not the checkup.
	require.NotZero(t, s.SaveLabImage(pid, "/scans/loose.png", 0))

	assert.Len(t, s.ListCheckupLabImages(cid), 2)
	assert.Len(t, s.ListPatientLabImages(pid), 3)
}

func TestDeletePatientLabImage(t *testing.T) {
	s := newTestStore(t)
	pid := addTestPatient(t, s)

	require.NotZero(t, s.SaveLabImage(pid, "/scans/cbc.png", 0))

	assert.True(t, s.DeletePatientLabImage(pid, "/scans/cbc.png"))
	assert.Empty(t, s.ListPatientLabImages(pid))

	// Second delete finds nothing to remove.
	assert.False(t, s.DeletePatientLabImage(pid, "/scans/cbc.png"))

	// Deleting against a store that never created the table is a clean false.
	fresh := newTestStore(t)
	assert.False(t, fresh.DeletePatientLabImage(1, "/scans/cbc.png"))
}

func TestLabsReferenceTable(t *testing.T) {
	s := newTestStore(t)

	labs, err := s.ListLabs()
	require.NoError(t, err)
	assert.Empty(t, labs)

	// Populated externally, read through the store.
	rawExec(t, s, "INSERT INTO Labs (name) VALUES ('CBC'), ('Urinalysis')")

	labs, err = s.ListLabs()
	require.NoError(t, err)
	require.Len(t, labs, 2)
	assert.Equal(t, "CBC", labs[0].Name)
}
