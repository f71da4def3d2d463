package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func janeDoe() Patient {
	return Patient{
		Name:        "Jane Doe",
		Address:     "123 Main St",
		Birthdate:   "1990-05-01",
		Phone:       "555-1234",
		CivilStatus: "Single",
		Gender:      "Female",
	}
}

func TestAddPatientRoundTrip(t *testing.T) {
	s := newTestStore(t)

	id, err := s.AddPatient(janeDoe())
	require.NoError(t, err)
	require.Equal(t, int64(1), id)

	p, err := s.GetPatientDetails(id)
	require.NoError(t, err)
	require.NotNil(t, p)

	assert.Equal(t, "Jane Doe", p.Name)
	assert.Equal(t, "123 Main St", p.Address)
	assert.Equal(t, "1990-05-01", p.Birthdate)
	assert.Equal(t, "555-1234", p.Phone)
	assert.Equal(t, "Single", p.CivilStatus)
	assert.Equal(t, "Female", p.Gender)
}

func TestAddPatientForcesUncollectedFieldsEmpty(t *testing.T) {
	s := newTestStore(t)

	in := janeDoe()
	in.Cell = "should be dropped"
	in.Occupation = "should be dropped"
	in.Referred = "should be dropped"

	id, err := s.AddPatient(in)
	require.NoError(t, err)

	p, err := s.GetPatientDetails(id)
	require.NoError(t, err)
	assert.Equal(t, "", p.Cell)
	assert.Equal(t, "", p.Occupation)
	assert.Equal(t, "", p.Referred)
}

func TestGetPatientByName(t *testing.T) {
	s := newTestStore(t)

	_, err := s.AddPatient(janeDoe())
	require.NoError(t, err)

	p, err := s.GetPatientByName("Jane Doe")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "123 Main St", p.Address)

	// A miss is (nil, nil), never an error.
	p, err = s.GetPatientByName("No Such Person")
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestGetPatientByNameDuplicatesReturnFirst(t *testing.T) {
	s := newTestStore(t)

	first, err := s.AddPatient(janeDoe())
	require.NoError(t, err)

	dup := janeDoe()
	dup.Address = "456 Other Ave"
	_, err = s.AddPatient(dup)
	require.NoError(t, err)

	p, err := s.GetPatientByName("Jane Doe")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, first, p.ID)
}

func TestUpdatePatient(t *testing.T) {
	s := newTestStore(t)

	id, err := s.AddPatient(janeDoe())
	require.NoError(t, err)

	updated := janeDoe()
	updated.ID = id
	updated.Name = "Jane Smith"
	updated.Address = "789 New Rd"
	updated.CivilStatus = "Married"
	require.NoError(t, s.UpdatePatient(updated))

	p, err := s.GetPatientDetails(id)
	require.NoError(t, err)
	assert.Equal(t, "Jane Smith", p.Name)
	assert.Equal(t, "789 New Rd", p.Address)
	assert.Equal(t, "Married", p.CivilStatus)
}

func TestListPatientsOrderedByName(t *testing.T) {
	s := newTestStore(t)

	for _, name := range []string{"Charlie", "Alice", "Bob"} {
		p := janeDoe()
		p.Name = name
		_, err := s.AddPatient(p)
		require.NoError(t, err)
	}

	list, err := s.ListPatients()
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Alice", list[0].Name)
	assert.Equal(t, "Bob", list[1].Name)
	assert.Equal(t, "Charlie", list[2].Name)
}

func TestDeletePatientCascades(t *testing.T) {
	s := newTestStore(t)

	id, err := s.AddPatient(janeDoe())
	require.NoError(t, err)

	_, err = s.AddCheckup(Checkup{
		PatientID: id, Findings: "cough",
		DateOfVisit: "2024-01-10", LastCheckupDate: "2024-01-10",
	})
	require.NoError(t, err)
	require.NoError(t, s.AddPrescription(Prescription{
		PatientID: id, Generic: "Paracetamol", Brand: "Biogesic",
		Quantity: "10", Administration: "1 tab TID", LastCheckupDate: "2024-01-10",
	}))

	require.NoError(t, s.DeletePatient(id))

	p, err := s.GetPatientDetails(id)
	require.NoError(t, err)
	assert.Nil(t, p)
	assert.Empty(t, s.ListCheckupsForPatient(id))

	rx, err := s.GetPrescriptionsForCheckup(id, "2024-01-10")
	require.NoError(t, err)
	assert.Empty(t, rx)
}

func TestDeletePatientRetainsLabImagesByDefault(t *testing.T) {
	s := newTestStore(t)

	id, err := s.AddPatient(janeDoe())
	require.NoError(t, err)
	require.NotZero(t, s.SaveLabImage(id, "/scans/cbc.png", 0))

	require.NoError(t, s.DeletePatient(id))

	// Historical behavior: image rows are orphaned, not removed.
	n, err := s.CountPatientLabImages(id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestDeletePatientCascadesLabImagesWhenConfigured(t *testing.T) {
	s := newTestStoreOpts(t, Options{CascadeLabImages: true})

	id, err := s.AddPatient(janeDoe())
	require.NoError(t, err)
	require.NotZero(t, s.SaveLabImage(id, "/scans/cbc.png", 0))

	require.NoError(t, s.DeletePatient(id))

	n, err := s.CountPatientLabImages(id)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestDeletePatientCascadeToleratesMissingLabImagesTable(t *testing.T) {
	s := newTestStoreOpts(t, Options{CascadeLabImages: true})

	id, err := s.AddPatient(janeDoe())
	require.NoError(t, err)

	// No image was ever saved, so the LabImages table does not exist.
	require.NoError(t, s.DeletePatient(id))
}
