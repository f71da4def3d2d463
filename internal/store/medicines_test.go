package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddMedicineLegacyForm(t *testing.T) {
	s := newTestStore(t)

	id, err := s.AddMedicine("Biogesic", "Paracetamol")
	require.NoError(t, err)
	require.Equal(t, int64(1), id)

	meds, err := s.ListMedicines()
	require.NoError(t, err)
	require.Len(t, meds, 1)
	assert.Equal(t, "Biogesic", meds[0].Brand)
	assert.Equal(t, "Paracetamol", meds[0].Generic)
	assert.Equal(t, "", meds[0].Quantity)
	assert.Equal(t, "", meds[0].Administration)
}

func TestAddMedicineFullForm(t *testing.T) {
	s := newTestStore(t)

	id, err := s.AddMedicineFull("Virlix", "Cetirizine", "10mg", "1 tab OD")
	require.NoError(t, err)

	meds, err := s.ListMedicines()
	require.NoError(t, err)
	require.Len(t, meds, 1)
	assert.Equal(t, id, meds[0].ID)
	assert.Equal(t, "10mg", meds[0].Quantity)
	assert.Equal(t, "1 tab OD", meds[0].Administration)
}

func TestUpdateMedicineGenericOnly(t *testing.T) {
	s := newTestStore(t)

	id, err := s.AddMedicineFull("Virlix", "Cetirizine", "10mg", "1 tab OD")
	require.NoError(t, err)

	require.NoError(t, s.UpdateMedicineGeneric(id, "Cetirizine HCl"))

	meds, err := s.ListMedicines()
	require.NoError(t, err)
	require.Len(t, meds, 1)
	assert.Equal(t, "Cetirizine HCl", meds[0].Generic)
	// Dosage fields are untouched by the 2-tuple form.
	assert.Equal(t, "10mg", meds[0].Quantity)
	assert.Equal(t, "1 tab OD", meds[0].Administration)
}

func TestUpdateMedicineFull(t *testing.T) {
	s := newTestStore(t)

	id, err := s.AddMedicine("Biogesic", "Paracetamol")
	require.NoError(t, err)

	require.NoError(t, s.UpdateMedicine(id, "Paracetamol", "500mg", "1 tab q6h"))

	meds, err := s.ListMedicines()
	require.NoError(t, err)
	require.Len(t, meds, 1)
	assert.Equal(t, "500mg", meds[0].Quantity)
	assert.Equal(t, "1 tab q6h", meds[0].Administration)
}

func TestDeleteMedicineReturnsCount(t *testing.T) {
	s := newTestStore(t)

	id, err := s.AddMedicine("Biogesic", "Paracetamol")
	require.NoError(t, err)

	n, err := s.DeleteMedicine(id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	// Deleting a missing row reports 0, it does not error.
	n, err = s.DeleteMedicine(id)
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}
