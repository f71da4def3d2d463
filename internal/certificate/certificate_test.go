package certificate

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLetterhead = Letterhead{
	Doctor:     "DR. JANE EXAMPLE",
	Specialty:  "NEUROLOGY",
	LicenseNo:  "109769",
	PTRNo:      "4813787",
	ClinicName: "Iriga Clinic",
}

func TestRenderContainsCoreSections(t *testing.T) {
	issued := time.Date(2024, time.January, 10, 15, 0, 0, 0, time.UTC)

	body := Render(Details{
		PatientName: "Jane Doe",
		Age:         33,
		Address:     "123 Main St",
		Diagnosis:   "Acute bronchitis",
		Remarks:     "Advised 3 days rest",
	}, testLetterhead, issued)

	assert.Contains(t, body, "MEDICAL CERTIFICATE")
	assert.Contains(t, body, "This is to certify that Jane Doe, 33 years old, from 123 Main St")
	assert.Contains(t, body, "was seen and examined in this clinic on Wednesday, 10 January 2024.")
	assert.Contains(t, body, "DIAGNOSIS:\nAcute bronchitis")
	assert.Contains(t, body, "REMARKS:\nAdvised 3 days rest")
	assert.Contains(t, body, "Issued this Wednesday, 10 January 2024 at Iriga Clinic.")
	assert.Contains(t, body, "DR. JANE EXAMPLE M.D.")
	assert.Contains(t, body, "Lic. No. 109769")
	assert.Contains(t, body, "PTR. No. 4813787")
}

func TestRenderLeavesBlankRemarksSpace(t *testing.T) {
	body := Render(Details{
		PatientName: "Jane Doe",
		Age:         33,
		Address:     "123 Main St",
		Diagnosis:   "Migraine",
	}, testLetterhead, time.Now())

	// No remarks text, but room to write them in by hand.
	idx := strings.Index(body, "REMARKS:\n")
	require.GreaterOrEqual(t, idx, 0)
	assert.True(t, strings.HasPrefix(body[idx+len("REMARKS:\n"):], "\n\n"))
}

func TestAgeAt(t *testing.T) {
	on := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)

	age, err := AgeAt("1990-05-01", on)
	require.NoError(t, err)
	assert.Equal(t, 34, age)

	// Day before the birthday.
	age, err = AgeAt("1990-05-02", on)
	require.NoError(t, err)
	assert.Equal(t, 33, age)

	_, err = AgeAt("not-a-date", on)
	require.Error(t, err)

	_, err = AgeAt("2030-01-01", on)
	require.Error(t, err)
}
