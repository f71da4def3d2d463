// Package certificate assembles the text of a printable medical
// certificate. Rendering to PDF and sending to a printer are the job of
// the surrounding application; this package only produces the body.
package certificate

import (
	"fmt"
	"strings"
	"time"
)

// Letterhead identifies the issuing physician and clinic. It is constant
// for an installation, so callers typically build it once from config.
type Letterhead struct {
	Doctor       string
	Specialty    string
	SubSpecialty string
	LicenseNo    string
	PTRNo        string
	ClinicName   string
}

// Details carries the per-patient content of one certificate.
type Details struct {
	PatientName string
	Age         int
	Address     string
	Diagnosis   string
	Remarks     string
}

// Render produces the certificate body for printing. The layout follows
// the clinic's long-standing paper form: letterhead, certification line,
// diagnosis, remarks, issuance notice, signature block.
func Render(d Details, lh Letterhead, issuedAt time.Time) string {
	dateLine := issuedAt.Format("Monday, 02 January 2006")

	var b strings.Builder
	b.WriteString(lh.Doctor + "\n")
	if lh.Specialty != "" {
		b.WriteString(lh.Specialty + "\n")
	}
	if lh.SubSpecialty != "" {
		b.WriteString(lh.SubSpecialty + "\n")
	}
	b.WriteString("\n")
	b.WriteString("               MEDICAL CERTIFICATE\n")
	b.WriteString("\n")
	fmt.Fprintf(&b, "This is to certify that %s, %d years old, from %s,\n",
		d.PatientName, d.Age, d.Address)
	fmt.Fprintf(&b, "was seen and examined in this clinic on %s.\n", dateLine)
	b.WriteString("\n")
	b.WriteString("DIAGNOSIS:\n")
	b.WriteString(d.Diagnosis + "\n")
	b.WriteString("\n")
	b.WriteString("REMARKS:\n")
	if d.Remarks != "" {
		b.WriteString(d.Remarks + "\n")
	} else {
		// Blank space for handwritten remarks on the printed copy.
		b.WriteString(strings.Repeat("\n", 4))
	}
	b.WriteString("\n")
	b.WriteString("This certification is issued for reference use only.\n")
	fmt.Fprintf(&b, "Issued this %s at %s.\n", dateLine, lh.ClinicName)
	b.WriteString("\n\n\n")
	fmt.Fprintf(&b, "%40s\n", lh.Doctor+" M.D.")
	if lh.Specialty != "" {
		fmt.Fprintf(&b, "%40s\n", lh.Specialty)
	}
	fmt.Fprintf(&b, "%40s\n", "Lic. No. "+lh.LicenseNo)
	fmt.Fprintf(&b, "%40s\n", "PTR. No. "+lh.PTRNo)

	return b.String()
}

// AgeAt computes a patient's age in whole years from an ISO birthdate.
func AgeAt(birthdate string, on time.Time) (int, error) {
	born, err := time.Parse("2006-01-02", birthdate)
	if err != nil {
		return 0, fmt.Errorf("invalid birthdate %q: %w", birthdate, err)
	}

	age := on.Year() - born.Year()
	// Not yet had this year's birthday.
	if on.Month() < born.Month() || (on.Month() == born.Month() && on.Day() < born.Day()) {
		age--
	}
	if age < 0 {
		return 0, fmt.Errorf("birthdate %q is in the future", birthdate)
	}
	return age, nil
}
