package labfiles

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/notsocj/clinic-records/internal/store"
)

// ImportFindings is the findings text stamped on the checkup row that an
// image import creates.
const ImportFindings = "Lab results/images imported"

// Importer copies lab files into the managed image directory and records
// them against a patient. Each patient gets their own subfolder.
type Importer struct {
	Dir string
}

// ImportResult reports what one import run actually did.
type ImportResult struct {
	CheckupID int64
	Saved     []string // newly copied and recorded paths
	Skipped   []string // sources that were already recorded
}

// PatientDir returns the folder holding one patient's attachments.
func (im *Importer) PatientDir(patientID int64) string {
	return filepath.Join(im.Dir, fmt.Sprintf("patient_%d", patientID))
}

// Import copies each new source file into the patient's folder, creates a
// checkup row dated today, and records a LabImages row per copied file.
// Sources already recorded for the patient are skipped rather than
// duplicated. When every source is a duplicate, no checkup is created.
func (im *Importer) Import(st *store.Store, patientID int64, sources []string) (*ImportResult, error) {
	if patientID == 0 {
		return nil, fmt.Errorf("no patient selected")
	}

	existing := make(map[string]bool)
	for _, p := range st.ListPatientLabImages(patientID) {
		existing[p] = true
	}

	patientDir := im.PatientDir(patientID)
	// 0755: Owner can read/write/exec, Group/Others can read/exec
	if err := os.MkdirAll(patientDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to init dir %s: %w", patientDir, err)
	}

	today := time.Now().Format("2006-01-02")
	res := &ImportResult{}

	var copied []string
	for _, src := range sources {
		if existing[src] {
			res.Skipped = append(res.Skipped, src)
			continue
		}

		header := make([]byte, 512)
		f, err := os.Open(src)
		if err != nil {
			return nil, fmt.Errorf("cannot read %s: %w", src, err)
		}
		n, _ := f.Read(header)
		f.Close()
		if !IsSupported(src, header[:n]) {
			return nil, fmt.Errorf("unsupported lab file: %s", src)
		}

		// Unique destination name so repeated imports of equally named
		// scans never collide.
		destName := fmt.Sprintf("%s_%s_%s", today, uuid.NewString()[:8], filepath.Base(src))
		dest := filepath.Join(patientDir, destName)
		if err := copyFile(src, dest); err != nil {
			return nil, fmt.Errorf("failed to copy %s: %w", src, err)
		}
		copied = append(copied, dest)
	}

	if len(copied) == 0 {
		return res, nil
	}

	checkupID, err := st.AddCheckup(store.Checkup{
		PatientID:       patientID,
		Findings:        ImportFindings,
		DateOfVisit:     today,
		LastCheckupDate: today,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create checkup for import: %w", err)
	}
	res.CheckupID = checkupID

	for _, dest := range copied {
		if id := st.SaveLabImage(patientID, dest, checkupID); id == 0 {
			// Soft failure: the file is on disk, only the record is
			// missing. Nothing to roll back that would help the user.
			log.Warn().Int64("patient_id", patientID).Str("path", dest).
				Msg("lab image record not saved")
			continue
		}
		res.Saved = append(res.Saved, dest)
	}

	return res, nil
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
