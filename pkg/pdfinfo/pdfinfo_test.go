package pdfinfo

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/phpdave11/gofpdf"

	"github.com/dotgrid-tools/dotgrid/pkg/errors"
)

func writeFixture(t *testing.T, pages int) string {
	t.Helper()

	pdf := gofpdf.New("P", "pt", "A4", "")
	for i := 0; i < pages; i++ {
		pdf.AddPage()
	}

	path := filepath.Join(t.TempDir(), "fixture.pdf")
	if err := pdf.OutputFileAndClose(path); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
	return path
}

func TestRead(t *testing.T) {
	path := writeFixture(t, 3)

	info, err := Read(path)
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if info.PageCount != 3 {
		t.Errorf("PageCount = %d, want 3", info.PageCount)
	}
	if len(info.Pages) != 3 {
		t.Fatalf("len(Pages) = %d, want 3", len(info.Pages))
	}

	// A4 in points.
	const tol = 0.5
	for i, p := range info.Pages {
		if math.Abs(p.Width-595.28) > tol || math.Abs(p.Height-841.89) > tol {
			t.Errorf("page %d size = %+v, want ~595.28x841.89", i+1, p)
		}
	}
}

func TestReadMissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "missing.pdf"))
	if err == nil {
		t.Fatal("Read() should fail for a missing file")
	}
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("error code = %q, want %q", errors.GetCode(err), errors.ErrCodeFileNotFound)
	}
}

func TestReadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.pdf")
	if err := os.WriteFile(path, []byte("this is not a pdf"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := Read(path)
	if err == nil {
		t.Fatal("Read() should fail for a corrupt file")
	}
	if !errors.Is(err, errors.ErrCodeProcessing) {
		t.Errorf("error code = %q, want %q", errors.GetCode(err), errors.ErrCodeProcessing)
	}
}

func TestValidate(t *testing.T) {
	path := writeFixture(t, 1)

	if err := Validate(path); err != nil {
		t.Errorf("Validate() error: %v", err)
	}
}
