package grid

// Unit conversion constants for PDF lengths.
const (
	pointsPerInch = 72.0
	mmPerInch     = 25.4
)

// Points converts millimeters to PDF points.
func Points(mm float64) float64 { return mm * pointsPerInch / mmPerInch }

// Millimeters converts PDF points to millimeters.
func Millimeters(pt float64) float64 { return pt * mmPerInch / pointsPerInch }
