package env

import (
	"os"

	"github.com/quiet-field/vellum/internal/core"
)

// DetectMode reads the VELLUM_DEV switch. Dev mode renders from the
// working tree on every request; prod mode renders from embedded content.
func DetectMode() core.Mode {
	if os.Getenv("VELLUM_DEV") == "1" {
		return core.ModeDev
	}
	return core.ModeProd
}
