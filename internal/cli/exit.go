package cli

import (
	"github.com/aalvaropc/bankcore/internal/domain"
)

const (
	exitOK              = 0
	exitFailure         = 1
	exitUnknownStrategy = 2
)

// exitCode maps command errors to process exit codes: 2 when a strategy name did not
// resolve, 1 for everything else.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case domain.IsKind(err, domain.KindUnknownStrategy):
		return exitUnknownStrategy
	default:
		return exitFailure
	}
}
