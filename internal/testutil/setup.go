// Package testutil holds helpers shared by shape-cmdline tests.
package testutil

import (
	"github.com/rs/zerolog"

	"github.com/shapestone/shape-cmdline/internal/observability"
)

func DisableLogging() {
	observability.SetLoggingLevel(zerolog.Disabled)
}
