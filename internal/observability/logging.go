// Package observability configures the zerolog logger shared by shape-cmdline.
package observability

import "github.com/rs/zerolog"

func SetLoggingLevel(level zerolog.Level) {
	zerolog.SetGlobalLevel(level)
}
