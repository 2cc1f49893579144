// Package log wires zerolog the way the decoder expects it: a per-user
// temp-file sink at Debug level, so a caller who enables tracing can watch
// the pipeline hand a byte sequence from one driver to the next without
// instrumenting the decoder itself.
package log

import (
	"fmt"
	"os"
	"os/user"
	"path/filepath"

	"github.com/rs/zerolog"
)

const defaultFileMode os.FileMode = 0600

// Default opens (or creates) a per-user log file under the system temp
// directory and returns a zerolog.Logger writing to it at Debug level.
// Decoder falls back to this when no WithLogger option is given. If the
// file cannot be opened, it returns a no-op logger rather than failing
// decoder construction over a logging concern.
func Default() zerolog.Logger {
	name := "unknown"
	if usr, err := user.Current(); err == nil {
		name = usr.Username
	}
	path := filepath.Join(os.TempDir(), fmt.Sprintf("tkey-%s.log", name))
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, defaultFileMode)
	if err != nil {
		return zerolog.Nop()
	}
	return zerolog.New(file).Level(zerolog.DebugLevel).With().Timestamp().Logger()
}
