package rfcio

import (
	"fmt"
	"log"

	"github.com/katalvlaran/rainflow/rfc"
)

// Logger writes one line per call, key=value style, reaching for the
// standard library log package rather than a structured-logging dependency.
type Logger struct {
	*log.Logger
}

// NewLogger wraps l (or log.Default() if nil).
func NewLogger(l *log.Logger) Logger {
	if l == nil {
		l = log.Default()
	}
	return Logger{Logger: l}
}

// Event logs msg tagged with the engine's ID, so log lines from many
// concurrent rfc.Context instances (one per channel or load case) can be
// told apart.
func (lg Logger) Event(c *rfc.Context, msg string, kv ...any) {
	line := fmt.Sprintf("engine=%s state=%v %s", c.ID, c.State(), msg)
	for i := 0; i+1 < len(kv); i += 2 {
		line += fmt.Sprintf(" %v=%v", kv[i], kv[i+1])
	}
	lg.Println(line)
}
