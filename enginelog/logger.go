// Package enginelog provides the default structured logger for the
// conversion engine. Its Logger interface is a single Printf method,
// so callers can drop in any *log.Logger or their own adapter without
// pulling in this package's dependency.
package enginelog

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
)

// A Logger receives printf-style log lines. *log.Logger from the standard
// library already satisfies this interface.
type Logger interface {
	Printf(format string, v ...interface{})
}

// hclogAdapter backs Logger with a leveled, structured hclog.Logger.
type hclogAdapter struct {
	hclog.Logger
}

// New returns the engine's default Logger: an hclog.Logger named
// "soapspec", writing leveled, structured output.
func New() Logger {
	return &hclogAdapter{hclog.New(&hclog.LoggerOptions{
		Name:  "soapspec",
		Level: hclog.Info,
	})}
}

func (a *hclogAdapter) Printf(format string, v ...interface{}) {
	a.Logger.Info(fmt.Sprintf(format, v...))
}

// Discard is a Logger that drops every line, for tests and callers that
// never want engine diagnostics on stderr.
type discard struct{}

func (discard) Printf(string, ...interface{}) {}

// Discard returns a Logger that discards all output.
func Discard() Logger { return discard{} }
