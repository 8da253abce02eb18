package bcnum

import (
	"os"

	"github.com/rs/zerolog"
)

// Diagnostics is the diagnostic sink spec §6 requires: Warn reports a
// non-fatal anomaly and execution continues; Error reports a fatal domain
// error. Neither method returns a value — callers read the operation's own
// return (Divide/RaiseMod's error, Raise's error) for a machine-checkable
// status.
type Diagnostics interface {
	Warn(op, msg string)
	Error(op, msg string)
}

// zerologDiagnostics is the default Diagnostics implementation, backed by
// the structured logger used elsewhere in this codebase's lineage (see
// golang.org/x/exp/event's zerolog exporter).
type zerologDiagnostics struct {
	logger zerolog.Logger
}

// NewZerologDiagnostics wraps an existing zerolog.Logger as a Diagnostics
// sink, tagging every record with component=bcnum and the offending op.
func NewZerologDiagnostics(logger zerolog.Logger) Diagnostics {
	return &zerologDiagnostics{logger: logger}
}

func (z *zerologDiagnostics) Warn(op, msg string) {
	z.logger.Warn().Str("component", "bcnum").Str("op", op).Msg(msg)
}

func (z *zerologDiagnostics) Error(op, msg string) {
	z.logger.Error().Str("component", "bcnum").Str("op", op).Msg(msg)
}

// DefaultDiagnostics logs to stderr and is used by InitNumbers to seed
// globalDiagnostics when a Config supplies no Diagnostics of its own.
var DefaultDiagnostics Diagnostics = NewZerologDiagnostics(zerolog.New(os.Stderr).With().Timestamp().Logger())

// diagOrDefault resolves a Config's Diagnostics field, falling back to
// DefaultDiagnostics. Used only by InitNumbers to establish globalDiagnostics.
func diagOrDefault(d Diagnostics) Diagnostics {
	if d == nil {
		return DefaultDiagnostics
	}
	return d
}

// diagOrGlobal resolves the diag parameter Raise/RaiseMod are called with:
// an explicit per-call sink wins, otherwise the sink InitNumbers installed
// from Config.Diagnostics/WithDiagnostics (globalDiagnostics), otherwise
// DefaultDiagnostics if InitNumbers was never called.
func diagOrGlobal(d Diagnostics) Diagnostics {
	if d != nil {
		return d
	}
	if globalDiagnostics != nil {
		return globalDiagnostics
	}
	return DefaultDiagnostics
}
