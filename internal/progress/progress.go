// Package progress defines the stage progress events the pipeline emits and
// the sink interface consumed by callers (CLI output, tests, future UIs).
// Events are self-describing; a reporter never needs prior state to interpret
// one.
package progress

// Stage identifies which pass of the organizing run a progress event belongs to.
type Stage string

const (
	StageScanning   Stage = "scanning"
	StageRenaming   Stage = "renaming"
	StageFetching   Stage = "fetching"
	StageOrganizing Stage = "organizing"
	StageCleaning   Stage = "cleaning"
)

// Reporter receives progress events from the pipeline. Implementations must
// tolerate being called from the pipeline's goroutine; the pipeline never
// assumes a particular thread affinity for the receiver.
type Reporter interface {
	Report(stage Stage, percent float64)
}

// Func adapts a plain function to the Reporter interface.
type Func func(stage Stage, percent float64)

func (f Func) Report(stage Stage, percent float64) {
	if f != nil {
		f(stage, Clamp(percent))
	}
}

type nopReporter struct{}

func (nopReporter) Report(Stage, float64) {}

// Nop returns a reporter that discards all events.
func Nop() Reporter { return nopReporter{} }

// Clamp bounds a percentage to the [0, 100] range.
func Clamp(percent float64) float64 {
	switch {
	case percent < 0:
		return 0
	case percent > 100:
		return 100
	default:
		return percent
	}
}
