// Package emcraw extracts normalized EMC measurement records from RAW
// test-report documents and applies the conformity rules to them.
package emcraw

import (
	"github.com/Elietshi1004/emcraw/pkg/emcraw/observe"
	"github.com/Elietshi1004/emcraw/pkg/emcraw/parser"
)

// Mode represents the extraction mode.
type Mode string

const (
	// ModeLight extracts measurements and verdicts only.
	ModeLight Mode = "light"
	// ModeStandard additionally extracts the test parameters of each
	// configuration.
	ModeStandard Mode = "standard"
	// ModeVerbose additionally retains unmapped passthrough columns on
	// each measurement.
	ModeVerbose Mode = "verbose"
)

// Options configures extraction behavior.
type Options struct {
	// Mode specifies the extraction mode (light, standard, verbose).
	Mode Mode
	// SampleIDPrefix is the literal prefix of the sample identifier
	// grammar. Empty means the default prefix.
	SampleIDPrefix string
	// Observer receives extraction events. Nil means no observation.
	// Configurations are processed concurrently, so the observer must
	// be safe for concurrent use.
	Observer observe.Observer
	// Workers bounds the number of configurations processed in
	// parallel. Values below 1 mean no bound.
	Workers int
}

// DefaultOptions returns default extraction options.
func DefaultOptions() Options {
	return Options{
		Mode:           ModeStandard,
		SampleIDPrefix: parser.DefaultSampleIDPrefix,
	}
}

func (o Options) observer() observe.Observer {
	if o.Observer == nil {
		return observe.Nop()
	}
	return o.Observer
}
