// Package observe defines the extraction event observer.
//
// The pipeline reports well-defined events (block classified,
// configuration discovered, row accepted/skipped/deduplicated) through an
// Observer. Observers are never required for correctness; the default is
// a no-op.
package observe

import (
	"go.uber.org/zap"

	"github.com/Elietshi1004/emcraw/pkg/emcraw/models"
)

// Observer receives extraction events.
type Observer interface {
	// BlockClassified reports the derived kind of a document block.
	BlockClassified(index int, kind models.BlockKind)
	// ConfigurationFound reports a discovered configuration.
	ConfigurationFound(cfg models.Configuration)
	// RowAccepted reports a measurement row added to a configuration.
	RowAccepted(m models.Measurement)
	// RowSkipped reports a rejected row with the rejection reason.
	RowSkipped(blockIndex int, reason string)
	// RowDeduplicated reports a row dropped as a duplicate of an
	// already-collected row.
	RowDeduplicated(cfg models.Configuration, key string)
}

type nopObserver struct{}

func (nopObserver) BlockClassified(int, models.BlockKind)        {}
func (nopObserver) ConfigurationFound(models.Configuration)      {}
func (nopObserver) RowAccepted(models.Measurement)               {}
func (nopObserver) RowSkipped(int, string)                       {}
func (nopObserver) RowDeduplicated(models.Configuration, string) {}

// Nop returns an observer that discards all events.
func Nop() Observer {
	return nopObserver{}
}

type zapObserver struct {
	log *zap.Logger
}

// NewZap returns an observer that logs every event at debug level.
func NewZap(log *zap.Logger) Observer {
	return &zapObserver{log: log}
}

func (o *zapObserver) BlockClassified(index int, kind models.BlockKind) {
	o.log.Debug("block classified",
		zap.Int("block", index),
		zap.Stringer("kind", kind))
}

func (o *zapObserver) ConfigurationFound(cfg models.Configuration) {
	o.log.Info("configuration found",
		zap.String("sample_id", cfg.SampleID),
		zap.String("configuration", cfg.Name),
		zap.Int("block", cfg.BlockIndex))
}

func (o *zapObserver) RowAccepted(m models.Measurement) {
	o.log.Debug("measurement row accepted",
		zap.String("sample_id", m.SampleID),
		zap.String("configuration", m.Configuration),
		zap.String("frequency", m.Frequency.String()),
		zap.String("detector", string(m.Detector)))
}

func (o *zapObserver) RowSkipped(blockIndex int, reason string) {
	o.log.Debug("row skipped",
		zap.Int("block", blockIndex),
		zap.String("reason", reason))
}

func (o *zapObserver) RowDeduplicated(cfg models.Configuration, key string) {
	o.log.Debug("duplicate row ignored",
		zap.String("configuration", cfg.Name),
		zap.String("key", key))
}
