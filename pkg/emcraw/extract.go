package emcraw

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/Elietshi1004/emcraw/pkg/emcraw/loader"
	"github.com/Elietshi1004/emcraw/pkg/emcraw/models"
	"github.com/Elietshi1004/emcraw/pkg/emcraw/parser"
	"github.com/Elietshi1004/emcraw/pkg/emcraw/rules"
)

// Extract loads a RAW .docx document and extracts its evaluated
// measurement report.
func Extract(path string, opts Options) (*models.Report, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	doc, err := loader.LoadDocx(path)
	if err != nil {
		return nil, NewExtractionError(path, "load", err)
	}
	report, err := ExtractDocument(doc, opts)
	if err != nil {
		return nil, NewExtractionError(path, "extract", err)
	}
	return report, nil
}

// ExtractDocument runs the extraction pipeline over an already loaded
// document: discover configurations, associate each one with the
// measurement tables preceding its declaration, normalize the rows and
// apply the conformity rules. The document is shared read-only across
// all configurations, which are processed independently.
func ExtractDocument(doc *models.Document, opts Options) (*models.Report, error) {
	if len(doc.Blocks) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyDocument, doc.Source)
	}
	obs := opts.observer()

	for i, b := range doc.Blocks {
		obs.BlockClassified(i, parser.Classify(b))
	}

	grammar := parser.NewSampleIDGrammar(opts.SampleIDPrefix)
	configs := parser.Discover(doc, grammar, obs)

	results := make([]*models.ConfigResult, len(configs))
	g := new(errgroup.Group)
	if opts.Workers > 0 {
		g.SetLimit(opts.Workers)
	}
	for i, cfg := range configs {
		g.Go(func() error {
			run := parser.Resolve(doc, cfg.BlockIndex)
			ms := rules.Apply(parser.ExtractRows(doc, cfg, run, obs))
			if opts.Mode != ModeVerbose {
				for j := range ms {
					ms[j].Extra = nil
				}
			}
			res := &models.ConfigResult{
				Configuration: cfg,
				Measurements:  ms,
			}
			res.Sections, res.Verdict = rules.Summarize(ms)
			if opts.Mode != ModeLight {
				res.Params = parser.ExtractParams(doc, cfg)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Group by sample, preserving discovery order of both samples and
	// configurations.
	report := &models.Report{
		RunID:  uuid.NewString(),
		Source: doc.Source,
	}
	for _, res := range results {
		sample := report.Sample(res.Configuration.SampleID)
		if sample == nil {
			sample = &models.SampleResult{SampleID: res.Configuration.SampleID}
			report.Samples = append(report.Samples, sample)
		}
		sample.Configs = append(sample.Configs, res)
	}
	return report, nil
}
