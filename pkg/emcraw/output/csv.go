package output

import (
	"encoding/csv"
	"io"

	"github.com/Elietshi1004/emcraw/pkg/emcraw/models"
)

// WriteCSV writes every measurement of the report as one flat delimited
// table following Columns. Row order matches the report: samples and
// configurations in discovery order, measurements in extraction order,
// so repeated runs over the same input diff clean.
func WriteCSV(w io.Writer, report *models.Report, opts Options) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return err
	}
	for _, sample := range report.Samples {
		for _, cfg := range sample.Configs {
			for _, m := range cfg.Measurements {
				if err := cw.Write(opts.FlattenRow(m)); err != nil {
					return err
				}
			}
		}
	}
	cw.Flush()
	return cw.Error()
}
