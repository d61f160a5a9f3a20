package output

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/Elietshi1004/emcraw/pkg/emcraw/models"
)

const (
	measurementsSheet = "Measurements"
	summarySheet      = "Summary"
)

// WriteXLSX writes the report as a workbook: one sheet with all
// flattened measurement rows, verdict cells colored, and one summary
// sheet with per-configuration section verdicts.
func WriteXLSX(path string, report *models.Report, opts Options) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", measurementsSheet); err != nil {
		return err
	}
	styles, err := newStyles(f, opts)
	if err != nil {
		return err
	}
	if err := writeMeasurements(f, report, opts, styles); err != nil {
		return err
	}
	if err := writeSummary(f, report, styles); err != nil {
		return err
	}
	return f.SaveAs(path)
}

type styleSet struct {
	header int
	pass   int
	fail   int
}

func newStyles(f *excelize.File, opts Options) (styleSet, error) {
	var s styleSet
	var err error
	s.header, err = f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{opts.HeaderColor}, Pattern: 1},
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
	})
	if err != nil {
		return s, err
	}
	s.pass, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: opts.PassColor},
	})
	if err != nil {
		return s, err
	}
	s.fail, err = f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: opts.FailColor},
	})
	return s, err
}

func writeMeasurements(f *excelize.File, report *models.Report, opts Options, styles styleSet) error {
	for col, name := range Columns {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(measurementsSheet, cell, name); err != nil {
			return err
		}
	}
	last, err := excelize.CoordinatesToCellName(len(Columns), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(measurementsSheet, "A1", last, styles.header); err != nil {
		return err
	}

	rowIdx := 2
	verdictCol := columnIndex("Conformity")
	for _, sample := range report.Samples {
		for _, cfg := range sample.Configs {
			for _, m := range cfg.Measurements {
				row := opts.FlattenRow(m)
				for col, value := range row {
					cell, err := excelize.CoordinatesToCellName(col+1, rowIdx)
					if err != nil {
						return err
					}
					if err := f.SetCellValue(measurementsSheet, cell, value); err != nil {
						return err
					}
				}
				if style, ok := verdictStyle(m.Conformity, styles); ok {
					cell, err := excelize.CoordinatesToCellName(verdictCol+1, rowIdx)
					if err != nil {
						return err
					}
					if err := f.SetCellStyle(measurementsSheet, cell, cell, style); err != nil {
						return err
					}
				}
				rowIdx++
			}
		}
	}
	return nil
}

func writeSummary(f *excelize.File, report *models.Report, styles styleSet) error {
	if _, err := f.NewSheet(summarySheet); err != nil {
		return err
	}

	rowIdx := 1
	set := func(col int, v any) error {
		cell, err := excelize.CoordinatesToCellName(col, rowIdx)
		if err != nil {
			return err
		}
		return f.SetCellValue(summarySheet, cell, v)
	}

	for _, sample := range report.Samples {
		for _, cfg := range sample.Configs {
			if err := set(1, "Sample ID"); err != nil {
				return err
			}
			if err := set(2, sample.SampleID); err != nil {
				return err
			}
			rowIdx++
			if err := set(1, "Configuration"); err != nil {
				return err
			}
			if err := set(2, cfg.Configuration.Name); err != nil {
				return err
			}
			rowIdx++

			for col, name := range []string{"Section", "Rows", "Fails", "Verdict"} {
				cell, err := excelize.CoordinatesToCellName(col+1, rowIdx)
				if err != nil {
					return err
				}
				if err := f.SetCellValue(summarySheet, cell, name); err != nil {
					return err
				}
				if err := f.SetCellStyle(summarySheet, cell, cell, styles.header); err != nil {
					return err
				}
			}
			rowIdx++
			for _, section := range cfg.Sections {
				if err := set(1, section.Section); err != nil {
					return err
				}
				if err := set(2, section.Rows); err != nil {
					return err
				}
				if err := set(3, section.Fails); err != nil {
					return err
				}
				if err := set(4, string(section.Verdict)); err != nil {
					return err
				}
				if style, ok := verdictStyle(section.Verdict, styles); ok {
					cell, err := excelize.CoordinatesToCellName(4, rowIdx)
					if err != nil {
						return err
					}
					if err := f.SetCellStyle(summarySheet, cell, cell, style); err != nil {
						return err
					}
				}
				rowIdx++
			}

			if err := set(1, "Global verdict"); err != nil {
				return err
			}
			if err := set(2, string(cfg.Verdict)); err != nil {
				return err
			}
			if style, ok := verdictStyle(cfg.Verdict, styles); ok {
				cell, err := excelize.CoordinatesToCellName(2, rowIdx)
				if err != nil {
					return err
				}
				if err := f.SetCellStyle(summarySheet, cell, cell, style); err != nil {
					return err
				}
			}
			rowIdx += 2
		}
	}
	return nil
}

func verdictStyle(v models.Verdict, styles styleSet) (int, bool) {
	switch v {
	case models.VerdictOK:
		return styles.pass, true
	case models.VerdictNOK:
		return styles.fail, true
	default:
		return 0, false
	}
}

func columnIndex(name string) int {
	for i, c := range Columns {
		if c == name {
			return i
		}
	}
	panic(fmt.Sprintf("unknown column %q", name))
}
