// Package loader reads RAW .docx documents into the in-memory block
// sequence the extraction pipeline consumes. The pipeline itself never
// touches files or byte layout.
package loader

import (
	"fmt"
	"path/filepath"

	"github.com/tsawler/tabula/docx"
	tabmodel "github.com/tsawler/tabula/model"

	"github.com/Elietshi1004/emcraw/pkg/emcraw/models"
)

// LoadDocx reads every table of a Word document, in document order,
// into a Document.
func LoadDocx(path string) (*models.Document, error) {
	r, err := docx.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer r.Close()

	d, err := r.Document()
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return FromTables(filepath.Base(path), d.ExtractTables()), nil
}

// FromTables converts extracted tables into the pipeline's document
// model. Cell text is kept verbatim; the parser owns all cleanup.
func FromTables(source string, tables []*tabmodel.Table) *models.Document {
	doc := &models.Document{Source: source}
	for _, t := range tables {
		var b models.Block
		for _, row := range t.Rows {
			r := make(models.Row, len(row))
			for i, cell := range row {
				r[i] = cell.Text
			}
			b.Rows = append(b.Rows, r)
		}
		doc.Blocks = append(doc.Blocks, b)
	}
	return doc
}
