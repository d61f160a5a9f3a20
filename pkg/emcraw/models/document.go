// Package models defines data structures for RAW-data extraction.
package models

// Row is an ordered sequence of cell texts within a block.
type Row []string

// Cell returns the text of the cell at index i, or "" when the row is
// shorter than i+1 cells.
func (r Row) Cell(i int) string {
	if i < 0 || i >= len(r) {
		return ""
	}
	return r[i]
}

// Block represents one table-like grid of cells from the source document.
// A block is identified only by its position in the Document; its meaning
// (parameter table, measurement table, anything else) is derived from its
// content on demand.
type Block struct {
	Rows []Row
}

// Header returns the first row of the block, or nil for an empty block.
func (b Block) Header() Row {
	if len(b.Rows) == 0 {
		return nil
	}
	return b.Rows[0]
}

// DataRows returns all rows after the header row.
func (b Block) DataRows() []Row {
	if len(b.Rows) < 2 {
		return nil
	}
	return b.Rows[1:]
}

// BlockKind classifies a block by its role in the source document.
type BlockKind int

const (
	// BlockOther marks blocks that are neither parameter nor measurement
	// tables, including blocks too short to classify.
	BlockOther BlockKind = iota
	// BlockParameter marks key/value tables carrying test identity and
	// setup parameters (Sample, Project, Operator, ...).
	BlockParameter
	// BlockMeasurement marks numeric measurement grids headed by
	// frequency, limit or margin columns.
	BlockMeasurement
)

// String returns the kind as a short label for logging.
func (k BlockKind) String() string {
	switch k {
	case BlockParameter:
		return "parameter"
	case BlockMeasurement:
		return "measurement"
	default:
		return "other"
	}
}

// Document is the ordered sequence of blocks produced by the loader.
// It is read-only once built; every pipeline stage shares it without
// copying, so concurrent readers need no synchronization.
type Document struct {
	// Source is the file name the document was loaded from (no path).
	Source string
	// Blocks holds the tables in source document order.
	Blocks []Block
}

// Block returns the block at index i, or an empty block when out of range.
func (d *Document) Block(i int) Block {
	if i < 0 || i >= len(d.Blocks) {
		return Block{}
	}
	return d.Blocks[i]
}

// NewDocument builds a Document from raw cell grids, one grid per block.
// Intended for the loader and for tests constructing synthetic documents.
func NewDocument(source string, grids ...[][]string) *Document {
	doc := &Document{Source: source}
	for _, grid := range grids {
		b := Block{}
		for _, row := range grid {
			b.Rows = append(b.Rows, Row(row))
		}
		doc.Blocks = append(doc.Blocks, b)
	}
	return doc
}
