// Package graphio: CSV edge-list loading.
package graphio

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/maldonov/algolab/core"
)

// ErrBadRecord indicates a CSV record that does not describe a valid edge:
// wrong field count, unparsable weight, or a structural violation rejected
// by core.AddEdge. Returned errors wrap ErrBadRecord with line context.
var ErrBadRecord = errors.New("graphio: bad edge record")

// ReadCSV builds a core.Graph from an edge list in CSV form, one
// `from,to,weight` record per line, no header.
//
// Errors wrap ErrBadRecord with the offending line, or pass through the
// reader's I/O error.
//
// Complexity: O(E) records.
func ReadCSV(r io.Reader) (*core.Graph, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 3
	cr.TrimLeadingSpace = true

	g := core.NewGraph()
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			// FieldPos is only valid after a successful Read; a parse error
			// (unterminated quote, wrong field count) carries its own position.
			var pe *csv.ParseError
			if errors.As(err, &pe) {
				return nil, fmt.Errorf("%w: line %d: %v", ErrBadRecord, pe.Line, pe.Err)
			}

			return nil, err
		}

		from, to := strings.TrimSpace(record[0]), strings.TrimSpace(record[1])
		weight, err := strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
		if err != nil {
			line, _ := cr.FieldPos(2)

			return nil, fmt.Errorf("%w: line %d: weight %q is not a number", ErrBadRecord, line, record[2])
		}

		if err := g.AddEdge(from, to, weight); err != nil {
			line, _ := cr.FieldPos(0)

			return nil, fmt.Errorf("%w: line %d: %v", ErrBadRecord, line, err)
		}
	}

	return g, nil
}

// ReadCSVFile opens path and delegates to ReadCSV.
func ReadCSVFile(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: open %s: %w", path, err)
	}
	defer f.Close()

	return ReadCSV(f)
}
