// Package export writes a whole analysis as CSV for use outside the
// dashboard: the weight table, the ratings matrix, and the ranking.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/arcline-analytics/vantage/internal/cpm"
)

// WriteAnalysis writes three CSV sections separated by blank lines. criteria
// must be ordered by rank (as returned by CriterionSet.Ranks) and weights is
// the matching ROC vector. result may be nil when the matrix is incomplete;
// the ranking section is skipped then.
func WriteAnalysis(w io.Writer, criteria []cpm.Criterion, weights []float64,
	m *cpm.ScoreMatrix, result cpm.RankedResult) error {

	if len(criteria) != len(weights) {
		return fmt.Errorf("have %d criteria but %d weights", len(criteria), len(weights))
	}

	cw := csv.NewWriter(w)

	// Section 1: criterion weights by priority.
	if err := cw.Write([]string{"criterion_id", "label", "rank", "weight"}); err != nil {
		return err
	}
	for i, c := range criteria {
		rec := []string{c.ID, c.Label, strconv.Itoa(c.Rank), formatFloat(weights[i])}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}

	// Section 2: the raw ratings matrix, alternatives as rows.
	if err := cw.Write(nil); err != nil {
		return err
	}
	header := []string{"alternative_id"}
	for _, c := range criteria {
		header = append(header, c.ID)
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, alt := range m.Alternatives() {
		rec := []string{alt}
		for _, c := range criteria {
			v, err := m.Score(alt, c.ID)
			if err != nil {
				rec = append(rec, "")
				continue
			}
			rec = append(rec, formatFloat(v))
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}

	// Section 3: the ranking, best first.
	if result != nil {
		if err := cw.Write(nil); err != nil {
			return err
		}
		if err := cw.Write([]string{"alternative_id", "composite", "raw_sum", "normalized"}); err != nil {
			return err
		}
		for _, row := range result {
			rec := []string{
				row.AlternativeID,
				formatFloat(row.Composite),
				formatFloat(row.RawSum),
				formatFloat(row.Normalized),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
