package analysis

import "sort"

// Bucket groups the rows sharing one value of the selected column.
type Bucket struct {
	Value string
	Count int
	// CaseIDs holds case identifiers in row order, duplicates retained.
	CaseIDs []string
}

// Rank scans rows once and returns one bucket per distinct non-empty value of column col,
// ordered by descending count. Ties keep first-seen order. Rows too short for col are skipped.
// When caseCol >= 0, the non-empty cell at caseCol is appended to the bucket's CaseIDs.
//
// Tabulate and Draw both rank through here, so chart and clipboard share one top 3.
func Rank(rows [][]string, col, caseCol int) []Bucket {
	if col < 0 {
		return nil
	}
	index := make(map[string]int)
	var out []Bucket
	for _, row := range rows {
		if col >= len(row) {
			continue
		}
		v := row[col]
		if v == "" {
			continue
		}
		i, ok := index[v]
		if !ok {
			i = len(out)
			index[v] = i
			out = append(out, Bucket{Value: v})
		}
		b := &out[i]
		b.Count++
		if caseCol >= 0 && caseCol < len(row) && row[caseCol] != "" {
			b.CaseIDs = append(b.CaseIDs, row[caseCol])
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}
