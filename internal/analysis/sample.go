package analysis

import (
	"math/rand/v2"
	"strings"
	"time"
	"unicode"
)

// Distribution is the fixed unit allotment for ranks 1..3.
var Distribution = []int{4, 3, 2}

// fixedUnits is the sum of Distribution.
const fixedUnits = 9

// SampleOptions controls a clipboard sample.
type SampleOptions struct {
	CopyCount         int
	IncludeCaseNumber bool
	// CaseColumn is the index of the case number column; -1 when absent.
	CaseColumn int
	// Rand drives filler selection. Nil seeds a source from the clock.
	Rand *rand.Rand
}

// Sample is the outcome of a sampling pass.
type Sample struct {
	Requested  int
	Categories []Bucket
	// Units is parallel to Categories.
	Units []int
	Lines []string
}

// NewRand returns a PCG-backed source for seed. A zero seed draws one from the clock.
func NewRand(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Allocate assigns line units to n ranked categories. Ranks 1..3 get 4, 3 and 2 units,
// clamped in rank order so the total never exceeds copyCount. Whatever budget remains past
// 9 goes, one unit each, to a uniformly random subset of the categories beyond rank 3.
func Allocate(n, copyCount int, rng *rand.Rand) []int {
	units := make([]int, n)
	budget := copyCount
	for i := 0; i < len(Distribution) && i < n; i++ {
		u := max(0, min(Distribution[i], budget))
		units[i] = u
		budget -= u
	}
	remaining := copyCount - fixedUnits
	rest := n - len(Distribution)
	if remaining <= 0 || rest <= 0 {
		return units
	}
	if rng == nil {
		rng = NewRand(0)
	}
	k := min(remaining, rest)
	for _, p := range rng.Perm(rest)[:k] {
		units[len(Distribution)+p] = 1
	}
	return units
}

// Draw ranks column col of rows and emits clipboard lines per the allotment. With case
// numbers each line is "value\tcaseID" and a category emits at most as many ids as it has;
// without, the value is repeated min(units, count) times.
func Draw(rows [][]string, col int, opt SampleOptions) (*Sample, error) {
	if len(rows) == 0 {
		return nil, ErrNoData
	}
	if col < 0 {
		return nil, ErrNoColumn
	}
	if opt.CopyCount < 1 {
		return nil, ErrInvalidCopyCount
	}
	caseCol := -1
	if opt.IncludeCaseNumber {
		if opt.CaseColumn < 0 {
			return nil, ErrCaseColumnMissing
		}
		caseCol = opt.CaseColumn
	}
	buckets := Rank(rows, col, caseCol)
	s := &Sample{
		Requested:  opt.CopyCount,
		Categories: buckets,
		Units:      Allocate(len(buckets), opt.CopyCount, opt.Rand),
	}
	for i, b := range buckets {
		u := s.Units[i]
		if u == 0 {
			continue
		}
		if opt.IncludeCaseNumber {
			ids := b.CaseIDs
			if len(ids) > u {
				ids = ids[:u]
			}
			for _, id := range ids {
				s.Lines = append(s.Lines, b.Value+"\t"+id)
			}
			continue
		}
		for j := 0; j < min(u, b.Count); j++ {
			s.Lines = append(s.Lines, b.Value)
		}
	}
	return s, nil
}

// Text joins the lines for the clipboard with trailing whitespace trimmed.
func (s *Sample) Text() string {
	if s == nil {
		return ""
	}
	return strings.TrimRightFunc(strings.Join(s.Lines, "\n"), unicode.IsSpace)
}
