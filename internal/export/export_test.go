package export

import (
	"context"
	"errors"
	"testing"

	"github.com/KaramelBytes/csvtally/internal/analysis"
	"github.com/KaramelBytes/csvtally/internal/notify"
	"github.com/KaramelBytes/csvtally/internal/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memClipboard struct {
	text string
	err  error
}

func (m *memClipboard) WriteText(_ context.Context, text string) error {
	if m.err != nil {
		return m.err
	}
	m.text = text
	return nil
}

func cases() *table.Table {
	return &table.Table{
		Name:   "cases.csv",
		Header: []string{"Case Number", "Reason"},
		Rows: [][]string{
			{"C1", "late"}, {"C2", "late"}, {"C3", "rude"}, {"C4", "late"}, {"C5", "lost"}, {"C6", "rude"},
		},
	}
}

func TestCopySuccess(t *testing.T) {
	clip := &memClipboard{}
	rec := &notify.Recorder{}
	e := New(clip, rec, nil)

	s, err := e.Copy(context.Background(), cases(), Request{Column: "Reason", CopyCount: 9, IncludeCaseNumber: true, Seed: 1})
	require.NoError(t, err)
	assert.Equal(t, "late\tC1\nlate\tC2\nlate\tC4\nrude\tC3\nrude\tC6\nlost\tC5", clip.text)
	assert.Len(t, s.Lines, 6)

	last, ok := rec.Last()
	require.True(t, ok)
	assert.Equal(t, notify.LevelSuccess, last.Level)
	assert.Equal(t, "6 entries copied to clipboard. Ready to paste in spreadsheet.", last.Msg)
}

func TestCopyValidation(t *testing.T) {
	noCase := cases()
	noCase.Header = []string{"ID", "Reason"}

	tests := []struct {
		name string
		tbl  *table.Table
		req  Request
		want error
		msg  string
	}{
		{"no file", nil, Request{Column: "Reason", CopyCount: 9}, analysis.ErrNoData, msgNoSelection},
		{"no column", cases(), Request{CopyCount: 9}, analysis.ErrNoColumn, msgNoSelection},
		{"unknown column", cases(), Request{Column: "Nope", CopyCount: 9}, analysis.ErrColumnNotFound, msgNotFound},
		{"no case column", noCase, Request{Column: "Reason", CopyCount: 9, IncludeCaseNumber: true}, analysis.ErrCaseColumnMissing, msgNotFound},
		{"bad count", cases(), Request{Column: "Reason", CopyCount: 0}, analysis.ErrInvalidCopyCount, analysis.ErrInvalidCopyCount.Error()},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			clip := &memClipboard{}
			rec := &notify.Recorder{}
			_, err := New(clip, rec, nil).Copy(context.Background(), tc.tbl, tc.req)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want), "got %v", err)
			assert.True(t, IsValidation(err))
			assert.Empty(t, clip.text)
			last, ok := rec.Last()
			require.True(t, ok)
			assert.Equal(t, notify.LevelError, last.Level)
			assert.Equal(t, tc.msg, last.Msg)
		})
	}
}

func TestCopyCaseColumnOnlyRequiredWhenIncluded(t *testing.T) {
	tbl := cases()
	tbl.Header = []string{"ID", "Reason"}
	clip := &memClipboard{}
	_, err := New(clip, &notify.Recorder{}, nil).Copy(context.Background(), tbl, Request{Column: "Reason", CopyCount: 9})
	require.NoError(t, err)
	assert.Equal(t, "late\nlate\nlate\nrude\nrude\nlost", clip.text)
}

func TestCopyClipboardFailure(t *testing.T) {
	clip := &memClipboard{err: errors.New("terminal refused clipboard write")}
	rec := &notify.Recorder{}
	_, err := New(clip, rec, nil).Copy(context.Background(), cases(), Request{Column: "Reason", CopyCount: 9})
	require.Error(t, err)
	assert.False(t, IsValidation(err))
	last, _ := rec.Last()
	assert.Equal(t, notify.LevelError, last.Level)
	assert.Equal(t, "terminal refused clipboard write", last.Msg)
}
