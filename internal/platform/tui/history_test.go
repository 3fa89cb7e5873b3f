package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/maze-heist/internal/storage"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		secs float64
		want string
	}{
		{0, "0:00.0"},
		{-3, "0:00.0"},
		{9.94, "0:09.9"},
		{9.96, "0:10.0"},
		{75.25, "1:15.3"},
		{600, "10:00.0"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDuration(tt.secs), "secs=%v", tt.secs)
	}
}

func TestHistoryRows(t *testing.T) {
	runs := []storage.Run{{
		Outcome:     storage.OutcomeEscaped,
		Duration:    42.5,
		Collected:   10,
		QuizCorrect: 2,
		QuizWrong:   1,
		Session:     "local",
		CreatedAt:   time.Date(2026, time.March, 4, 13, 5, 0, 0, time.UTC),
	}}

	rows := HistoryRows(runs)
	require.Len(t, rows, 1)
	assert.Equal(t, "1", rows[0][0])
	assert.Equal(t, "escaped", rows[0][1])
	assert.Equal(t, "0:42.5", rows[0][2])
	assert.Equal(t, "10", rows[0][3])
	assert.Equal(t, "2/3", rows[0][4])
	assert.Equal(t, "Mar 04 13:05", rows[0][6])
}

func TestHistoryModelViews(t *testing.T) {
	store := newTestStore(t)
	_, err := store.SaveRun(storage.Run{Outcome: storage.OutcomeCaught, Duration: 12})
	require.NoError(t, err)
	_, err = store.SaveRun(storage.Run{Outcome: storage.OutcomeEscaped, Duration: 30})
	require.NoError(t, err)

	m := NewHistoryModel(store, 100, 30)
	assert.Len(t, m.runs, 2)
	assert.Equal(t, 2, m.summary.Runs)
	assert.Contains(t, m.View(), "Recent runs")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(HistoryModel)
	assert.Equal(t, ViewFastest, m.view)
	require.Len(t, m.runs, 1)
	assert.Equal(t, storage.OutcomeEscaped, m.runs[0].Outcome)

	next, cmd := m.Update(runeKey('q'))
	assert.NotNil(t, cmd)
	assert.Empty(t, next.View())
}

func TestHistoryModelWithoutStore(t *testing.T) {
	m := NewHistoryModel(nil, 80, 24)
	assert.Empty(t, m.runs)
	assert.Contains(t, m.View(), "No runs recorded yet")
}
