package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "nested", "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}

	// Reopening runs the migration again without error
	store2, err := Open(dbPath)
	if err != nil {
		t.Fatalf("second Open() failed: %v", err)
	}
	store2.Close()
}

func TestSaveRunFillsDefaults(t *testing.T) {
	store := openTemp(t)

	id, err := store.SaveRun(Run{Outcome: OutcomeCaught, Duration: 12.5, Collected: 2, Seed: 7})
	if err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}
	if id <= 0 {
		t.Errorf("expected positive ID, got %d", id)
	}

	runs, err := store.RecentRuns(10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	r := runs[0]
	if _, err := uuid.Parse(r.RunID); err != nil {
		t.Errorf("RunID %q is not a UUID: %v", r.RunID, err)
	}
	if r.Session != "local" {
		t.Errorf("Session = %q, want local", r.Session)
	}
	if r.Duration != 12.5 || r.Collected != 2 || r.Seed != 7 {
		t.Errorf("unexpected run: %+v", r)
	}
	if r.CreatedAt.IsZero() {
		t.Error("CreatedAt not set")
	}
}

func TestSaveRunRejectsUnknownOutcome(t *testing.T) {
	store := openTemp(t)
	if _, err := store.SaveRun(Run{Outcome: "won"}); err == nil {
		t.Error("expected error for unknown outcome")
	}
}

func TestRecentRunsOrder(t *testing.T) {
	store := openTemp(t)

	for _, outcome := range []string{OutcomeCaught, OutcomeEscaped, OutcomeAbandoned} {
		if _, err := store.SaveRun(Run{Outcome: outcome}); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.RecentRuns(2)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	// Same-second timestamps fall back to insertion order, newest first.
	if runs[0].Outcome != OutcomeAbandoned || runs[1].Outcome != OutcomeEscaped {
		t.Errorf("unexpected order: %s, %s", runs[0].Outcome, runs[1].Outcome)
	}
}

func TestFastestEscapes(t *testing.T) {
	store := openTemp(t)

	runs := []Run{
		{Outcome: OutcomeEscaped, Duration: 90},
		{Outcome: OutcomeCaught, Duration: 10},
		{Outcome: OutcomeEscaped, Duration: 45},
		{Outcome: OutcomeEscaped, Duration: 60},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	fastest, err := store.FastestEscapes(10)
	if err != nil {
		t.Fatalf("FastestEscapes() failed: %v", err)
	}
	want := []float64{45, 60, 90}
	if len(fastest) != len(want) {
		t.Fatalf("expected %d escapes, got %d", len(want), len(fastest))
	}
	for i, w := range want {
		if fastest[i].Duration != w {
			t.Errorf("fastest[%d] = %v, want %v", i, fastest[i].Duration, w)
		}
	}
}

func TestRunByID(t *testing.T) {
	store := openTemp(t)

	runID := uuid.NewString()
	if _, err := store.SaveRun(Run{RunID: runID, Session: "ssh-1", Outcome: OutcomeEscaped, QuizCorrect: 2}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	r, err := store.RunByID(runID)
	if err != nil {
		t.Fatalf("RunByID() failed: %v", err)
	}
	if r == nil || r.Session != "ssh-1" || r.QuizCorrect != 2 {
		t.Errorf("unexpected run: %+v", r)
	}

	missing, err := store.RunByID("nope")
	if err != nil || missing != nil {
		t.Errorf("expected nil, nil for missing run, got %v, %v", missing, err)
	}

	// run_id is unique
	if _, err := store.SaveRun(Run{RunID: runID, Outcome: OutcomeCaught}); err == nil {
		t.Error("expected duplicate run_id to fail")
	}
}

func TestSummarize(t *testing.T) {
	store := openTemp(t)

	empty, err := store.Summarize()
	if err != nil {
		t.Fatalf("Summarize() failed: %v", err)
	}
	if empty.Runs != 0 || empty.BestTime != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("unexpected empty summary: %+v", empty)
	}

	runs := []Run{
		{Outcome: OutcomeEscaped, Duration: 80, QuizCorrect: 1},
		{Outcome: OutcomeEscaped, Duration: 50, QuizWrong: 2},
		{Outcome: OutcomeCaught, Duration: 5, QuizCorrect: 1},
		{Outcome: OutcomeAbandoned},
	}
	for _, r := range runs {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	sum, err := store.Summarize()
	if err != nil {
		t.Fatalf("Summarize() failed: %v", err)
	}
	if sum.Runs != 4 || sum.Escapes != 2 || sum.Caught != 1 {
		t.Errorf("counts: %+v", sum)
	}
	if sum.BestTime != 50 {
		t.Errorf("BestTime = %v, want 50", sum.BestTime)
	}
	if sum.QuizCorrect != 2 || sum.QuizWrong != 2 {
		t.Errorf("quiz totals: %+v", sum)
	}
	if sum.LastPlayed.IsZero() {
		t.Error("LastPlayed not set")
	}

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}
	after, _ := store.RecentRuns(10)
	if len(after) != 0 {
		t.Errorf("expected empty history, got %d runs", len(after))
	}
}
