package storage

import (
	"path/filepath"
	"testing"

	"github.com/lunarbyte/shellstorm/internal/game"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "runs.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func testRun(name string, score int) game.RunResult {
	return game.RunResult{
		Name:           name,
		CharacterID:    "snail",
		Score:          score,
		Months:         4,
		RocksDestroyed: 20,
		MaxHealth:      25,
		MaxSpeed:       400,
		Skills:         []game.SkillID{game.SkillShellFortification, game.SkillIncreasedAgility},
	}
}

func TestSaveAndQueryRuns(t *testing.T) {
	store := openTestStore(t)

	id, err := store.SaveRun(testRun("alpha", 100))
	if err != nil {
		t.Fatalf("SaveRun failed: %v", err)
	}
	if id <= 0 {
		t.Errorf("expected positive insert ID, got %d", id)
	}

	if _, err := store.SaveRun(testRun("beta", 300)); err != nil {
		t.Fatalf("SaveRun failed: %v", err)
	}
	if _, err := store.SaveRun(testRun("gamma", 200)); err != nil {
		t.Fatalf("SaveRun failed: %v", err)
	}

	top, err := store.TopRuns(2)
	if err != nil {
		t.Fatalf("TopRuns failed: %v", err)
	}
	if len(top) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(top))
	}
	if top[0].Name != "beta" || top[0].Score != 300 {
		t.Errorf("top run = %s/%d, want beta/300", top[0].Name, top[0].Score)
	}
	if top[1].Score != 200 {
		t.Errorf("second run score = %d, want 200", top[1].Score)
	}
}

func TestSkillsRoundTrip(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveRun(testRun("alpha", 50)); err != nil {
		t.Fatalf("SaveRun failed: %v", err)
	}

	top, err := store.TopRuns(1)
	if err != nil {
		t.Fatalf("TopRuns failed: %v", err)
	}
	if len(top) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(top))
	}

	skills := top[0].Skills
	if len(skills) != 2 || skills[0] != game.SkillShellFortification || skills[1] != game.SkillIncreasedAgility {
		t.Errorf("skills = %v", skills)
	}
}

func TestTopRunsByCharacter(t *testing.T) {
	store := openTestStore(t)

	r := testRun("alpha", 100)
	if _, err := store.SaveRun(r); err != nil {
		t.Fatal(err)
	}
	r = testRun("beta", 500)
	r.CharacterID = "boulder"
	if _, err := store.SaveRun(r); err != nil {
		t.Fatal(err)
	}

	snail, err := store.TopRunsByCharacter("snail", 10)
	if err != nil {
		t.Fatalf("TopRunsByCharacter failed: %v", err)
	}
	if len(snail) != 1 || snail[0].Name != "alpha" {
		t.Errorf("snail runs = %v", snail)
	}
}

func TestHighScore(t *testing.T) {
	store := openTestStore(t)

	// Empty database yields zero, not an error
	hs, err := store.HighScore()
	if err != nil {
		t.Fatalf("HighScore on empty store failed: %v", err)
	}
	if hs != 0 {
		t.Errorf("empty high score = %d, want 0", hs)
	}

	if _, err := store.SaveRun(testRun("alpha", 150)); err != nil {
		t.Fatal(err)
	}
	if _, err := store.SaveRun(testRun("beta", 90)); err != nil {
		t.Fatal(err)
	}

	hs, err = store.HighScore()
	if err != nil {
		t.Fatalf("HighScore failed: %v", err)
	}
	if hs != 150 {
		t.Errorf("high score = %d, want 150", hs)
	}
}

func TestClearRuns(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveRun(testRun("alpha", 100)); err != nil {
		t.Fatal(err)
	}
	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns failed: %v", err)
	}

	top, err := store.TopRuns(10)
	if err != nil {
		t.Fatal(err)
	}
	if len(top) != 0 {
		t.Errorf("expected no runs after clear, got %d", len(top))
	}
}

func TestGetStats(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveRun(testRun("alpha", 100)); err != nil {
		t.Fatal(err)
	}
	if _, err := store.SaveRun(testRun("beta", 300)); err != nil {
		t.Fatal(err)
	}

	stats, err := store.GetStats()
	if err != nil {
		t.Fatalf("GetStats failed: %v", err)
	}
	if stats.RunCount != 2 {
		t.Errorf("run count = %d, want 2", stats.RunCount)
	}
	if stats.HighScore != 300 {
		t.Errorf("high score = %d, want 300", stats.HighScore)
	}
	if stats.AvgScore != 200 {
		t.Errorf("avg score = %.1f, want 200", stats.AvgScore)
	}
	if stats.BestMonths != 4 {
		t.Errorf("best months = %d, want 4", stats.BestMonths)
	}
}
