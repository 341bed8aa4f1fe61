package sequencer

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"
)

func TestPatternSaveAndRestore(t *testing.T) {
	dir := t.TempDir()
	src := newRig(t, NewMultiLayout(16), testVoices(4), MultiTickerColor).looper
	src.ToggleStep(1, 0)
	src.ToggleStep(1, 9)
	src.ToggleStep(3, 15)
	src.SetTempo(220)

	now := time.Date(2026, 3, 1, 20, 15, 0, 0, time.UTC)
	if _, err := SavePattern(dir, src.Pattern(), "first take", now); err != nil {
		t.Fatal(err)
	}
	if _, err := SavePattern(dir, Pattern{Layout: "multi", Steps: 16}, "", now.Add(-time.Hour)); err != nil {
		t.Fatal(err)
	}

	saves, err := ListSaves(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(saves) != 2 || saves[0].Name != "first-take" || saves[1].Name != "" {
		t.Fatalf("saves: %+v", saves)
	}

	p, err := LoadPattern(dir, "latest")
	if err != nil {
		t.Fatal(err)
	}

	// Sounds were added since the save: voice names still line up
	r := newRig(t, NewMultiLayout(16), testVoices(6), MultiTickerColor)
	dst := r.looper
	if err := dst.Restore(p); err != nil {
		t.Fatal(err)
	}
	if got := dst.Tempo(); got != 220 {
		t.Errorf("tempo: got %d, want 220", got)
	}
	for v := 0; v < 4; v++ {
		if got, want := dst.Grid().Pattern(v), src.Grid().Pattern(v); !reflect.DeepEqual(got, want) {
			t.Errorf("voice %d: got %v, want %v", v, got, want)
		}
	}
	if got := dst.Grid().VoicesAt(0); !reflect.DeepEqual(got, []int{1}) {
		t.Errorf("voices at step 0: got %v, want [1]", got)
	}
}

func TestRestoreRejectsOtherLayout(t *testing.T) {
	l := newRig(t, NewSingleLayout(), testVoices(4), SingleTickerColor).looper
	if err := l.Restore(Pattern{Layout: "multi", Steps: 16}); err == nil {
		t.Fatal("expected error")
	}
}

func TestListSavesSkipsForeignFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"notes.json", "2026-03-01_20-15-00.txt", "2026-03-01_20-15-00_jam.json"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("{}"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	saves, err := ListSaves(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(saves) != 1 || saves[0].Name != "jam" {
		t.Errorf("saves: %+v", saves)
	}
}

func TestLoadLatestEmpty(t *testing.T) {
	_, err := LoadPattern(filepath.Join(t.TempDir(), "missing"), "latest")
	if !errors.Is(err, ErrNoSaves) {
		t.Fatalf("got %v, want ErrNoSaves", err)
	}
}
