package storage

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/san-kum/hanoi/internal/hanoi"
)

func TestStoreSaveLoad(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	moves := hanoi.Solve(3)
	runID, err := st.Save(3, "normal", "solved", 3500*time.Millisecond, moves)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if runID == "" {
		t.Error("expected non-empty run id")
	}

	meta, err := st.Load(runID)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if meta.Disks != 3 {
		t.Errorf("expected 3 disks, got %d", meta.Disks)
	}
	if meta.Speed != "normal" {
		t.Errorf("expected normal speed, got %s", meta.Speed)
	}
	if meta.Status != "solved" {
		t.Errorf("expected solved status, got %s", meta.Status)
	}
	if meta.Moves != 7 {
		t.Errorf("expected 7 moves, got %d", meta.Moves)
	}
	if meta.ElapsedMS != 3500 {
		t.Errorf("expected 3500ms, got %d", meta.ElapsedMS)
	}

	loaded, err := st.LoadMoves(runID)
	if err != nil {
		t.Fatalf("load moves failed: %v", err)
	}
	if len(loaded) != len(moves) {
		t.Fatalf("expected %d moves, got %d", len(moves), len(loaded))
	}
	for i := range moves {
		if loaded[i] != moves[i] {
			t.Errorf("move %d: got %v, want %v", i, loaded[i], moves[i])
		}
	}
}

func TestStoreList(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected 0 runs, got %d", len(runs))
	}

	if _, err := st.Save(4, "fast", "solved", time.Second, hanoi.Solve(4)); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runs, err = st.List()
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(runs) != 1 {
		t.Errorf("expected 1 run, got %d", len(runs))
	}
}

func TestStoreListMissingDir(t *testing.T) {
	st := New(filepath.Join(t.TempDir(), "never-created"))

	runs, err := st.List()
	if err != nil {
		t.Fatalf("list on missing dir failed: %v", err)
	}
	if len(runs) != 0 {
		t.Errorf("expected 0 runs, got %d", len(runs))
	}
}

func TestStoreFileStructure(t *testing.T) {
	tmpDir := t.TempDir()
	st := New(tmpDir)

	if err := st.Init(); err != nil {
		t.Fatalf("init failed: %v", err)
	}

	runID, err := st.Save(3, "slow", "halted", time.Second, hanoi.Solve(3)[:2])
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	runDir := filepath.Join(tmpDir, runID)
	if _, err := os.Stat(filepath.Join(runDir, "metadata.json")); os.IsNotExist(err) {
		t.Error("metadata.json not created")
	}
	if _, err := os.Stat(filepath.Join(runDir, "moves.csv")); os.IsNotExist(err) {
		t.Error("moves.csv not created")
	}
}

func TestExportJSON(t *testing.T) {
	meta := &RunMetadata{ID: "hanoi3_1", Disks: 3, Speed: "normal", Status: "solved", ElapsedMS: 700}
	moves := hanoi.Solve(3)

	var buf bytes.Buffer
	if err := ExportJSON(&buf, meta, moves); err != nil {
		t.Fatalf("export failed: %v", err)
	}

	var data ExportData
	if err := json.Unmarshal(buf.Bytes(), &data); err != nil {
		t.Fatalf("export is not valid json: %v", err)
	}
	if data.ID != "hanoi3_1" {
		t.Errorf("expected id hanoi3_1, got %s", data.ID)
	}
	if len(data.Moves) != 7 {
		t.Fatalf("expected 7 moves, got %d", len(data.Moves))
	}
	first := data.Moves[0]
	if first.Disk != 1 || first.From != "A" || first.To != "C" {
		t.Errorf("unexpected first move: %+v", first)
	}
}
