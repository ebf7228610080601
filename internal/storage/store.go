package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/hanoi/internal/hanoi"
)

// Store persists solve runs under a base directory, one subdirectory per
// run holding metadata.json and moves.csv.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Disks     int       `json:"disks"`
	Speed     string    `json:"speed"`
	Moves     int       `json:"moves"`
	Status    string    `json:"status"`
	ElapsedMS int64     `json:"elapsed_ms"`
}

func (s *Store) Save(disks int, speed, status string, elapsed time.Duration, moves []hanoi.Move) (string, error) {
	runID := fmt.Sprintf("hanoi%d_%d", disks, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Timestamp: time.Now(),
		Disks:     disks,
		Speed:     speed,
		Moves:     len(moves),
		Status:    status,
		ElapsedMS: elapsed.Milliseconds(),
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "moves.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"index", "disk", "from", "to"}); err != nil {
		return "", err
	}
	for i, mv := range moves {
		row := []string{
			strconv.Itoa(i + 1),
			strconv.Itoa(mv.Disk),
			mv.From.String(),
			mv.To.String(),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

func (s *Store) LoadMoves(runID string) ([]hanoi.Move, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "moves.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) < 2 {
		return []hanoi.Move{}, nil
	}

	moves := make([]hanoi.Move, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) != 4 {
			continue
		}
		disk, err := strconv.Atoi(record[1])
		if err != nil {
			continue
		}
		from, err := hanoi.ParseRole(record[2])
		if err != nil {
			continue
		}
		to, err := hanoi.ParseRole(record[3])
		if err != nil {
			continue
		}
		moves = append(moves, hanoi.Move{Disk: disk, From: from, To: to})
	}

	return moves, nil
}
