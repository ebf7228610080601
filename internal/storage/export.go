package storage

import (
	"encoding/json"
	"io"

	"github.com/san-kum/hanoi/internal/hanoi"
)

type ExportData struct {
	ID        string       `json:"id"`
	Disks     int          `json:"disks"`
	Speed     string       `json:"speed"`
	Status    string       `json:"status"`
	ElapsedMS int64        `json:"elapsed_ms"`
	Moves     []ExportMove `json:"moves"`
}

type ExportMove struct {
	Index int    `json:"index"`
	Disk  int    `json:"disk"`
	From  string `json:"from"`
	To    string `json:"to"`
}

// ExportJSON writes a saved run, metadata plus move list, as indented JSON.
func ExportJSON(w io.Writer, meta *RunMetadata, moves []hanoi.Move) error {
	data := ExportData{
		ID:        meta.ID,
		Disks:     meta.Disks,
		Speed:     meta.Speed,
		Status:    meta.Status,
		ElapsedMS: meta.ElapsedMS,
		Moves:     make([]ExportMove, len(moves)),
	}
	for i, mv := range moves {
		data.Moves[i] = ExportMove{
			Index: i + 1,
			Disk:  mv.Disk,
			From:  mv.From.String(),
			To:    mv.To.String(),
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
