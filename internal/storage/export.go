package storage

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/thorny/internal/sim"
)

type ExportData struct {
	Seed    int64              `json:"seed"`
	Bodies  int                `json:"bodies"`
	Frames  int                `json:"frames"`
	Active  []int              `json:"active"`
	Records []sim.Record       `json:"records"`
	Metrics map[string]float64 `json:"metrics"`
}

func NewExportData(seed int64, bodies int, records []sim.Record, metrics map[string]float64) ExportData {
	data := ExportData{
		Seed:    seed,
		Bodies:  bodies,
		Frames:  len(records),
		Active:  make([]int, len(records)),
		Records: records,
		Metrics: metrics,
	}
	for i, r := range records {
		data.Active[i] = r.Active
	}
	return data
}

func ExportJSON(path string, data ExportData) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return WriteJSON(file, data)
}

func WriteJSON(w io.Writer, data ExportData) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
