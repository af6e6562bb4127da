package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/thorny/internal/sim"
)

const (
	metadataFile = "metadata.json"
	framesFile   = "frames.csv"
)

var framesHeader = []string{"frame", "active", "from", "transferred", "cleared", "overlaps", "cooldown"}

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
	ID          string             `json:"id"`
	Timestamp   time.Time          `json:"timestamp"`
	Seed        int64              `json:"seed"`
	Bodies      int                `json:"bodies"`
	Frames      int                `json:"frames"`
	FinalActive int                `json:"final_active"`
	Metrics     map[string]float64 `json:"metrics"`
}

func (s *Store) Save(seed int64, bodies int, result *sim.Result) (string, error) {
	now := time.Now()
	runID := fmt.Sprintf("seed%d_n%d_%d", seed, bodies, now.UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Timestamp: now,
		Seed:      seed,
		Bodies:    bodies,
		Frames:    len(result.Records),
		Metrics:   result.Metrics,
	}
	if n := len(result.Records); n > 0 {
		meta.FinalActive = result.Records[n-1].Active
	}

	metaFile, err := os.Create(filepath.Join(runDir, metadataFile))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, framesFile))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	if err := w.Write(framesHeader); err != nil {
		return "", err
	}
	for _, r := range result.Records {
		row := []string{
			strconv.FormatUint(r.Frame, 10),
			strconv.Itoa(r.Active),
			strconv.Itoa(r.From),
			strconv.FormatBool(r.Transferred),
			strconv.FormatBool(r.Cleared),
			strconv.Itoa(r.Overlaps),
			strconv.Itoa(r.Cooldown),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}

	return runID, nil
}

// List returns every readable run, oldest first. Directories without valid
// metadata are skipped.
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

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		if runs[i].Timestamp.Equal(runs[j].Timestamp) {
			return runs[i].ID < runs[j].ID
		}
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

func (s *Store) LoadRecords(runID string) ([]sim.Record, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, framesFile))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = len(framesHeader)

	rows, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return []sim.Record{}, nil
	}

	records := make([]sim.Record, 0, len(rows)-1)
	for i, row := range rows[1:] {
		rec, err := parseRecord(row)
		if err != nil {
			return nil, fmt.Errorf("%s line %d: %w", framesFile, i+2, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func parseRecord(row []string) (sim.Record, error) {
	var (
		rec sim.Record
		err error
	)
	if rec.Frame, err = strconv.ParseUint(row[0], 10, 64); err != nil {
		return rec, err
	}
	if rec.Active, err = strconv.Atoi(row[1]); err != nil {
		return rec, err
	}
	if rec.From, err = strconv.Atoi(row[2]); err != nil {
		return rec, err
	}
	if rec.Transferred, err = strconv.ParseBool(row[3]); err != nil {
		return rec, err
	}
	if rec.Cleared, err = strconv.ParseBool(row[4]); err != nil {
		return rec, err
	}
	if rec.Overlaps, err = strconv.Atoi(row[5]); err != nil {
		return rec, err
	}
	if rec.Cooldown, err = strconv.Atoi(row[6]); err != nil {
		return rec, err
	}
	return rec, nil
}
