package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/san-kum/gravsim/internal/dynamo"
)

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
	Scene       string             `json:"scene"`
	Timestamp   time.Time          `json:"timestamp"`
	G           float64            `json:"g"`
	TimeStep    float64            `json:"time_step"`
	MinDistance float64            `json:"min_distance"`
	Ticks       int                `json:"ticks"`
	Bodies      int                `json:"bodies"`
	Elapsed     float64            `json:"elapsed"`
	Colors      []string           `json:"colors,omitempty"`
	Metrics     map[string]float64 `json:"metrics"`
}

// NewRunID returns "<scene>_<8 hex chars>".
func NewRunID(scene string) string {
	if scene == "" {
		scene = "run"
	}
	return fmt.Sprintf("%s_%s", scene, uuid.NewString()[:8])
}

// Save writes metadata.json and, when rec holds frames, states.csv.
func (s *Store) Save(runID, scene string, params dynamo.Params, result *dynamo.Result, rec *Recorder) error {
	if result == nil {
		return errors.New("storage: nil result")
	}
	runDir := filepath.Join(s.baseDir, runID)
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return err
	}

	meta := RunMetadata{
		ID:          runID,
		Scene:       scene,
		Timestamp:   time.Now(),
		G:           params.G,
		TimeStep:    params.TimeStep,
		MinDistance: params.MinDistance,
		Ticks:       result.Ticks,
		Bodies:      len(result.Bodies),
		Elapsed:     result.Elapsed,
		Metrics:     result.Metrics,
	}
	if rec != nil {
		meta.Colors = rec.Colors
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return err
	}

	if rec == nil || len(rec.Times) == 0 {
		return nil
	}

	csvFile, err := os.Create(filepath.Join(runDir, "states.csv"))
	if err != nil {
		return err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	if err := w.Write(header(len(rec.Frames[0]) / 2)); err != nil {
		return err
	}
	for i, frame := range rec.Frames {
		row := make([]string, 0, len(frame)+1)
		row = append(row, strconv.FormatFloat(rec.Times[i], 'f', 6, 64))
		for _, v := range frame {
			row = append(row, strconv.FormatFloat(v, 'f', 6, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func header(bodies int) []string {
	h := make([]string, 0, 2*bodies+1)
	h = append(h, "time")
	for i := 0; i < bodies; i++ {
		h = append(h, fmt.Sprintf("x%d", i), fmt.Sprintf("y%d", i))
	}
	return h
}

// List returns saved runs, newest first.
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
		return runs[i].Timestamp.After(runs[j].Timestamp)
	})
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

// Latest returns the ID of the most recent run.
func (s *Store) Latest() (string, error) {
	runs, err := s.List()
	if err != nil {
		return "", err
	}
	if len(runs) == 0 {
		return "", errors.New("no saved runs")
	}
	return runs[0].ID, nil
}

// LoadStates reads states.csv back as flattened frames x0,y0,x1,y1,...
func (s *Store) LoadStates(runID string) ([][]float64, []float64, error) {
	file, err := os.Open(s.statesPath(runID))
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}
	if len(records) < 2 {
		return [][]float64{}, []float64{}, nil
	}

	times := make([]float64, 0, len(records)-1)
	states := make([][]float64, 0, len(records)-1)

	for _, record := range records[1:] {
		if len(record) == 0 {
			continue
		}
		t, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}

		state := make([]float64, 0, len(record)-1)
		for _, field := range record[1:] {
			val, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, nil, fmt.Errorf("%s: bad value %q at t=%g", runID, field, t)
			}
			state = append(state, val)
		}
		times = append(times, t)
		states = append(states, state)
	}

	return states, times, nil
}

func (s *Store) statesPath(runID string) string {
	return filepath.Join(s.baseDir, runID, "states.csv")
}
