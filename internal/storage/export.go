package storage

import (
	"encoding/json"
	"io"
	"os"
)

type ExportData struct {
	Run    RunMetadata `json:"run"`
	Steps  int         `json:"steps"`
	Times  []float64   `json:"times"`
	States [][]float64 `json:"states"`
}

// ExportJSON writes a saved run, metadata and frames, as one JSON document.
func (s *Store) ExportJSON(runID string, w io.Writer) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	states, times, err := s.LoadStates(runID)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	if states == nil {
		states, times = [][]float64{}, []float64{}
	}

	data := ExportData{
		Run:    *meta,
		Steps:  len(times),
		Times:  times,
		States: states,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// ExportCSV copies the run's states.csv to w.
func (s *Store) ExportCSV(runID string, w io.Writer) error {
	file, err := os.Open(s.statesPath(runID))
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = io.Copy(w, file)
	return err
}
