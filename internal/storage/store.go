// Package storage persists solved systems as one directory per run:
// metadata.json with the run parameters and outcome, correlations.csv
// with the real-space functions, and structure.csv with S(k).
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

	"github.com/san-kum/ozsim/internal/config"
	"github.com/san-kum/ozsim/internal/fluid"
	"github.com/san-kum/ozsim/internal/solver"
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
	ID          string    `json:"id"`
	Potential   string    `json:"potential"`
	Closure     string    `json:"closure"`
	Temperature float64   `json:"temperature"`
	Densities   []float64 `json:"densities"`
	NPoints     int       `json:"n_points"`
	Dr          float64   `json:"dr"`
	Mix         float64   `json:"mix"`
	Tolerance   float64   `json:"tolerance"`
	Iterations  int       `json:"iterations"`
	Converged   bool      `json:"converged"`
	FinalRMS    float64   `json:"final_rms"`
	ElapsedSec  float64   `json:"elapsed_sec"`
	Timestamp   time.Time `json:"timestamp"`
}

// Save writes one run directory and returns its id.
func (s *Store) Save(cfg *config.Config, result *solver.Result) (string, error) {
	runID := fmt.Sprintf("%s_%s_%d", cfg.Potential, cfg.Closure, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:          runID,
		Potential:   cfg.Potential,
		Closure:     cfg.Closure,
		Temperature: cfg.Temperature,
		Densities:   cfg.Densities(),
		NPoints:     result.Grid.NPoints,
		Dr:          result.Grid.Dr,
		Mix:         cfg.Solver.Mix,
		Tolerance:   cfg.Solver.Tolerance,
		Iterations:  result.Iterations,
		Converged:   result.Converged,
		FinalRMS:    result.FinalRMS,
		ElapsedSec:  result.Elapsed.Seconds(),
		Timestamp:   time.Now(),
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

	if err := writeTensorCSV(filepath.Join(runDir, "correlations.csv"), "r", result.Grid.R,
		map[string]*fluid.PairTensor{"g": result.G, "c": result.C, "e": result.E}); err != nil {
		return "", err
	}
	if err := writeTensorCSV(filepath.Join(runDir, "structure.csv"), "k", result.Grid.K,
		map[string]*fluid.PairTensor{"S": result.S}); err != nil {
		return "", err
	}

	return runID, nil
}

// writeTensorCSV lays out the abscissa in the first column followed by one
// column per function and upper-triangle pair, named like g_0_1.
func writeTensorCSV(path, axisName string, axis []float64, tensors map[string]*fluid.PairTensor) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	names := make([]string, 0, len(tensors))
	for name := range tensors {
		names = append(names, name)
	}
	sort.Strings(names)

	var nc int
	for _, tensor := range tensors {
		nc = tensor.Components()
	}

	header := []string{axisName}
	for _, name := range names {
		for i := 0; i < nc; i++ {
			for j := i; j < nc; j++ {
				header = append(header, fmt.Sprintf("%s_%d_%d", name, i, j))
			}
		}
	}
	if err := w.Write(header); err != nil {
		return err
	}

	row := make([]string, 0, len(header))
	for n, x := range axis {
		row = row[:0]
		row = append(row, strconv.FormatFloat(x, 'g', 10, 64))
		for _, name := range names {
			tensor := tensors[name]
			for i := 0; i < nc; i++ {
				for j := i; j < nc; j++ {
					row = append(row, strconv.FormatFloat(tensor.At(i, j, n), 'g', 10, 64))
				}
			}
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return w.Error()
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

// LoadCorrelations reads correlations.csv back as named columns; the
// abscissa appears under its header name ("r").
func (s *Store) LoadCorrelations(runID string) (map[string][]float64, error) {
	return s.loadColumns(runID, "correlations.csv")
}

// LoadStructure reads structure.csv back as named columns keyed like
// S_0_0, with the abscissa under "k".
func (s *Store) LoadStructure(runID string) (map[string][]float64, error) {
	return s.loadColumns(runID, "structure.csv")
}

func (s *Store) loadColumns(runID, name string) (map[string][]float64, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, name))
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
		return map[string][]float64{}, nil
	}

	header := records[0]
	cols := make(map[string][]float64, len(header))
	for _, h := range header {
		cols[h] = make([]float64, 0, len(records)-1)
	}

	for _, record := range records[1:] {
		for j, field := range record {
			val, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, fmt.Errorf("storage: bad value %q in %s", field, name)
			}
			cols[header[j]] = append(cols[header[j]], val)
		}
	}
	return cols, nil
}
