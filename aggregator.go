package sortbench

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// TrialRecord is one row of the final dataset: the averaged timing of one
// algorithm on one (scenario, size) pair. Never mutated after creation.
type TrialRecord struct {
	Algorithm string  `json:"algorithm" yaml:"algorithm"`
	Scenario  string  `json:"scenario" yaml:"scenario"`
	Size      int     `json:"arraySize" yaml:"arraySize"`
	AverageMs float64 `json:"executionTimeMs" yaml:"executionTimeMs"`
}

// ResultSet is the complete, ordered outcome of one benchmark run.
type ResultSet struct {
	RunID      string        `json:"runId" yaml:"runId"`
	StartedAt  time.Time     `json:"startedAt" yaml:"startedAt"`
	FinishedAt time.Time     `json:"finishedAt" yaml:"finishedAt"`
	Records    []TrialRecord `json:"records" yaml:"records"`
}

// Aggregator accumulates trial records in execution order.
type Aggregator struct {
	runID   string
	started time.Time
	records []TrialRecord
}

// NewAggregator starts an empty collection stamped with a fresh run ID.
func NewAggregator() *Aggregator {
	return &Aggregator{
		runID:   uuid.NewString(),
		started: time.Now(),
	}
}

// Add appends one record.
func (a *Aggregator) Add(rec TrialRecord) {
	a.records = append(a.records, rec)
}

// Len reports the number of collected records.
func (a *Aggregator) Len() int { return len(a.records) }

// Records returns a copy of the collected records in execution order.
func (a *Aggregator) Records() []TrialRecord {
	out := make([]TrialRecord, len(a.records))
	copy(out, a.records)
	return out
}

// ResultSet snapshots the collection as a persistable document.
func (a *Aggregator) ResultSet() ResultSet {
	return ResultSet{
		RunID:      a.runID,
		StartedAt:  a.started,
		FinishedAt: time.Now(),
		Records:    a.Records(),
	}
}

// Save hands the snapshot to a persistence sink. A sink failure does not
// disturb the in-memory records; the caller decides whether it is fatal.
func (a *Aggregator) Save(sink Sink) error {
	if err := sink.Write(a.ResultSet()); err != nil {
		return fmt.Errorf("persist results: %w", err)
	}
	return nil
}

// Sink serializes a finished result set. Implementations own formatting;
// the engine only decides what to persist.
type Sink interface {
	Write(rs ResultSet) error
}

// JSONSink writes the result set as JSON.
type JSONSink struct {
	W      io.Writer
	Indent bool
}

func (s *JSONSink) Write(rs ResultSet) error {
	enc := json.NewEncoder(s.W)
	if s.Indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(rs)
}

// YAMLSink writes the result set as YAML.
type YAMLSink struct {
	W io.Writer
}

func (s *YAMLSink) Write(rs ResultSet) error {
	enc := yaml.NewEncoder(s.W)
	defer enc.Close()
	return enc.Encode(rs)
}
