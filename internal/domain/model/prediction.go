package model

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/brianonbased-dev/holoscript-alphafold-plugin/internal/domain"
)

// Prediction modes accepted by PredictStructure.
const (
	ModeAPI   = "api"
	ModeLocal = "local"
)

// Model presets understood by the remote service.
const (
	PresetMonomer  = "monomer"
	PresetMultimer = "multimer"
)

type JobStatus string

const (
	JobStatusPending   JobStatus = "pending"
	JobStatusRunning   JobStatus = "running"
	JobStatusCompleted JobStatus = "completed"
	JobStatusFailed    JobStatus = "failed"
	JobStatusUnknown   JobStatus = "unknown"
)

// Terminal reports whether polling should stop on this status.
func (s JobStatus) Terminal() bool {
	return s == JobStatusCompleted || s == JobStatusFailed
}

// Job is the handle the remote service assigns at submission time.
// The ID is opaque and immutable.
type Job struct {
	ID string
}

// PredictionRequest describes one structure-prediction job.
// Stoichiometry holds the copy count per distinct sequence; empty means one
// copy of each.
type PredictionRequest struct {
	Sequences     []string
	JobName       string
	Mode          string
	ModelCount    int
	UseTemplates  bool
	Stoichiometry []int
}

// Validate rejects malformed requests at the boundary. Callers are expected
// to apply their defaults (model count, job name) first.
func (r PredictionRequest) Validate() error {
	if len(r.Sequences) == 0 {
		return fmt.Errorf("%w: at least one sequence is required", domain.ErrInvalidArgument)
	}
	for i, seq := range r.Sequences {
		if seq == "" {
			return fmt.Errorf("%w: sequence %d is empty", domain.ErrInvalidArgument, i)
		}
	}
	if r.ModelCount < 1 {
		return fmt.Errorf("%w: model count must be >= 1", domain.ErrInvalidArgument)
	}
	if len(r.Stoichiometry) > 0 && len(r.Stoichiometry) != len(r.Sequences) {
		return fmt.Errorf("%w: stoichiometry has %d entries for %d sequences",
			domain.ErrInvalidArgument, len(r.Stoichiometry), len(r.Sequences))
	}
	for i, n := range r.Stoichiometry {
		if n < 1 {
			return fmt.Errorf("%w: stoichiometry[%d] must be >= 1", domain.ErrInvalidArgument, i)
		}
	}
	return nil
}

// Chains expands the sequences in order, each repeated by its stoichiometry
// count: ["A","B"] with [2,1] yields [A, A, B]. An empty stoichiometry means
// one copy of each sequence.
func (r PredictionRequest) Chains() []string {
	return lo.FlatMap(r.Sequences, func(seq string, i int) []string {
		n := 1
		if i < len(r.Stoichiometry) {
			n = r.Stoichiometry[i]
		}
		return lo.Times(n, func(int) string { return seq })
	})
}

// ModelPreset derives the service preset from the requested prediction count.
func (r PredictionRequest) ModelPreset() string {
	if r.ModelCount == 1 {
		return PresetMonomer
	}
	return PresetMultimer
}

// Result statuses. Failures are data, not errors: callers inspect Status.
const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

// PredictionResult is the terminal value of one prediction call. It is
// created once and never mutated afterwards.
type PredictionResult struct {
	Status           string      `json:"status"`
	JobID            string      `json:"job_id,omitempty"`
	StructureData    string      `json:"pdb_data,omitempty"`
	ConfidenceScores []float64   `json:"confidence_scores,omitempty"`
	MeanConfidence   float64     `json:"mean_plddt"`
	PAEMatrix        [][]float64 `json:"pae_data,omitempty"`
	ErrorMessage     string      `json:"error,omitempty"`
	Message          string      `json:"message,omitempty"`
}

// Success reports whether the prediction completed with artifacts.
func (r *PredictionResult) Success() bool { return r.Status == StatusSuccess }

// FailureResult builds a Failure record carrying a human-readable error and,
// when known, the job id.
func FailureResult(errMsg, jobID string) *PredictionResult {
	return &PredictionResult{
		Status:       StatusFailed,
		JobID:        jobID,
		ErrorMessage: errMsg,
	}
}

// CapabilityStatus reports locally-known configuration only; producing it
// never touches the network.
type CapabilityStatus struct {
	RemoteAvailable    bool   `json:"remote_available"`
	LocalToolAvailable bool   `json:"local_tool_available"`
	RuntimeVersion     string `json:"runtime_version"`
	Module             string `json:"module"`
	Version            string `json:"version"`
}
