package adapter

import (
	"context"

	"github.com/brianonbased-dev/holoscript-alphafold-plugin/internal/domain/model"
)

// StructurePredictor is the hex port for the remote prediction backend.
type StructurePredictor interface {
	Name() string

	// Ready reports whether the backend is usable with the current
	// configuration (credential present). No network call.
	Ready() bool

	// Predict runs the full submit -> poll -> assemble pipeline for one job.
	// Terminal job outcomes (failed job, poll timeout) come back as Failure
	// results with a nil error; errors are reserved for submission and
	// artifact-fetch problems.
	Predict(ctx context.Context, req model.PredictionRequest) (*model.PredictionResult, error)
}

// LocalPredictor is the port for a machine-local batch-prediction tool.
// Availability is decided by whoever wires the adapter, never probed here.
type LocalPredictor interface {
	Name() string
	Available() bool
	Predict(ctx context.Context, req model.PredictionRequest) (*model.PredictionResult, error)
}
