package colabfold

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/brianonbased-dev/holoscript-alphafold-plugin/internal/domain"
	"github.com/brianonbased-dev/holoscript-alphafold-plugin/internal/domain/model"
	"github.com/brianonbased-dev/holoscript-alphafold-plugin/internal/domain/ports/adapter"
)

var _ adapter.LocalPredictor = (*Adapter)(nil)

// Adapter is the local-tool port implementation for ColabFold. Whether the
// tool exists on this machine is decided by the wirer (cmd/app resolves the
// binary path); the adapter itself never inspects the environment.
//
// The prediction path is a capability stub. A real integration would write
// the chains to a FASTA file, run colabfold_batch against it, and parse the
// output PDB and confidence JSON.
type Adapter struct {
	binPath   string
	available bool
	log       *zerolog.Logger
}

// New wires an available ColabFold installation at binPath.
func New(binPath string, log *zerolog.Logger) *Adapter {
	return &Adapter{binPath: binPath, available: true, log: log}
}

// NewUnavailable wires the explicit "not installed" state.
func NewUnavailable(log *zerolog.Logger) *Adapter {
	return &Adapter{log: log}
}

func (a *Adapter) Name() string { return "colabfold" }

func (a *Adapter) Available() bool { return a.available }

func (a *Adapter) Predict(ctx context.Context, req model.PredictionRequest) (*model.PredictionResult, error) {
	if !a.available {
		return nil, domain.ErrLocalToolUnavailable
	}
	a.log.Warn().Str("job_name", req.JobName).Str("bin", a.binPath).
		Msg("local prediction requested but not implemented")
	return nil, domain.ErrNotImplemented
}
