package application

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/brianonbased-dev/holoscript-alphafold-plugin/internal/domain"
	"github.com/brianonbased-dev/holoscript-alphafold-plugin/internal/domain/model"
	"github.com/brianonbased-dev/holoscript-alphafold-plugin/internal/infra/logging"
	"github.com/brianonbased-dev/holoscript-alphafold-plugin/internal/usecase"
)

// BridgeFacade is the public boundary of the bridge. Every operation returns
// a PredictionResult value: failures are data carried in the result, never
// errors or panics crossing to the caller.
type BridgeFacade struct {
	predictUC *usecase.PredictionUseCase
	log       *zerolog.Logger
}

func NewBridgeFacade(predictUC *usecase.PredictionUseCase, log *zerolog.Logger) *BridgeFacade {
	return &BridgeFacade{predictUC: predictUC, log: log}
}

// PredictStructure predicts one protein structure.
func (b *BridgeFacade) PredictStructure(ctx context.Context, req model.PredictionRequest) *model.PredictionResult {
	ctx = logging.WithTraceID(ctx, uuid.NewString())
	log := logging.With(ctx, b.log)
	defer logging.TraceDuration(log, "BridgeFacade.PredictStructure")()

	res, err := b.predictUC.PredictStructure(ctx, req)
	if err != nil {
		log.Warn().Err(err).Str("job_name", req.JobName).Msg("prediction failed")
		return failureFromError(err)
	}
	return res
}

// PredictMultimer predicts a multi-chain complex via the remote service.
func (b *BridgeFacade) PredictMultimer(ctx context.Context, req model.PredictionRequest) *model.PredictionResult {
	ctx = logging.WithTraceID(ctx, uuid.NewString())
	log := logging.With(ctx, b.log)
	defer logging.TraceDuration(log, "BridgeFacade.PredictMultimer")()

	res, err := b.predictUC.PredictMultimer(ctx, req)
	if err != nil {
		log.Warn().Err(err).Str("job_name", req.JobName).Msg("multimer prediction failed")
		return failureFromError(err)
	}
	return res
}

// GetCapabilities reports what this installation can do without touching the
// network.
func (b *BridgeFacade) GetCapabilities() model.CapabilityStatus {
	return b.predictUC.Capabilities()
}

// failureFromError maps internal errors onto the result vocabulary callers
// see. Messages for the well-known cases match the bridge's documented
// output.
func failureFromError(err error) *model.PredictionResult {
	var rejected *domain.SubmissionRejectedError
	switch {
	case errors.As(err, &rejected):
		res := model.FailureResult(rejected.Error(), "")
		res.Message = rejected.Body
		return res
	case errors.Is(err, domain.ErrMissingCredential):
		res := model.FailureResult("AlphaFold API key not set. Set ALPHAFOLD_API_KEY environment variable.", "")
		res.Message = "API mode requires authentication"
		return res
	case errors.Is(err, domain.ErrNotImplemented):
		res := model.FailureResult(err.Error(), "")
		res.Message = `use API mode for now: mode="api"`
		return res
	case errors.Is(err, domain.ErrLocalToolUnavailable):
		res := model.FailureResult(err.Error(), "")
		res.Message = "install ColabFold and set colabfold.bin_path in the config"
		return res
	default:
		return model.FailureResult(err.Error(), "")
	}
}
