package usecase

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/rs/zerolog"

	"github.com/brianonbased-dev/holoscript-alphafold-plugin/internal/domain"
	"github.com/brianonbased-dev/holoscript-alphafold-plugin/internal/domain/model"
	"github.com/brianonbased-dev/holoscript-alphafold-plugin/internal/domain/ports/adapter"
	"github.com/brianonbased-dev/holoscript-alphafold-plugin/internal/infra/metrics"
)

const (
	ModuleName    = "alphafold_bridge"
	ModuleVersion = "1.0.0"

	defaultJobName         = "holoscript_prediction"
	defaultMultimerJobName = "multimer_prediction"
	defaultModelCount      = 5

	// The service runs complex predictions with a fixed model count,
	// whatever the caller asked for.
	multimerModelCount = 5
)

// PredictionUseCase owns mode dispatch and per-operation request policy.
// It is stateless; every call carries its own request and job.
type PredictionUseCase struct {
	remote adapter.StructurePredictor
	local  adapter.LocalPredictor
	log    *zerolog.Logger
}

func NewPredictionUseCase(remote adapter.StructurePredictor, local adapter.LocalPredictor, log *zerolog.Logger) *PredictionUseCase {
	return &PredictionUseCase{remote: remote, local: local, log: log}
}

// PredictStructure predicts one structure, dispatching on the request mode.
// An empty mode means the remote API path.
func (uc *PredictionUseCase) PredictStructure(ctx context.Context, req model.PredictionRequest) (*model.PredictionResult, error) {
	if req.JobName == "" {
		req.JobName = defaultJobName
	}
	if req.ModelCount == 0 {
		req.ModelCount = defaultModelCount
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	switch req.Mode {
	case "", model.ModeAPI:
		return uc.predictRemote(ctx, model.ModeAPI, req)
	case model.ModeLocal:
		return uc.local.Predict(ctx, req)
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownMode, req.Mode)
	}
}

// PredictMultimer predicts a multi-chain complex. Always the remote path,
// always multimerModelCount models.
func (uc *PredictionUseCase) PredictMultimer(ctx context.Context, req model.PredictionRequest) (*model.PredictionResult, error) {
	if req.JobName == "" {
		req.JobName = defaultMultimerJobName
	}
	req.Mode = model.ModeAPI
	req.ModelCount = multimerModelCount
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return uc.predictRemote(ctx, "multimer", req)
}

func (uc *PredictionUseCase) predictRemote(ctx context.Context, mode string, req model.PredictionRequest) (*model.PredictionResult, error) {
	start := time.Now()
	res, err := uc.remote.Predict(ctx, req)

	status := model.StatusFailed
	if err == nil && res.Success() {
		status = model.StatusSuccess
	}
	elapsed := time.Since(start)
	metrics.ObservePrediction(mode, status, elapsed.Seconds())
	uc.log.Debug().Str("mode", mode).Str("status", status).Dur("duration", elapsed).
		Msg("remote prediction finished")

	return res, err
}

// Capabilities reports locally-known configuration. No network calls.
func (uc *PredictionUseCase) Capabilities() model.CapabilityStatus {
	return model.CapabilityStatus{
		RemoteAvailable:    uc.remote.Ready(),
		LocalToolAvailable: uc.local.Available(),
		RuntimeVersion:     runtime.Version(),
		Module:             ModuleName,
		Version:            ModuleVersion,
	}
}
