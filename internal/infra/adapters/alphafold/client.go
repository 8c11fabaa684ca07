package alphafold

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/brianonbased-dev/holoscript-alphafold-plugin/internal/config"
	"github.com/brianonbased-dev/holoscript-alphafold-plugin/internal/domain"
	"github.com/brianonbased-dev/holoscript-alphafold-plugin/internal/domain/model"
	"github.com/brianonbased-dev/holoscript-alphafold-plugin/internal/domain/ports/adapter"
	"github.com/brianonbased-dev/holoscript-alphafold-plugin/internal/infra/metrics"
)

// Compile-time assurance this adapter satisfies the port
var _ adapter.StructurePredictor = (*Client)(nil)

const jobFailedMessage = "prediction job failed"

// Client talks to the AlphaFold3 API: submit a job, poll it to a terminal
// state under a fixed interval/attempt budget, fetch the result artifacts.
// It holds no per-job state; each call owns its own job handle.
type Client struct {
	apiKey          string
	base            string
	hc              *http.Client
	pollInterval    time.Duration
	maxPollAttempts int
	log             *zerolog.Logger
}

func NewClient(cfg config.AlphaFoldConfig, log *zerolog.Logger) *Client {
	return &Client{
		apiKey:          cfg.APIKey,
		base:            cfg.BaseURL,
		hc:              &http.Client{Timeout: cfg.RequestTimeout},
		pollInterval:    cfg.PollInterval,
		maxPollAttempts: cfg.MaxPollAttempts,
		log:             log,
	}
}

func (c *Client) Name() string { return "alphafold3-api" }

// Ready reports whether a credential is configured. No network call.
func (c *Client) Ready() bool { return c.apiKey != "" }

// Predict runs Submit then Poll for one request.
func (c *Client) Predict(ctx context.Context, req model.PredictionRequest) (*model.PredictionResult, error) {
	job, err := c.Submit(ctx, req)
	if err != nil {
		return nil, err
	}
	return c.Poll(ctx, job)
}

// Submit sends one prediction job to the service and returns its handle.
// Submission is never retried: a non-202 answer or a transport fault is
// surfaced to the caller as-is.
func (c *Client) Submit(ctx context.Context, req model.PredictionRequest) (model.Job, error) {
	if c.apiKey == "" {
		return model.Job{}, domain.ErrMissingCredential
	}

	payload := submitRequest{
		Sequences: lo.Map(req.Chains(), func(seq string, _ int) chainEntry {
			return chainEntry{Sequence: seq}
		}),
		ModelPreset:    req.ModelPreset(),
		NumPredictions: req.ModelCount,
		UseTemplates:   req.UseTemplates,
	}

	b, err := json.Marshal(payload)
	if err != nil {
		return model.Job{}, fmt.Errorf("marshal submit payload: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/predict", bytes.NewReader(b))
	if err != nil {
		return model.Job{}, fmt.Errorf("create submit request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)

	c.log.Info().Str("job_name", req.JobName).Int("chains", len(payload.Sequences)).
		Str("model_preset", payload.ModelPreset).Msg("submitting prediction job")

	resp, err := c.hc.Do(httpReq)
	if err != nil {
		metrics.IncSubmission("transport_error")
		return model.Job{}, fmt.Errorf("submit prediction: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.IncSubmission("transport_error")
		return model.Job{}, fmt.Errorf("read submit response: %w", err)
	}

	if resp.StatusCode != http.StatusAccepted {
		metrics.IncSubmission("rejected")
		return model.Job{}, &domain.SubmissionRejectedError{Code: resp.StatusCode, Body: string(body)}
	}

	var accepted submitResponse
	if err := json.Unmarshal(body, &accepted); err != nil {
		metrics.IncSubmission("rejected")
		return model.Job{}, fmt.Errorf("parse submit response: %w", err)
	}
	if accepted.JobID == "" {
		metrics.IncSubmission("rejected")
		return model.Job{}, errors.New("submit response missing jobId")
	}

	metrics.IncSubmission("accepted")
	c.log.Info().Str("job_id", accepted.JobID).Msg("job accepted, polling for completion")
	return model.Job{ID: accepted.JobID}, nil
}

// Poll queries the job status until a terminal state or the attempt budget
// runs out. The interval is constant across all attempts; transient faults
// (transport errors, non-2xx status queries) are logged and consume an
// attempt exactly like an ordinary pending poll, so the wall-clock ceiling
// stays maxPollAttempts x pollInterval regardless of how attempts are spent.
//
// A failed job and an exhausted budget both come back as Failure results
// with a nil error; only artifact-fetch problems and cancellation are errors.
func (c *Client) Poll(ctx context.Context, job model.Job) (*model.PredictionResult, error) {
	for attempt := 0; attempt < c.maxPollAttempts; attempt++ {
		metrics.IncPollAttempt()

		st, err := c.fetchStatus(ctx, job.ID)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			metrics.IncPollTransientError()
			c.log.Warn().Err(err).Str("job_id", job.ID).Int("attempt", attempt).
				Msg("poll attempt failed, retrying")
			if err := c.wait(ctx); err != nil {
				return nil, err
			}
			continue
		}

		switch model.JobStatus(st.Status) {
		case model.JobStatusCompleted:
			return c.assemble(ctx, job, st)
		case model.JobStatusFailed:
			c.log.Error().Str("job_id", job.ID).Msg(jobFailedMessage)
			return model.FailureResult(jobFailedMessage, job.ID), nil
		default:
			// Unknown and empty statuses keep polling, same as pending.
			c.log.Debug().Str("job_id", job.ID).Str("status", st.Status).
				Int("attempt", attempt).Msg("job not finished, waiting")
			if err := c.wait(ctx); err != nil {
				return nil, err
			}
		}
	}

	budget := time.Duration(c.maxPollAttempts) * c.pollInterval
	msg := fmt.Sprintf("job timeout after %s", budget)
	c.log.Error().Str("job_id", job.ID).Msg(msg)
	return model.FailureResult(msg, job.ID), nil
}

func (c *Client) fetchStatus(ctx context.Context, jobID string) (*jobStatusResponse, error) {
	body, err := c.get(ctx, c.base+"/jobs/"+jobID)
	if err != nil {
		return nil, err
	}
	var st jobStatusResponse
	if err := json.Unmarshal(body, &st); err != nil {
		return nil, fmt.Errorf("parse job status: %w", err)
	}
	return &st, nil
}

// assemble fetches the structure file and the confidence data named by the
// completion payload and merges them into the final result. Fetch failures
// propagate to the caller; "completed but artifacts unreachable" is not a
// distinguished failure kind.
func (c *Client) assemble(ctx context.Context, job model.Job, st *jobStatusResponse) (*model.PredictionResult, error) {
	pdb, err := c.get(ctx, st.PdbURL)
	if err != nil {
		return nil, fmt.Errorf("fetch structure file: %w", err)
	}

	confBody, err := c.get(ctx, st.ConfidenceURL)
	if err != nil {
		return nil, fmt.Errorf("fetch confidence data: %w", err)
	}
	var conf confidencePayload
	if err := json.Unmarshal(confBody, &conf); err != nil {
		return nil, fmt.Errorf("parse confidence data: %w", err)
	}

	scores := conf.PLDDT
	if scores == nil {
		scores = []float64{}
	}

	c.log.Info().Str("job_id", job.ID).Int("residues", len(scores)).
		Float64("mean_plddt", conf.MeanPLDDT).Msg("prediction completed")

	return &model.PredictionResult{
		Status:           model.StatusSuccess,
		JobID:            job.ID,
		StructureData:    string(pdb),
		ConfidenceScores: scores,
		MeanConfidence:   conf.MeanPLDDT,
		PAEMatrix:        conf.PAE,
	}, nil
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}
	return body, nil
}

// wait blocks for one poll interval, or less when the context ends first.
func (c *Client) wait(ctx context.Context) error {
	t := time.NewTimer(c.pollInterval)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
