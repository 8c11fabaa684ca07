package colabfold

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/brianonbased-dev/holoscript-alphafold-plugin/internal/domain"
	"github.com/brianonbased-dev/holoscript-alphafold-plugin/internal/domain/model"
)

func TestUnavailableAdapter(t *testing.T) {
	nop := zerolog.Nop()
	a := NewUnavailable(&nop)

	if a.Available() {
		t.Error("unavailable adapter reports available")
	}
	_, err := a.Predict(context.Background(), model.PredictionRequest{Sequences: []string{"MKT"}})
	if !errors.Is(err, domain.ErrLocalToolUnavailable) {
		t.Fatalf("Predict() error = %v, want ErrLocalToolUnavailable", err)
	}
}

func TestStubAdapter(t *testing.T) {
	nop := zerolog.Nop()
	a := New("/usr/local/bin/colabfold_batch", &nop)

	if !a.Available() {
		t.Error("wired adapter reports unavailable")
	}
	_, err := a.Predict(context.Background(), model.PredictionRequest{Sequences: []string{"MKT"}})
	if !errors.Is(err, domain.ErrNotImplemented) {
		t.Fatalf("Predict() error = %v, want ErrNotImplemented", err)
	}
}
