package passrecorder

import (
	"context"

	"github.com/KasumiMercury/primind-medication-reminder/internal/domain"
)

type noopRecorder struct{}

func NewNoopRecorder() domain.PassRecorder {
	return &noopRecorder{}
}

func (n *noopRecorder) RecordOutcomes(_ context.Context, _ []domain.PassOutcomeRecord) error {
	return nil
}

func (n *noopRecorder) Flush(_ context.Context) error {
	return nil
}

func (n *noopRecorder) Close() error {
	return nil
}
