package service

import (
	"context"

	"github.com/lehoangvu/docchat-be/types"
)

// AIService is the answer provider. Chat sends the derived system
// prompt plus the full conversation transcript and returns the
// generated answer. Failures are reported as *types.ProviderError.
type AIService interface {
	Chat(ctx context.Context, prompt string, messages []types.Message) (string, error)
}
