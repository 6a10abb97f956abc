package application

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/rooftop/internal/domain"
	"github.com/bnema/rooftop/internal/ports"
)

// ChatService forwards gardening questions to the completion gateway.
// Gateway failures come back as *domain.GatewayError and are shown to
// the user as-is; there is no retry.
type ChatService struct {
	gateway ports.CompletionGateway
}

func NewChatService(gateway ports.CompletionGateway) *ChatService {
	return &ChatService{gateway: gateway}
}

// Ask sends the prompt verbatim to the backing model and returns its
// text answer. Blank prompts are rejected before the round trip.
func (s *ChatService) Ask(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", fmt.Errorf("%w: prompt", domain.ErrEmptyField)
	}

	answer, err := s.gateway.Complete(ctx, prompt)
	if err != nil {
		return "", err
	}

	return answer, nil
}
