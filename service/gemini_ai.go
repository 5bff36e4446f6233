package service

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/lehoangvu/docchat-be/types"
)

type GeminiService struct {
	apiKeys    []string
	currentKey int
	client     *genai.Client
	model      *genai.GenerativeModel
	modelName  string
	mu         sync.Mutex
}

func NewGeminiService(apiKeys []string, modelName string) (*GeminiService, error) {
	if len(apiKeys) == 0 {
		return nil, errors.New("no API keys provided")
	}

	service := &GeminiService{
		apiKeys:    apiKeys,
		currentKey: 0,
		modelName:  modelName,
	}

	if err := service.initClient(); err != nil {
		return nil, err
	}
	return service, nil
}

func (s *GeminiService) initClient() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(s.apiKeys[s.currentKey]))
	if err != nil {
		return err
	}
	s.client = client
	s.model = client.GenerativeModel(s.modelName)
	return nil
}

func (s *GeminiService) rotateAPIKey() error {
	s.mu.Lock()
	s.currentKey = (s.currentKey + 1) % len(s.apiKeys)
	if err := s.client.Close(); err != nil {
		s.mu.Unlock()
		return err
	}
	s.mu.Unlock()
	return s.initClient()
}

func (s *GeminiService) Chat(ctx context.Context, prompt string, messages []types.Message) (string, error) {
	if len(messages) == 0 {
		return "", &types.ProviderError{Err: errors.New("empty transcript")}
	}

	// Gemini takes the latest user message separately from the history.
	history := make([]*genai.Content, 0, len(messages)-1)
	for _, msg := range messages[:len(messages)-1] {
		role := "user"
		if msg.Role == types.RoleAssistant {
			role = "model"
		}
		history = append(history, &genai.Content{
			Parts: []genai.Part{genai.Text(msg.Content)},
			Role:  role,
		})
	}
	last := messages[len(messages)-1].Content

	chat := s.startChat(prompt, history)
	resp, err := chat.SendMessage(ctx, genai.Text(last))
	if err != nil {
		// Try rotating API key if there's an error
		if rerr := s.rotateAPIKey(); rerr != nil {
			return "", &types.ProviderError{Err: err}
		}
		chat = s.startChat(prompt, history)
		resp, err = chat.SendMessage(ctx, genai.Text(last))
		if err != nil {
			return "", &types.ProviderError{Err: err}
		}
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", &types.ProviderError{Err: errors.New("no response generated")}
	}

	var content strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			content.WriteString(string(text))
		}
	}
	return content.String(), nil
}

func (s *GeminiService) startChat(prompt string, history []*genai.Content) *genai.ChatSession {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(prompt)},
	}
	chat := s.model.StartChat()
	chat.History = history
	return chat
}

func (s *GeminiService) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.client.Close()
}
