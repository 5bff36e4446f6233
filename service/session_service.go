package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/lehoangvu/docchat-be/types"
)

const (
	systemPromptPreamble = "You are a helpful assistant. Answer the user's questions based on the following document content.\n\n"
	documentSeparator    = "\n\n---\n\n"
)

// Extractor turns raw document bytes into plain text. Implemented by
// PDFService.
type Extractor interface {
	ExtractText(data []byte) (string, error)
}

// SessionService owns the single in-process chat session: the uploaded
// documents' extracted text, the system prompt derived from it, and the
// conversation transcript. All of it lives in memory and is lost on
// restart.
//
// Ingest and Ask are atomic with respect to each other: one mutex
// guards every read-modify-write of the session state. Ask does not
// hold the mutex while the provider call is in flight; it snapshots
// the prompt and transcript under the lock, releases it for the
// network round trip, then re-acquires it to append the answer.
type SessionService struct {
	extractor  Extractor
	ai         AIService
	askTimeout time.Duration
	logger     *zap.Logger

	mu           sync.Mutex
	documents    map[string]string
	order        []string
	systemPrompt string
	transcript   []types.Message
	generation   uint64
}

func NewSessionService(extractor Extractor, ai AIService, askTimeout time.Duration, logger *zap.Logger) *SessionService {
	return &SessionService{
		extractor:  extractor,
		ai:         ai,
		askTimeout: askTimeout,
		logger:     logger,
		documents:  make(map[string]string),
	}
}

// Ingest extracts text from each upload and stores it under the
// upload's name, overwriting any earlier text stored under the same
// name. An upload whose extraction fails is skipped; it never aborts
// the rest of the batch. Returns the names stored by this call.
//
// Every Ingest call rebuilds the system prompt and clears the
// conversation transcript, even when nothing in the batch could be
// extracted: any upload attempt starts a fresh conversation.
func (s *SessionService) Ingest(uploads []types.Upload) []string {
	type extracted struct {
		name string
		text string
	}
	results := make([]extracted, 0, len(uploads))
	for _, up := range uploads {
		text, err := s.extractor.ExtractText(up.Data)
		if err != nil {
			extractErr := &types.ExtractionError{Name: up.Name, Err: err}
			s.logger.Warn("document skipped", zap.Error(extractErr))
			continue
		}
		results = append(results, extracted{name: up.Name, text: text})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]string, 0, len(results))
	for _, r := range results {
		if _, ok := s.documents[r.name]; !ok {
			s.order = append(s.order, r.name)
		}
		s.documents[r.name] = r.text
		stored = append(stored, r.name)
	}
	s.systemPrompt = s.buildSystemPrompt()
	s.transcript = nil
	s.generation++

	s.logger.Info("documents ingested",
		zap.Strings("stored", stored),
		zap.Int("received", len(uploads)),
		zap.Int("total", len(s.order)))
	return stored
}

// Ask records the question as a user turn, sends the system prompt and
// the full transcript to the answer provider, records the answer as an
// assistant turn and returns it.
//
// If the provider call fails, the user turn stays in the transcript:
// the next successful Ask sends the provider a history containing the
// unanswered question.
func (s *SessionService) Ask(ctx context.Context, question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", types.ErrNoQuestion
	}

	s.mu.Lock()
	if len(s.documents) == 0 {
		s.mu.Unlock()
		return "", types.ErrNoDocuments
	}
	s.transcript = append(s.transcript, types.Message{Role: types.RoleUser, Content: question})
	prompt := s.systemPrompt
	history := make([]types.Message, len(s.transcript))
	copy(history, s.transcript)
	generation := s.generation
	s.mu.Unlock()

	if s.askTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.askTimeout)
		defer cancel()
	}

	answer, err := s.ai.Chat(ctx, prompt, history)
	if err != nil {
		s.logger.Error("answer provider failed", zap.Error(err))
		return "", err
	}

	s.mu.Lock()
	// An upload that happened while the call was in flight started a
	// new conversation; the answer belongs to the old one and is not
	// appended to the fresh transcript.
	if s.generation == generation {
		s.transcript = append(s.transcript, types.Message{Role: types.RoleAssistant, Content: answer})
	}
	s.mu.Unlock()

	return answer, nil
}

// Documents returns the stored document names in upload order.
func (s *SessionService) Documents() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	names := make([]string, len(s.order))
	copy(names, s.order)
	return names
}

// Transcript returns a copy of the conversation so far.
func (s *SessionService) Transcript() []types.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	transcript := make([]types.Message, len(s.transcript))
	copy(transcript, s.transcript)
	return transcript
}

// SystemPrompt returns the prompt currently derived from the document
// store.
func (s *SessionService) SystemPrompt() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.systemPrompt
}

// buildSystemPrompt concatenates every stored text in upload order.
// The full document text rides along on every provider call; there is
// no truncation, which bounds how large a corpus this service can
// serve. Caller must hold s.mu.
func (s *SessionService) buildSystemPrompt() string {
	if len(s.order) == 0 {
		return ""
	}
	texts := make([]string, 0, len(s.order))
	for _, name := range s.order {
		texts = append(texts, s.documents[name])
	}
	return systemPromptPreamble + strings.Join(texts, documentSeparator)
}
