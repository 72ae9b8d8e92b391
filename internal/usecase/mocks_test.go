package usecase_test

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/trebuchet-org/mosaic/internal/domain"
	"github.com/trebuchet-org/mosaic/internal/usecase"
)

// MockWallet is a mock implementation of Wallet. Expectations return the
// error and, optionally, a value that is decoded into the caller's result
// through JSON the way a provider response would be.
type MockWallet struct {
	mock.Mock
	missing bool
}

func (m *MockWallet) Available() bool {
	return !m.missing
}

func (m *MockWallet) Request(ctx context.Context, result any, method string, params ...any) error {
	args := m.MethodCalled(method, params)
	if value := args.Get(1); value != nil && result != nil {
		data, err := json.Marshal(value)
		if err != nil {
			return err
		}
		if err := json.Unmarshal(data, result); err != nil {
			return err
		}
	}
	return args.Error(0)
}

// MockTextGenerator is a mock implementation of TextGenerator
type MockTextGenerator struct {
	mock.Mock
}

func (m *MockTextGenerator) Generate(ctx context.Context, req domain.GenerationRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

// MockGenerationRepository is a mock implementation of GenerationRepository
type MockGenerationRepository struct {
	mock.Mock
}

func (m *MockGenerationRepository) Load(ctx context.Context) (*domain.GenerationResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GenerationResult), args.Error(1)
}

func (m *MockGenerationRepository) Save(ctx context.Context, result *domain.GenerationResult) error {
	args := m.Called(ctx, result)
	return args.Error(0)
}

func (m *MockGenerationRepository) Clear(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// MockBlockchainChecker is a mock implementation of BlockchainChecker
type MockBlockchainChecker struct {
	mock.Mock
}

func (m *MockBlockchainChecker) Connect(ctx context.Context, rpcURL string, chainID uint64) error {
	args := m.Called(ctx, rpcURL, chainID)
	return args.Error(0)
}

func (m *MockBlockchainChecker) CheckDeploymentExists(ctx context.Context, address string) (bool, string, error) {
	args := m.Called(ctx, address)
	return args.Bool(0), args.String(1), args.Error(2)
}

// MockComponentSelector is a mock implementation of ComponentSelector
type MockComponentSelector struct {
	mock.Mock
}

func (m *MockComponentSelector) SelectComponent(ctx context.Context, components []*domain.ComponentDefinition, prompt string) (*domain.ComponentDefinition, error) {
	args := m.Called(ctx, components, prompt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ComponentDefinition), args.Error(1)
}

// memorySelections keeps the selection in memory and counts saves
type memorySelections struct {
	mu        sync.Mutex
	selection *domain.Selection
	saves     int
}

func newMemorySelections(defs ...*domain.ComponentDefinition) *memorySelections {
	return &memorySelections{selection: domain.NewSelection(defs...)}
}

func (s *memorySelections) Load(context.Context) (*domain.Selection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.NewSelection(s.selection.Entries()...), nil
}

func (s *memorySelections) Save(_ context.Context, selection *domain.Selection) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection = domain.NewSelection(selection.Entries()...)
	s.saves++
	return nil
}

func (s *memorySelections) GetPath() string {
	return "memory"
}

func (s *memorySelections) ids() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selection.IDs()
}

// recordingProgress is a ProgressSink that keeps every event
type recordingProgress struct {
	mu     sync.Mutex
	events []usecase.ProgressEvent
}

func (p *recordingProgress) OnProgress(_ context.Context, event usecase.ProgressEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}

func (p *recordingProgress) Info(string)  {}
func (p *recordingProgress) Error(string) {}

func (p *recordingProgress) stages() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []string
	for _, e := range p.events {
		if e.Message != "" {
			out = append(out, e.Stage)
		}
	}
	return out
}

var (
	_ usecase.Wallet               = (*MockWallet)(nil)
	_ usecase.TextGenerator        = (*MockTextGenerator)(nil)
	_ usecase.GenerationRepository = (*MockGenerationRepository)(nil)
	_ usecase.BlockchainChecker    = (*MockBlockchainChecker)(nil)
	_ usecase.ComponentSelector    = (*MockComponentSelector)(nil)
	_ usecase.SelectionRepository  = (*memorySelections)(nil)
	_ usecase.ProgressSink         = (*recordingProgress)(nil)
)
