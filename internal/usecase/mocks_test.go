package usecase_test

import (
	"context"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"
	"github.com/trebuchet-org/chainconf/internal/domain"
	"github.com/trebuchet-org/chainconf/internal/domain/config"
	"github.com/trebuchet-org/chainconf/internal/usecase"
)

// MockProber is a mock implementation of NetworkProber
type MockProber struct {
	mock.Mock
}

func (m *MockProber) Probe(ctx context.Context, profile config.NetworkProfile) (*usecase.ProbeResult, error) {
	args := m.Called(ctx, profile.Name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.ProbeResult), args.Error(1)
}

// MockDeriver is a mock implementation of AddressDeriver
type MockDeriver struct {
	mock.Mock
}

func (m *MockDeriver) DeriveAddress(account string) (common.Address, error) {
	args := m.Called(account)
	return args.Get(0).(common.Address), args.Error(1)
}

// MockRunner is a mock implementation of NodeRunner
type MockRunner struct {
	mock.Mock
}

func (m *MockRunner) Command(instance *domain.AnvilInstance) []string {
	args := m.Called(instance)
	return args.Get(0).([]string)
}

func (m *MockRunner) Run(ctx context.Context, instance *domain.AnvilInstance) error {
	args := m.Called(ctx, instance)
	return args.Error(0)
}

// MockProgressSink records progress events
type MockProgressSink struct {
	events []usecase.ProgressEvent
}

func (m *MockProgressSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	m.events = append(m.events, event)
}

func (m *MockProgressSink) Info(message string)  {}
func (m *MockProgressSink) Error(message string) {}
