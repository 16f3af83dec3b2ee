package predict

import (
	"context"
	"sync"

	"big5-analyzer/internal/domain"
)

// MockClient permite tests sin llamar al servicio real.
type MockClient struct {
	Response domain.Prediction
	Err      error

	mu       sync.Mutex
	calls    int
	lastText string
}

func (m *MockClient) Predict(ctx context.Context, text string) (domain.Prediction, error) {
	m.mu.Lock()
	m.calls++
	m.lastText = text
	m.mu.Unlock()
	return m.Response, m.Err
}

// Calls devuelve cuantas veces se llamo a Predict.
func (m *MockClient) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

// LastText devuelve el ultimo texto recibido.
func (m *MockClient) LastText() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lastText
}
