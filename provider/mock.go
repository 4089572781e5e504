package provider

import (
	"context"
	"strings"
)

// MockCaller is a mock service caller for testing. It answers the line
// protocol directly from a translation table.
type MockCaller struct {
	Translations map[string]string // Map of source segment to translation
	Err          error             // If set, every call fails with this error
	CallCount    int               // Number of times Call was invoked
	LastRequest  *Request          // Last request received
}

// NewMockCaller creates a new mock caller with default translations.
func NewMockCaller() *MockCaller {
	return &MockCaller{
		Translations: map[string]string{
			"Power":       "Мощность",
			"Volume":      "Громкость",
			"Settings":    "Настройки",
			"Hello World": "Привет, мир",
		},
	}
}

// Call returns one mock translation line per request segment. Unknown
// segments come back bracketed so tests can tell them apart.
func (m *MockCaller) Call(ctx context.Context, req Request) (string, error) {
	m.CallCount++
	m.LastRequest = &req

	if m.Err != nil {
		return "", m.Err
	}

	lines := make([]string, len(req.Segments))
	for i, seg := range req.Segments {
		if t, ok := m.Translations[seg]; ok {
			lines[i] = t
		} else {
			lines[i] = "[" + seg + "]"
		}
	}
	return strings.Join(lines, "\n"), nil
}

// Reset resets the call count and last request.
func (m *MockCaller) Reset() {
	m.CallCount = 0
	m.LastRequest = nil
}

// Verify MockCaller implements ServiceCaller
var _ ServiceCaller = (*MockCaller)(nil)
