package contract

import (
	"github.com/stretchr/testify/mock"
)

// MockHistoryReader is a mock implementation of HistoryReader for testing.
type MockHistoryReader struct {
	mock.Mock
}

var _ HistoryReader = &MockHistoryReader{} // Compile-time check

// ReadHistory implements the HistoryReader interface.
func (m *MockHistoryReader) ReadHistory(path string) ([]byte, error) {
	args := m.Called(path)
	data, _ := args.Get(0).([]byte)
	return data, args.Error(1)
}

// MockDashboardWriter is a mock implementation of DashboardWriter for testing.
type MockDashboardWriter struct {
	mock.Mock
}

var _ DashboardWriter = &MockDashboardWriter{} // Compile-time check

// WriteDashboard implements the DashboardWriter interface.
func (m *MockDashboardWriter) WriteDashboard(path string, content string) error {
	args := m.Called(path, content)
	return args.Error(0)
}
