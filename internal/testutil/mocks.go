// Package testutil provides mock and fake implementations of the convargs
// collaborator interfaces, shared by the test packages across the repository.
package testutil

import (
	"github.com/stretchr/testify/mock"
)

// MockFileSystem is a testify mock for the convargs.FileSystem interface.
// Configure expectations with .On("IsDir", ...).Return(...) and friends; any
// unexpected call fails the test, which also makes this mock useful for
// proving that a code path performs no filesystem queries at all.
type MockFileSystem struct {
	mock.Mock
}

// Exists mocks the Exists method.
func (m *MockFileSystem) Exists(path string) bool {
	args := m.Called(path)
	ok, _ := args.Get(0).(bool)
	return ok
}

// IsDir mocks the IsDir method.
func (m *MockFileSystem) IsDir(path string) bool {
	args := m.Called(path)
	ok, _ := args.Get(0).(bool)
	return ok
}

// Getwd mocks the Getwd method.
func (m *MockFileSystem) Getwd() (string, error) {
	args := m.Called()
	wd, _ := args.Get(0).(string)
	return wd, args.Error(1)
}
