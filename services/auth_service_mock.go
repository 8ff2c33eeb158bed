package services

import (
	"fmt"
	"sync"
)

// MockAuthService is a mock implementation of the auth service for testing
type MockAuthService struct {
	createdUsers map[string]string // map of email to subject id
	nextID       int
	failWith     error
	mu           sync.RWMutex
}

// NewMockAuthService creates a new mock auth service
func NewMockAuthService() *MockAuthService {
	return &MockAuthService{
		createdUsers: make(map[string]string),
	}
}

// SetAsMockForTesting sets this mock as the global auth service instance for testing
func (m *MockAuthService) SetAsMockForTesting() {
	SetAuthService(m)
}

// CreateUser simulates creating an identity-provider account. The account
// namespace is shared across roles, so a duplicate email fails regardless
// of which endpoint registered it first.
func (m *MockAuthService) CreateUser(email, password string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failWith != nil {
		return "", m.failWith
	}

	if _, exists := m.createdUsers[email]; exists {
		return "", fmt.Errorf("create-user endpoint returned status 409: The user already exists")
	}

	m.nextID++
	subjectID := fmt.Sprintf("auth0|mock%06d", m.nextID)
	m.createdUsers[email] = subjectID
	return subjectID, nil
}

// SubjectIDFor returns the subject id issued for an email (for testing assertions)
func (m *MockAuthService) SubjectIDFor(email string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	id, ok := m.createdUsers[email]
	return id, ok
}

// FailWith makes every subsequent CreateUser call return the given error
func (m *MockAuthService) FailWith(err error) {
	m.mu.Lock()
	m.failWith = err
	m.mu.Unlock()
}

// Clear removes all created accounts from mock storage
func (m *MockAuthService) Clear() {
	m.mu.Lock()
	m.createdUsers = make(map[string]string)
	m.failWith = nil
	m.mu.Unlock()
}
