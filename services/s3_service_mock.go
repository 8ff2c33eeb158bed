package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"sync"
)

// MockS3Service is a mock implementation of S3Service for testing
type MockS3Service struct {
	uploadedFiles map[string][]byte            // map of object key to file content
	metadata      map[string]map[string]string // map of object key to object metadata
	uploadErr     error
	mu            sync.RWMutex
}

// NewMockS3Service creates a new mock S3 service
func NewMockS3Service() *MockS3Service {
	return &MockS3Service{
		uploadedFiles: make(map[string][]byte),
		metadata:      make(map[string]map[string]string),
	}
}

// SetAsMockForTesting sets this mock as the global S3 service instance for testing
func (m *MockS3Service) SetAsMockForTesting() {
	SetS3Service(m)
}

// UploadFile simulates uploading a file to S3
func (m *MockS3Service) UploadFile(fileHeader *multipart.FileHeader, objectKey string, metadata map[string]string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.uploadErr != nil {
		return m.uploadErr
	}

	// Open and read the file
	file, err := fileHeader.Open()
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	// Store in mock storage
	m.uploadedFiles[objectKey] = content
	m.metadata[objectKey] = metadata

	return nil
}

// FailWith makes every subsequent UploadFile call return the given error
func (m *MockS3Service) FailWith(err error) {
	m.mu.Lock()
	m.uploadErr = err
	m.mu.Unlock()
}

// GetUploadedFiles returns all uploaded files (for testing assertions)
func (m *MockS3Service) GetUploadedFiles() map[string][]byte {
	m.mu.RLock()
	defer m.mu.RUnlock()

	// Return a copy to prevent race conditions
	files := make(map[string][]byte, len(m.uploadedFiles))
	for k, v := range m.uploadedFiles {
		files[k] = v
	}
	return files
}

// GetMetadata returns the metadata stored for an object key (for testing assertions)
func (m *MockS3Service) GetMetadata(objectKey string) map[string]string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.metadata[objectKey]
}

// FileExists checks if a file exists in mock storage
func (m *MockS3Service) FileExists(objectKey string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, exists := m.uploadedFiles[objectKey]
	return exists
}

// Clear removes all files from mock storage
func (m *MockS3Service) Clear() {
	m.mu.Lock()
	m.uploadedFiles = make(map[string][]byte)
	m.metadata = make(map[string]map[string]string)
	m.uploadErr = nil
	m.mu.Unlock()
}
