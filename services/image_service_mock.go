package services

import (
	"fmt"
	"io"
	"mime/multipart"
	"sync"

	"github.com/google/uuid"
	"github.com/servisku/servisku-api/utils"
)

// MockImageService is a mock implementation of ImageService for testing
type MockImageService struct {
	uploadedImages map[string][]byte // map of object key to file content
	tokens         map[string]string // map of object key to access token
	baseURL        string
	uploadErr      error
	mu             sync.RWMutex
}

// NewMockImageService creates a new mock image service
func NewMockImageService(baseURL string) *MockImageService {
	return &MockImageService{
		uploadedImages: make(map[string][]byte),
		tokens:         make(map[string]string),
		baseURL:        baseURL,
	}
}

// SetAsMockForTesting sets this mock as the global image service instance for testing
func (m *MockImageService) SetAsMockForTesting() {
	SetImageService(m)
}

// UploadImage simulates uploading an image, returning a download URL in the
// same format as the real service
func (m *MockImageService) UploadImage(fileHeader *multipart.FileHeader) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.uploadErr != nil {
		return "", m.uploadErr
	}

	file, err := fileHeader.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}

	token := uuid.NewString()
	objectKey := utils.BuildObjectKey(fileHeader.Filename)

	m.uploadedImages[objectKey] = content
	m.tokens[objectKey] = token

	return utils.BuildDownloadURL(m.baseURL, objectKey, token), nil
}

// FailWith makes every subsequent UploadImage call return the given error
func (m *MockImageService) FailWith(err error) {
	m.mu.Lock()
	m.uploadErr = err
	m.mu.Unlock()
}

// GetUploadedImages returns all uploaded images (for testing assertions)
func (m *MockImageService) GetUploadedImages() map[string][]byte {
	m.mu.RLock()
	defer m.mu.RUnlock()

	images := make(map[string][]byte, len(m.uploadedImages))
	for k, v := range m.uploadedImages {
		images[k] = v
	}
	return images
}

// ImageExists checks if an image exists in mock storage
func (m *MockImageService) ImageExists(objectKey string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, exists := m.uploadedImages[objectKey]
	return exists
}

// TokenFor returns the access token issued for an object key (for testing assertions)
func (m *MockImageService) TokenFor(objectKey string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	token, ok := m.tokens[objectKey]
	return token, ok
}

// Clear removes all images from mock storage
func (m *MockImageService) Clear() {
	m.mu.Lock()
	m.uploadedImages = make(map[string][]byte)
	m.tokens = make(map[string]string)
	m.uploadErr = nil
	m.mu.Unlock()
}
