package services

import (
	"fmt"
	"mime/multipart"

	"github.com/google/uuid"
	"github.com/servisku/servisku-api/utils"
)

// DownloadTokenMetadataKey is the object metadata key carrying the access
// token required to reconstruct the public download URL
const DownloadTokenMetadataKey = "download-token"

// ImageService handles image uploads and download URL construction
type ImageService interface {
	// UploadImage uploads an image file and returns its public download URL
	UploadImage(fileHeader *multipart.FileHeader) (string, error)
}

// S3ImageService implements ImageService using the S3 blob store
type S3ImageService struct {
	s3Service S3Interface
	baseURL   string
}

var imageServiceInstance ImageService

// InitImageService initializes the image service with the S3 backend and
// the public download base URL
func InitImageService(s3Service S3Interface, baseURL string) ImageService {
	imageServiceInstance = &S3ImageService{
		s3Service: s3Service,
		baseURL:   baseURL,
	}
	return imageServiceInstance
}

// GetImageService returns the initialized image service instance
func GetImageService() ImageService {
	return imageServiceInstance
}

// SetImageService sets the image service instance (primarily for testing)
func SetImageService(service ImageService) {
	imageServiceInstance = service
}

// UploadImage uploads the file under image/<filename> with a freshly
// generated access token in the object metadata, and returns the public
// download URL built from that same token. The token is generated exactly
// once per upload; the URL returned here is the only one that will ever
// resolve to the object.
func (s *S3ImageService) UploadImage(fileHeader *multipart.FileHeader) (string, error) {
	token := uuid.NewString()
	objectKey := utils.BuildObjectKey(fileHeader.Filename)

	metadata := map[string]string{
		DownloadTokenMetadataKey: token,
	}
	if err := s.s3Service.UploadFile(fileHeader, objectKey, metadata); err != nil {
		return "", fmt.Errorf("failed to upload image: %w", err)
	}

	return utils.BuildDownloadURL(s.baseURL, objectKey, token), nil
}
