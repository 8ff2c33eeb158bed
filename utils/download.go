package utils

import (
	"net/url"
	"path/filepath"
)

// ObjectKeyPrefix is the fixed path prefix for uploaded images in the bucket
const ObjectKeyPrefix = "image/"

// BuildObjectKey returns the bucket key for an uploaded image, preserving
// the original filename under the fixed image/ prefix
func BuildObjectKey(filename string) string {
	return ObjectKeyPrefix + filepath.Base(filename)
}

// BuildDownloadURL constructs the public download URL for a stored object.
// The object key is percent-encoded as a single path segment and the access
// token is appended as a query parameter.
func BuildDownloadURL(baseURL, objectKey, token string) string {
	return baseURL + url.PathEscape(objectKey) + "?alt=media&token=" + token
}
