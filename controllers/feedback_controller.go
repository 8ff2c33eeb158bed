package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/servisku/servisku-api/config"
	"github.com/servisku/servisku-api/models"
	"github.com/servisku/servisku-api/services"
)

// UploadFeedback handles POST /api/uploads - the multipart upload pipeline.
// An optional image part is uploaded to the blob store and recorded as a
// public download URL; without one the stored image field is the empty
// string. There is no rollback of the blob write if the database write fails.
func UploadFeedback(c *gin.Context) {
	message := c.PostForm("message")

	imageURL := ""
	fileHeader, err := c.FormFile("image")
	switch {
	case err == nil:
		url, uploadErr := services.GetImageService().UploadImage(fileHeader)
		if uploadErr != nil {
			log.Printf("Error uploading image: %v", uploadErr)
			c.JSON(http.StatusInternalServerError, gin.H{
				"message": "Terjadi kesalahan",
				"error":   uploadErr.Error(),
			})
			return
		}
		imageURL = url
	case errors.Is(err, http.ErrMissingFile):
		// No image part; store the feedback with an empty image field
	default:
		log.Printf("Error parsing upload form: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Terjadi kesalahan",
			"error":   err.Error(),
		})
		return
	}

	feedback := models.Feedback{
		Image:   imageURL,
		Message: message,
	}

	db := config.GetDB()
	if err := db.Create(&feedback).Error; err != nil {
		log.Printf("Error saving feedback: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Terjadi kesalahan",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Gambar dan feedback berhasil diunggah",
		"data":    feedback,
	})
}

// ListFeedbacks handles GET /api/feedbacks - lists all feedback records with
// their generated ids
func ListFeedbacks(c *gin.Context) {
	db := config.GetDB()

	feedbacks := make([]models.Feedback, 0)
	if err := db.Find(&feedbacks).Error; err != nil {
		log.Printf("Error getting feedbacks: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Gagal mendapatkan feedback",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, feedbacks)
}
