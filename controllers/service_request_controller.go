package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/servisku/servisku-api/config"
	"github.com/servisku/servisku-api/models"
	"gorm.io/gorm"
)

// CreateServiceRequest handles POST /api/service-requests - stores the raw
// request body under a store-generated id. The body is an opaque, unvalidated
// JSON document.
func CreateServiceRequest(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		log.Printf("Error creating service request: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to create service request",
			"error":   err.Error(),
		})
		return
	}

	serviceRequest := models.ServiceRequest{
		Payload: string(body),
	}

	db := config.GetDB()
	if err := db.Create(&serviceRequest).Error; err != nil {
		log.Printf("Error creating service request: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to create service request",
			"error":   err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"requestId": serviceRequest.ID,
	})
}

// GetServiceRequest handles GET /api/service-requests/:requestId - returns
// the stored record verbatim, with no response envelope
func GetServiceRequest(c *gin.Context) {
	requestID := c.Param("requestId")

	db := config.GetDB()
	var serviceRequest models.ServiceRequest
	if err := db.First(&serviceRequest, "id = ?", requestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"message": "Service request not found",
			})
			return
		}

		log.Printf("Error retrieving service request: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to retrieve service request",
			"error":   err.Error(),
		})
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(serviceRequest.Payload))
}
