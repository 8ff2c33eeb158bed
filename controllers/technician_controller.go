package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/servisku/servisku-api/config"
	"github.com/servisku/servisku-api/models"
	"github.com/servisku/servisku-api/services"
)

// RegisterTechnicianRequest represents the request body for registering a technician
type RegisterTechnicianRequest struct {
	Nama            string `json:"nama"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	NoHandphone     string `json:"noHandphone"`
	Keahlian        string `json:"keahlian"`
	LinkSertifikasi string `json:"linkSertifikasi"`
	LinkPortofolio  string `json:"linkPortofolio"`
	JenisKeahlian   string `json:"jenisKeahlian"`
}

// TechnicianSummary is the projection returned by the jenisKeahlian filter
type TechnicianSummary struct {
	Nama          string `json:"nama"`
	JenisKeahlian string `json:"jenisKeahlian"`
}

// RegisterTechnician handles POST /api/technicians/register - creates an
// identity-provider account and persists the Technician profile under the
// returned subject id
func RegisterTechnician(c *gin.Context) {
	var req RegisterTechnicianRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("Error registering technician: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register technician"})
		return
	}

	subjectID, err := services.GetAuthService().CreateUser(req.Email, req.Password)
	if err != nil {
		log.Printf("Error registering technician: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register technician"})
		return
	}

	technician := models.Technician{
		ID:              subjectID,
		Nama:            req.Nama,
		Email:           req.Email,
		NoHandphone:     req.NoHandphone,
		Keahlian:        req.Keahlian,
		LinkSertifikasi: req.LinkSertifikasi,
		LinkPortofolio:  req.LinkPortofolio,
		JenisKeahlian:   req.JenisKeahlian,
		Role:            "technician",
	}

	db := config.GetDB()
	if err := db.Create(&technician).Error; err != nil {
		log.Printf("Error registering technician: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register technician"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Technician registered successfully"})
}

// ListTechnicians handles GET /api/technicians - lists all technician records
func ListTechnicians(c *gin.Context) {
	db := config.GetDB()

	technicians := make([]models.Technician, 0)
	if err := db.Find(&technicians).Error; err != nil {
		log.Printf("Error getting technicians: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get technicians"})
		return
	}

	c.JSON(http.StatusOK, technicians)
}

// ListTechniciansByJenisKeahlian handles GET /api/technicians/by-jenis-keahlian
// - equality filter on the skill category, projecting only nama and
// jenisKeahlian. An empty result is a 200 with an empty array.
func ListTechniciansByJenisKeahlian(c *gin.Context) {
	jenisKeahlian := c.Query("jenisKeahlian")

	db := config.GetDB()
	summaries := make([]TechnicianSummary, 0)
	if err := db.Model(&models.Technician{}).
		Where("jenis_keahlian = ?", jenisKeahlian).
		Find(&summaries).Error; err != nil {
		log.Printf("Error getting technicians: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get technicians"})
		return
	}

	c.JSON(http.StatusOK, summaries)
}
