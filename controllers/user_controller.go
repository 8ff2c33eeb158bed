package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/servisku/servisku-api/config"
	"github.com/servisku/servisku-api/models"
	"github.com/servisku/servisku-api/services"
)

// RegisterUserRequest represents the request body for registering a user.
// Fields are accepted as supplied; no validation beyond presence is applied.
type RegisterUserRequest struct {
	Nama     string `json:"nama"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Alamat   string `json:"alamat"`
}

// RegisterUser handles POST /api/users/register - creates an identity-provider
// account and persists the User profile under the returned subject id
func RegisterUser(c *gin.Context) {
	var req RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("Error registering user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
		return
	}

	// Create the account first; the subject id becomes the profile key
	subjectID, err := services.GetAuthService().CreateUser(req.Email, req.Password)
	if err != nil {
		log.Printf("Error registering user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
		return
	}

	user := models.User{
		ID:     subjectID,
		Email:  req.Email,
		Nama:   req.Nama,
		Alamat: req.Alamat,
		Role:   "user",
	}

	db := config.GetDB()
	if err := db.Create(&user).Error; err != nil {
		log.Printf("Error registering user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User registered successfully"})
}

// ListUsers handles GET /api/users - lists all user records
func ListUsers(c *gin.Context) {
	db := config.GetDB()

	users := make([]models.User, 0)
	if err := db.Find(&users).Error; err != nil {
		log.Printf("Error getting users: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get users"})
		return
	}

	c.JSON(http.StatusOK, users)
}

// GetUsersByEmail handles GET /api/users/by-email/:email - equality filter
// on the user collection, 404 when no record matches
func GetUsersByEmail(c *gin.Context) {
	email := c.Param("email")

	db := config.GetDB()
	users := make([]models.User, 0)
	if err := db.Where("email = ?", email).Find(&users).Error; err != nil {
		log.Printf("Error getting users: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get users"})
		return
	}

	if len(users) == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	c.JSON(http.StatusOK, users)
}
