package controllers

import (
	"net/http"

	"github.com/civic-lens/api-go/models"
	"github.com/civic-lens/api-go/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// GetProfile handles GET /users/me.
func (uc *UserController) GetProfile(c *gin.Context) {
	user := utils.GetUser(c)

	var profile models.User
	if err := uc.DB.First(&profile, user.UserID).Error; err != nil {
		utils.AbortWithError(c, http.StatusNotFound, utils.KindNotFound, "User not found")
		return
	}

	c.JSON(http.StatusOK, profile)
}
