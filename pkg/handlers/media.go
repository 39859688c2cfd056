package handlers

import (
	"net/http"

	"demo-gallery/pkg/services"

	"github.com/gin-gonic/gin"
)

func ListCovers(c *gin.Context) {
	files, err := services.ListCovers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list covers: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, files)
}

func UploadCover(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}

	info, err := services.SaveCover(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save file: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, info)
}

func DeleteCover(c *gin.Context) {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	if err := services.DeleteCover(req.Name); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
