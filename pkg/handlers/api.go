package handlers

import (
	"errors"
	"net/http"
	"os"
	"strings"

	"demo-gallery/pkg/services"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

func ListCards(c *gin.Context) {
	cards, err := services.GetGalleryCache()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cards)
}

func GetCard(c *gin.Context) {
	targetPath := c.Query("path")
	contentDir, err := services.ContentRoot()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load site config"})
		return
	}

	fullPath := services.SafeJoin(contentDir, "", targetPath)
	if fullPath == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid path"})
		return
	}

	card, err := services.LoadCard(fullPath)
	if err != nil {
		c.JSON(cardErrorStatus(err), gin.H{"error": err.Error()})
		return
	}

	content, err := os.ReadFile(fullPath)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "File not found"})
		return
	}
	_, body, err := services.ParseFrontMatter(content)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}
	rendered, err := services.RenderMarkdown(body)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Render failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"card": card, "body": body, "html": rendered})
}

func cardErrorStatus(err error) int {
	switch {
	case errors.Is(err, services.ErrCardNotFound):
		return http.StatusNotFound
	case errors.Is(err, services.ErrFrontMatter),
		errors.Is(err, services.ErrInvalidCover),
		errors.Is(err, services.ErrAmbiguousID):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func CreateDemo(c *gin.Context) {
	var req struct {
		Path string `json:"path"`
	}
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON"})
		return
	}

	if req.Path == "" || strings.Contains(req.Path, "..") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid path"})
		return
	}

	err, log := services.CreateDemo(req.Path)
	if err != nil {
		if os.IsExist(err) {
			c.JSON(http.StatusConflict, gin.H{"error": log})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Create failed", "log": log})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "created", "log": log})
}

func HandleReload(c *gin.Context) {
	services.InvalidateGallery()
	c.JSON(http.StatusOK, gin.H{"status": "reloaded"})
}

func HandleBuild(c *gin.Context) {
	err, log := services.BuildGallery()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "log": log, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "log": log})
}

func HandleSync(c *gin.Context) {
	session := sessions.Default(c)
	token := session.Get("access_token").(string)
	err, log := services.SyncGallery(token)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "log": log})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "log": log})
}

func HandlePublish(c *gin.Context) {
	session := sessions.Default(c)
	token := session.Get("access_token").(string)
	err, log := services.PublishGallery(token)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "log": log})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "log": log})
}

func GetSiteConfig(c *gin.Context) {
	cfg, err := services.LoadSiteConfig()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse config"})
		return
	}
	c.JSON(http.StatusOK, cfg)
}
