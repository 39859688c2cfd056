package main

import (
	"net/http"
	"os"

	"demo-gallery/pkg/config"
	"demo-gallery/pkg/handlers"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
)

func main() {
	// Initialize config
	config.Init()

	r := gin.Default()

	// Session Setup
	store := cookie.NewStore([]byte(os.Getenv("SESSION_SECRET")))
	r.Use(sessions.Sessions("gallery_session", store))

	// Built gallery output
	r.Static(config.PreviewURL, config.PublicPath)

	// --- Auth Routes ---
	r.GET("/login", handlers.LoginPage)
	r.GET("/login/github", handlers.GithubLogin)
	r.GET("/auth/callback", handlers.AuthCallback)
	r.GET("/logout", handlers.Logout)

	// --- Main App (Authorized) ---
	authorized := r.Group("/")
	authorized.Use(handlers.AuthRequired)
	{
		authorized.GET("/", func(c *gin.Context) { c.Redirect(http.StatusFound, config.PreviewURL) })

		api := authorized.Group("/api")
		{
			api.GET("/cards", handlers.ListCards)
			api.GET("/card", handlers.GetCard)
			api.POST("/create", handlers.CreateDemo)
			api.POST("/reload", handlers.HandleReload)
			api.POST("/build", handlers.HandleBuild)
			api.GET("/covers", handlers.ListCovers)
			api.POST("/covers", handlers.UploadCover)
			api.POST("/covers/delete", handlers.DeleteCover)
			api.GET("/config", handlers.GetSiteConfig)
			api.POST("/sync", handlers.HandleSync)
			api.POST("/publish", handlers.HandlePublish)
		}
	}

	r.Run(":8080")
}
