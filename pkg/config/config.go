package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/github"
)

var (
	GalleryPath = "./gallery"
	PublicPath  = "./gallery/public"
	PreviewURL  = "/preview/"

	// Upload settings
	MaxUploadSize = int64(8 << 20)

	// Git settings
	GitUserEmail = "bot@demo-gallery.local"
	GitUserName  = "Demo Gallery Bot"
	GitBranch    = "main"
	GitRemote    = "origin"
)

var OauthConf *oauth2.Config

func Init() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found or error loading it.")
	}

	// Helper to get env with default
	getEnv := func(key, fallback string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return fallback
	}

	appURL := getEnv("APP_URL", "http://localhost:8080")
	redirectURL := getEnv("GITHUB_REDIRECT_URL", appURL+"/auth/callback")

	// Load Configs
	GalleryPath = getEnv("GALLERY_PATH", "./gallery")
	PublicPath = getEnv("PUBLIC_PATH", GalleryPath+"/public")

	GitUserEmail = getEnv("GIT_USER_EMAIL", "bot@demo-gallery.local")
	GitUserName = getEnv("GIT_USER_NAME", "Demo Gallery Bot")
	GitBranch = getEnv("GIT_BRANCH", "main")
	GitRemote = getEnv("GIT_REMOTE", "origin")

	if ms := os.Getenv("MAX_UPLOAD_SIZE"); ms != "" {
		if val, err := strconv.ParseInt(ms, 10, 64); err == nil {
			MaxUploadSize = val
		}
	}

	OauthConf = &oauth2.Config{
		ClientID:     os.Getenv("GITHUB_CLIENT_ID"),
		ClientSecret: os.Getenv("GITHUB_CLIENT_SECRET"),
		Scopes:       []string{"repo"},
		Endpoint:     github.Endpoint,
		RedirectURL:  redirectURL,
	}
}

func GetAppURL() string {
	appURL := os.Getenv("APP_URL")
	if appURL == "" {
		appURL = "http://localhost:8080"
	}
	return appURL
}
