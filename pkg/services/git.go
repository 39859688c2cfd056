package services

import (
	"fmt"
	"net/url"
	"os/exec"
	"strings"
	"time"

	"demo-gallery/pkg/config"
)

func ExecuteGitWithToken(dir, token string, args ...string) (error, string) {
	cmdGetUrl := exec.Command("git", "remote", "get-url", config.GitRemote)
	cmdGetUrl.Dir = dir
	outUrl, err := cmdGetUrl.Output()
	if err != nil {
		return err, "Failed to get remote url"
	}
	remoteUrl := strings.TrimSpace(string(outUrl))
	u, err := url.Parse(remoteUrl)
	if err != nil {
		return err, "Invalid remote url"
	}
	u.User = url.UserPassword("oauth2", token)
	authenticatedUrl := u.String()

	newArgs := make([]string, len(args))
	copy(newArgs, args)
	for i, v := range newArgs {
		if v == config.GitRemote {
			newArgs[i] = authenticatedUrl
		}
	}
	cmd := exec.Command("git", newArgs...)
	cmd.Dir = dir
	output, err := cmd.CombinedOutput()
	safeLog := strings.ReplaceAll(string(output), token, "***")
	safeLog = strings.ReplaceAll(safeLog, authenticatedUrl, remoteUrl)
	return err, safeLog
}

func SyncGallery(token string) (error, string) {
	err, log := ExecuteGitWithToken(config.GalleryPath, token, "pull", config.GitRemote, config.GitBranch)
	if err == nil {
		InvalidateGallery()
	}
	return err, log
}

func PublishGallery(token string) (error, string) {
	addCmd := exec.Command("git", "add", ".")
	addCmd.Dir = config.GalleryPath
	if out, err := addCmd.CombinedOutput(); err != nil {
		return err, string(out)
	}

	msg := fmt.Sprintf("Update demos: %s", time.Now().Format("2006-01-02 15:04:05"))
	commitCmd := exec.Command("git",
		"-c", "user.name="+config.GitUserName,
		"-c", "user.email="+config.GitUserEmail,
		"commit", "-m", msg,
	)
	commitCmd.Dir = config.GalleryPath
	commitCmd.Run()

	return ExecuteGitWithToken(config.GalleryPath, token, "push", config.GitRemote, config.GitBranch)
}
