package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/TWRT/taskdeck/internal/cli"
	"github.com/TWRT/taskdeck/internal/client/backend"
	"github.com/TWRT/taskdeck/internal/client/objectstore"
	"github.com/TWRT/taskdeck/internal/repository"
	"github.com/TWRT/taskdeck/internal/service"
	"github.com/joho/godotenv"
)

func dbPath() (string, error) {
	if path := os.Getenv("TASKDECK_DB_PATH"); path != "" {
		return path, nil
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}

	dir := filepath.Join(configDir, "taskdeck")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("create config dir: %w", err)
	}
	return filepath.Join(dir, "taskdeck.db"), nil
}

func main() {
	godotenv.Load()

	apiURL := os.Getenv("TASKDECK_API_URL")
	if apiURL == "" {
		log.Fatal("TASKDECK_API_URL is required")
	}
	token := os.Getenv("TASKDECK_TOKEN")
	wsURL := os.Getenv("TASKDECK_WS_URL")

	path, err := dbPath()
	if err != nil {
		log.Fatal(err)
	}

	db, err := repository.InitDB(path)
	if err != nil {
		log.Fatal("Error initializing local store:", err)
	}
	defer db.Close()

	sessionRepo := repository.NewSessionRepository(db)
	uploadRepo := repository.NewUploadRepository(db)

	apiClient := backend.NewClient(apiURL, token, sessionRepo)
	storeClient := objectstore.NewClient()

	app := &cli.App{
		Auth:        apiClient,
		Tasks:       service.NewTaskService(apiClient, apiClient),
		Attachments: service.NewAttachmentService(apiClient, storeClient, uploadRepo),
		Sessions:    sessionRepo,
		Token:       token,
		WSURL:       wsURL,
		In:          os.Stdin,
		Out:         os.Stdout,
	}

	if err := cli.Run(app, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
