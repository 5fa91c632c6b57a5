package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port           string
	BackendURL     string
	SessionDB      string
	LogFile        string
	SearchDebounce time.Duration
}

func Load() Config {
	// Optional .env in the working directory; env vars win.
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	backend := os.Getenv("BACKEND_URL")
	if backend == "" {
		backend = "http://localhost:9090"
	}
	sessDB := os.Getenv("SESSION_DB")
	if sessDB == "" {
		sessDB = "zahab-sessions.db" // sqlite file in project root
	}
	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logFile = "./zahab.log"
	}
	debounce := 300 * time.Millisecond
	if ms := os.Getenv("SEARCH_DEBOUNCE_MS"); ms != "" {
		if n, err := strconv.Atoi(ms); err == nil && n > 0 {
			debounce = time.Duration(n) * time.Millisecond
		}
	}

	cfg := Config{Port: port, BackendURL: backend, SessionDB: sessDB, LogFile: logFile, SearchDebounce: debounce}
	log.Printf("[config] PORT=%s BACKEND_URL=%s SESSION_DB=%s LOG_FILE=%s DEBOUNCE=%s",
		cfg.Port, cfg.BackendURL, cfg.SessionDB, cfg.LogFile, cfg.SearchDebounce)
	return cfg
}
