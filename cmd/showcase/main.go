package main

import (
	"flag"
	"log"
	"runtime"

	"github.com/ragbendra/AwwwardsREMS-sub000/internal/logger"
	"github.com/ragbendra/AwwwardsREMS-sub000/pkg/config"
	"github.com/ragbendra/AwwwardsREMS-sub000/pkg/engine"
)

func init() {
	// GLFW requires the program to be running on the main thread
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	flag.Parse()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		// LoadConfig falls back to defaults; a missing file is routine.
		log.Printf("using default configuration: %v", err)
	}

	appLog := logger.NewLogger(cfg.LogLevel)
	appLog.Infof("Starting %s...", cfg.Graphics.Title)

	showcase, err := engine.NewEngine(cfg, appLog)
	if err != nil {
		appLog.Fatalf("Failed to initialize engine: %v", err)
	}

	showcase.Run()
}
