package main

import (
	"fmt"
	"os/exec"

	"net/http"
	_ "net/http/pprof" // profiling

	"vidfetch/config"
	"vidfetch/logger"
	"vidfetch/server"
	"vidfetch/util"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	logger.Init()
	defer logger.Sync()

	// load environment variables and configurations
	godotenv.Load()
	config.Load()

	logger.SetLevel(config.Env.LogLevel)
	logger.SetLogFile(config.Env.LogFile)

	// check for collaborator binaries
	if _, err := exec.LookPath(config.Env.FFmpegPath); err != nil {
		zap.S().Fatal("ffmpeg not found in PATH")
	}
	if _, err := exec.LookPath(config.Env.YTDLPPath); err != nil {
		zap.S().Fatal("yt-dlp not found in PATH")
	}

	if err := util.EnsureDownloadsDir(); err != nil {
		zap.S().Fatalf("failed to create downloads directory: %v", err)
	}

	// setup pprof profiler
	if config.Env.ProfilerPort > 0 {
		go func() {
			zap.S().Infof("starting profiler on port %d", config.Env.ProfilerPort)
			if err := http.ListenAndServe(fmt.Sprintf(":%d", config.Env.ProfilerPort), nil); err != nil {
				zap.S().Fatalf("failed to start profiler: %v", err)
			}
		}()
	}

	// cleanup downloads directory
	util.StartDownloadsCleanup()

	if err := server.Start(); err != nil {
		zap.S().Fatalf("server stopped: %v", err)
	}
}
