package config

import (
	"os"
	"strconv"
	"time"

	"vidfetch/models"

	"go.uber.org/zap"
)

var Env = GetDefaultConfig()

func Load() {
	if value := os.Getenv("PORT"); value != "" {
		if port, err := strconv.Atoi(value); err == nil {
			Env.Port = port
		} else {
			zap.S().Fatal("PORT env is not a valid integer")
		}
	} else {
		zap.S().Warnf("PORT is not set, using default %d", Env.Port)
	}
	if value := os.Getenv("DOWNLOADS_DIR"); value != "" {
		Env.DownloadsDirectory = value
	} else {
		zap.S().Warnf("DOWNLOADS_DIR is not set, using default %s", Env.DownloadsDirectory)
	}
	if value := os.Getenv("CLEAN_LOGO"); value != "" {
		if cleanLogo, err := strconv.ParseBool(value); err == nil {
			Env.CleanLogo = cleanLogo
		} else {
			zap.S().Fatal("CLEAN_LOGO env is not a valid boolean")
		}
	}
	if value := os.Getenv("YTDLP_PATH"); value != "" {
		Env.YTDLPPath = value
	}
	if value := os.Getenv("FFMPEG_PATH"); value != "" {
		Env.FFmpegPath = value
	}
	if value := os.Getenv("HTTP_PROXY"); value != "" {
		Env.HTTPProxy = value
	}
	if value := os.Getenv("HTTPS_PROXY"); value != "" {
		Env.HTTPSProxy = value
	}
	if value := os.Getenv("NO_PROXY"); value != "" {
		Env.NoProxy = value
	}
	if value := os.Getenv("CLEANUP_MAX_AGE"); value != "" {
		if maxAge, err := time.ParseDuration(value); err == nil {
			Env.CleanupMaxAge = maxAge
		} else {
			zap.S().Fatalf("CLEANUP_MAX_AGE env is not a valid duration: %v", err)
		}
	}
	if value := os.Getenv("CLEANUP_INTERVAL"); value != "" {
		if interval, err := time.ParseDuration(value); err == nil {
			Env.CleanupInterval = interval
		} else {
			zap.S().Fatalf("CLEANUP_INTERVAL env is not a valid duration: %v", err)
		}
	}
	if value := os.Getenv("PROFILER_PORT"); value != "" {
		if port, err := strconv.Atoi(value); err == nil {
			Env.ProfilerPort = port
		} else {
			zap.S().Fatal("PROFILER_PORT env is not a valid integer")
		}
	}
	if value := os.Getenv("LOG_LEVEL"); value != "" {
		Env.LogLevel = value
	}
	if value := os.Getenv("LOG_FILE"); value != "" {
		if logFile, err := strconv.ParseBool(value); err == nil {
			Env.LogFile = logFile
		} else {
			zap.S().Fatal("LOG_FILE env is not a valid boolean")
		}
	}
}

func GetDefaultConfig() *models.EnvConfig {
	return &models.EnvConfig{
		Port: 8080,

		DownloadsDirectory: "downloads",

		YTDLPPath:  "yt-dlp",
		FFmpegPath: "ffmpeg",

		CleanupMaxAge:   time.Hour,
		CleanupInterval: time.Hour,

		LogLevel: "info",
	}
}
