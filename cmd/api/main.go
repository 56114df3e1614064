package main

import (
	"expvar"
	"fmt"
	"log"
	"net/http"
	"os"
	"runtime"
	"strconv"
	"time"

	"sportdesk/internal/backend"
	"sportdesk/internal/export"
	"sportdesk/internal/ratelimiter"

	"github.com/joho/godotenv"
	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoadRateLimiterConfig retrieves rate limiter settings from environment variables
func LoadRateLimiterConfig() ratelimiter.Config {
	// Default values
	defaultRequests := 200
	defaultEnabled := false

	// Retrieve request count with error handling
	requestsPerTimeFrame := defaultRequests
	if val, exists := os.LookupEnv("RATELIMITER_REQUESTS_COUNT"); exists {
		if parsedVal, err := strconv.Atoi(val); err == nil {
			requestsPerTimeFrame = parsedVal
		} else {
			fmt.Println("Invalid RATELIMITER_REQUESTS_COUNT, defaulting to", defaultRequests)
		}
	}

	// Retrieve enabled flag with error handling
	enabled := defaultEnabled
	if val, exists := os.LookupEnv("RATE_LIMITER_ENABLED"); exists {
		if parsedVal, err := strconv.ParseBool(val); err == nil {
			enabled = parsedVal
		} else {
			fmt.Println("Invalid RATE_LIMITER_ENABLED, defaulting to", defaultEnabled)
		}
	}

	return ratelimiter.Config{
		RequestsPerTimeFrame: requestsPerTimeFrame,
		TimeFrame:            5 * time.Second,
		Enabled:              enabled,
	}
}

// LoadExportConfig reads the workbook locale, currency symbol and timezone.
func LoadExportConfig() exportConfig {
	loc := time.Local
	if name := os.Getenv("EXPORT_TIMEZONE"); name != "" {
		if l, err := time.LoadLocation(name); err == nil {
			loc = l
		} else {
			fmt.Println("Invalid EXPORT_TIMEZONE, defaulting to local time")
		}
	}
	return exportConfig{
		money:    export.NewMoney(os.Getenv("EXPORT_LOCALE"), os.Getenv("EXPORT_CURRENCY_SYMBOL")),
		location: loc,
	}
}

// NewLogger creates a new zap logger with color. When logFile is set, a JSON
// copy of every entry also goes to a rotating file.
func NewLogger(logFile string) (*zap.SugaredLogger, error) {
	// Configure the encoder to be a console encoder with color
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder // This adds color to log levels (INFO, WARN, ERROR)

	consoleEncoder := zapcore.NewConsoleEncoder(encoderCfg)

	level := zapcore.InfoLevel

	core := zapcore.NewCore(consoleEncoder, zapcore.NewMultiWriteSyncer(zapcore.AddSync(os.Stdout)), level)

	if logFile != "" {
		fileCfg := zap.NewProductionEncoderConfig()
		fileCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		rotator := &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    50, // megabytes
			MaxBackups: 5,
			MaxAge:     28, // days
			Compress:   true,
		}
		fileCore := zapcore.NewCore(zapcore.NewJSONEncoder(fileCfg), zapcore.AddSync(rotator), level)
		core = zapcore.NewTee(core, fileCore)
	}

	logger := zap.New(core)

	return logger.Sugar(), nil
}

var version = "1.0.0"

//	@title			Sportdesk Admin API
//	@description	Admin dashboard API for court bookings and equipment rentals.

//	@BasePath					/v1
//	@securityDefinitions.apikey	ApiKeyAuth
//	@in							header
//	@name						Authorization
//	@description

func main() {
	if err := godotenv.Load(); err != nil && os.Getenv("ENV") == "production" {
		log.Fatalf("Error loading .env file: %v", err)
	}

	cfg := config{
		addr:        os.Getenv("ADDR"),
		env:         os.Getenv("ENV"),
		backendURL:  os.Getenv("BACKEND_URL"),
		frontendURL: os.Getenv("FRONTEND_URL"),
		logFile:     os.Getenv("LOG_FILE"),
		auth: authConfig{
			basic: basicConfig{
				user:     os.Getenv("AUTH_BASIC_USER"),
				passHash: os.Getenv("AUTH_BASIC_PASS_HASH"),
			},
		},
		rateLimiter: LoadRateLimiterConfig(),
		export:      LoadExportConfig(),
	}
	if cfg.addr == "" {
		cfg.addr = ":8080"
	}

	// Logger
	logger, err := NewLogger(cfg.logFile)
	if err != nil {
		fmt.Println("Error creating logger:", err)
		return
	}
	defer logger.Sync()

	if cfg.backendURL == "" {
		logger.Fatal("BACKEND_URL is required")
	}

	// Platform API client; handler contexts bound each call.
	client := backend.NewClient(cfg.backendURL, &http.Client{}, logger)

	// Rate limiter
	rateLimiter := ratelimiter.NewFixedWindowLimiter(
		cfg.rateLimiter.RequestsPerTimeFrame,
		cfg.rateLimiter.TimeFrame,
	)

	app := &application{
		config:      cfg,
		logger:      logger,
		backend:     client,
		rateLimiter: rateLimiter,
		now:         time.Now,
	}

	//Metrics collected http://localhost:8080/v1/debug/vars
	expvar.NewString("version").Set(version)
	expvar.Publish("goroutines", expvar.Func(func() any {
		return runtime.NumGoroutine()
	}))

	mux := app.mount()

	logger.Fatal(app.run(mux))
}
