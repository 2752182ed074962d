package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Server ServerConfig
	OCR    OCRConfig
	Vocab  VocabConfig
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	Addr           string
	UploadDir      string
	MaxUploadBytes int64
	StrictResponse bool
}

// OCRConfig holds text-acquisition configuration
type OCRConfig struct {
	Pdftotext     string
	Pdftoppm      string
	Tesseract     string
	TesseractLang string
	DPI           int
	MaxPages      int
	Timeout       time.Duration
}

// VocabConfig holds skill-vocabulary configuration
type VocabConfig struct {
	Path   string
	Column string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Addr:           getEnv("ADDR", ":8080"),
			UploadDir:      getEnv("UPLOAD_DIR", os.TempDir()),
			MaxUploadBytes: int64(getEnvAsInt("MAX_UPLOAD_BYTES", 16<<20)),
			StrictResponse: getEnvAsBool("STRICT_RESPONSE", false),
		},
		OCR: OCRConfig{
			Pdftotext:     getEnv("PDFTOTEXT", "pdftotext"),
			Pdftoppm:      getEnv("PDFTOPPM", "pdftoppm"),
			Tesseract:     getEnv("TESSERACT", "tesseract"),
			TesseractLang: getEnv("TESSERACT_LANG", "eng"),
			DPI:           getEnvAsInt("OCR_DPI", 400),
			MaxPages:      getEnvAsInt("OCR_MAX_PAGES", 0),
			Timeout:       getEnvAsDuration("OCR_TIMEOUT", 2*time.Minute),
		},
		Vocab: VocabConfig{
			Path:   getEnv("SKILLS_PATH", "data/tech-skills.csv"),
			Column: getEnv("SKILLS_COLUMN", "skills"),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return NewAppError("CONFIG_ERROR", "ADDR is required", ErrInvalidInput)
	}
	if c.Vocab.Path == "" {
		return NewAppError("CONFIG_ERROR", "SKILLS_PATH is required", ErrInvalidInput)
	}
	if c.OCR.DPI <= 0 {
		return NewAppError("CONFIG_ERROR", "OCR_DPI must be positive", ErrInvalidInput)
	}
	return nil
}
