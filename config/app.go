package config

import (
	"os"
	"sync"
)

// AppConfig holds global application configuration
var AppConfig *Config
var once sync.Once

type Config struct {
	AppName  string
	Port     string
	Env      string
	Debug    bool
	Currency string
	MediaDir string
	MediaUrl string
}

// LoadAppConfig initializes the global AppConfig variable
func LoadAppConfig() {
	once.Do(func() {
		mediaDir := os.Getenv("MEDIA_DIR")
		if mediaDir == "" {
			mediaDir = "var/media/catalog"
		}
		currency := os.Getenv("CURRENCY")
		if currency == "" {
			currency = "EUR"
		}
		AppConfig = &Config{
			AppName:  os.Getenv("APP_NAME"),
			Port:     os.Getenv("PORT"),
			Env:      os.Getenv("APP_ENV"),
			Debug:    os.Getenv("DEBUG") == "true",
			Currency: currency,
			MediaDir: mediaDir,
			MediaUrl: "/media/catalog/",
		}
	})
}
