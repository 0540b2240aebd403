package core

import (
	"log"
	"net/mail"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type (
	Config struct {
		Debug    bool
		TestMode bool
		Env      string // DEV (default), TEST, QA, PROD
		AppName  string

		SecretKey             []byte
		FollowUpThresholdDays int

		DefaultFromName string
		DefaultFromAddr string
		SendgridApiKey  string
		RollbarToken    string
		FrontendBaseURL string

		Server struct {
			Host                      string
			Port                      string
			JWTExpirationDelta        time.Duration
			JWTRefreshExpirationDelta time.Duration
		}
	}
)

var Conf *Config

func (c *Config) ServerAddress() string {
	return c.Server.Host + ":" + c.Server.Port
}

func (c *Config) DefaultFromEmail() mail.Address {
	return mail.Address{Name: c.DefaultFromName, Address: c.DefaultFromAddr}
}

func init() {
	v := viper.New()

	// defaults
	v.SetTypeByDefaultValue(true)
	v.SetDefault("debug", true)
	v.SetDefault("appName", "CellHub")
	v.SetDefault("secretKey", "x2m$9dj)wq&cell!hub+(d3v^only#secret*key@change-me")
	v.SetDefault("followUpThresholdDays", 14)
	v.SetDefault("defaultFromName", "CellHub")
	v.SetDefault("defaultFromAddr", "noreply@localhost")
	v.SetDefault("frontendBaseURL", "http://localhost:3000")
	v.SetDefault("serverHost", "")
	v.SetDefault("serverPort", "8000")
	v.SetDefault("jwtExpirationDelta", 7*24*time.Hour)
	v.SetDefault("jwtRefreshExpirationDelta", 4*time.Hour)

	env := os.Getenv("ENV")
	if env == "" {
		env = "DEV"
	}
	v.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join("config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	v.AutomaticEnv()

	Conf = &Config{
		Debug:                 v.GetBool("debug"),
		TestMode:              env == "TEST",
		Env:                   env,
		AppName:               v.GetString("appName"),
		SecretKey:             []byte(v.GetString("secretKey")),
		FollowUpThresholdDays: v.GetInt("followUpThresholdDays"),
		DefaultFromName:       v.GetString("defaultFromName"),
		DefaultFromAddr:       v.GetString("defaultFromAddr"),
		SendgridApiKey:        v.GetString("sendgridApiKey"),
		RollbarToken:          v.GetString("rollbarToken"),
		FrontendBaseURL:       v.GetString("frontendBaseURL"),
	}
	Conf.Server.Host = v.GetString("serverHost")
	Conf.Server.Port = v.GetString("serverPort")
	Conf.Server.JWTExpirationDelta = v.GetDuration("jwtExpirationDelta")
	Conf.Server.JWTRefreshExpirationDelta = v.GetDuration("jwtRefreshExpirationDelta")
}
