package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/viper"
)

type (
	AppConfig struct {
		Name        string `mapstructure:"name"`
		Version     string `mapstructure:"version"`
		Port        int    `mapstructure:"port"`
		Environment string `mapstructure:"environment"`
		PathPrefix  string `mapstructure:"path_prefix"` // Optional, defaults to /api
		Timeout     int    `mapstructure:"timeout"`     // Request timeout in seconds
	}

	LoggerConfig struct {
		Level       string `mapstructure:"level"`
		Format      string `mapstructure:"format"`
		FilePath    string `mapstructure:"filepath"`
		MaxSize     int    `mapstructure:"max_size"`
		MaxAge      int    `mapstructure:"max_age"`
		MaxBackups  int    `mapstructure:"max_backups"`
		Compress    bool   `mapstructure:"compress"`
		LocalTime   bool   `mapstructure:"localTime"`
		Environment string
	}

	CORSConfig struct {
		Enabled          bool     `mapstructure:"enabled"`
		AllowedOrigins   []string `mapstructure:"allowed_origins"`
		AllowedMethods   []string `mapstructure:"allowed_methods"`
		AllowedHeaders   []string `mapstructure:"allowed_headers"`
		ExposedHeaders   []string `mapstructure:"exposed_headers"`
		AllowCredentials bool     `mapstructure:"allow_credentials"`
		MaxAge           int      `mapstructure:"max_age"`
	}

	MetricsConfig struct {
		Enabled bool   `mapstructure:"enabled"`
		Path    string `mapstructure:"path"`
	}

	JWTConfig struct {
		Secret        string `mapstructure:"secret"`
		Issuer        string `mapstructure:"issuer"`
		Expiry        int    `mapstructure:"expiry"` // seconds
		CacheCapacity int    `mapstructure:"cache_capacity"`
	}

	// SanitizerConfig holds the maximum lengths, in characters, applied to
	// untrusted text before it is returned to clients.
	SanitizerConfig struct {
		NameMaxLength  int `mapstructure:"name_max_length"`
		EmailMaxLength int `mapstructure:"email_max_length"`
		ValueMaxLength int `mapstructure:"value_max_length"`
	}
)

type Env struct {
	AppConfig       AppConfig       `mapstructure:"app"`
	LoggerConfig    LoggerConfig    `mapstructure:"logging"`
	CORSConfig      CORSConfig      `mapstructure:"cors"`
	MetricsConfig   MetricsConfig   `mapstructure:"metrics"`
	JWTConfig       JWTConfig       `mapstructure:"jwt"`
	SanitizerConfig SanitizerConfig `mapstructure:"sanitizer"`
}

var env *Env

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "profile-guard")
	v.SetDefault("app.version", "1.0.0")
	v.SetDefault("app.port", 8080)
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.path_prefix", "/api")
	v.SetDefault("app.timeout", 5)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("logging.filepath", "./logs/app.log")
	v.SetDefault("logging.max_size", 100)
	v.SetDefault("logging.max_age", 7)
	v.SetDefault("logging.max_backups", 3)

	v.SetDefault("metrics.path", "/metrics")

	v.SetDefault("jwt.issuer", "profile-guard")
	v.SetDefault("jwt.expiry", 86400)
	v.SetDefault("jwt.cache_capacity", 1024)

	v.SetDefault("sanitizer.name_max_length", 100)
	v.SetDefault("sanitizer.email_max_length", 254)
	v.SetDefault("sanitizer.value_max_length", 1000)
}

// Load reads config.yaml from the first matching path and overlays ENV_*
// environment variables on top of it.
func Load(paths ...string) (*Env, error) {
	v := viper.New()
	v.SetConfigName("config") // Config file name without extension
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}

	/*
	   AutomaticEnv checks for an environment variable any time a Get request is made:
	   the key uppercased, prefixed with ENV_ and with "." replaced by "_"
	   (e.g. jwt.secret -> ENV_JWT_SECRET).
	*/
	v.AutomaticEnv()
	v.SetEnvPrefix("env") // will be uppercased automatically
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	// AutomaticEnv only applies to keys viper already knows about.
	if err := v.BindEnv("jwt.secret"); err != nil {
		return nil, fmt.Errorf("bind jwt.secret: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var e Env
	if err := v.Unmarshal(&e); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	e.LoggerConfig.Environment = e.AppConfig.Environment
	if e.AppConfig.Environment == "production" {
		e.LoggerConfig.Level = "info" // Default to info level in production
	}

	return &e, nil
}

func GetEnv() *Env {
	if env != nil {
		return env
	}

	e, err := Load("./config")
	if err != nil {
		log.Fatalf("Unable to load configuration, %v", err)
	}
	env = e

	printStartupConfig(env)

	return env
}

func printStartupConfig(env *Env) {
	line := strings.Repeat("=", 40)
	fmt.Println(line)
	fmt.Println("🚀 Application Configuration")
	fmt.Println(line)

	fmt.Printf("%-15s: %s\n", "App Name", env.AppConfig.Name)
	fmt.Printf("%-15s: %s\n", "Version", env.AppConfig.Version)
	fmt.Printf("%-15s: %s\n", "Environment", env.AppConfig.Environment)
	fmt.Printf("%-15s: %d\n", "Port", env.AppConfig.Port)
	fmt.Printf("%-15s: %s\n", "Log Level", env.LoggerConfig.Level)
	fmt.Printf("%-15s: %t\n", "Metrics", env.MetricsConfig.Enabled)

	fmt.Println(line)
}
