package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Logger    LoggerConfig
	ClientURL string
	Groq      GroqConfig
	Gemini    GeminiConfig
}

type ServerConfig struct {
	Port         int
	PortProbes   int // how many successive ports to try when Port is taken
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type LoggerConfig struct {
	Env   string
	Level string
}

// GroqConfig configures the text-completion provider. Groq exposes an
// OpenAI-compatible API, so BaseURL points at its v1 endpoint.
type GroqConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float64
	MaxTokens   int
	Timeout     time.Duration
}

type GeminiConfig struct {
	APIKey      string
	VisionModel string
	Timeout     time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	if os.Getenv("ENV") == "test" {
		viper.AddConfigPath("../../configs")
		viper.AddConfigPath("../../")
	} else {
		viper.AddConfigPath(".")
		viper.AddConfigPath("./configs")
	}

	viper.SetDefault("server.port", 5000)
	viper.SetDefault("server.port_probes", 10)
	viper.SetDefault("server.read_timeout", 20)
	viper.SetDefault("server.write_timeout", 90)
	viper.SetDefault("server.idle_timeout", 20)
	viper.SetDefault("client_url", "http://localhost:5173")
	viper.SetDefault("logger.env", "development")
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("groq.base_url", "https://api.groq.com/openai/v1")
	viper.SetDefault("groq.model", "llama-3.3-70b-versatile")
	viper.SetDefault("groq.temperature", 0.7)
	viper.SetDefault("groq.max_tokens", 2048)
	viper.SetDefault("groq.timeout", 30)
	viper.SetDefault("gemini.vision_model", "gemini-2.0-flash")
	viper.SetDefault("gemini.timeout", 60)

	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		// The config file is optional: every key has a default or an env
		// override. Only a malformed file is fatal.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if configFile := viper.ConfigFileUsed(); configFile != "" {
		absPath, _ := filepath.Abs(configFile)
		fmt.Printf("Using config file: %s\n", absPath)
	}

	config := &Config{
		Server: ServerConfig{
			Port:         viper.GetInt("server.port"),
			PortProbes:   viper.GetInt("server.port_probes"),
			ReadTimeout:  viper.GetDuration("server.read_timeout") * time.Second,
			WriteTimeout: viper.GetDuration("server.write_timeout") * time.Second,
			IdleTimeout:  viper.GetDuration("server.idle_timeout") * time.Second,
		},
		Logger: LoggerConfig{
			Env:   viper.GetString("logger.env"),
			Level: viper.GetString("logger.level"),
		},
		ClientURL: viper.GetString("client_url"),
		Groq: GroqConfig{
			APIKey:      viper.GetString("groq.api_key"),
			BaseURL:     viper.GetString("groq.base_url"),
			Model:       viper.GetString("groq.model"),
			Temperature: viper.GetFloat64("groq.temperature"),
			MaxTokens:   viper.GetInt("groq.max_tokens"),
			Timeout:     viper.GetDuration("groq.timeout") * time.Second,
		},
		Gemini: GeminiConfig{
			APIKey:      viper.GetString("gemini.api_key"),
			VisionModel: viper.GetString("gemini.vision_model"),
			Timeout:     viper.GetDuration("gemini.timeout") * time.Second,
		},
	}

	// Override with environment variables if set
	if port := os.Getenv("SERVER_PORT"); port != "" {
		config.Server.Port = viper.GetInt("SERVER_PORT")
	}
	if clientURL := os.Getenv("CLIENT_URL"); clientURL != "" {
		config.ClientURL = clientURL
	}
	if env := os.Getenv("ENV"); env != "" {
		config.Logger.Env = env
	}
	if groqKey := os.Getenv("GROQ_API_KEY"); groqKey != "" {
		config.Groq.APIKey = groqKey
	}
	if model := os.Getenv("LLM_MODEL"); model != "" {
		config.Groq.Model = model
	}
	if geminiKey := os.Getenv("GEMINI_API_KEY"); geminiKey != "" {
		config.Gemini.APIKey = geminiKey
	}
	if visionModel := os.Getenv("GEMINI_VISION_MODEL"); visionModel != "" {
		config.Gemini.VisionModel = visionModel
	}

	return config, nil
}
