package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvProduction = "production"

	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

// Local frontend origins that are always allowed.
var devOrigins = []string{
	"http://localhost:3000",
	"http://127.0.0.1:3000",
}

type Config struct {
	App struct {
		Port string `mapstructure:"port"`
		Env  string `mapstructure:"env"`
	} `mapstructure:"app"`
	Store struct {
		Driver  string `mapstructure:"driver"`
		URL     string `mapstructure:"url"`
		Key     string `mapstructure:"key"`
		AnonKey string `mapstructure:"anon_key"`
	} `mapstructure:"store"`
	CORS struct {
		VercelURL string `mapstructure:"vercel_url"`
		Origins   string `mapstructure:"origins"`
	} `mapstructure:"cors"`
	Kafka struct {
		Brokers []string `mapstructure:"brokers"`
		Topic   string   `mapstructure:"topic"`
		GroupID string   `mapstructure:"group_id"`
	} `mapstructure:"kafka"`
	Worker struct {
		RevalidateURL string `mapstructure:"revalidate_url"`
	} `mapstructure:"worker"`
	Cloudinary struct {
		CloudName string `mapstructure:"cloud_name"`
		ApiKey    string `mapstructure:"api_key"`
		ApiSecret string `mapstructure:"api_secret"`
	} `mapstructure:"cloudinary"`
	Jaeger struct {
		OTLPEndpoint string `mapstructure:"otlp_endpoint"`
	} `mapstructure:"jaeger"`
}

// LoadConfig reads .env, an optional config.yaml from paths (default "."),
// and finally the environment, which wins over both.
func LoadConfig(paths ...string) (cfg Config, err error) {
	if len(paths) == 0 {
		paths = []string{"."}
	}

	if err = godotenv.Load(); err != nil {
		log.Println("warning: .env file not found, use default.")
	}

	v := viper.New()
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if err = v.ReadInConfig(); err != nil {
		log.Printf("note: config.yaml not found, read .env only. Error: %v", err)
	}

	v.SetDefault("app.port", "8000")
	v.SetDefault("app.env", "development")
	v.SetDefault("store.driver", StoreDriverPostgres)
	v.SetDefault("kafka.topic", "portfolio.content.events")
	v.SetDefault("kafka.group_id", "portfolio-revalidator")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.BindEnv("app.port", "APP_PORT")
	v.BindEnv("app.env", "APP_ENV")
	v.BindEnv("store.driver", "STORE_DRIVER")
	v.BindEnv("store.url", "SUPABASE_DB_URL")
	v.BindEnv("store.key", "SUPABASE_KEY")
	v.BindEnv("store.anon_key", "SUPABASE_ANON_KEY")
	v.BindEnv("cors.vercel_url", "VERCEL_URL")
	v.BindEnv("cors.origins", "CORS_ORIGINS")
	v.BindEnv("kafka.brokers", "KAFKA_BROKERS")
	v.BindEnv("kafka.topic", "KAFKA_TOPIC")
	v.BindEnv("kafka.group_id", "KAFKA_GROUP_ID")
	v.BindEnv("worker.revalidate_url", "REVALIDATE_URL")
	v.BindEnv("jaeger.otlp_endpoint", "JAEGER_OTLP_ENDPOINT")

	v.BindEnv("cloudinary.cloud_name", "CLOUDINARY_CLOUD_NAME")
	v.BindEnv("cloudinary.api_key", "CLOUDINARY_API_KEY")
	v.BindEnv("cloudinary.api_secret", "CLOUDINARY_API_SECRET")

	if err = v.Unmarshal(&cfg); err != nil {
		return cfg, err
	}
	cfg.Kafka.Brokers = splitList(strings.Join(cfg.Kafka.Brokers, ","))
	return cfg, nil
}

func (c Config) IsProduction() bool {
	return c.App.Env == EnvProduction
}

// StoreKey returns the first access key that is set.
func (c Config) StoreKey() string {
	if c.Store.Key != "" {
		return c.Store.Key
	}
	return c.Store.AnonKey
}

func (c Config) HasStoreCredentials() bool {
	return c.Store.URL != "" && c.StoreKey() != ""
}

func (c Config) CloudinaryEnabled() bool {
	return c.Cloudinary.CloudName != ""
}

// AllowedOrigins is the explicit CORS allow list; it never contains "*".
func (c Config) AllowedOrigins() []string {
	origins := append([]string{}, devOrigins...)
	if c.CORS.VercelURL != "" {
		origins = append(origins,
			"https://"+c.CORS.VercelURL,
			"https://www."+c.CORS.VercelURL,
		)
	}
	return append(origins, splitList(c.CORS.Origins)...)
}

func splitList(raw string) []string {
	out := make([]string, 0)
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
