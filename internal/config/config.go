package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App struct {
		Name    string `mapstructure:"name"`
		Port    string `mapstructure:"port"`
		Env     string `mapstructure:"env"`
		SiteURL string `mapstructure:"site_url"`
	} `mapstructure:"app"`
	DB struct {
		DSN string `mapstructure:"dsn"`
	} `mapstructure:"db"`
	Redis struct {
		Addr     string `mapstructure:"addr"`
		Password string `mapstructure:"password"`
		DB       int    `mapstructure:"db"`
	} `mapstructure:"redis"`
	Kafka struct {
		Brokers []string `mapstructure:"brokers"`
		GroupID string   `mapstructure:"group_id"`
	} `mapstructure:"kafka"`
	Auth struct {
		JWTSecret     string        `mapstructure:"jwt_secret"`
		TokenLifespan time.Duration `mapstructure:"token_lifespan"`
	} `mapstructure:"auth"`
	Cloudinary struct {
		CloudName string `mapstructure:"cloud_name"`
		ApiKey    string `mapstructure:"api_key"`
		ApiSecret string `mapstructure:"api_secret"`
		Folder    string `mapstructure:"folder"`
	} `mapstructure:"cloudinary"`
	SMTP struct {
		Host     string `mapstructure:"host"`
		Port     int    `mapstructure:"port"`
		Username string `mapstructure:"username"`
		Password string `mapstructure:"password"`
		From     string `mapstructure:"from"`
		NotifyTo string `mapstructure:"notify_to"`
	} `mapstructure:"smtp"`
	HTTP struct {
		TrustedProxies []string `mapstructure:"trusted_proxies"`
	} `mapstructure:"http"`
	CORS struct {
		AllowedOrigins []string `mapstructure:"allowed_origins"`
	} `mapstructure:"cors"`
	Tracing struct {
		OTLPEndpoint string `mapstructure:"otlp_endpoint"`
	} `mapstructure:"tracing"`
	Cache struct {
		SectionTTL time.Duration `mapstructure:"section_ttl"`
	} `mapstructure:"cache"`
	RateLimit struct {
		LoginPerMinute int `mapstructure:"login_per_minute"`
		ContactPerHour int `mapstructure:"contact_per_hour"`
	} `mapstructure:"rate_limit"`
}

var envBindings = map[string]string{
	"app.name":                    "APP_NAME",
	"app.port":                    "APP_PORT",
	"app.env":                     "APP_ENV",
	"app.site_url":                "SITE_URL",
	"db.dsn":                      "DB_DSN",
	"redis.addr":                  "REDIS_ADDR",
	"redis.password":              "REDIS_PASSWORD",
	"redis.db":                    "REDIS_DB",
	"kafka.brokers":               "KAFKA_BROKERS",
	"kafka.group_id":              "KAFKA_GROUP_ID",
	"auth.jwt_secret":             "JWT_SECRET",
	"auth.token_lifespan":         "TOKEN_LIFESPAN",
	"cloudinary.cloud_name":       "CLOUDINARY_CLOUD_NAME",
	"cloudinary.api_key":          "CLOUDINARY_API_KEY",
	"cloudinary.api_secret":       "CLOUDINARY_API_SECRET",
	"cloudinary.folder":           "CLOUDINARY_FOLDER",
	"smtp.host":                   "SMTP_HOST",
	"smtp.port":                   "SMTP_PORT",
	"smtp.username":               "SMTP_USERNAME",
	"smtp.password":               "SMTP_PASSWORD",
	"smtp.from":                   "SMTP_FROM",
	"smtp.notify_to":              "SMTP_NOTIFY_TO",
	"http.trusted_proxies":        "HTTP_TRUSTED_PROXIES",
	"cors.allowed_origins":        "CORS_ALLOWED_ORIGINS",
	"tracing.otlp_endpoint":       "OTLP_ENDPOINT",
	"cache.section_ttl":           "CACHE_SECTION_TTL",
	"rate_limit.login_per_minute": "RATE_LIMIT_LOGIN_PER_MINUTE",
	"rate_limit.contact_per_hour": "RATE_LIMIT_CONTACT_PER_HOUR",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.name", "portfolio-api")
	v.SetDefault("app.port", "8080")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.site_url", "http://localhost:5173")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.db", 0)
	v.SetDefault("kafka.brokers", []string{"localhost:9092"})
	v.SetDefault("kafka.group_id", "portfolio-worker")
	v.SetDefault("auth.token_lifespan", 24*time.Hour)
	v.SetDefault("cloudinary.folder", "portfolio")
	v.SetDefault("smtp.port", 587)
	v.SetDefault("http.trusted_proxies", []string{})
	v.SetDefault("cors.allowed_origins", []string{"http://localhost:5173"})
	v.SetDefault("cache.section_ttl", 10*time.Minute)
	v.SetDefault("rate_limit.login_per_minute", 5)
	v.SetDefault("rate_limit.contact_per_hour", 3)
}

// LoadConfig reads .env, then config.yaml from the given directories (the
// working directory when none are given), then the environment.
func LoadConfig(paths ...string) (cfg Config, err error) {
	if len(paths) == 0 {
		paths = []string{"."}
	}

	envFiles := make([]string, 0, len(paths))
	for _, p := range paths {
		envFiles = append(envFiles, strings.TrimSuffix(p, "/")+"/.env")
	}
	if err := godotenv.Load(envFiles...); err != nil {
		log.Println("warning: .env file not found, use default.")
	}

	v := viper.New()
	setDefaults(v)

	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if err = v.ReadInConfig(); err != nil {
		log.Printf("note: config.yaml not found, read .env only. Error: %v", err)
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, env := range envBindings {
		if err = v.BindEnv(key, env); err != nil {
			return cfg, err
		}
	}

	err = v.Unmarshal(&cfg)
	return
}
