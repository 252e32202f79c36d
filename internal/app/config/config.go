package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	ServiceHost string
	ServicePort int
	JWT         JWTConfig
	Redis       RedisConfig
	Images      ImagesConfig
	Minio       MinioConfig
}

type JWTConfig struct {
	Token         string
	ExpiresIn     time.Duration
	SigningMethod jwt.SigningMethod
}

type RedisConfig struct {
	Host        string
	Password    string
	Port        int
	User        string
	DialTimeout time.Duration
	ReadTimeout time.Duration
}

// ImagesConfig описывает хранилище картинок.
// Type: "disk" (каталоги на диске) или "minio" (бакеты в объектном хранилище)
type ImagesConfig struct {
	Type      string
	AvatarDir string
	PhotoDir  string
}

type MinioConfig struct {
	Endpoint     string
	AccessKey    string
	SecretKey    string
	UseSSL       bool
	AvatarBucket string
	PhotoBucket  string
}

const (
	envRedisHost = "REDIS_HOST"
	envRedisPort = "REDIS_PORT"
	envRedisUser = "REDIS_USER"
	envRedisPass = "REDIS_PASSWORD"

	envMinioEndpoint  = "MINIO_ENDPOINT"
	envMinioAccessKey = "MINIO_ACCESS_KEY"
	envMinioSecretKey = "MINIO_SECRET_KEY"

	envJWTSecret = "JWT_SECRET"
)

func NewConfig() (*Config, error) {
	var err error

	configName := "config"
	_ = godotenv.Load()
	if os.Getenv("CONFIG_NAME") != "" {
		configName = os.Getenv("CONFIG_NAME")
	}

	viper.SetConfigName(configName)
	viper.SetConfigType("toml")
	viper.AddConfigPath("config")
	viper.AddConfigPath(".")

	err = viper.ReadInConfig()
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	err = viper.Unmarshal(cfg)
	if err != nil {
		return nil, err
	}

	// секрет JWT берем из env, остальное фиксировано
	cfg.JWT.Token = os.Getenv(envJWTSecret)
	if cfg.JWT.Token == "" {
		cfg.JWT.Token = "dev-secret"
	}
	cfg.JWT.ExpiresIn = time.Hour
	cfg.JWT.SigningMethod = jwt.SigningMethodHS256

	// инициализация Redis конфигурации из env
	cfg.Redis.Host = os.Getenv(envRedisHost)
	cfg.Redis.Port, err = strconv.Atoi(os.Getenv(envRedisPort))
	if err != nil {
		return nil, fmt.Errorf("redis port must be int value: %w", err)
	}
	cfg.Redis.Password = os.Getenv(envRedisPass)
	cfg.Redis.User = os.Getenv(envRedisUser)
	cfg.Redis.DialTimeout = 10 * time.Second
	cfg.Redis.ReadTimeout = 10 * time.Second

	// каталоги картинок по умолчанию
	if cfg.Images.Type == "" {
		cfg.Images.Type = "disk"
	}
	if cfg.Images.AvatarDir == "" {
		cfg.Images.AvatarDir = "images/avatars"
	}
	if cfg.Images.PhotoDir == "" {
		cfg.Images.PhotoDir = "images/photos"
	}

	// доступ к MinIO из env (нужен только при images.type = "minio")
	cfg.Minio.Endpoint = os.Getenv(envMinioEndpoint)
	cfg.Minio.AccessKey = os.Getenv(envMinioAccessKey)
	cfg.Minio.SecretKey = os.Getenv(envMinioSecretKey)
	if cfg.Minio.AvatarBucket == "" {
		cfg.Minio.AvatarBucket = "avatars"
	}
	if cfg.Minio.PhotoBucket == "" {
		cfg.Minio.PhotoBucket = "photos"
	}

	log.Info("config parsed")

	return cfg, nil
}
