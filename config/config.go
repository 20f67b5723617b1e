package config

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"BabyNest/models"
	"BabyNest/services"

	"cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"google.golang.org/api/option"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

type DatabaseConfig struct {
	Host     string
	User     string
	Password string
	Name     string
	Port     string
	SSLMode  string
	TimeZone string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type MailConfig struct {
	Driver    string
	SMTPHost  string
	SMTPPort  string
	Username  string
	Password  string
	FromEmail string
	FromName  string
	AWSRegion string
}

type Config struct {
	Port        string
	Location    *time.Location
	CORSOrigins []string

	JWTSecret    string
	JWTExpiresIn time.Duration
	OTPTTL       time.Duration
	InviteURL    string

	LogLevel  string
	LogFormat string

	Database DatabaseConfig
	Redis    RedisConfig
	Mail     MailConfig

	FirebaseCredentialsPath string
	GCSBucket               string
	GCSCredentialsPath      string
}

// Load reads .env when present and then the process environment.
func Load() (*Config, error) {
	// .env is optional; the environment wins either way
	_ = godotenv.Load()

	loc, err := time.LoadLocation(getenv("APP_TIMEZONE", "UTC"))
	if err != nil {
		return nil, fmt.Errorf("APP_TIMEZONE: %w", err)
	}
	jwtTTL, err := time.ParseDuration(getenv("JWT_EXPIRES_IN", "168h"))
	if err != nil {
		return nil, fmt.Errorf("JWT_EXPIRES_IN: %w", err)
	}
	otpTTL, err := time.ParseDuration(getenv("OTP_TTL", "5m"))
	if err != nil {
		return nil, fmt.Errorf("OTP_TTL: %w", err)
	}
	redisDB, err := strconv.Atoi(getenv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("REDIS_DB: %w", err)
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET is not set")
	}

	return &Config{
		Port:         getenv("PORT", "8000"),
		Location:     loc,
		CORSOrigins:  splitList(getenv("CORS_ORIGINS", "*")),
		JWTSecret:    secret,
		JWTExpiresIn: jwtTTL,
		OTPTTL:       otpTTL,
		InviteURL:    getenv("INVITE_URL", "https://babynest.app/invite"),
		LogLevel:     getenv("LOG_LEVEL", "info"),
		LogFormat:    getenv("LOG_FORMAT", "json"),
		Database:     DatabaseFromEnv(loc),
		Redis: RedisConfig{
			Addr:     getenv("REDIS_ADDR", "localhost:6379"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
		},
		Mail: MailConfig{
			Driver:    getenv("MAIL_DRIVER", "log"),
			SMTPHost:  os.Getenv("SMTP_HOST"),
			SMTPPort:  getenv("SMTP_PORT", "587"),
			Username:  os.Getenv("SMTP_USERNAME"),
			Password:  os.Getenv("SMTP_PASSWORD"),
			FromEmail: os.Getenv("FROM_EMAIL"),
			FromName:  getenv("FROM_NAME", "BabyNest"),
			AWSRegion: getenv("AWS_REGION", "us-east-1"),
		},
		FirebaseCredentialsPath: os.Getenv("FIREBASE_CREDENTIALS_PATH"),
		GCSBucket:               os.Getenv("GCS_BUCKET"),
		GCSCredentialsPath:      os.Getenv("GCS_CREDENTIALS_PATH"),
	}, nil
}

// DatabaseFromEnv reads the DB_* keys. Render hosts default to sslmode=require.
func DatabaseFromEnv(loc *time.Location) DatabaseConfig {
	host := os.Getenv("DB_HOST")
	sslmode := os.Getenv("DB_SSLMODE")
	if sslmode == "" {
		if strings.Contains(host, "render.com") {
			sslmode = "require"
		} else {
			sslmode = "disable"
		}
	}
	return DatabaseConfig{
		Host:     host,
		User:     os.Getenv("DB_USER"),
		Password: os.Getenv("DB_PASSWORD"),
		Name:     os.Getenv("DB_NAME"),
		Port:     getenv("DB_PORT", "5432"),
		SSLMode:  sslmode,
		TimeZone: loc.String(),
	}
}

// InitDatabase opens the pool and migrates every model.
func InitDatabase(cfg DatabaseConfig, log *zap.Logger) (*gorm.DB, error) {
	log.Info("connecting to database",
		zap.String("host", cfg.Host),
		zap.String("user", cfg.User),
		zap.String("dbname", cfg.Name),
		zap.String("port", cfg.Port),
		zap.String("sslmode", cfg.SSLMode))

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=%s",
		cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port, cfg.SSLMode, cfg.TimeZone)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("database handle: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := db.AutoMigrate(models.All()...); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	log.Info("database ready")
	return db, nil
}

// InitFirebase returns nil when no credentials are configured; push delivery
// and Google sign-in are then disabled.
func InitFirebase(ctx context.Context, credentialsPath string) (*firebase.App, error) {
	if credentialsPath == "" {
		return nil, nil
	}
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(credentialsPath))
	if err != nil {
		return nil, fmt.Errorf("error initializing firebase app: %w", err)
	}
	return app, nil
}

func InitRedis(ctx context.Context, cfg RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return client, nil
}

// InitMailer picks the mail driver named by MAIL_DRIVER.
func InitMailer(ctx context.Context, cfg MailConfig, log *zap.Logger) (services.Mailer, error) {
	switch cfg.Driver {
	case "smtp":
		if cfg.SMTPHost == "" || cfg.FromEmail == "" {
			return nil, fmt.Errorf("smtp mailer needs SMTP_HOST and FROM_EMAIL")
		}
		return &services.SMTPMailer{
			Host:      cfg.SMTPHost,
			Port:      cfg.SMTPPort,
			Username:  cfg.Username,
			Password:  cfg.Password,
			FromEmail: cfg.FromEmail,
			FromName:  cfg.FromName,
		}, nil
	case "ses":
		awsCfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(cfg.AWSRegion))
		if err != nil {
			return nil, fmt.Errorf("failed to load AWS config: %w", err)
		}
		return &services.SESMailer{
			Client:    sesv2.NewFromConfig(awsCfg),
			FromEmail: cfg.FromEmail,
			FromName:  cfg.FromName,
		}, nil
	case "log", "":
		return &services.LogMailer{Log: log}, nil
	}
	return nil, fmt.Errorf("unknown MAIL_DRIVER %q", cfg.Driver)
}

// InitStorage returns nil when no bucket is configured; uploads then fail
// with a business error.
func InitStorage(ctx context.Context, bucket, credentialsPath string) (services.Storage, func() error, error) {
	if bucket == "" {
		return nil, func() error { return nil }, nil
	}
	var opts []option.ClientOption
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}
	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, nil, fmt.Errorf("storage client: %w", err)
	}
	return services.NewGCSStorage(client, bucket), client.Close, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
