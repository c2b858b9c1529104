package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all configuration values
type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	JWT        JWTConfig
	Blockchain BlockchainConfig
	Provider   ProviderConfig
	Payment    PaymentConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port string
	Env  string
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// URL returns the database connection URL
func (c DatabaseConfig) URL() string {
	return "postgres://" + c.User + ":" + c.Password + "@" + c.Host + ":" + strconv.Itoa(c.Port) + "/" + c.DBName + "?sslmode=" + c.SSLMode + "&prepare_threshold=0"
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	URL      string
	Password string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret        string
	AccessExpiry  time.Duration
	RefreshExpiry time.Duration
}

// BlockchainConfig holds RPC endpoints and the USDC token contract
// used by the external wallet path.
type BlockchainConfig struct {
	EthSepoliaRPC    string
	BaseSepoliaRPC   string
	USDCTokenAddress string
}

// ProviderConfig holds the custodial wallet provider credentials.
type ProviderConfig struct {
	BaseURL        string
	APIKey         string
	EntitySecret   string
	USDCTokenID    string
	RequestTimeout time.Duration
}

// PaymentConfig holds the credit purchase settings. DestinationAddress is
// the merchant receiving wallet; payments are blocked while it is empty.
type PaymentConfig struct {
	DestinationAddress string
	CreditExchangeRate float64 // USDC per credit
	USDCDecimals       int
	Chain              string
}

// Load loads configuration from environment variables
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8080"),
			Env:  getEnv("SERVER_ENV", "development"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "usdc_credits"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", "redis://localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
		},
		JWT: JWTConfig{
			Secret:        getEnv("JWT_SECRET", "change-this-in-production"),
			AccessExpiry:  getEnvAsDuration("JWT_ACCESS_EXPIRY", 15*time.Minute),
			RefreshExpiry: getEnvAsDuration("JWT_REFRESH_EXPIRY", 7*24*time.Hour),
		},
		Blockchain: BlockchainConfig{
			EthSepoliaRPC:    getEnv("ETH_SEPOLIA_RPC_URL", "https://rpc.sepolia.org"),
			BaseSepoliaRPC:   getEnv("BASE_SEPOLIA_RPC_URL", "https://sepolia.base.org"),
			USDCTokenAddress: getEnv("USDC_TOKEN_ADDRESS", ""),
		},
		Provider: ProviderConfig{
			BaseURL:        getEnv("PROVIDER_BASE_URL", "https://api.circle.com/v1/w3s"),
			APIKey:         getEnv("PROVIDER_API_KEY", ""),
			EntitySecret:   getEnv("PROVIDER_ENTITY_SECRET", ""),
			USDCTokenID:    getEnv("PROVIDER_USDC_TOKEN_ID", ""),
			RequestTimeout: getEnvAsDuration("PROVIDER_REQUEST_TIMEOUT", 30*time.Second),
		},
		Payment: PaymentConfig{
			DestinationAddress: getEnv("PAYMENT_DESTINATION_ADDRESS", ""),
			CreditExchangeRate: getEnvAsFloat("CREDIT_EXCHANGE_RATE", 1.0),
			USDCDecimals:       getEnvAsInt("USDC_DECIMALS", 6),
			Chain:              getEnv("PAYMENT_CHAIN", "ETH-SEPOLIA"),
		},
	}
}

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

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
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
