package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	HostIP          string  // Host IP for the server
	RESTPort        int     // Port for the REST API
	DBHost          string  // Hostname or IP address for the database
	DBPort          int     // Port number for the database
	DBUser          string  // Username for the database
	DBPassword      string  // Password for the database
	DBName          string  // Name of the database
	RedisAddr       string  // host:port of the Redis plan cache
	RedisPassword   string  // Password for Redis, empty when none
	PlanCacheTTL    int     // Seconds a cached plan stays valid
	SolverHorizon   int     // Iteration and rollout bound handed to the solver
	SolverDiscount  float64 // Discount factor used by value iteration
	ExclusiveBounds bool    // Treat width/height as exclusive upper bounds
	GinMode         string  // Mode for the Gin framework (e.g., release, debug, test)
	JWTSecret       string  // Secret key for JWT signing
	JWTIssuer       string  // Issuer claim for JWTs
}

// Load reads a .env file if present and builds the configuration from the
// environment. Every planner setting has a default; server settings that
// have no safe default are checked by Validate.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	return Config{
		HostIP:          getEnvWithDefault("HOST_IP", "0.0.0.0"),
		RESTPort:        getEnvAsIntWithDefault("REST_PORT", 8080),
		DBHost:          getEnvWithDefault("DB_HOST", "localhost"),
		DBPort:          getEnvAsIntWithDefault("DB_PORT", 27017),
		DBUser:          getEnvWithDefault("DB_USER", ""),
		DBPassword:      getEnvWithDefault("DB_PASS", ""),
		DBName:          getEnvWithDefault("DB_NAME", "planner"),
		RedisAddr:       getEnvWithDefault("REDIS_ADDR", "localhost:6379"),
		RedisPassword:   getEnvWithDefault("REDIS_PASSWORD", ""),
		PlanCacheTTL:    getEnvAsIntWithDefault("PLAN_CACHE_TTL", 3600),
		SolverHorizon:   getEnvAsIntWithDefault("SOLVER_HORIZON", 200),
		SolverDiscount:  getEnvAsFloatWithDefault("SOLVER_DISCOUNT", 0.9),
		ExclusiveBounds: getEnvAsBoolWithDefault("EXCLUSIVE_BOUNDS", false),
		GinMode:         getEnvWithDefault("GIN_MODE", "release"),
		JWTSecret:       getEnvWithDefault("JWT_SECRET", ""),
		JWTIssuer:       getEnvWithDefault("JWT_ISSUER", "vinom-planner"),
	}
}

// Validate reports settings the HTTP server cannot run without.
func (c Config) Validate() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("environment variable JWT_SECRET is not set")
	}
	if c.RESTPort <= 0 {
		return fmt.Errorf("REST_PORT must be positive, got %d", c.RESTPort)
	}
	return nil
}

// MongoURI builds the connection string for the configured database.
func (c Config) MongoURI() string {
	if c.DBUser == "" {
		return fmt.Sprintf("mongodb://%s:%v", c.DBHost, c.DBPort)
	}
	return fmt.Sprintf("mongodb://%s:%s@%s:%v", c.DBUser, c.DBPassword, c.DBHost, c.DBPort)
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsIntWithDefault retrieves an integer environment variable, falling back
// to defaultValue when it is unset or cannot be parsed.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("[APP] [WARNING] Environment variable %s must be an integer: %v", key, err)
		return defaultValue
	}
	return value
}

func getEnvAsFloatWithDefault(key string, defaultValue float64) float64 {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("[APP] [WARNING] Environment variable %s must be a number: %v", key, err)
		return defaultValue
	}
	return value
}

func getEnvAsBoolWithDefault(key string, defaultValue bool) bool {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("[APP] [WARNING] Environment variable %s must be a boolean: %v", key, err)
		return defaultValue
	}
	return value
}
