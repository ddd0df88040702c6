package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración del cliente y del stub (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	API     APIConfig
	Session SessionConfig
	JWT     JWTConfig
	HTTP    HTTPConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// APIConfig ubicación del servicio remoto del marketplace.
type APIConfig struct {
	BackendURL string        // ej. http://localhost:5000
	Timeout    time.Duration // 0 = sin timeout
}

// BaseURL devuelve la ruta común de todos los endpoints (<backend>/api).
func (c APIConfig) BaseURL() string {
	return strings.TrimRight(c.BackendURL, "/") + "/api"
}

// SessionConfig ubicación del almacenamiento local de la sesión.
type SessionConfig struct {
	Path string
}

// JWTConfig configuración de JWT (solo la usa el stub del marketplace).
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// HTTPConfig configuración del servidor HTTP del stub.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, BULKBUY_BACKEND_URL, JWT_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	sessionPath, err := defaultSessionPath()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "bulkbuy"),
			LogLevel: getString(v, "LOG_LEVEL", "warn"),
		},
		API: APIConfig{
			BackendURL: getString(v, "BULKBUY_BACKEND_URL", "http://localhost:8080"),
			Timeout:    time.Duration(getInt(v, "BULKBUY_HTTP_TIMEOUT_SECONDS", 0)) * time.Second,
		},
		Session: SessionConfig{
			Path: getString(v, "BULKBUY_SESSION_FILE", sessionPath),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60*24),
			Issuer:     getString(v, "JWT_ISSUER", "bulkbuy-stub"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
	}

	return cfg, nil
}

// defaultSessionPath: <user config dir>/bulkbuy/session.yaml
func defaultSessionPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config: directorio de configuración del usuario: %w", err)
	}
	return filepath.Join(dir, "bulkbuy", "session.yaml"), nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
