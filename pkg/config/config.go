package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config agrupa la configuración del panel (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App       AppConfig
	HTTP      HTTPConfig
	Backend   BackendConfig
	JWT       JWTConfig
	Session   SessionConfig
	Cache     CacheConfig
	Execution ExecutionConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env       string // development, staging, production
	Name      string
	LogLevel  string // trace, debug, info, warn, error
	PublicURL string // URL pública del panel; se imprime como QR en el resumen PDF
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// BackendConfig configuración del backend REST de procesos.
type BackendConfig struct {
	BaseURL      string        // ej. http://localhost:8000
	Timeout      time.Duration // timeout de red por petición
	MaxBodyBytes int64         // límite de lectura de respuestas (PDFs incluidos)
}

// JWTConfig configuración para decodificar los tokens emitidos por el backend.
// Si Secret está vacío el token solo se decodifica (sin verificar firma); la
// validez real la decide el backend en cada llamada autenticada.
type JWTConfig struct {
	Secret string
}

// SessionConfig cookie de sesión donde se guarda el token del backend.
type SessionConfig struct {
	CookieName   string
	CookieSecure bool
	Expiration   time.Duration
}

// CacheConfig tiempos de vida del estado en memoria.
type CacheConfig struct {
	DraftTTL     time.Duration // borradores del asistente de creación de procesos
	ExecutionTTL time.Duration // sesiones de ejecución abiertas
	UserTTL      time.Duration // usuario resuelto a partir del token
	ReportTTL    time.Duration // PDFs generados pendientes de envío
}

// ExecutionConfig comportamiento del modal de ejecución.
type ExecutionConfig struct {
	CloseDelay time.Duration // tiempo que la confirmación sigue visible antes de cerrar
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, BACKEND_URL, etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:       getString(v, "APP_ENV", "development"),
			Name:      getString(v, "APP_NAME", "panel-acib"),
			LogLevel:  getString(v, "LOG_LEVEL", "info"),
			PublicURL: getString(v, "APP_PUBLIC_URL", ""),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 3000),
		},
		Backend: BackendConfig{
			BaseURL:      strings.TrimRight(getString(v, "BACKEND_URL", "http://localhost:8000"), "/"),
			Timeout:      getDuration(v, "BACKEND_TIMEOUT", 30*time.Second),
			MaxBodyBytes: int64(getInt(v, "BACKEND_MAX_BODY_BYTES", 20<<20)),
		},
		JWT: JWTConfig{
			Secret: getString(v, "JWT_SECRET", ""),
		},
		Session: SessionConfig{
			CookieName:   getString(v, "SESSION_COOKIE_NAME", "panel_session"),
			CookieSecure: getBool(v, "SESSION_COOKIE_SECURE", false),
			Expiration:   getDuration(v, "SESSION_EXPIRATION", 8*time.Hour),
		},
		Cache: CacheConfig{
			DraftTTL:     getDuration(v, "CACHE_DRAFT_TTL", 2*time.Hour),
			ExecutionTTL: getDuration(v, "CACHE_EXECUTION_TTL", time.Hour),
			UserTTL:      getDuration(v, "CACHE_USER_TTL", 10*time.Minute),
			ReportTTL:    getDuration(v, "CACHE_REPORT_TTL", 30*time.Minute),
		},
		Execution: ExecutionConfig{
			CloseDelay: getDuration(v, "EXECUTION_CLOSE_DELAY", 3*time.Second),
		},
	}

	if cfg.Backend.BaseURL == "" {
		return nil, fmt.Errorf("config: BACKEND_URL vacío")
	}
	return cfg, nil
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

func getBool(v *viper.Viper, key string, def bool) bool {
	if v.IsSet(key) {
		return v.GetBool(key)
	}
	return def
}

// getDuration acepta "30s", "5m" o un entero en segundos.
func getDuration(v *viper.Viper, key string, def time.Duration) time.Duration {
	if !v.IsSet(key) {
		return def
	}
	s := strings.TrimSpace(v.GetString(key))
	if n, err := strconv.Atoi(s); err == nil {
		return time.Duration(n) * time.Second
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return def
	}
	return d
}
