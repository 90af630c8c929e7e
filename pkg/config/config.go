package config

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env
// y opcionalmente archivo).
type Config struct {
	App     AppConfig
	Billing BillingConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// BillingConfig parámetros tributarios y de cobro del motor.
type BillingConfig struct {
	IGVRate             decimal.Decimal // tasa de IGV como fracción (0.18)
	CreditDueWindowDays int             // ventana [hoy, hoy+N] para vencimientos de crédito
	Currency            string          // PEN
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde
// archivo). Las env vars tienen prioridad. Nombres esperados: APP_ENV,
// IGV_RATE, CREDIT_DUE_WINDOW_DAYS, CURRENCY.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "facturacion-pro"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		Billing: BillingConfig{
			IGVRate:             getDecimal(v, "IGV_RATE", "0.18"),
			CreditDueWindowDays: getInt(v, "CREDIT_DUE_WINDOW_DAYS", 90),
			Currency:            getString(v, "CURRENCY", "PEN"),
		},
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
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

// getDecimal parsea el valor como decimal; si no parsea usa el default.
// La tasa de IGV jamás debe pasar por float64.
func getDecimal(v *viper.Viper, key, def string) decimal.Decimal {
	s := getString(v, key, def)
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		d, _ = decimal.NewFromString(def)
	}
	return d
}
