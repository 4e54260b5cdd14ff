package cmd

import "fmt"

// Config carries every externally supplied setting of the service.
// Populated from the environment in main; no other package reads env vars.
type Config struct {
	HTTPPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	RabbitURL string

	CurrencyAPIURL          string
	CurrencyCacheTTLSeconds int

	SessionCookieName string

	SweepSchedule         string
	SweepThresholdSeconds int
}

// PostgresDSN renders the keyword/value DSN for the postgres driver.
func (c Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}
