package cmd

import (
	"fmt"
	"strings"
)

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	KafkaHost              string
	KafkaOrderChangedTopic string

	JWTSecret        string
	TaxRate          string
	OverdueCheckSpec string

	LogLevel  string
	LogFormat string
}

// UsesPostgres reports whether a database is configured. Without one the
// service keeps its data in memory.
func (c Config) UsesPostgres() bool {
	return strings.TrimSpace(c.DBHost) != ""
}

// UsesKafka reports whether status changes go to a broker.
func (c Config) UsesKafka() bool {
	return strings.TrimSpace(c.KafkaHost) != "" && strings.TrimSpace(c.KafkaOrderChangedTopic) != ""
}

func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
