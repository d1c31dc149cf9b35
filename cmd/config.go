package cmd

// Config carries the environment-derived settings for the application.
type Config struct {
	HTTPPort     string
	DBHost       string
	DBPort       string
	DBUser       string
	DBPassword   string
	DBName       string
	DBSslMode    string
	CartTTLHours string
}
