package config

import "os"

func Development() bool {
	development, ok := os.LookupEnv("DEVELOPMENT")
	return ok && development != "0"
}

// Addr returns the listen address for the HTTP server.
func Addr() string {
	if port, ok := os.LookupEnv("APP_PORT"); ok {
		return ":" + port
	}
	return ":8080"
}
