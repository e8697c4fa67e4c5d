package env

import "os"

// Get returns the value of the given environment variable, or fallback
// when the variable is unset or empty.
func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
