//go:build ignore

// This script generates random API keys and a Swagger password.
// Run with: go run scripts/generate_keys.go [-n 2]
package main

import (
	"crypto/rand"
	"encoding/base64"
	"flag"
	"fmt"
	"os"
	"strings"
)

func generateSecureKey(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	// URL-safe without padding so keys survive the comma-separated API_KEYS list.
	return base64.RawURLEncoding.EncodeToString(bytes), nil
}

func main() {
	count := flag.Int("n", 1, "number of API keys to generate")
	flag.Parse()

	if *count < 1 {
		fmt.Fprintln(os.Stderr, "-n must be at least 1")
		os.Exit(1)
	}

	keys := make([]string, 0, *count)
	for i := 0; i < *count; i++ {
		key, err := generateSecureKey(24)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error generating API key: %v\n", err)
			os.Exit(1)
		}
		keys = append(keys, key)
	}

	swaggerPass, err := generateSecureKey(18)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating Swagger password: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("=== Pack Planner Key Generator ===")
	fmt.Println()
	fmt.Println("Add these to your .env file:")
	fmt.Println()
	fmt.Println("# API keys (one per client, sent as X-API-Key)")
	fmt.Printf("API_KEYS=%s\n", strings.Join(keys, ","))
	fmt.Println()
	fmt.Println("# Swagger UI basic auth")
	fmt.Println("SWAGGER_USER=docs")
	fmt.Printf("SWAGGER_PASS=%s\n", swaggerPass)
	fmt.Println()
	fmt.Println("=== IMPORTANT ===")
	fmt.Println("- Never commit these keys to version control")
	fmt.Println("- Give every client its own key; rate limits are tracked per key")
}
