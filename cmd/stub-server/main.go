// Development stand-in for the real health-tracking backend. Serves the same
// routes over seeded in-memory fixtures so healthctl works offline.
// Usage: go run ./cmd/stub-server (reads .env for STUB_USERNAME/STUB_PASSWORD/PORT)
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// .env is optional here — defaults below make bare `go run` work.
	if err := godotenv.Load(); err != nil {
		log.Printf("[stub-server] no .env file, using defaults")
	}

	username := envOr("STUB_USERNAME", "demo")
	password := envOr("STUB_PASSWORD", "demo")
	port := envOr("PORT", "8080")

	h, err := newHandler(username, password)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Unable to set up stub handler: %v\n", err)
		os.Exit(1)
	}

	router := gin.Default()
	router.SetTrustedProxies(nil)
	h.registerRoutes(router)

	log.Printf("[stub-server] listening on :%s (user %q)", port, username)
	if err := router.Run(":" + port); err != nil {
		fmt.Fprintf(os.Stderr, "Server stopped: %v\n", err)
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
