// healthctl is the terminal front end for the health-tracking backend: daily
// targets, day status, weekly plan editing, reminders, and range trends.
// Configuration comes from .env / environment (HEALTH_API_URL,
// HEALTH_API_TOKEN); run ./cmd/stub-server for an offline backend.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/DangKhoa-K/DoAnCSSKCN-sub000/internal/api"
	"github.com/DangKhoa-K/DoAnCSSKCN-sub000/internal/bus"
	"github.com/DangKhoa-K/DoAnCSSKCN-sub000/internal/profile"
)

var rootCmd = &cobra.Command{
	Use:   "healthctl",
	Short: "healthctl tracks targets, logs, plans, and reminders from your terminal",
}

// app bundles the shared collaborators every command needs. Built once in
// PersistentPreRun so flag parsing happens before any network setup.
type app struct {
	client *api.Client
	store  *profile.Store
	bus    *bus.Bus
}

var a *app

func newApp() *app {
	// .env is optional — plain environment variables work too.
	if err := godotenv.Load(); err != nil {
		log.Printf("[healthctl] no .env file, relying on environment")
	}
	baseURL := envOr("HEALTH_API_URL", "http://localhost:8080")
	token := os.Getenv("HEALTH_API_TOKEN")

	out := &app{
		client: api.New(baseURL, func() string { return token }),
		store:  profile.New(),
		bus:    bus.New(),
	}

	// Surface invalidation traffic in the log so a user can see which writes
	// would refresh which screens in the full client.
	for _, topic := range []bus.Topic{
		bus.TopicProfileChanged,
		bus.TopicNutritionChanged,
		bus.TopicSleepChanged,
		bus.TopicHydrationChanged,
		bus.TopicPlanSaved,
		bus.TopicRemindersSaved,
	} {
		out.bus.Subscribe(topic, func(ev bus.Event) {
			log.Printf("[bus] %s", ev.Topic)
		})
	}
	return out
}

func main() {
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		a = newApp()
	}
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
