package main

import (
	"fmt"
	"io"
	"os"

	"kucukaslan/greeter/api"
	"kucukaslan/greeter/buildinfo"
	"kucukaslan/greeter/config"
	"kucukaslan/greeter/domain"
	"kucukaslan/greeter/services"

	"github.com/gofiber/fiber/v2/log"
)

func main() {
	// No shutdown handling: a signal terminates the process and drops open connections.
	if err := run(os.Stdout); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// run serves until the process dies. Build info is attached only to a startup
// failure so a healthy start prints nothing but the port line.
func run(out io.Writer) error {
	cfg := config.Load()

	greetingService := services.NewGreetingService(domain.Greeting)
	httpHandler := api.NewGreetingHandler(greetingService)

	app := api.NewApp(httpHandler)

	if err := api.Start(app, cfg, out); err != nil {
		return fmt.Errorf("%w (%s)", err, buildinfo.GetInfo())
	}
	return nil
}
