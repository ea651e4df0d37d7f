package api

import (
	"fmt"
	"io"
	"net"

	"kucukaslan/greeter/config"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// NewApp wires the root route. Every other path and method is left to fiber's
// default error handler (404 "Cannot GET /x", 405 on a known path).
func NewApp(h GreetingHandler) *fiber.App {
	app := fiber.New(fiber.Config{
		// all interfaces, v4 and v6
		Network: fiber.NetworkTCP,
		// stdout carries only the "App running on port" line
		DisableStartupMessage: true,
	})

	app.Use(recover.New())

	app.Get("/", h.GetRoot)

	return app
}

// Start binds the configured port on all interfaces and serves app on it.
// A bind failure is returned before anything is written to out.
func Start(app *fiber.App, cfg *config.Config, out io.Writer) error {
	ln, err := net.Listen(app.Config().Network, cfg.Addr())
	if err != nil {
		return fmt.Errorf("failed to listen on port %s: %w", cfg.Port, err)
	}
	return Serve(app, ln, cfg.Port, out)
}

// Serve announces port on out and blocks serving app on ln.
func Serve(app *fiber.App, ln net.Listener, port string, out io.Writer) error {
	fmt.Fprintf(out, "App running on port %s\n", port)
	return app.Listener(ln)
}
