package api

import (
	"kucukaslan/greeter/domain"

	"github.com/gofiber/fiber/v2"
)

var _ GreetingHandler = &greetingHandler{nil}

type greetingHandler struct {
	greetingService domain.GreetingService
}

// GetRoot serves the greeting as html
func (g greetingHandler) GetRoot(ctx *fiber.Ctx) error {
	ctx.Type("html", "utf-8")
	return ctx.Status(fiber.StatusOK).SendString(g.greetingService.Greet(ctx.UserContext()))
}

func NewGreetingHandler(greetingService domain.GreetingService) GreetingHandler {
	return &greetingHandler{greetingService: greetingService}
}
