package api

import (
	"github.com/gofiber/fiber/v2"
)

type GreetingHandler interface {
	GetRoot(ctx *fiber.Ctx) error
}
