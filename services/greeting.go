package services

import (
	"context"

	"kucukaslan/greeter/domain"
)

var _ domain.GreetingService = &greetingService{}

type greetingService struct {
	message string
}

func (g greetingService) Greet(_ context.Context) string {
	return g.message
}

// NewGreetingService returns a domain.GreetingService that always answers with message.
func NewGreetingService(message string) domain.GreetingService {
	return &greetingService{message: message}
}
