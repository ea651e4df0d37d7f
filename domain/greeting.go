package domain

import "context"

// Greeting is the body served on the root route
const Greeting = "🚀 Node.js app running on AKS via Azure DevOps!"

type GreetingService interface {
	Greet(ctx context.Context) string
}
