package routes

const (
	// Health
	Health = "/health"

	// Single GraphQL endpoint; every query and mutation goes through it.
	GraphQL = "/graphql"

	// Prometheus scrape endpoint
	Metrics = "/metrics"
)
