package model

// Scope carries the caller identity into every use case call.
type Scope struct {
	UserID string
}

// Environment names the deployment stage.
type Environment string

const (
	EnvironmentDevelopment Environment = "development"
	EnvironmentStaging     Environment = "staging"
	EnvironmentProduction  Environment = "production"
)
