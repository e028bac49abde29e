// Package constants holds configuration values shared across layers.
package constants

// Environments
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal   = "local"
	PubSubProviderGoogle  = "google"
	PubSubProviderGoCloud = "gocloud"
)

// Session drivers
const (
	SessionDriverMemory = "memory"
	SessionDriverRedis  = "redis"
)

// AccessTokenGuardName names the bearer token guard in events and logs.
const AccessTokenGuardName = "api"
