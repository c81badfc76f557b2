package config

type Config interface {
	EnvConfig
	BackendConfig
	OAuthConfig
}

type mainConfig struct {
	EnvVars
	Backend
	OAuth
}

func New() Config {
	return mainConfig{}
}
