package config

const (
	// EnvPrefix is intentionally empty: every field names its env var in full.
	EnvPrefix = ""

	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	EnvDBDSN  = "HABITFRAME_DB_DSN"
	EnvDBHost = "HABITFRAME_DB_HOST"
	EnvDBUser = "HABITFRAME_DB_USER"
	EnvDBName = "HABITFRAME_DB_NAME"
)

var requiredDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
