package config

// EnvPrefix is intentionally empty: every field carries its fully-qualified
// SPICEBITE_* variable name in its envconfig tag.
const EnvPrefix = ""

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvDBDSN  = "SPICEBITE_DB_DSN"
	EnvDBHost = "SPICEBITE_DB_HOST"
	EnvDBUser = "SPICEBITE_DB_USER"
	EnvDBName = "SPICEBITE_DB_NAME"
)

var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
