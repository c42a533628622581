package config

// EnvPrefix is the prefix applied to every configuration environment variable.
const EnvPrefix = "BOWBOX"

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

const (
	EnvAppEnv   = "BOWBOX_APP_ENV"
	EnvAppPort  = "BOWBOX_APP_PORT"
	EnvLogLevel = "BOWBOX_LOG_LEVEL"

	EnvDBDSN      = "BOWBOX_DB_DSN"
	EnvDBHost     = "BOWBOX_DB_HOST"
	EnvDBPort     = "BOWBOX_DB_PORT"
	EnvDBUser     = "BOWBOX_DB_USER"
	EnvDBPassword = "BOWBOX_DB_PASSWORD"
	EnvDBName     = "BOWBOX_DB_NAME"
	EnvDBSSLMode  = "BOWBOX_DB_SSLMODE"

	EnvRedisURL = "BOWBOX_REDIS_URL"

	EnvJWTSecret            = "BOWBOX_JWT_SECRET"
	EnvJWTIssuer            = "BOWBOX_JWT_ISSUER"
	EnvJWTExpirationMinutes = "BOWBOX_JWT_EXPIRATION_MINUTES"
	EnvRefreshTokenTTL      = "BOWBOX_REFRESH_TOKEN_TTL_MINUTES"

	EnvGCPProjectID      = "BOWBOX_GCP_PROJECT_ID"
	EnvGCSProductBucket  = "BOWBOX_GCS_PRODUCT_BUCKET"
	EnvGCSTestimonialBkt = "BOWBOX_GCS_TESTIMONIAL_BUCKET"

	EnvWhatsAppPhone = "BOWBOX_WHATSAPP_PHONE"
	EnvAutoMigrate   = "BOWBOX_AUTO_MIGRATE"
)

// legacyDBEnvVars are the discrete connection vars accepted when EnvDBDSN is unset.
var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
