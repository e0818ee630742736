package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Supabase SupabaseConfig `mapstructure:"supabase" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
	Storage  StorageConfig  `mapstructure:"storage"  validate:"required"`
	Remote   RemoteConfig   `mapstructure:"remote"   validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	// AllowedOrigins lists the browser origins accepted by the CORS layer.
	AllowedOrigins []string `mapstructure:"allowed_origins" validate:"dive,url"`
	// MaxUploadBytes caps the multipart body accepted by the upload endpoint.
	MaxUploadBytes int64 `mapstructure:"max_upload_bytes" validate:"gt=0"`
}

// DatabaseConfig points at the provider's Postgres endpoint.
type DatabaseConfig struct {
	URL      string `mapstructure:"url"       validate:"required,url"`
	MaxConns int32  `mapstructure:"max_conns" validate:"gte=0"`
}

// SupabaseConfig holds the hosted provider endpoint and its access key.
// Both are required: the process cannot serve requests without them.
type SupabaseConfig struct {
	URL string `mapstructure:"url" validate:"required,url"`
	Key string `mapstructure:"key" validate:"required"`
	// JWTSecret is the project's token signing secret. Only needed when
	// Auth.Mode is "jwt".
	JWTSecret string `mapstructure:"jwt_secret"`
}

// AuthConfig selects how bearer tokens are verified.
//
//   - "remote": every token is sent to the identity service (the default).
//   - "jwt": tokens are verified locally against Supabase.JWTSecret.
type AuthConfig struct {
	Mode string `mapstructure:"mode" validate:"required,oneof=remote jwt"`
}

// StorageConfig configures the object store used by the upload endpoint.
type StorageConfig struct {
	// Driver is "supabase" (provider storage API) or "s3" (any S3-compatible
	// endpoint such as MinIO or R2).
	Driver string `mapstructure:"driver" validate:"required,oneof=supabase s3"`
	Bucket string `mapstructure:"bucket" validate:"required"`

	// The fields below are only read by the s3 driver.
	Endpoint        string `mapstructure:"endpoint"`
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	UseSSL          bool   `mapstructure:"use_ssl"`
	PublicBaseURL   string `mapstructure:"public_base_url" validate:"omitempty,url"`
}

// RemoteConfig bounds every outbound call to the database, identity service
// and object store.
type RemoteConfig struct {
	TimeoutSeconds int `mapstructure:"timeout_seconds" validate:"required,gt=0,lte=300"`
}
