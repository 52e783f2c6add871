package config

// Config is parsed from the environment once at startup and passed to the
// packages that need it. godotenv loads .env beforehand in main.
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	Port        string `env:"PORT" envDefault:"8080"`

	Mongo    Mongo    `envPrefix:"MONGO_"`
	Redis    Redis    `envPrefix:"REDIS_"`
	Razorpay Razorpay `envPrefix:"RAZORPAY_"`
	Storage  Storage  `envPrefix:"GCS_"`

	JWTSecret string `env:"JWT_SECRET"`

	// Seed credentials for the first super-admin on an empty database.
	AdminUsername string `env:"ADMIN_USERNAME"`
	AdminPassword string `env:"ADMIN_PASSWORD"`
}

type Mongo struct {
	URI      string `env:"URI" envDefault:"mongodb://localhost:27017"`
	Database string `env:"DB" envDefault:"fathomlegal"`
}

type Redis struct {
	Addr     string `env:"ADDR" envDefault:"localhost:6379"`
	Password string `env:"PASSWORD"`
}

type Razorpay struct {
	KeyID     string `env:"KEY_ID"`
	KeySecret string `env:"KEY_SECRET"`
	BaseURL   string `env:"BASE_URL" envDefault:"https://api.razorpay.com"`
}

// Storage holds cloud bucket settings. Credentials may be given either as a
// path to a service-account file or inline JSON; inline wins when both are set.
type Storage struct {
	Bucket          string `env:"BUCKET"`
	CredentialsFile string `env:"CREDENTIALS_FILE"`
	CredentialsJSON string `env:"CREDENTIALS_JSON"`
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
