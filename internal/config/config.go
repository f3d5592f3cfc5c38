package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Log        LogConfig        `yaml:"log"`
	Dictionary DictionaryConfig `yaml:"dictionary"`
	Database   DatabaseConfig   `yaml:"database"`
	Engine     EngineConfig     `yaml:"engine"`
	Importer   ImporterConfig   `yaml:"importer"`
}

// Dictionary drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverNone     = "none"
)

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes"   env:"SERVER_MAX_BODY_BYTES"   env-default:"33554432"`
	// DataDir is the only directory the HTTP API reads vocabulary files
	// from and writes them to. Request paths are relative to it.
	DataDir         string        `yaml:"data_dir"         env:"SERVER_DATA_DIR"         env-default:"./data/vocabularies"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// DictionaryConfig selects and tunes the ECDICT dictionary.
type DictionaryConfig struct {
	Driver        string        `yaml:"driver"         env:"DICT_DRIVER"         env-default:"sqlite"`
	Path          string        `yaml:"path"           env:"DICT_PATH"           env-default:"./data/ecdict.db"`
	Migrate       bool          `yaml:"migrate"        env:"DICT_MIGRATE"        env-default:"true"`
	BatchCapacity int           `yaml:"batch_capacity" env:"DICT_BATCH_CAPACITY" env-default:"500"`
	BatchWait     time.Duration `yaml:"batch_wait"     env:"DICT_BATCH_WAIT"     env-default:"2ms"`
}

// DatabaseConfig holds PostgreSQL connection settings, used by the postgres
// dictionary driver.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// EngineConfig holds word engine defaults.
type EngineConfig struct {
	BNCThreshold     int  `yaml:"bnc_threshold"     env:"ENGINE_BNC_THRESHOLD"     env-default:"1000"`
	FRQThreshold     int  `yaml:"frq_threshold"     env:"ENGINE_FRQ_THRESHOLD"     env-default:"1000"`
	LoadConcurrency  int  `yaml:"load_concurrency"  env:"ENGINE_LOAD_CONCURRENCY"  env-default:"4"`
	SanitizeCaptions bool `yaml:"sanitize_captions" env:"ENGINE_SANITIZE_CAPTIONS" env-default:"true"`
	StemFallback     bool `yaml:"stem_fallback"     env:"ENGINE_STEM_FALLBACK"     env-default:"false"`
}

// ImporterConfig holds ECDICT import settings.
type ImporterConfig struct {
	CSVPath   string `yaml:"csv_path"   env:"IMPORT_CSV_PATH"   env-default:"./data/ecdict.csv"`
	BatchSize int    `yaml:"batch_size" env:"IMPORT_BATCH_SIZE" env-default:"2000"`
}
