package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// PathEnv names the environment variable consulted when no -config flag is given
const PathEnv = "MOCKGEN_CONFIG"

type Config struct {
	Env           string `yaml:"env" env:"MOCKGEN_ENV" env-default:"local"`
	DataDir       string `yaml:"data_dir" env:"MOCKGEN_DATA_DIR" env-default:"."`
	InventoryFile string `yaml:"inventory_file" env:"MOCKGEN_INVENTORY_FILE" env-default:"inventory.xlsx"`
	OrdersFile    string `yaml:"orders_file" env:"MOCKGEN_ORDERS_FILE" env-default:"orders.xlsx"`
	OutputFile    string `yaml:"output_file" env:"MOCKGEN_OUTPUT_FILE" env-default:"data/demo_mock_data.json"`
	Format        string `yaml:"format" env:"MOCKGEN_FORMAT" env-default:"json"`
	MaxRows       int    `yaml:"max_rows" env:"MOCKGEN_MAX_ROWS" env-default:"5000"`
	Seed          int64  `yaml:"seed" env:"MOCKGEN_SEED" env-default:"0"`
	BaseDate      string `yaml:"base_date" env:"MOCKGEN_BASE_DATE" env-default:"2025-11-01"`
	HTTPServer    `yaml:"http_server"`
}

type HTTPServer struct {
	Address        string        `yaml:"address" env:"MOCKGEN_HTTP_ADDRESS" env-default:"localhost:4001"`
	Timeout        time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout    time.Duration `yaml:"idle_timeout" env-default:"60s"`
	AllowedOrigins []string      `yaml:"allowed_origins" env:"MOCKGEN_ALLOWED_ORIGINS" env-default:"http://localhost:5173,http://localhost:3000"`
}

// Load reads configuration from the YAML file at path, or from the
// environment only when path is empty. Defaults come from the env-default tags.
func Load(path string) (*Config, error) {
	const op = "config.Load"

	if path == "" {
		path = os.Getenv(PathEnv)
	}

	var cfg Config
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("%s: config file %s: %w", op, path, err)
		}
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("%s: cannot read config: %w", op, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("%s: cannot read environment: %w", op, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &cfg, nil
}

// Validate checks values cleanenv cannot check through tags
func (c *Config) Validate() error {
	switch c.Env {
	case EnvLocal, EnvDev, EnvProd:
	default:
		return fmt.Errorf("unknown env %q", c.Env)
	}

	c.Format = strings.ToLower(c.Format)
	if c.Format != FormatJSON && c.Format != FormatXLSX {
		return fmt.Errorf("unsupported format %q (use %s or %s)", c.Format, FormatJSON, FormatXLSX)
	}

	if c.MaxRows < 0 {
		return fmt.Errorf("max_rows cannot be negative, got %d", c.MaxRows)
	}

	if _, err := c.Base(); err != nil {
		return err
	}

	if c.OutputFile == "" {
		return fmt.Errorf("output_file cannot be empty")
	}
	return nil
}

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	FormatJSON = "json"
	FormatXLSX = "xlsx"
)

// Base parses BaseDate as a UTC calendar date
func (c *Config) Base() (time.Time, error) {
	t, err := time.Parse(time.DateOnly, c.BaseDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid base_date %q: %w", c.BaseDate, err)
	}
	return t, nil
}

// InventoryPath returns the inventory workbook path inside DataDir
func (c *Config) InventoryPath() string {
	return c.inData(c.InventoryFile)
}

// OrdersPath returns the orders workbook path inside DataDir
func (c *Config) OrdersPath() string {
	return c.inData(c.OrdersFile)
}

// OutputPath returns where the document is written. An xlsx export swaps
// the .json extension for .xlsx.
func (c *Config) OutputPath() string {
	path := c.inData(c.OutputFile)
	if c.Format == FormatXLSX && strings.EqualFold(filepath.Ext(path), ".json") {
		path = strings.TrimSuffix(path, filepath.Ext(path)) + ".xlsx"
	}
	return path
}

func (c *Config) inData(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(c.DataDir, name)
}
