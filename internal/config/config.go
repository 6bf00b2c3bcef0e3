package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration
type Config struct {
	BotToken          string        `yaml:"bot_token" envconfig:"BOT_TOKEN"`
	AdminIDs          []int64       `yaml:"admin_ids" envconfig:"ADMIN_IDS"`
	DataDir           string        `yaml:"data_dir" envconfig:"DATA_DIR"`
	StatsFile         string        `yaml:"stats_file" envconfig:"STATS_FILE"`
	BroadcastDelay    time.Duration `yaml:"broadcast_delay" envconfig:"BROADCAST_DELAY"`
	RecentOrdersLimit int           `yaml:"recent_orders_limit" envconfig:"RECENT_ORDERS_LIMIT"`
	Shop              ShopConfig    `yaml:"shop"`
}

// ShopConfig holds the shop branding used in user-facing messages
type ShopConfig struct {
	Name        string `yaml:"name" envconfig:"SHOP_NAME"`
	Description string `yaml:"description" envconfig:"SHOP_DESCRIPTION"`
}

// Load reads configuration from an optional YAML file and environment
// variables. Environment values override the file.
func Load(path string) (*Config, error) {
	// Try to load .env file (ignore error if not exists)
	_ = godotenv.Load()

	var cfg Config

	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process env: %w", err)
	}

	cfg.applyDefaults()

	// Validate required fields
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("BOT_TOKEN is required")
	}
	if len(cfg.AdminIDs) == 0 {
		return nil, fmt.Errorf("at least one admin id is required")
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.DataDir == "" {
		c.DataDir = "data"
	}
	if c.StatsFile == "" {
		c.StatsFile = "bot_stats.json"
	}
	if c.BroadcastDelay == 0 {
		c.BroadcastDelay = 100 * time.Millisecond
	}
	if c.RecentOrdersLimit == 0 {
		c.RecentOrdersLimit = 10
	}
	if c.Shop.Name == "" {
		c.Shop.Name = "🏀 Hoop Mania 🏀"
	}
	if c.Shop.Description == "" {
		c.Shop.Description = "Ваш надійний партнер у світі баскетболу! 🎯"
	}
}

// IsAdmin reports whether the given user id belongs to the admin set
func (c *Config) IsAdmin(userID int64) bool {
	for _, id := range c.AdminIDs {
		if id == userID {
			return true
		}
	}
	return false
}
