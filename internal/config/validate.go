package config

import (
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateOMDb(); err != nil {
		return err
	}
	if err := c.validatePaths(); err != nil {
		return err
	}
	return c.validateWorkflow()
}

func (c *Config) validateOMDb() error {
	if c.OMDb.APIKey == "" {
		defaultPath, err := DefaultConfigPath()
		if err != nil {
			defaultPath = "~/.config/reelsort/config.toml"
		}
		return fmt.Errorf("omdb.api_key is required. Set OMDB_API_KEY env var or edit %s (create with 'reelsort config init')", defaultPath)
	}
	if c.OMDb.BaseURL == "" {
		return fmt.Errorf("omdb.base_url must not be empty")
	}
	return nil
}

func (c *Config) validatePaths() error {
	if strings.TrimSpace(c.Paths.LibraryDir) == "" {
		return fmt.Errorf("paths.library_dir must not be empty")
	}
	return nil
}

func (c *Config) validateWorkflow() error {
	if c.Workflow.FetchBatchSize <= 0 {
		return fmt.Errorf("workflow.fetch_batch_size must be positive (got %d)", c.Workflow.FetchBatchSize)
	}
	return nil
}
