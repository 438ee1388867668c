package config

import (
	"fmt"
	"os"

	"github.com/farcloser/primordium/fault"
	"gopkg.in/yaml.v3"
)

// SiteEntry is one site in the fleet inventory.
type SiteEntry struct {
	Name        string `yaml:"name"`
	URL         string `yaml:"url"`
	Username    string `yaml:"username"`
	AppPassword string `yaml:"app_password"`
}

// Inventory is the fleet declaration cam-report runs over.
type Inventory struct {
	Sites []SiteEntry `yaml:"sites"`
}

// LoadSites reads a YAML fleet inventory. Every entry needs a URL; a
// missing name falls back to the URL.
func LoadSites(path string) ([]SiteEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", fault.ErrReadFailure, err)
	}

	var inventory Inventory
	if err := yaml.Unmarshal(data, &inventory); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if len(inventory.Sites) == 0 {
		return nil, fmt.Errorf("%w: %s declares no sites", fault.ErrMissingRequirements, path)
	}

	for i := range inventory.Sites {
		entry := &inventory.Sites[i]
		if entry.URL == "" {
			return nil, fmt.Errorf("%w: site %d (%s) has no url", fault.ErrMissingRequirements, i, entry.Name)
		}

		if entry.Name == "" {
			entry.Name = entry.URL
		}
	}

	return inventory.Sites, nil
}
