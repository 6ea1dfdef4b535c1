package config

import (
	"fmt"
	"os"
)

// Config holds the deployment settings for the relay. It is loaded once in
// main and passed by value; nothing mutates it after startup.
type Config struct {
	Owner         string // repository owner
	Repo          string // repository name
	FilePath      string // path of the single file the relay updates
	Branch        string // target branch, defaults to main
	GitHubToken   string // bearer token for the Contents API
	WebhookSecret string // shared secret for x-hub-signature-256
	Port          string // listen port, defaults to 8080
}

// Load reads the relay configuration from the environment. Every missing
// required variable is reported; a partial config is never returned.
func Load() (Config, error) {
	cfg := Config{
		Owner:         os.Getenv("RELAY_GIT_OWNER"),
		Repo:          os.Getenv("RELAY_GIT_REPO"),
		FilePath:      os.Getenv("RELAY_GIT_FILE"),
		Branch:        os.Getenv("RELAY_GIT_BRANCH"),
		GitHubToken:   os.Getenv("RELAY_GIT_TOKEN"),
		WebhookSecret: os.Getenv("RELAY_WEBHOOK_SECRET"),
		Port:          os.Getenv("PORT"),
	}
	if cfg.Branch == "" {
		cfg.Branch = "main"
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}

	var missing []string
	for _, v := range []struct {
		name  string
		value string
	}{
		{"RELAY_GIT_OWNER", cfg.Owner},
		{"RELAY_GIT_REPO", cfg.Repo},
		{"RELAY_GIT_FILE", cfg.FilePath},
		{"RELAY_GIT_TOKEN", cfg.GitHubToken},
		{"RELAY_WEBHOOK_SECRET", cfg.WebhookSecret},
	} {
		if v.value == "" {
			missing = append(missing, v.name)
		}
	}
	if len(missing) > 0 {
		return Config{}, fmt.Errorf("missing required environment variables: %v", missing)
	}
	return cfg, nil
}
