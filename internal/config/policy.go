package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Policy represents the structure of the optional policy.yaml file.
// Deployment-level choices that are easier to review in YAML than env vars.
type Policy struct {
	SharePage     SharePagePolicy    `yaml:"share_page"`
	Notifications NotificationPolicy `yaml:"notifications"`
}

// SharePagePolicy controls what the public share page displays around the
// record snapshot itself.
type SharePagePolicy struct {
	Disclaimer   string `yaml:"disclaimer"`    // Shown above the records
	SupportEmail string `yaml:"support_email"` // Contact line in the footer
	HideScans    bool   `yaml:"hide_scans"`    // Omit imaging from the rendered page
}

// NotificationPolicy controls which owner emails are sent.
type NotificationPolicy struct {
	OnCreate bool `yaml:"on_create"`
	OnRevoke bool `yaml:"on_revoke"`
}

// LoadPolicy loads the YAML policy file. Path is determined by the
// POLICY_FILE env var, defaulting to "policy.yaml". Returns defaults without
// error if the file doesn't exist.
func LoadPolicy() (*Policy, error) {
	path := getEnv("POLICY_FILE", "policy.yaml")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultPolicy(), nil
		}
		return nil, err
	}

	cfg := DefaultPolicy()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultPolicy returns the policy used when no policy.yaml is present:
// notify on both lifecycle events, show everything.
func DefaultPolicy() *Policy {
	return &Policy{
		Notifications: NotificationPolicy{OnCreate: true, OnRevoke: true},
	}
}
