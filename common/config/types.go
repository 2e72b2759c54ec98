package config

import (
	"gopkg.in/yaml.v3"
)

const awsRegionKey = "aws:region"

// StackConfig is the content of a Pulumi.<stack>.yaml file.
type StackConfig struct {
	Config map[string]any `yaml:"config"`
}

// Key returns name in the infra namespace, as written in a stack file.
func Key(name string) string {
	return InfraConfigNamespace + ":" + name
}

// NewStackConfig namespaces values under the infra namespace. Empty strings and
// nil values are skipped. An empty region is left out.
func NewStackConfig(region string, values map[string]any) StackConfig {
	cfg := StackConfig{Config: map[string]any{}}
	if region != "" {
		cfg.Config[awsRegionKey] = region
	}
	for name, value := range values {
		if value == nil || value == "" {
			continue
		}
		cfg.Config[Key(name)] = value
	}
	return cfg
}

// YAML renders the stack file.
func (c StackConfig) YAML() (string, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
