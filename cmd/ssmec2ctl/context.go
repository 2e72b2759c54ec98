package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/pepperico/ssm-ec2-rdp/components/ec2config"
)

const contextSection = "context"

// loadContextFile makes the context section of path the lowest precedence
// source of the context keys.
func loadContextFile(v *viper.Viper, path string) error {
	file := viper.New()
	file.SetConfigFile(path)
	if ext := strings.TrimPrefix(filepath.Ext(path), "."); ext == "" {
		file.SetConfigType("json")
	}
	if err := file.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read context file %s: %w", path, err)
	}

	for _, key := range contextKeys {
		if value := file.GetString(contextSection + "." + key); value != "" {
			v.SetDefault(key, value)
		}
	}
	if userData := file.Get(contextSection + ".user-data"); userData != nil {
		v.SetDefault("user-data", userData)
	}
	return nil
}

// viperProvider exposes resolved values to the configuration manager.
type viperProvider struct {
	v *viper.Viper
}

var _ ec2config.ContextProvider = viperProvider{}

func (p viperProvider) Get(key string) (string, bool) {
	if !p.v.IsSet(key) {
		return "", false
	}
	value := p.v.GetString(key)
	return value, value != ""
}

func (a *app) manager() *ec2config.Manager {
	return ec2config.NewManager(viperProvider{v: a.v})
}
