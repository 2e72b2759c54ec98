package userdata

import (
	"fmt"
	"maps"

	"dario.cat/mergo"
	"github.com/samber/lo"

	"github.com/pepperico/ssm-ec2-rdp/components/ami"
	"github.com/pepperico/ssm-ec2-rdp/components/os"
)

// Description summarizes what the generated script does for an OS.
type Description struct {
	OS                 string            `json:"os_type" yaml:"os_type"`
	Features           []string          `json:"features" yaml:"features"`
	DefaultPorts       []int             `json:"default_ports" yaml:"default_ports"`
	RecommendedOptions map[string]string `json:"recommended_additional_config" yaml:"recommended_additional_config"`
}

// DefaultWindowsConfig returns the toggles enabled by default on Windows.
func DefaultWindowsConfig() Config {
	return defaults(os.WindowsFamily)
}

// DefaultLinuxConfig returns the toggles enabled by default on Linux.
func DefaultLinuxConfig() Config {
	return defaults(os.LinuxFamily)
}

func defaults(family os.Family) Config {
	cfg := Config{}
	for _, o := range options {
		if o.Family == family && o.Type == TypeBool && o.Default == true {
			cfg[o.Name] = true
		}
	}
	return cfg
}

// EffectiveConfig returns the OS defaults overridden by ext. An explicit false
// in ext turns a default off.
func EffectiveConfig(info ami.AMIInfo, ext Config) (Config, error) {
	merged := defaults(familyOf(info))
	if len(ext) == 0 {
		return merged, nil
	}
	if err := mergo.Merge(&merged, ext, mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("error merging user data defaults: %w", err)
	}
	return merged, nil
}

// effective is EffectiveConfig for callers that cannot fail. Defaults are
// applied by hand if the merge fails.
func effective(family os.Family, ext Config) Config {
	cfg, err := EffectiveConfig(ami.AMIInfo{Family: family}, ext)
	if err != nil {
		cfg = defaults(family)
		maps.Copy(cfg, ext)
	}
	return cfg
}

// SupportedConfigurations returns the options recognized for info's OS, keyed
// by name.
func SupportedConfigurations(info ami.AMIInfo) map[string]Option {
	return lo.KeyBy(optionsFor(familyOf(info)), func(o Option) string { return o.Name })
}

// Describe summarizes the generated script for info's OS.
func Describe(info ami.AMIInfo) Description {
	if familyOf(info) == os.WindowsFamily {
		return Description{
			OS: os.WindowsFamily.Label(),
			Features: []string{
				"Remote Desktop enabled",
				"Windows firewall configured for RDP",
				"SSM Agent configured",
				"security hardening",
				"completion log",
			},
			DefaultPorts: []int{3389},
			RecommendedOptions: map[string]string{
				OptionEnableIIS:      "enable the IIS web server",
				OptionOpenPorts:      "open additional ports",
				OptionCustomCommands: "custom PowerShell commands",
			},
		}
	}

	return Description{
		OS: os.LinuxFamily.Label(),
		Features: []string{
			"system update",
			"SSM Agent installed and started",
			"basic tools installed",
			"SSH hardening",
			"completion log",
		},
		DefaultPorts: []int{22},
		RecommendedOptions: map[string]string{
			OptionEnableDocker:    "set up Docker",
			OptionInstallPackages: "install additional packages",
			OptionCustomCommands:  "custom shell commands",
		},
	}
}
