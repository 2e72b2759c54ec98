package keypair

import (
	"fmt"
	"maps"
	"regexp"
	"strings"

	"github.com/pepperico/ssm-ec2-rdp/common/utils"
	"github.com/pepperico/ssm-ec2-rdp/components/ec2config"
)

const (
	MaxNameLength = 255

	// InstanceParameterKey is the key InstanceParameters sets the handle under.
	InstanceParameterKey = "key_pair"
)

var namePattern = regexp.MustCompile(`^[a-zA-Z0-9_.-]+$`)

// KeyPairProvisioner looks up an existing key pair by name.
type KeyPairProvisioner[H any] interface {
	KeyPair(name string) (H, error)
}

// KeyPairProvisionerFunc adapts a function to KeyPairProvisioner.
type KeyPairProvisionerFunc[H any] func(name string) (H, error)

func (f KeyPairProvisionerFunc[H]) KeyPair(name string) (H, error) {
	return f(name)
}

// Info summarizes a key pair name. Exists is nil when no lookup was made.
type Info struct {
	Name              string `json:"key_pair_name" yaml:"key_pair_name"`
	IsSpecified       bool   `json:"is_specified" yaml:"is_specified"`
	IsValidFormat     bool   `json:"is_valid_format" yaml:"is_valid_format"`
	Exists            *bool  `json:"exists" yaml:"exists"`
	RecommendedAction string `json:"recommended_action" yaml:"recommended_action"`
}

// Manager resolves optional key pairs. A blank name means no key pair and
// Session Manager only access.
type Manager[H any] struct {
	provisioner KeyPairProvisioner[H]
}

func NewManager[H any](provisioner KeyPairProvisioner[H]) *Manager[H] {
	return &Manager[H]{provisioner: provisioner}
}

// IsSpecified reports whether name is not blank.
func IsSpecified(name string) bool {
	return strings.TrimSpace(name) != ""
}

// ValidateName checks the name syntax without any lookup. A blank name is
// valid since the key pair is optional.
func ValidateName(name string) bool {
	if name == "" {
		return true
	}
	if !IsSpecified(name) || len(name) > MaxNameLength {
		return false
	}
	return namePattern.MatchString(name)
}

// Resolve returns the handle of the named key pair. ok is false, with no error,
// when name is blank.
func (m *Manager[H]) Resolve(name string) (handle H, ok bool, err error) {
	if !IsSpecified(name) {
		return handle, false, nil
	}

	if !ValidateName(name) {
		return handle, false, ec2config.InvalidValue(ec2config.FieldKeyPairName, "invalid key pair name: %s", name)
	}

	if m.provisioner == nil {
		return handle, false, ec2config.NotFound(ec2config.FieldKeyPairName, nil,
			"key pair not found: %s, no key pair provisioner", name)
	}

	handle, err = m.provisioner.KeyPair(name)
	if err != nil {
		return handle, false, ec2config.NotFound(ec2config.FieldKeyPairName, err,
			"key pair not found: %s, make sure it exists in this region", name)
	}

	return handle, true, nil
}

// Has reports whether name is specified and resolves.
func (m *Manager[H]) Has(name string) bool {
	_, ok, err := m.Resolve(name)
	return err == nil && ok
}

// Info never fails, lookup failures show up in Exists.
func (m *Manager[H]) Info(name string) Info {
	if !IsSpecified(name) {
		return Info{
			Name:              name,
			IsValidFormat:     true,
			RecommendedAction: "no key pair specified, use Session Manager for access",
		}
	}

	if !ValidateName(name) {
		return Info{
			Name:              name,
			IsSpecified:       true,
			Exists:            utils.Pointer(false),
			RecommendedAction: "the key pair name format is invalid",
		}
	}

	exists := m.Has(name)
	action := "the key pair is available"
	if !exists {
		action = fmt.Sprintf("key pair %q was not found", name)
	}
	return Info{
		Name:              name,
		IsSpecified:       true,
		IsValidFormat:     true,
		Exists:            &exists,
		RecommendedAction: action,
	}
}

// SuggestAlternatives lists what to try when the key pair is missing.
func SuggestAlternatives(name string) []string {
	if !IsSpecified(name) {
		return []string{
			"use Session Manager (recommended)",
			"create a new key pair",
			"check the name of an existing key pair",
		}
	}
	return []string{
		fmt.Sprintf("check the spelling of the key pair name: %s", name),
		"check that the key pair was created in the right region",
		"check that the key pair exists in the EC2 console",
		"consider Session Manager access, which needs no key pair",
		"create a new key pair",
	}
}

// IsRecommended is always false, Session Manager is the recommended access.
func IsRecommended(string) bool {
	return false
}

// InstanceParameters returns a copy of base with the key pair handle set under
// InstanceParameterKey when name resolves. base is not modified.
func (m *Manager[H]) InstanceParameters(name string, base map[string]any) (map[string]any, error) {
	params := maps.Clone(base)
	if params == nil {
		params = map[string]any{}
	}

	handle, ok, err := m.Resolve(name)
	if err != nil {
		return nil, err
	}
	if ok {
		params[InstanceParameterKey] = handle
	}
	return params, nil
}

// SecurityRecommendations depends only on whether a key pair was specified.
func SecurityRecommendations(name string) []string {
	recommendations := []string{
		"use Session Manager as the primary access method",
		"place the instance in a private subnet",
		"keep security group rules to the minimum required",
	}
	if IsSpecified(name) {
		return append(recommendations,
			"store the key pair safely and never share it",
			"rotate the key pair regularly",
			"use the key pair only for emergency access",
		)
	}
	return append(recommendations, "without a key pair SSH/RDP access is restricted, which improves security")
}
