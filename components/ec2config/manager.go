package ec2config

import "strings"

// CombinedAMIKey is reported by CheckCompleteness when neither AMI selector is set.
const CombinedAMIKey = FieldAMIID + " or " + FieldAMIParameter

// ContextKeys are the values the Manager extracts from its provider, in order.
var ContextKeys = []string{FieldAMIID, FieldAMIParameter, FieldInstanceType, FieldKeyPairName}

// ContextProvider is the external source of raw configuration values.
// A missing key returns ok == false.
type ContextProvider interface {
	Get(key string) (value string, ok bool)
}

// MapProvider is a ContextProvider backed by a plain map.
type MapProvider map[string]string

func (m MapProvider) Get(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

// Manager turns the provider's raw values into an EC2Configuration.
type Manager struct {
	provider ContextProvider
}

func NewManager(provider ContextProvider) *Manager {
	return &Manager{provider: provider}
}

// ContextValue returns the value of key with surrounding whitespace removed. A
// whitespace-only value is present but empty, so HasContextValue reports false.
func (m *Manager) ContextValue(key string) (string, bool) {
	if m.provider == nil {
		return "", false
	}
	v, ok := m.provider.Get(key)
	if !ok {
		return "", false
	}
	return strings.TrimSpace(v), true
}

// HasContextValue reports whether key is present and non-empty.
func (m *Manager) HasContextValue(key string) bool {
	v, ok := m.ContextValue(key)
	return ok && v != ""
}

// Extract returns exactly the four ContextKeys. Absent keys map to "".
func (m *Manager) Extract() map[string]string {
	values := make(map[string]string, len(ContextKeys))
	for _, key := range ContextKeys {
		v, _ := m.ContextValue(key)
		values[key] = v
	}
	return values
}

// Values returns the extracted keys plus the subnet placement.
func (m *Manager) Values() Values {
	extracted := m.Extract()
	subnetType, _ := m.ContextValue(FieldSubnetType)
	return Values{
		AMIID:        extracted[FieldAMIID],
		AMIParameter: extracted[FieldAMIParameter],
		InstanceType: extracted[FieldInstanceType],
		KeyPairName:  extracted[FieldKeyPairName],
		SubnetType:   subnetType,
	}
}

// Configuration builds and validates the EC2Configuration. Any failure is a
// *ConfigurationError.
func (m *Manager) Configuration() (EC2Configuration, error) {
	return NewEC2Configuration(m.Values())
}

// CheckCompleteness never fails. It lists the required keys that are missing:
// "instance-type", and CombinedAMIKey once when both AMI selectors are absent.
func (m *Manager) CheckCompleteness() (bool, []string) {
	var missing []string

	if !m.HasContextValue(FieldInstanceType) {
		missing = append(missing, FieldInstanceType)
	}
	if !m.HasContextValue(FieldAMIID) && !m.HasContextValue(FieldAMIParameter) {
		missing = append(missing, CombinedAMIKey)
	}

	return len(missing) == 0, missing
}
