package ec2config

import (
	"regexp"
	"strings"
)

const (
	FieldAMIID        = "ami-id"
	FieldAMIParameter = "ami-parameter"
)

var amiIDPattern = regexp.MustCompile(`^ami-[0-9a-f]{17}$`)

// AMIConfiguration selects the machine image, either by explicit identifier or
// by a parameter store path. Exactly one selector is set on a value returned by
// NewAMIConfiguration.
type AMIConfiguration struct {
	amiID        string
	amiParameter string
}

// NewAMIConfiguration validates the two selectors. Empty strings mean unset.
// Failures are, in order: both set (conflict), none set (missing), malformed id
// or malformed path (invalid value).
func NewAMIConfiguration(amiID, amiParameter string) (AMIConfiguration, error) {
	switch {
	case amiID != "" && amiParameter != "":
		return AMIConfiguration{}, Conflict(FieldAMIID,
			"ami-id and ami-parameter cannot both be set, choose one of them")
	case amiID == "" && amiParameter == "":
		return AMIConfiguration{}, Missing(FieldAMIID,
			"an AMI is required, set either ami-id or ami-parameter")
	case amiID != "" && !IsValidAMIID(amiID):
		return AMIConfiguration{}, InvalidValue(FieldAMIID,
			"invalid AMI id format: %s, an AMI id is 'ami-' followed by 17 lowercase hexadecimal characters", amiID)
	case amiParameter != "" && !IsValidParameterPath(amiParameter):
		return AMIConfiguration{}, InvalidValue(FieldAMIParameter,
			"invalid SSM parameter path: %s, the path must start with '/'", amiParameter)
	}

	return AMIConfiguration{amiID: amiID, amiParameter: amiParameter}, nil
}

// IsValidAMIID checks the ami-<17 hex> shape.
func IsValidAMIID(amiID string) bool {
	return amiIDPattern.MatchString(amiID)
}

// IsValidParameterPath checks that path starts with '/' and is not just '/'.
func IsValidParameterPath(path string) bool {
	return strings.HasPrefix(path, "/") && len(path) > 1
}

func (c AMIConfiguration) AMIID() string {
	return c.amiID
}

func (c AMIConfiguration) AMIParameter() string {
	return c.amiParameter
}

func (c AMIConfiguration) HasAMIID() bool {
	return c.amiID != ""
}

func (c AMIConfiguration) HasAMIParameter() bool {
	return c.amiParameter != ""
}

func (c AMIConfiguration) String() string {
	switch {
	case c.HasAMIID():
		return "ami-id=" + c.amiID
	case c.HasAMIParameter():
		return "ami-parameter=" + c.amiParameter
	default:
		return "<no AMI selector>"
	}
}
