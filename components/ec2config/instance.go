package ec2config

import (
	"fmt"
	"regexp"
)

const (
	FieldInstanceType = "instance-type"
	FieldKeyPairName  = "key-pair-name"
	FieldSubnetType   = "subnet-type"
)

var (
	instanceTypePattern = regexp.MustCompile(`^[a-z]+[0-9]*[a-z]*\.(nano|micro|small|medium|large|xlarge|[0-9]+xlarge)$`)
	keyPairNamePattern  = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
)

// SubnetType is the subnet tier the instance is placed in.
type SubnetType string

const (
	SubnetPrivate SubnetType = "private"
	SubnetPublic  SubnetType = "public"

	DefaultSubnetType = SubnetPrivate
)

func (s SubnetType) IsValid() bool {
	return s == SubnetPrivate || s == SubnetPublic
}

// InstanceConfiguration describes the instance shape and access.
type InstanceConfiguration struct {
	instanceType string
	keyPairName  string
	subnetType   SubnetType
}

// NewInstanceConfiguration validates the instance inputs. An empty keyPairName
// means no key pair; an empty subnetType means DefaultSubnetType.
func NewInstanceConfiguration(instanceType, keyPairName string, subnetType SubnetType) (InstanceConfiguration, error) {
	if instanceType == "" {
		return InstanceConfiguration{}, Missing(FieldInstanceType, "instance-type is required")
	}

	if !instanceTypePattern.MatchString(instanceType) {
		return InstanceConfiguration{}, InvalidValue(FieldInstanceType,
			"invalid instance type format: %s, e.g. t3.medium, m5.large, c5.xlarge", instanceType)
	}

	if keyPairName != "" && !keyPairNamePattern.MatchString(keyPairName) {
		return InstanceConfiguration{}, InvalidValue(FieldKeyPairName,
			"invalid key pair name: %s, only letters, digits, '-' and '_' are allowed", keyPairName)
	}

	if subnetType == "" {
		subnetType = DefaultSubnetType
	}
	if !subnetType.IsValid() {
		return InstanceConfiguration{}, InvalidValue(FieldSubnetType,
			"invalid subnet type: %s, use '%s' or '%s'", subnetType, SubnetPrivate, SubnetPublic)
	}

	return InstanceConfiguration{
		instanceType: instanceType,
		keyPairName:  keyPairName,
		subnetType:   subnetType,
	}, nil
}

func (c InstanceConfiguration) InstanceType() string {
	return c.instanceType
}

func (c InstanceConfiguration) KeyPairName() string {
	return c.keyPairName
}

func (c InstanceConfiguration) HasKeyPair() bool {
	return c.keyPairName != ""
}

func (c InstanceConfiguration) SubnetType() SubnetType {
	return c.subnetType
}

func (c InstanceConfiguration) IsPublic() bool {
	return c.subnetType == SubnetPublic
}

func (c InstanceConfiguration) String() string {
	keyPair := c.keyPairName
	if keyPair == "" {
		keyPair = "<none>"
	}
	return fmt.Sprintf("instance-type=%s key-pair-name=%s subnet-type=%s", c.instanceType, keyPair, c.subnetType)
}
