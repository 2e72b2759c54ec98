package ec2config

import (
	"errors"
	"fmt"
)

// EC2Configuration is the validated aggregate of a deployment run.
type EC2Configuration struct {
	AMI      AMIConfiguration
	Instance InstanceConfiguration
}

// Values are the raw, loosely typed inputs. An empty field means unset.
type Values struct {
	AMIID        string
	AMIParameter string
	InstanceType string
	KeyPairName  string
	SubnetType   string
}

// NewEC2Configuration validates the AMI selectors, then the instance inputs.
// The first failure is returned wrapped in a ConfigurationError.
func NewEC2Configuration(v Values) (EC2Configuration, error) {
	amiConfig, err := NewAMIConfiguration(v.AMIID, v.AMIParameter)
	if err != nil {
		return EC2Configuration{}, wrapConfigurationError(err)
	}

	instanceConfig, err := NewInstanceConfiguration(v.InstanceType, v.KeyPairName, SubnetType(v.SubnetType))
	if err != nil {
		return EC2Configuration{}, wrapConfigurationError(err)
	}

	return EC2Configuration{AMI: amiConfig, Instance: instanceConfig}, nil
}

func wrapConfigurationError(err error) error {
	var configErr *ConfigurationError
	if errors.As(err, &configErr) {
		return err
	}
	return &ConfigurationError{Err: err}
}

func (c EC2Configuration) String() string {
	return fmt.Sprintf("%s %s", c.AMI.String(), c.Instance.String())
}
