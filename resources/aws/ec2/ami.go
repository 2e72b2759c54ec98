package ec2

import (
	"fmt"

	"github.com/pulumi/pulumi-aws/sdk/v6/go/aws/ssm"

	"github.com/pepperico/ssm-ec2-rdp/common/config"
	"github.com/pepperico/ssm-ec2-rdp/components/ami"
	"github.com/pepperico/ssm-ec2-rdp/resources/aws"
)

// GetAMIFromSSM reads an AMI id from a public or private SSM parameter.
func GetAMIFromSSM(e aws.Environment, paramName string) (string, error) {
	result, err := ssm.LookupParameter(e.Ctx, &ssm.LookupParameterArgs{
		Name: paramName,
	}, e.WithProvider(config.ProviderAWS))
	if err != nil {
		return "", err
	}
	if result.Value == "" {
		return "", fmt.Errorf("parameter %s has no value", paramName)
	}
	return result.Value, nil
}

// ImageProvisioner materializes AMI selectors into AMI ids. Explicit ids are
// used as they are; parameter paths are read from SSM at preview time.
func ImageProvisioner(e aws.Environment) ami.ImageProvisioner[string] {
	return ami.ImageProvisionerFunc[string](func(kind ami.SelectorKind, value string) (string, error) {
		switch kind {
		case ami.SelectorID:
			return value, nil
		case ami.SelectorParameter:
			return GetAMIFromSSM(e, value)
		default:
			return "", fmt.Errorf("unsupported AMI selector %s", kind)
		}
	})
}
