package aws

import (
	"fmt"

	"github.com/pulumi/pulumi-aws/sdk/v6/go/aws"

	"github.com/pepperico/ssm-ec2-rdp/common/config"
)

const (
	defaultEnv = ""
	tokyoEnv   = "aws/tokyo"
	sandboxEnv = "aws/sandbox"
)

type environmentDefault struct {
	aws     awsProvider
	network network
}

type awsProvider struct {
	region string
}

type network struct {
	vpcCidr                 string
	maxAZs                  int
	instanceConnectEndpoint bool
}

func getEnvironmentDefault(envName string) (environmentDefault, error) {
	switch envName {
	case defaultEnv, tokyoEnv:
		return tokyoDefault(), nil
	case sandboxEnv:
		return sandboxDefault(), nil
	default:
		return environmentDefault{}, fmt.Errorf("unknown environment: %s, known environments: %s, %s", envName, tokyoEnv, sandboxEnv)
	}
}

func tokyoDefault() environmentDefault {
	return environmentDefault{
		aws: awsProvider{
			region: string(aws.RegionAPNortheast1),
		},
		network: network{
			vpcCidr:                 config.DefaultVPCCidr,
			maxAZs:                  config.DefaultMaxAZs,
			instanceConnectEndpoint: true,
		},
	}
}

func sandboxDefault() environmentDefault {
	return environmentDefault{
		aws: awsProvider{
			region: string(aws.RegionUSEast1),
		},
		network: network{
			vpcCidr:                 "10.42.0.0/16",
			maxAZs:                  config.DefaultMaxAZs,
			instanceConnectEndpoint: false,
		},
	}
}
