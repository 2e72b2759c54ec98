package ec2

import (
	awsxec2 "github.com/pulumi/pulumi-awsx/sdk/v2/go/awsx/ec2"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"

	"github.com/pepperico/ssm-ec2-rdp/common/config"
	"github.com/pepperico/ssm-ec2-rdp/resources/aws"
)

const subnetCidrMask = 24

// NewVPC creates a VPC with one public and one isolated subnet per availability
// zone and no NAT gateway. Isolated subnets reach AWS services through
// interface endpoints only.
func NewVPC(e aws.Environment, name string, opts ...pulumi.ResourceOption) (*awsxec2.Vpc, error) {
	opts = append(opts, e.WithProviders(config.ProviderAWS))
	return awsxec2.NewVpc(e.Ctx, e.Namer.ResourceName(name), &awsxec2.VpcArgs{
		CidrBlock:                 pulumi.StringRef(e.VPCCidr()),
		NumberOfAvailabilityZones: pulumi.IntRef(e.MaxAZs()),
		NatGateways: &awsxec2.NatGatewayConfigurationArgs{
			Strategy: awsxec2.NatGatewayStrategyNone,
		},
		SubnetSpecs: []awsxec2.SubnetSpecArgs{
			{
				Type:     awsxec2.SubnetTypePublic,
				Name:     pulumi.StringRef("public"),
				CidrMask: pulumi.IntRef(subnetCidrMask),
			},
			{
				Type:     awsxec2.SubnetTypeIsolated,
				Name:     pulumi.StringRef("isolated"),
				CidrMask: pulumi.IntRef(subnetCidrMask),
			},
		},
		EnableDnsHostnames: pulumi.BoolPtr(true),
		EnableDnsSupport:   pulumi.BoolPtr(true),
		Tags: pulumi.StringMap{
			"Name": e.CommonNamer.DisplayName(pulumi.String(name)),
		},
	}, opts...)
}
