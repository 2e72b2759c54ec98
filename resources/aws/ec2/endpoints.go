package ec2

import (
	"github.com/pulumi/pulumi-aws/sdk/v6/go/aws/ec2"
	"github.com/pulumi/pulumi-aws/sdk/v6/go/aws/ec2transitgateway"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"

	"github.com/pepperico/ssm-ec2-rdp/common/config"
	"github.com/pepperico/ssm-ec2-rdp/resources/aws"
)

// SessionManagerServices are the endpoints the SSM Agent needs without internet access.
var SessionManagerServices = []string{"ssm", "ssmmessages", "ec2messages"}

// NewInterfaceEndpoints creates one interface endpoint with private DNS per
// service, in subnetIDs.
func NewInterfaceEndpoints(e aws.Environment, services []string, vpcID pulumi.StringInput, subnetIDs pulumi.StringArrayInput, securityGroup *ec2.SecurityGroup, opts ...pulumi.ResourceOption) ([]*ec2.VpcEndpoint, error) {
	opts = append(opts, e.WithProviders(config.ProviderAWS))

	endpoints := make([]*ec2.VpcEndpoint, 0, len(services))
	for _, service := range services {
		endpoint, err := ec2.NewVpcEndpoint(e.Ctx, e.Namer.ResourceName("endpoint", service), &ec2.VpcEndpointArgs{
			VpcId:             vpcID,
			ServiceName:       pulumi.Sprintf("com.amazonaws.%s.%s", e.Region(), service),
			VpcEndpointType:   pulumi.String("Interface"),
			PrivateDnsEnabled: pulumi.Bool(true),
			SubnetIds:         subnetIDs,
			SecurityGroupIds:  pulumi.StringArray{securityGroup.ID()},
			Tags: pulumi.StringMap{
				"Name": e.CommonNamer.DisplayName(pulumi.String(service)),
			},
		}, opts...)
		if err != nil {
			return nil, err
		}
		endpoints = append(endpoints, endpoint)
	}
	return endpoints, nil
}

// NewInstanceConnectEndpoint creates an EC2 Instance Connect Endpoint in
// subnetID. The client IP is not preserved so the instance only sees the
// endpoint security group.
func NewInstanceConnectEndpoint(e aws.Environment, name string, subnetID pulumi.StringInput, securityGroup *ec2.SecurityGroup, opts ...pulumi.ResourceOption) (*ec2transitgateway.InstanceConnectEndpoint, error) {
	opts = append(opts, e.WithProviders(config.ProviderAWS))
	return ec2transitgateway.NewInstanceConnectEndpoint(e.Ctx, e.Namer.ResourceName("eice", name), &ec2transitgateway.InstanceConnectEndpointArgs{
		SubnetId:         subnetID,
		SecurityGroupIds: pulumi.StringArray{securityGroup.ID()},
		PreserveClientIp: pulumi.Bool(false),
		Tags: pulumi.StringMap{
			"Name": e.CommonNamer.DisplayName(pulumi.String(name)),
		},
	}, opts...)
}
