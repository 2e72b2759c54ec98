package ec2

import (
	"github.com/pulumi/pulumi-aws/sdk/v6/go/aws/ec2"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"

	"github.com/pepperico/ssm-ec2-rdp/common/config"
	"github.com/pepperico/ssm-ec2-rdp/resources/aws"
)

const (
	RDPPort   = 3389
	HTTPSPort = 443
)

var allowAllEgress = ec2.SecurityGroupEgressArray{
	ec2.SecurityGroupEgressArgs{
		Protocol:   pulumi.String("-1"),
		FromPort:   pulumi.Int(0),
		ToPort:     pulumi.Int(0),
		CidrBlocks: pulumi.StringArray{pulumi.String("0.0.0.0/0")},
	},
}

// NewSecurityGroup creates a security group allowing all outbound traffic and
// the given inbound rules. Without inline ingress rules the group can receive
// rules from AllowTCPFromSecurityGroup.
func NewSecurityGroup(e aws.Environment, name, description string, vpcID pulumi.StringInput, ingress ec2.SecurityGroupIngressArray, opts ...pulumi.ResourceOption) (*ec2.SecurityGroup, error) {
	opts = append(opts, e.WithProviders(config.ProviderAWS))

	args := &ec2.SecurityGroupArgs{
		Description: pulumi.String(description),
		VpcId:       vpcID,
		Egress:      allowAllEgress,
		Tags: pulumi.StringMap{
			"Name": e.CommonNamer.DisplayName(pulumi.String(name)),
		},
	}
	if len(ingress) > 0 {
		args.Ingress = ingress
	}

	return ec2.NewSecurityGroup(e.Ctx, e.Namer.ResourceName("sg", name), args, opts...)
}

// HTTPSFromCidr allows HTTPS from cidr, used for the interface endpoints.
func HTTPSFromCidr(cidr string) ec2.SecurityGroupIngressArray {
	return ec2.SecurityGroupIngressArray{
		ec2.SecurityGroupIngressArgs{
			Description: pulumi.String("HTTPS from the VPC"),
			Protocol:    pulumi.String("tcp"),
			FromPort:    pulumi.Int(HTTPSPort),
			ToPort:      pulumi.Int(HTTPSPort),
			CidrBlocks:  pulumi.StringArray{pulumi.String(cidr)},
		},
	}
}

// AllowTCPFromSecurityGroup adds an ingress rule on target for port from source.
func AllowTCPFromSecurityGroup(e aws.Environment, name string, target, source *ec2.SecurityGroup, port int, opts ...pulumi.ResourceOption) (*ec2.SecurityGroupRule, error) {
	opts = append(opts, e.WithProviders(config.ProviderAWS))
	return ec2.NewSecurityGroupRule(e.Ctx, e.Namer.ResourceName("sg-rule", name), &ec2.SecurityGroupRuleArgs{
		Type:                  pulumi.String("ingress"),
		Protocol:              pulumi.String("tcp"),
		FromPort:              pulumi.Int(port),
		ToPort:                pulumi.Int(port),
		SecurityGroupId:       target.ID(),
		SourceSecurityGroupId: source.ID(),
		Description:           pulumi.Sprintf("TCP %d from %s", port, name),
	}, opts...)
}
