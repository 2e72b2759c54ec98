package ssmec2

import (
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"

	"github.com/pepperico/ssm-ec2-rdp/common/utils"
	"github.com/pepperico/ssm-ec2-rdp/components"
	"github.com/pepperico/ssm-ec2-rdp/components/host"
	"github.com/pepperico/ssm-ec2-rdp/resources/aws"
	"github.com/pepperico/ssm-ec2-rdp/resources/aws/ec2"
	"github.com/pepperico/ssm-ec2-rdp/resources/aws/iam"
)

const hostName = "host"

func Run(ctx *pulumi.Context) error {
	env, err := aws.NewEnvironment(ctx)
	if err != nil {
		return err
	}

	plan, err := NewPlan(env)
	if err != nil {
		return err
	}

	h, err := NewHost(env, hostName, plan)
	if err != nil {
		return err
	}
	if err := h.Export(ctx, nil); err != nil {
		return err
	}

	region := env.Region()
	ctx.Export("instance-id", h.InstanceID)
	ctx.Export("ami-os", pulumi.String(plan.AMI.Family.Label()))
	ctx.Export("ssm-command", commandOutput(h.InstanceID, func(id string) string {
		return ssmCommand(id, region)
	}))
	if plan.AMI.IsWindows() {
		ctx.Export("rdp-tunnel-command", commandOutput(h.InstanceID, func(id string) string {
			return rdpTunnelCommand(id, region, ec2.RDPPort)
		}))
		if env.InstanceConnectEndpoint() {
			ctx.Export("eice-tunnel-command", commandOutput(h.InstanceID, func(id string) string {
				return eiceTunnelCommand(id, region, ec2.RDPPort)
			}))
		}
	}

	return nil
}

// NewHost creates the network, the Session Manager plumbing and the instance
// described by plan.
func NewHost(e aws.Environment, name string, plan *Plan) (*host.Host, error) {
	return components.NewComponent(*e.CommonEnvironment, e.Namer.ResourceName(name), func(c *host.Host) error {
		parent := pulumi.Parent(c)

		vpc, err := ec2.NewVPC(e, "vpc", parent)
		if err != nil {
			return err
		}

		endpointSG, err := ec2.NewSecurityGroup(e, "endpoints", "HTTPS to the Session Manager endpoints",
			vpc.VpcId, ec2.HTTPSFromCidr(e.VPCCidr()), parent)
		if err != nil {
			return err
		}
		endpoints, err := ec2.NewInterfaceEndpoints(e, ec2.SessionManagerServices, vpc.VpcId, vpc.IsolatedSubnetIds, endpointSG, parent)
		if err != nil {
			return err
		}

		instanceSG, err := ec2.NewSecurityGroup(e, name, "Instance reachable through Session Manager", vpc.VpcId, nil, parent)
		if err != nil {
			return err
		}

		if e.InstanceConnectEndpoint() {
			eiceSG, err := ec2.NewSecurityGroup(e, "eice", "EC2 Instance Connect Endpoint", vpc.VpcId, nil, parent)
			if err != nil {
				return err
			}
			if _, err := ec2.AllowTCPFromSecurityGroup(e, "eice-rdp", instanceSG, eiceSG, ec2.RDPPort, parent); err != nil {
				return err
			}
			if _, err := ec2.NewInstanceConnectEndpoint(e, name, vpc.IsolatedSubnetIds.Index(pulumi.Int(0)), eiceSG, parent); err != nil {
				return err
			}
		}

		profile, err := iam.NewSSMInstanceProfile(e, name, parent)
		if err != nil {
			return err
		}

		subnetIDs := vpc.IsolatedSubnetIds
		if plan.Configuration.Instance.IsPublic() {
			subnetIDs = vpc.PublicSubnetIds
		}
		subnetID, err := ec2.RandomSubnet(e, name, subnetIDs)
		if err != nil {
			return err
		}

		instance, err := ec2.NewInstance(e, name, ec2.InstanceArgs{
			AMI:               plan.AMIID,
			InstanceType:      plan.Configuration.Instance.InstanceType(),
			SubnetID:          subnetID,
			SecurityGroupIDs:  pulumi.StringArray{instanceSG.ID()},
			InstanceProfile:   profile.Name,
			KeyName:           plan.KeyPair.Name,
			UserData:          plan.UserData,
			AssociatePublicIP: plan.Configuration.Instance.IsPublic(),
		}, parent, utils.PulumiDependsOn(endpoints...))
		if err != nil {
			return err
		}

		c.InstanceID = instance.ID().ToStringOutput()
		c.AMIID = pulumi.String(plan.AMIID).ToStringOutput()
		c.AMISource = pulumi.String(plan.AMI.Description).ToStringOutput()
		c.OSFamily = pulumi.String(plan.AMI.Family.String()).ToStringOutput()
		c.InstanceType = instance.InstanceType
		c.SubnetType = pulumi.String(string(plan.Configuration.Instance.SubnetType())).ToStringOutput()
		c.PrivateIP = instance.PrivateIp
		c.PublicIP = instance.PublicIp
		c.AvailabilityZone = instance.AvailabilityZone
		c.KeyPairName = pulumi.String(plan.KeyPair.Name).ToStringOutput()
		c.Region = pulumi.String(e.Region()).ToStringOutput()

		return nil
	})
}

// ConfigCheckRun validates the configuration and exports the resolved plan
// without creating any infrastructure.
func ConfigCheckRun(ctx *pulumi.Context) error {
	env, err := aws.NewEnvironment(ctx)
	if err != nil {
		return err
	}

	plan, err := NewPlan(env)
	if err != nil {
		return err
	}

	ctx.Export("configuration", pulumi.String(plan.Configuration.String()))
	ctx.Export("ami-id", pulumi.String(plan.AMIID))
	ctx.Export("ami-description", pulumi.String(plan.AMI.Description))
	ctx.Export("ami-os", pulumi.String(plan.AMI.Family.Label()))
	ctx.Export("instance-type-category", pulumi.String(plan.InstanceType.Category))
	ctx.Export("instance-type-burstable", pulumi.Bool(plan.InstanceType.IsBurstable))
	ctx.Export("key-pair", pulumi.String(plan.KeyPairInfo.RecommendedAction))
	ctx.Export("access-methods", accessMethodNames(plan))
	ctx.Export("user-data-warnings", pulumi.ToStringArray(plan.UserDataWarnings))
	ctx.Export("subnet-type", pulumi.String(string(plan.Configuration.Instance.SubnetType())))
	ctx.Export("region", pulumi.String(env.Region()))
	ctx.Export("vpc-cidr", pulumi.String(env.VPCCidr()))
	return nil
}

func accessMethodNames(plan *Plan) pulumi.StringArray {
	names := pulumi.StringArray{}
	for _, method := range plan.AccessMethods {
		if method.Available {
			names = append(names, pulumi.String(method.Name))
		}
	}
	return names
}
