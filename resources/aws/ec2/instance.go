package ec2

import (
	"encoding/base64"

	"github.com/pulumi/pulumi-aws/sdk/v6/go/aws/ec2"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"

	"github.com/pepperico/ssm-ec2-rdp/common/config"
	"github.com/pepperico/ssm-ec2-rdp/common/utils"
	"github.com/pepperico/ssm-ec2-rdp/resources/aws"
)

type InstanceArgs struct {
	AMI               string
	InstanceType      string
	SubnetID          pulumi.StringInput
	SecurityGroupIDs  pulumi.StringArrayInput
	InstanceProfile   pulumi.StringInput
	KeyName           string
	UserData          string
	AssociatePublicIP bool
}

// NewInstance creates an instance that only accepts IMDSv2 requests.
func NewInstance(e aws.Environment, name string, args InstanceArgs, opts ...pulumi.ResourceOption) (*ec2.Instance, error) {
	opts = append(opts, e.WithProviders(config.ProviderAWS))

	instanceArgs := &ec2.InstanceArgs{
		Ami:                      pulumi.String(args.AMI),
		InstanceType:             pulumi.String(args.InstanceType),
		SubnetId:                 args.SubnetID,
		VpcSecurityGroupIds:      args.SecurityGroupIDs,
		IamInstanceProfile:       args.InstanceProfile,
		KeyName:                  utils.StringPtr(args.KeyName),
		AssociatePublicIpAddress: pulumi.Bool(args.AssociatePublicIP),
		MetadataOptions: ec2.InstanceMetadataOptionsArgs{
			HttpEndpoint: pulumi.String("enabled"),
			HttpTokens:   pulumi.String("required"),
		},
		Tags: pulumi.StringMap{
			"Name": e.CommonNamer.DisplayName(pulumi.String(name)),
		},
	}
	if args.UserData != "" {
		instanceArgs.UserDataBase64 = pulumi.StringPtr(EncodeUserData(args.UserData))
	}

	return ec2.NewInstance(e.Ctx, e.Namer.ResourceName(name), instanceArgs, opts...)
}

// EncodeUserData returns the base64 form EC2 expects for user data.
func EncodeUserData(script string) string {
	return base64.StdEncoding.EncodeToString([]byte(script))
}
