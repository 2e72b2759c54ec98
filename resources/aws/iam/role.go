package iam

import (
	"github.com/pulumi/pulumi-aws/sdk/v6/go/aws/iam"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"

	"github.com/pepperico/ssm-ec2-rdp/common/config"
	"github.com/pepperico/ssm-ec2-rdp/resources/aws"
)

const (
	EC2ServicePrincipal = "ec2.amazonaws.com"

	SSMManagedInstanceCorePolicy = "AmazonSSMManagedInstanceCore"

	// Role names are limited to 64 characters, Pulumi appends an 8 character suffix.
	iamNameMaxLen = 56
)

func GetAWSPrincipalAssumeRole(e aws.Environment, serviceName []string) (*iam.GetPolicyDocumentResult, error) {
	return iam.GetPolicyDocument(e.Ctx, &iam.GetPolicyDocumentArgs{
		Statements: []iam.GetPolicyDocumentStatement{
			{
				Actions: []string{
					"sts:AssumeRole",
				},
				Principals: []iam.GetPolicyDocumentStatementPrincipal{
					{
						Type:        "Service",
						Identifiers: serviceName,
					},
				},
			},
		},
	}, e.WithProvider(config.ProviderAWS))
}

// AWSManagedPolicyARN returns the ARN of an AWS managed policy.
func AWSManagedPolicyARN(policy string) string {
	return "arn:aws:iam::aws:policy/" + policy
}

// NewSSMInstanceProfile creates an EC2 role carrying the Session Manager core
// policy and the instance profile wrapping it.
func NewSSMInstanceProfile(e aws.Environment, name string, opts ...pulumi.ResourceOption) (*iam.InstanceProfile, error) {
	opts = append(opts, e.WithProviders(config.ProviderAWS))

	assumeRole, err := GetAWSPrincipalAssumeRole(e, []string{EC2ServicePrincipal})
	if err != nil {
		return nil, err
	}

	role, err := iam.NewRole(e.Ctx, e.Namer.ResourceNameWithMaxLen(iamNameMaxLen, "role", name), &iam.RoleArgs{
		AssumeRolePolicy: pulumi.String(assumeRole.Json),
		ManagedPolicyArns: pulumi.StringArray{
			pulumi.String(AWSManagedPolicyARN(SSMManagedInstanceCorePolicy)),
		},
	}, opts...)
	if err != nil {
		return nil, err
	}

	return iam.NewInstanceProfile(e.Ctx, e.Namer.ResourceNameWithMaxLen(iamNameMaxLen, "profile", name), &iam.InstanceProfileArgs{
		Role: role.Name,
	}, opts...)
}
