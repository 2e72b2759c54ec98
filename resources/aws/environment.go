package aws

import (
	"fmt"

	sdkaws "github.com/pulumi/pulumi-aws/sdk/v6/go/aws"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"
	sdkconfig "github.com/pulumi/pulumi/sdk/v3/go/pulumi/config"

	"github.com/pepperico/ssm-ec2-rdp/common/config"
	"github.com/pepperico/ssm-ec2-rdp/common/namer"
)

const (
	awsConfigNamespace = "aws"
	awsRegionParamName = "region"
)

type Environment struct {
	*config.CommonEnvironment

	Namer namer.Namer

	awsConfig  *sdkconfig.Config
	envDefault environmentDefault
}

func WithCommonEnvironment(e *config.CommonEnvironment) func(*Environment) {
	return func(awsEnv *Environment) {
		awsEnv.CommonEnvironment = e
	}
}

func NewEnvironment(ctx *pulumi.Context, options ...func(*Environment)) (Environment, error) {
	env := Environment{
		Namer:     namer.NewNamer(ctx, awsConfigNamespace),
		awsConfig: sdkconfig.New(ctx, awsConfigNamespace),
	}

	for _, opt := range options {
		opt(&env)
	}

	if env.CommonEnvironment == nil {
		commonEnv := config.NewCommonEnvironment(ctx)
		env.CommonEnvironment = &commonEnv
	}

	envDefault, err := getEnvironmentDefault(env.EnvironmentName())
	if err != nil {
		return Environment{}, err
	}
	env.envDefault = envDefault

	awsProvider, err := sdkaws.NewProvider(ctx, string(config.ProviderAWS), &sdkaws.ProviderArgs{
		Region: pulumi.String(env.Region()),
		DefaultTags: sdkaws.ProviderDefaultTagsArgs{
			Tags: env.ResourcesTags(),
		},
		SkipCredentialsValidation: pulumi.BoolPtr(false),
		SkipMetadataApiCheck:      pulumi.BoolPtr(false),
	})
	if err != nil {
		return Environment{}, fmt.Errorf("error creating aws provider: %w", err)
	}
	env.RegisterProvider(config.ProviderAWS, awsProvider)

	return env, nil
}

// WithProvider selects the registered provider for a resource or an invoke.
func (e *Environment) WithProvider(id config.ProviderID) pulumi.ResourceOrInvokeOption {
	provider, err := e.Provider(id)
	if err != nil {
		e.Ctx.Log.Debug(err.Error(), nil)
	}
	return pulumi.Provider(provider)
}

func (e *Environment) Region() string {
	return e.GetStringWithDefault(e.awsConfig, awsRegionParamName, e.envDefault.aws.region)
}

func (e *Environment) VPCCidr() string {
	return e.GetStringWithDefault(e.InfraConfig, config.VPCCidrParamName, e.envDefault.network.vpcCidr)
}

func (e *Environment) MaxAZs() int {
	return e.GetIntWithDefault(e.InfraConfig, config.MaxAZsParamName, e.envDefault.network.maxAZs)
}

func (e *Environment) InstanceConnectEndpoint() bool {
	return e.GetBoolWithDefault(e.InfraConfig, config.InstanceConnectEndpointParamName, e.envDefault.network.instanceConnectEndpoint)
}
