package config

import (
	"errors"
	"fmt"
	"os"
	"os/user"
	"strings"
	"sync"

	"github.com/pulumi/pulumi-random/sdk/v4/go/random"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"
	sdkconfig "github.com/pulumi/pulumi/sdk/v3/go/pulumi/config"

	"github.com/pepperico/ssm-ec2-rdp/common/namer"
	"github.com/pepperico/ssm-ec2-rdp/components/ec2config"
)

const (
	multiValueSeparator = ","

	namerNamespace       = "ssmec2"
	InfraConfigNamespace = "ssmec2"

	// Keys read by the configuration manager
	AMIIDParamName        = ec2config.FieldAMIID
	AMIParameterParamName = ec2config.FieldAMIParameter
	InstanceTypeParamName = ec2config.FieldInstanceType
	KeyPairNameParamName  = ec2config.FieldKeyPairName
	SubnetTypeParamName   = ec2config.FieldSubnetType

	// Stack options
	UserDataParamName                = "user-data"
	InstanceConnectEndpointParamName = "instanceConnectEndpoint"
	VPCCidrParamName                 = "vpcCidr"
	MaxAZsParamName                  = "maxAZs"
	EnvironmentParamName             = "environment"
	ExtraResourcesTagsParamName      = "extraResourcesTags"

	DefaultVPCCidr = "10.0.0.0/16"
	DefaultMaxAZs  = 2
)

type ProviderID string

const (
	ProviderAWS    ProviderID = "aws"
	ProviderRandom ProviderID = "random"
)

type CommonEnvironment struct {
	Ctx         *pulumi.Context
	InfraConfig *sdkconfig.Config
	CommonNamer namer.Namer

	providers     map[ProviderID]pulumi.ProviderResource
	providersLock *sync.Mutex
}

var _ ec2config.ContextProvider = &CommonEnvironment{}

func NewCommonEnvironment(ctx *pulumi.Context) CommonEnvironment {
	env := CommonEnvironment{
		Ctx:         ctx,
		InfraConfig: sdkconfig.New(ctx, InfraConfigNamespace),
		CommonNamer: namer.NewNamer(ctx, namerNamespace),

		providers:     map[ProviderID]pulumi.ProviderResource{},
		providersLock: &sync.Mutex{},
	}
	ctx.Log.Debug(fmt.Sprintf("instance type: %s", env.InfraConfig.Get(InstanceTypeParamName)), nil)
	ctx.Log.Debug(fmt.Sprintf("environment: %q", env.EnvironmentName()), nil)
	return env
}

// Get exposes the stack configuration to the configuration manager. A key
// that is not set reports ok == false.
func (e *CommonEnvironment) Get(key string) (string, bool) {
	val, err := e.InfraConfig.Try(key)
	if err != nil {
		if !errors.Is(err, sdkconfig.ErrMissingVar) {
			e.Ctx.Log.Error(fmt.Sprintf("Parameter %s not readable, err: %v", key, err), nil)
		}
		return "", false
	}
	return val, true
}

func (e *CommonEnvironment) EnvironmentName() string {
	return e.GetStringWithDefault(e.InfraConfig, EnvironmentParamName, "")
}

// UserDataConfig returns the extension config object, nil when unset.
func (e *CommonEnvironment) UserDataConfig() map[string]any {
	var cfg map[string]any
	if out, ok := e.GetObjectWithDefault(e.InfraConfig, UserDataParamName, &cfg, nil).(*map[string]any); ok && out != nil {
		return *out
	}
	return nil
}

func (e *CommonEnvironment) ResourcesTags() pulumi.StringMap {
	defaultTags := pulumi.StringMap{
		"managed-by": pulumi.String("pulumi"),
		"project":    pulumi.String(e.Ctx.Project()),
		"stack":      pulumi.String(e.Ctx.Stack()),
	}

	// Add user tag
	if u, err := user.Current(); err == nil {
		defaultTags["username"] = pulumi.String(u.Username)
	} else {
		e.Ctx.Log.Debug(fmt.Sprintf("unable to resolve current user: %v", err), nil)
	}

	// Map environment variables
	lookupVars := []string{"SSMEC2_TEAM", "SSMEC2_OWNER"}
	for _, varName := range lookupVars {
		if val := os.Getenv(varName); val != "" {
			defaultTags[strings.ToLower(strings.TrimPrefix(varName, "SSMEC2_"))] = pulumi.String(val)
		}
	}

	extraTags := e.GetStringListWithDefault(e.InfraConfig, ExtraResourcesTagsParamName, nil)
	tags, err := tagListToKeyValueMap(extraTags)
	if err != nil {
		e.Ctx.Log.Warn(fmt.Sprintf("ignoring invalid extra resource tags: %v", err), nil)
	}
	extendTagsMap(defaultTags, tags)

	return defaultTags
}

func (e *CommonEnvironment) GetBoolWithDefault(config *sdkconfig.Config, paramName string, defaultValue bool) bool {
	val, err := config.TryBool(paramName)
	if err == nil {
		return val
	}

	if !errors.Is(err, sdkconfig.ErrMissingVar) {
		e.Ctx.Log.Error(fmt.Sprintf("Parameter %s not parsable, err: %v, will use default value: %v", paramName, err, defaultValue), nil)
	}

	return defaultValue
}

func (e *CommonEnvironment) GetStringListWithDefault(config *sdkconfig.Config, paramName string, defaultValue []string) []string {
	val, err := config.Try(paramName)
	if err == nil {
		return strings.Split(val, multiValueSeparator)
	}

	if !errors.Is(err, sdkconfig.ErrMissingVar) {
		e.Ctx.Log.Error(fmt.Sprintf("Parameter %s not parsable, err: %v, will use default value: %v", paramName, err, defaultValue), nil)
	}

	return defaultValue
}

func (e *CommonEnvironment) GetStringWithDefault(config *sdkconfig.Config, paramName string, defaultValue string) string {
	val, err := config.Try(paramName)
	if err == nil {
		return val
	}

	if !errors.Is(err, sdkconfig.ErrMissingVar) {
		e.Ctx.Log.Error(fmt.Sprintf("Parameter %s not parsable, err: %v, will use default value: %v", paramName, err, defaultValue), nil)
	}

	return defaultValue
}

func (e *CommonEnvironment) GetObjectWithDefault(config *sdkconfig.Config, paramName string, outputValue, defaultValue interface{}) interface{} {
	err := config.TryObject(paramName, outputValue)
	if err == nil {
		return outputValue
	}

	if !errors.Is(err, sdkconfig.ErrMissingVar) {
		e.Ctx.Log.Error(fmt.Sprintf("Parameter %s not parsable, err: %v, will use default value: %v", paramName, err, defaultValue), nil)
	}

	return defaultValue
}

func (e *CommonEnvironment) GetIntWithDefault(config *sdkconfig.Config, paramName string, defaultValue int) int {
	val, err := config.TryInt(paramName)
	if err == nil {
		return val
	}

	if !errors.Is(err, sdkconfig.ErrMissingVar) {
		e.Ctx.Log.Error(fmt.Sprintf("Parameter %s not parsable, err: %v, will use default value: %v", paramName, err, defaultValue), nil)
	}

	return defaultValue
}

// RegisterProvider makes provider available to WithProviders.
func (e *CommonEnvironment) RegisterProvider(id ProviderID, provider pulumi.ProviderResource) {
	e.providersLock.Lock()
	defer e.providersLock.Unlock()

	e.providers[id] = provider
}

// WithProviders returns a resource option selecting the registered providers.
// Unknown ids are skipped and the default provider is used.
func (e *CommonEnvironment) WithProviders(ids ...ProviderID) pulumi.ResourceOption {
	e.providersLock.Lock()
	defer e.providersLock.Unlock()

	providers := make([]pulumi.ProviderResource, 0, len(ids))
	for _, id := range ids {
		if provider, found := e.providers[id]; found {
			providers = append(providers, provider)
		}
	}
	return pulumi.Providers(providers...)
}

// Provider returns the provider registered under id.
func (e *CommonEnvironment) Provider(id ProviderID) (pulumi.ProviderResource, error) {
	e.providersLock.Lock()
	defer e.providersLock.Unlock()

	if provider, found := e.providers[id]; found {
		return provider, nil
	}
	return nil, fmt.Errorf("provider %s not registered", id)
}

// RandomProvider returns the random provider, creating it on first use.
func (e *CommonEnvironment) RandomProvider() (pulumi.ProviderResource, error) {
	e.providersLock.Lock()
	defer e.providersLock.Unlock()

	if provider, found := e.providers[ProviderRandom]; found {
		return provider, nil
	}

	provider, err := random.NewProvider(e.Ctx, e.CommonNamer.ResourceName("random-provider"), &random.ProviderArgs{})
	if err != nil {
		return nil, err
	}
	e.providers[ProviderRandom] = provider
	return provider, nil
}
