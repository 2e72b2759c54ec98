package main

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pepperico/ssm-ec2-rdp/components/ami"
	"github.com/pepperico/ssm-ec2-rdp/components/ec2config"
	"github.com/pepperico/ssm-ec2-rdp/components/instancetype"
	"github.com/pepperico/ssm-ec2-rdp/components/keypair"
	"github.com/pepperico/ssm-ec2-rdp/components/userdata"
	"github.com/pepperico/ssm-ec2-rdp/resources/aws/ec2api"
)

const checkKeyPairFlag = "check-key-pair"

type keyPairReport struct {
	Name              string   `json:"name,omitempty" yaml:"name,omitempty"`
	Specified         bool     `json:"specified" yaml:"specified"`
	ValidFormat       bool     `json:"valid_format" yaml:"valid_format"`
	Exists            *bool    `json:"exists,omitempty" yaml:"exists,omitempty"`
	RecommendedAction string   `json:"recommended_action" yaml:"recommended_action"`
	Alternatives      []string `json:"alternatives,omitempty" yaml:"alternatives,omitempty"`
	Security          []string `json:"security_recommendations" yaml:"security_recommendations"`
}

type amiReport struct {
	Source      string `json:"source" yaml:"source"`
	Kind        string `json:"kind" yaml:"kind"`
	OS          string `json:"os" yaml:"os"`
	Description string `json:"description" yaml:"description"`
}

type validateReport struct {
	Configuration    string                 `json:"configuration" yaml:"configuration"`
	InstanceType     instancetype.Info      `json:"instance_type" yaml:"instance_type"`
	AMI              amiReport              `json:"ami" yaml:"ami"`
	SubnetType       string                 `json:"subnet_type" yaml:"subnet_type"`
	KeyPair          keyPairReport          `json:"key_pair" yaml:"key_pair"`
	AccessMethods    []keypair.AccessMethod `json:"access_methods" yaml:"access_methods"`
	UserDataWarnings []string               `json:"user_data_warnings,omitempty" yaml:"user_data_warnings,omitempty"`
	UserData         userdata.Description   `json:"user_data" yaml:"user_data"`
}

func (a *app) newValidateCmd() *cobra.Command {
	var format string
	var checkKeyPair bool

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the configuration the stack would read",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var provisioner keypair.KeyPairProvisioner[ec2api.KeyPair]
			if checkKeyPair {
				client, err := ec2api.NewClientFromEnv(cmd.Context(), a.v.GetString(regionFlag))
				if err != nil {
					return err
				}
				provisioner = client.Provisioner(cmd.Context())
			}

			report, err := a.validate(cmd.Context(), provisioner)
			if err != nil {
				return err
			}
			return render(a.out, format, report)
		},
	}
	cmd.Flags().StringVarP(&format, "output", "o", formatYAML, "Output format (yaml, json)")
	cmd.Flags().BoolVar(&checkKeyPair, checkKeyPairFlag, false, "Check that the key pair exists, using AWS credentials")

	return cmd
}

// validate builds the report. Without a provisioner the key pair is only
// checked for syntax.
func (a *app) validate(_ context.Context, provisioner keypair.KeyPairProvisioner[ec2api.KeyPair]) (*validateReport, error) {
	manager := a.manager()

	if complete, missing := manager.CheckCompleteness(); !complete {
		a.log.Warn().Str("missing", strings.Join(missing, ", ")).Msg("configuration is incomplete")
	}

	cfg, err := manager.Configuration()
	if err != nil {
		return nil, err
	}
	a.log.Debug().Str("configuration", cfg.String()).Msg("configuration is valid")

	typeInfo, err := instancetype.ValidateAndGetInfo(cfg.Instance.InstanceType())
	if err != nil {
		return nil, &ec2config.ConfigurationError{Err: err}
	}

	amiInfo, err := ami.Info(cfg.AMI)
	if err != nil {
		return nil, err
	}

	report := &validateReport{
		Configuration: cfg.String(),
		InstanceType:  typeInfo,
		AMI: amiReport{
			Source:      amiInfo.Source,
			Kind:        amiInfo.Kind.String(),
			OS:          amiInfo.Family.Label(),
			Description: amiInfo.Description,
		},
		SubnetType: string(cfg.Instance.SubnetType()),
		UserData:   userdata.Describe(amiInfo),
	}

	name := cfg.Instance.KeyPairName()
	keyPairs := keypair.NewManager(provisioner)
	report.KeyPair = keyPairReport{
		Name:              name,
		Specified:         keypair.IsSpecified(name),
		ValidFormat:       keypair.ValidateName(name),
		RecommendedAction: "key pair existence was not checked",
		Security:          keypair.SecurityRecommendations(name),
	}
	if provisioner != nil || !keypair.IsSpecified(name) {
		info := keyPairs.Info(name)
		report.KeyPair.Exists = info.Exists
		report.KeyPair.RecommendedAction = info.RecommendedAction
		if info.Exists != nil && !*info.Exists {
			report.KeyPair.Alternatives = keypair.SuggestAlternatives(name)
		}
	}
	report.AccessMethods = keyPairs.AccessMethods(name)

	if ext := a.v.Get("user-data"); ext != nil {
		report.UserDataWarnings = userdata.Validate(amiInfo, ext)
		for _, warning := range report.UserDataWarnings {
			a.log.Warn().Msg(warning)
		}
	}

	return report, nil
}
