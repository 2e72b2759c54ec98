package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/pepperico/ssm-ec2-rdp/common/utils"
	"github.com/pepperico/ssm-ec2-rdp/components/ami"
	"github.com/pepperico/ssm-ec2-rdp/components/ec2config"
	"github.com/pepperico/ssm-ec2-rdp/components/userdata"
)

func (a *app) newUserDataCmd() *cobra.Command {
	var extensionFiles []string
	var strict bool

	cmd := &cobra.Command{
		Use:   "userdata",
		Short: "Print the user data script generated for the configured AMI",
		Long: `Print the user data script generated for the configured AMI.

Extension files are YAML (or JSON) mappings of user data options. When several
are given they are merged in order, later files win.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			values := a.manager().Values()
			amiCfg, err := ec2config.NewAMIConfiguration(values.AMIID, values.AMIParameter)
			if err != nil {
				return &ec2config.ConfigurationError{Err: err}
			}
			info, err := ami.Info(amiCfg)
			if err != nil {
				return err
			}

			ext, err := a.extensionConfig(extensionFiles)
			if err != nil {
				return err
			}

			if ext != nil {
				problems := userdata.Validate(info, ext)
				for _, problem := range problems {
					a.log.Warn().Msg(problem)
				}
				if strict && len(problems) > 0 {
					return ec2config.InvalidValue("user-data", "%d invalid user data options", len(problems))
				}
			}

			cfg, _ := ext.(map[string]any)
			a.log.Info().Str("ami", info.Description).Str("os", info.Family.Label()).Msg("generating user data")
			_, err = fmt.Fprint(a.out, userdata.Generate(info, cfg))
			return err
		},
	}
	cmd.Flags().StringSliceVarP(&extensionFiles, "extension", "e", nil, "Extension option file, can be repeated")
	cmd.Flags().BoolVar(&strict, "strict", false, "Fail when an extension option is invalid")

	return cmd
}

// extensionConfig returns the merged extension files, or the user-data value
// of the context file when no file is given.
func (a *app) extensionConfig(files []string) (any, error) {
	if len(files) == 0 {
		return a.v.Get("user-data"), nil
	}

	merged := ""
	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("failed to read extension file: %w", err)
		}
		if merged, err = utils.MergeYAML(merged, string(content)); err != nil {
			return nil, fmt.Errorf("failed to merge extension file %s: %w", file, err)
		}
	}

	var ext any
	if err := yaml.Unmarshal([]byte(merged), &ext); err != nil {
		return nil, fmt.Errorf("failed to parse extension files: %w", err)
	}
	return ext, nil
}
