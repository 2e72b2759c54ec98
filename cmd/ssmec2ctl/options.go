package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pepperico/ssm-ec2-rdp/components/ami"
	"github.com/pepperico/ssm-ec2-rdp/components/os"
	"github.com/pepperico/ssm-ec2-rdp/components/userdata"
)

type optionsReport struct {
	Defaults    userdata.Config            `json:"defaults" yaml:"defaults"`
	Options     map[string]userdata.Option `json:"options" yaml:"options"`
	Description userdata.Description       `json:"description" yaml:"description"`
}

func (a *app) newOptionsCmd() *cobra.Command {
	var osName, format string

	cmd := &cobra.Command{
		Use:   "options",
		Short: "List the user data options supported for an OS",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			family, err := os.NewFamilyFromString(osName)
			if err != nil || family == os.UnknownFamily {
				return fmt.Errorf("unknown OS %q, use windows or linux", osName)
			}

			if format == formatSchema {
				return render(a.out, format, userdata.Schema(family))
			}

			info := ami.AMIInfo{Family: family}
			defaults, err := userdata.EffectiveConfig(info, nil)
			if err != nil {
				return err
			}
			return render(a.out, format, optionsReport{
				Defaults:    defaults,
				Options:     userdata.SupportedConfigurations(info),
				Description: userdata.Describe(info),
			})
		},
	}
	cmd.Flags().StringVar(&osName, "os", "windows", "OS the options apply to (windows, linux)")
	cmd.Flags().StringVarP(&format, "output", "o", formatYAML, "Output format (yaml, json, schema)")

	return cmd
}
