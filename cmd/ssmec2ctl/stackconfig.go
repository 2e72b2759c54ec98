package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pepperico/ssm-ec2-rdp/common/config"
)

func (a *app) newStackConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stack-config",
		Short: "Print a Pulumi stack file holding the resolved configuration",
		Long: `Print a Pulumi stack file holding the resolved configuration.

The configuration is validated first. Redirect the output to Pulumi.<stack>.yaml.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if _, err := a.manager().Configuration(); err != nil {
				return err
			}

			values := map[string]any{}
			for _, key := range contextKeys {
				if value, ok := (viperProvider{v: a.v}).Get(key); ok {
					values[key] = value
				}
			}
			if ext := a.v.Get("user-data"); ext != nil {
				values[config.UserDataParamName] = ext
			}

			out, err := config.NewStackConfig(a.v.GetString(regionFlag), values).YAML()
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(a.out, out)
			return err
		},
	}
}
