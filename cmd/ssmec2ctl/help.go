package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pepperico/ssm-ec2-rdp/components/ec2config"
)

func (a *app) newConfigHelpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config-help",
		Short: "Print the configuration guide",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			color.New(color.Bold).Fprintln(a.out, "SSM EC2 stack")
			_, err := fmt.Fprint(a.out, ec2config.Help())
			return err
		},
	}
}
