package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pepperico/ssm-ec2-rdp/components/instancetype"
)

const suggestionLimit = 5

func (a *app) newInstanceTypeCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "instance-type <type>",
		Short: "Describe an instance type or suggest valid ones",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			info, err := instancetype.ValidateAndGetInfo(args[0])
			if err != nil {
				color.New(color.FgYellow).Fprintln(a.errOut, "Suggestions:")
				for _, suggestion := range instancetype.Suggest(args[0], suggestionLimit) {
					fmt.Fprintf(a.errOut, "  - %s\n", suggestion)
				}
				return err
			}
			return render(a.out, format, info)
		},
	}
	cmd.Flags().StringVarP(&format, "output", "o", formatYAML, "Output format (yaml, json)")

	return cmd
}
