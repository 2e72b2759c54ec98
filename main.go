package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi/config"

	"github.com/pepperico/ssm-ec2-rdp/components/ec2config"
	"github.com/pepperico/ssm-ec2-rdp/registry"
)

const (
	scenarioEnvVarName = "PULUMI_SCENARIO"
	scenarioParamName  = "scenario"

	dummyScenario = "dummy"
)

func main() {
	if err := pulumi.RunErr(run); err != nil {
		os.Exit(reportError(os.Stderr, err))
	}
}

func run(ctx *pulumi.Context) error {
	scenarioName := os.Getenv(scenarioEnvVarName)
	rootConfig := config.New(ctx, "")
	if s := rootConfig.Get(scenarioParamName); s != "" {
		scenarioName = s
	}
	if scenarioName == "" {
		scenarioName = registry.DefaultScenario
	}

	if scenarioName == dummyScenario {
		return nil
	}

	scenarios := registry.Scenarios()
	rf := scenarios.Get(scenarioName)
	if rf == nil {
		return fmt.Errorf("impossible to run unknown scenario: %s, known scenarios: %s", scenarioName, strings.Join(scenarios.List(), ", "))
	}

	return rf(ctx)
}

// reportError prints err and returns the process exit code. Configuration
// errors are followed by the configuration guide.
func reportError(w io.Writer, err error) int {
	var cfgErr *ec2config.ConfigurationError
	if errors.As(err, &cfgErr) {
		color.New(color.FgRed, color.Bold).Fprintf(w, "Configuration error: %v\n\n", cfgErr.Err)
		fmt.Fprintln(w, ec2config.Help())
		return 1
	}

	color.New(color.FgRed).Fprintf(w, "Unexpected error: %v\n", err)
	return 1
}
