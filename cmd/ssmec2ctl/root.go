package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pepperico/ssm-ec2-rdp/components/ec2config"
)

const (
	envPrefix = "SSMEC2"

	contextFileFlag = "context-file"
	logLevelFlag    = "log-level"
	quietFlag       = "quiet"
	regionFlag      = "region"
)

// contextKeys are the configuration keys the CLI resolves, in flag order.
var contextKeys = []string{
	ec2config.FieldAMIID,
	ec2config.FieldAMIParameter,
	ec2config.FieldInstanceType,
	ec2config.FieldKeyPairName,
	ec2config.FieldSubnetType,
}

type app struct {
	v      *viper.Viper
	log    zerolog.Logger
	out    io.Writer
	errOut io.Writer
}

func newRootCmd(out, errOut io.Writer) (*cobra.Command, *app) {
	a := &app{
		v:      viper.New(),
		log:    zerolog.Nop(),
		out:    out,
		errOut: errOut,
	}

	rootCmd := &cobra.Command{
		Use:   "ssmec2ctl",
		Short: "Check and preview the SSM EC2 stack configuration",
		Long: `ssmec2ctl validates the values the stack reads (ami-id, ami-parameter,
instance-type, key-pair-name, subnet-type) and previews the user data script.

Values are resolved from flags, then SSMEC2_* environment variables, then the
"context" section of the context file.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.init,
	}
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	flags := rootCmd.PersistentFlags()
	flags.StringP(contextFileFlag, "f", "", "JSON or YAML file with a top-level context map (e.g. cdk.json)")
	flags.String(logLevelFlag, "info", "Log level (debug, info, warn, error)")
	flags.BoolP(quietFlag, "q", false, "Only log errors")
	flags.String(regionFlag, "", "AWS region used for live lookups")
	for _, key := range contextKeys {
		flags.String(key, "", fmt.Sprintf("Value of %s", key))
	}

	rootCmd.AddCommand(
		a.newValidateCmd(),
		a.newInstanceTypeCmd(),
		a.newUserDataCmd(),
		a.newOptionsCmd(),
		a.newConfigHelpCmd(),
		a.newStackConfigCmd(),
	)

	return rootCmd, a
}

// init resolves configuration with the precedence flags > env > context file.
func (a *app) init(cmd *cobra.Command, _ []string) error {
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("failed to bind flags: %w", err)
	}

	logger, err := newLogger(a.errOut, a.v.GetString(logLevelFlag), a.v.GetBool(quietFlag))
	if err != nil {
		return err
	}
	a.log = logger

	if path := a.v.GetString(contextFileFlag); path != "" {
		if err := loadContextFile(a.v, path); err != nil {
			return err
		}
		a.log.Debug().Str("file", path).Msg("loaded context file")
	}

	return nil
}

func newLogger(w io.Writer, level string, quiet bool) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", level, err)
	}
	if lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	if quiet {
		lvl = zerolog.ErrorLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, NoColor: color.NoColor}).Level(lvl).With().Timestamp().Logger(), nil
}

// execute runs the CLI and returns the exit code.
func execute(args []string, out, errOut io.Writer) int {
	rootCmd, _ := newRootCmd(out, errOut)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	if err == nil {
		return 0
	}

	var cfgErr *ec2config.ConfigurationError
	if errors.As(err, &cfgErr) {
		color.New(color.FgRed, color.Bold).Fprintf(errOut, "Configuration error: %v\n\n", cfgErr.Err)
		fmt.Fprintln(errOut, ec2config.Help())
		return 1
	}

	color.New(color.FgRed).Fprintf(errOut, "Error: %v\n", err)
	return 1
}
