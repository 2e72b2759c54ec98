package registry

import (
	"sort"
	"strings"

	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"

	"github.com/pepperico/ssm-ec2-rdp/scenarios/aws/ssmec2"
)

// DefaultScenario runs when no scenario is selected.
const DefaultScenario = "aws/ssm-ec2-rdp"

type ScenarioRegistry map[string]pulumi.RunFunc

func Scenarios() ScenarioRegistry {
	return ScenarioRegistry{
		DefaultScenario:    ssmec2.Run,
		"aws/config-check": ssmec2.ConfigCheckRun,
	}
}

func (s ScenarioRegistry) Get(name string) pulumi.RunFunc {
	return s[strings.ToLower(name)]
}

func (s ScenarioRegistry) List() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
