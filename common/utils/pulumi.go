package utils

import (
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"
)

// PulumiDependsOn accepts any slice of concrete resources.
func PulumiDependsOn[R pulumi.Resource](resources ...R) pulumi.ResourceOption {
	deps := make([]pulumi.Resource, 0, len(resources))
	for _, r := range resources {
		deps = append(deps, r)
	}
	return pulumi.DependsOn(deps)
}
