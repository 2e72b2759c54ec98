package ec2

import (
	"github.com/pulumi/pulumi-random/sdk/v4/go/random"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"

	"github.com/pepperico/ssm-ec2-rdp/resources/aws"
)

// RandomSubnet picks one of subnetIDs. The pick is stored in the stack state
// so the instance stays in the same subnet across updates.
func RandomSubnet(e aws.Environment, name string, subnetIDs pulumi.StringArrayInput) (pulumi.StringOutput, error) {
	provider, err := e.RandomProvider()
	if err != nil {
		return pulumi.StringOutput{}, err
	}

	shuffle, err := random.NewRandomShuffle(e.Ctx, e.Namer.ResourceName("subnet", name), &random.RandomShuffleArgs{
		Inputs:      subnetIDs,
		ResultCount: pulumi.IntPtr(1),
	}, pulumi.Provider(provider))
	if err != nil {
		return pulumi.StringOutput{}, err
	}

	return shuffle.Results.Index(pulumi.Int(0)), nil
}
