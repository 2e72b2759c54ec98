package ec2

import (
	"github.com/pulumi/pulumi-aws/sdk/v6/go/aws/ec2"
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"

	"github.com/pepperico/ssm-ec2-rdp/common/config"
	"github.com/pepperico/ssm-ec2-rdp/components/keypair"
	"github.com/pepperico/ssm-ec2-rdp/resources/aws"
)

// KeyPair references an existing EC2 key pair.
type KeyPair struct {
	Name string
	ID   string
}

// KeyPairProvisioner looks key pairs up by name in the stack region.
func KeyPairProvisioner(e aws.Environment) keypair.KeyPairProvisioner[KeyPair] {
	return keypair.KeyPairProvisionerFunc[KeyPair](func(name string) (KeyPair, error) {
		result, err := ec2.LookupKeyPair(e.Ctx, &ec2.LookupKeyPairArgs{
			KeyName: pulumi.StringRef(name),
		}, e.WithProvider(config.ProviderAWS))
		if err != nil {
			return KeyPair{}, err
		}

		kp := KeyPair{Name: name, ID: result.Id}
		if result.KeyName != nil {
			kp.Name = *result.KeyName
		}
		if result.KeyPairId != nil {
			kp.ID = *result.KeyPairId
		}
		return kp, nil
	})
}
