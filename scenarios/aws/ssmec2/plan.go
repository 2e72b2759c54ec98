package ssmec2

import (
	"fmt"
	"strings"

	"github.com/pepperico/ssm-ec2-rdp/components/ami"
	"github.com/pepperico/ssm-ec2-rdp/components/ec2config"
	"github.com/pepperico/ssm-ec2-rdp/components/instancetype"
	"github.com/pepperico/ssm-ec2-rdp/components/keypair"
	"github.com/pepperico/ssm-ec2-rdp/components/userdata"
	"github.com/pepperico/ssm-ec2-rdp/resources/aws"
	"github.com/pepperico/ssm-ec2-rdp/resources/aws/ec2"
)

// Plan is everything the stack needs once the configuration is validated and
// the image and key pair are resolved.
type Plan struct {
	Configuration ec2config.EC2Configuration
	InstanceType  instancetype.Info

	AMIID string
	AMI   ami.AMIInfo

	KeyPair     ec2.KeyPair
	HasKeyPair  bool
	KeyPairInfo keypair.Info

	AccessMethods []keypair.AccessMethod

	UserData         string
	UserDataWarnings []string
}

// NewPlan reads the stack configuration and resolves it. Validation failures
// are *ec2config.ConfigurationError; lookup failures are ec2config.KindNotFound.
func NewPlan(e aws.Environment) (*Plan, error) {
	manager := ec2config.NewManager(e.CommonEnvironment)

	if complete, missing := manager.CheckCompleteness(); !complete {
		e.Ctx.Log.Warn(fmt.Sprintf("missing required configuration: %s", strings.Join(missing, ", ")), nil)
	}

	cfg, err := manager.Configuration()
	if err != nil {
		return nil, err
	}
	e.Ctx.Log.Debug(fmt.Sprintf("configuration: %s", cfg.String()), nil)

	typeInfo, err := instancetype.ValidateAndGetInfo(cfg.Instance.InstanceType())
	if err != nil {
		return nil, &ec2config.ConfigurationError{Err: err}
	}

	plan := &Plan{
		Configuration: cfg,
		InstanceType:  typeInfo,
	}

	plan.AMIID, plan.AMI, err = ami.NewResolver(ec2.ImageProvisioner(e)).Resolve(cfg.AMI)
	if err != nil {
		return nil, err
	}
	e.Ctx.Log.Info(fmt.Sprintf("using %s, OS: %s", plan.AMI.Description, plan.AMI.Family.Label()), nil)

	keyPairs := keypair.NewManager(ec2.KeyPairProvisioner(e))
	plan.KeyPair, plan.HasKeyPair, err = keyPairs.Resolve(cfg.Instance.KeyPairName())
	if err != nil {
		return nil, err
	}
	plan.KeyPairInfo = keyPairs.Info(cfg.Instance.KeyPairName())
	plan.AccessMethods = keyPairs.AccessMethods(cfg.Instance.KeyPairName())
	if !plan.HasKeyPair {
		e.Ctx.Log.Info(plan.KeyPairInfo.RecommendedAction, nil)
	}

	ext := e.UserDataConfig()
	if ext != nil {
		plan.UserDataWarnings = userdata.Validate(plan.AMI, ext)
		for _, warning := range plan.UserDataWarnings {
			e.Ctx.Log.Warn(fmt.Sprintf("user-data: %s", warning), nil)
		}
	}
	plan.UserData = userdata.Generate(plan.AMI, ext)

	return plan, nil
}
