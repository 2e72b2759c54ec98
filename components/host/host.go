package host

import (
	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"

	"github.com/pepperico/ssm-ec2-rdp/components"
	"github.com/pepperico/ssm-ec2-rdp/components/os"
)

// HostOutput is the type that is used to import the Host component
type HostOutput struct {
	components.JSONImporter

	InstanceID       string    `json:"instanceId"`
	AMIID            string    `json:"amiId"`
	AMISource        string    `json:"amiSource"`
	OSFamily         os.Family `json:"osFamily"`
	InstanceType     string    `json:"instanceType"`
	SubnetType       string    `json:"subnetType"`
	PrivateIP        string    `json:"privateIp"`
	PublicIP         string    `json:"publicIp,omitempty"`
	AvailabilityZone string    `json:"availabilityZone"`
	KeyPairName      string    `json:"keyPairName,omitempty"`
	Region           string    `json:"region"`
}

// Host is an EC2 instance reachable through Session Manager.
type Host struct {
	pulumi.ResourceState
	components.Component

	InstanceID       pulumi.StringOutput `pulumi:"instanceId"`
	AMIID            pulumi.StringOutput `pulumi:"amiId"`
	AMISource        pulumi.StringOutput `pulumi:"amiSource"`
	OSFamily         pulumi.StringOutput `pulumi:"osFamily"`
	InstanceType     pulumi.StringOutput `pulumi:"instanceType"`
	SubnetType       pulumi.StringOutput `pulumi:"subnetType"`
	PrivateIP        pulumi.StringOutput `pulumi:"privateIp"`
	PublicIP         pulumi.StringOutput `pulumi:"publicIp"`
	AvailabilityZone pulumi.StringOutput `pulumi:"availabilityZone"`
	KeyPairName      pulumi.StringOutput `pulumi:"keyPairName"`
	Region           pulumi.StringOutput `pulumi:"region"`
}

func (h *Host) Export(ctx *pulumi.Context, out *HostOutput) error {
	return components.Export(ctx, h, out)
}
