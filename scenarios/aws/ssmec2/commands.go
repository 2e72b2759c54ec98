package ssmec2

import (
	"fmt"

	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"
)

// LocalRDPPort is the local end of the RDP port forwarding session.
const LocalRDPPort = 13389

func ssmCommand(instanceID, region string) string {
	return fmt.Sprintf("aws ssm start-session --target %s --region %s", instanceID, region)
}

func rdpTunnelCommand(instanceID, region string, remotePort int) string {
	return fmt.Sprintf(`aws ssm start-session --target %s --region %s --document-name AWS-StartPortForwardingSession --parameters "portNumber=%d,localPortNumber=%d"`,
		instanceID, region, remotePort, LocalRDPPort)
}

func eiceTunnelCommand(instanceID, region string, remotePort int) string {
	return fmt.Sprintf("aws ec2-instance-connect open-tunnel --instance-id %s --region %s --remote-port %d --local-port %d",
		instanceID, region, remotePort, LocalRDPPort)
}

func commandOutput(instanceID pulumi.StringOutput, f func(string) string) pulumi.StringOutput {
	return instanceID.ApplyT(func(id string) string {
		return f(id)
	}).(pulumi.StringOutput)
}
