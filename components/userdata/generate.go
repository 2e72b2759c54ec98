package userdata

import (
	"fmt"
	"strings"

	"github.com/alessio/shellescape"
	"github.com/samber/lo"

	"github.com/pepperico/ssm-ec2-rdp/components/ami"
	"github.com/pepperico/ssm-ec2-rdp/components/os"
)

const (
	WindowsTimeZone = "Tokyo Standard Time"

	windowsCompletionLog = `C:\userdata-completion.log`
	linuxCompletionLog   = "/tmp/userdata-completion.log"
)

// script accumulates lines, separating sections with a blank line.
type script struct {
	lines []string
}

func (s *script) section(comment string, lines ...string) {
	if len(s.lines) > 0 {
		s.lines = append(s.lines, "")
	}
	s.lines = append(s.lines, "# "+comment)
	s.lines = append(s.lines, lines...)
}

func (s *script) String() string {
	return strings.Join(s.lines, "\n") + "\n"
}

// Generate returns the bootstrap script for info's OS. Windows gets a
// PowerShell script, anything else a bash script. ext is not validated here,
// values with the wrong shape are skipped.
func Generate(info ami.AMIInfo, ext Config) string {
	cfg := effective(scriptFamily(info.Family), ext)
	if info.IsWindows() {
		return windowsScript(cfg)
	}
	return linuxScript(cfg)
}

func windowsScript(cfg Config) string {
	s := &script{}

	if boolOption(cfg, OptionEnableRDP) {
		s.section("Enable Remote Desktop",
			`Set-ItemProperty -Path 'HKLM:\System\CurrentControlSet\Control\Terminal Server' -Name 'fDenyTSConnections' -Value 0`,
			`Enable-NetFirewallRule -DisplayGroup 'Remote Desktop'`,
		)
	}
	if boolOption(cfg, OptionEnableNLA) {
		s.section("Require Network Level Authentication",
			`Set-ItemProperty -Path 'HKLM:\System\CurrentControlSet\Control\Terminal Server\WinStations\RDP-Tcp' -Name 'UserAuthentication' -Value 1`,
		)
	}
	s.section("Let local accounts work with the SSM Agent",
		`Set-ItemProperty -Path 'HKLM:\SOFTWARE\Microsoft\Windows\CurrentVersion\Policies\System' -Name 'LocalAccountTokenFilterPolicy' -Value 1`,
	)
	s.section("Time zone",
		fmt.Sprintf(`tzutil /s "%s"`, WindowsTimeZone),
	)
	if boolOption(cfg, OptionEnableSSM) {
		s.section("Restart the SSM Agent",
			`Get-Service AmazonSSMAgent | Restart-Service`,
		)
	}
	if boolOption(cfg, OptionEnableWindowsUpdate) {
		s.section("Windows Update",
			`New-Item -Path 'HKLM:\SOFTWARE\Policies\Microsoft\Windows\WindowsUpdate\AU' -Force | Out-Null`,
			`Set-ItemProperty -Path 'HKLM:\SOFTWARE\Policies\Microsoft\Windows\WindowsUpdate\AU' -Name 'NoAutoUpdate' -Value 0`,
		)
	}

	if commands := stringsOption(cfg, OptionCustomCommands); len(commands) > 0 {
		s.section("Custom commands", commands...)
	}
	if boolOption(cfg, OptionEnableIIS) {
		s.section("IIS",
			`Enable-WindowsOptionalFeature -Online -FeatureName IIS-WebServerRole -All`,
		)
	}
	if ports := portsOption(cfg, OptionOpenPorts); len(ports) > 0 {
		s.section("Firewall ports", lo.Map(ports, func(port int, _ int) string {
			return fmt.Sprintf(`New-NetFirewallRule -DisplayName 'Open Port %d' -Direction Inbound -Protocol TCP -LocalPort %d -Action Allow`, port, port)
		})...)
	}

	s.section("Completion log",
		`Write-Host 'User data setup completed successfully'`,
		`Get-Date | Out-File -Append `+windowsCompletionLog,
	)

	return wrapPowerShell(s.String())
}

// wrapPowerShell wraps a script in the tags EC2Launch expects.
func wrapPowerShell(body string) string {
	return "<powershell>\n" + body + "</powershell>\n"
}

func linuxScript(cfg Config) string {
	s := &script{lines: []string{"#!/bin/bash"}}

	s.section("Starting",
		`echo 'Starting user data setup...'`,
	)
	if boolOption(cfg, OptionUpdateSystem) {
		s.section("System update",
			`if command -v yum &> /dev/null; then`,
			`    yum update -y`,
			`elif command -v apt-get &> /dev/null; then`,
			`    apt-get update && apt-get upgrade -y`,
			`fi`,
		)
	}
	if boolOption(cfg, OptionInstallSSM) {
		s.section("SSM Agent",
			`if command -v yum &> /dev/null; then`,
			`    if ! rpm -q amazon-ssm-agent; then`,
			`        yum install -y amazon-ssm-agent`,
			`    fi`,
			`elif command -v apt-get &> /dev/null; then`,
			`    if ! dpkg -l | grep -q amazon-ssm-agent; then`,
			`        wget -q https://s3.amazonaws.com/ec2-downloads-windows/SSMAgent/latest/debian_amd64/amazon-ssm-agent.deb -O /tmp/amazon-ssm-agent.deb`,
			`        dpkg -i /tmp/amazon-ssm-agent.deb`,
			`    fi`,
			`fi`,
			`systemctl enable amazon-ssm-agent`,
			`systemctl start amazon-ssm-agent`,
		)
	}
	if boolOption(cfg, OptionInstallBasicTools) {
		s.section("Basic tools", installLines("htop curl wget unzip")...)
	}
	if boolOption(cfg, OptionDisablePasswordAuth) {
		s.section("Disable SSH password authentication",
			`if [ -f /etc/ssh/sshd_config ]; then`,
			`    sed -i 's/^#\?PasswordAuthentication yes/PasswordAuthentication no/' /etc/ssh/sshd_config`,
			`    systemctl reload sshd`,
			`fi`,
		)
	}

	if commands := stringsOption(cfg, OptionCustomCommands); len(commands) > 0 {
		s.section("Custom commands", commands...)
	}
	if boolOption(cfg, OptionEnableDocker) {
		s.section("Docker",
			`if command -v yum &> /dev/null; then`,
			`    yum install -y docker`,
			`elif command -v apt-get &> /dev/null; then`,
			`    apt-get install -y docker.io`,
			`fi`,
			`systemctl enable docker`,
			`systemctl start docker`,
		)
	}
	packages := lo.Filter(stringsOption(cfg, OptionInstallPackages), func(p string, _ int) bool {
		return strings.TrimSpace(p) != ""
	})
	if len(packages) > 0 {
		s.section("Additional packages", installLines(shellescape.QuoteCommand(packages))...)
	}

	s.section("Completion log",
		`echo "User data setup completed successfully at $(date)" | tee `+linuxCompletionLog,
		`echo 'User data execution completed.'`,
	)

	return s.String()
}

func installLines(packages string) []string {
	return []string{
		`if command -v yum &> /dev/null; then`,
		`    yum install -y ` + packages,
		`elif command -v apt-get &> /dev/null; then`,
		`    apt-get install -y ` + packages,
		`fi`,
	}
}

func boolOption(cfg Config, name string) bool {
	if b, ok := cfg[name].(bool); ok {
		return b
	}
	if o, ok := LookupOption(name); ok {
		b, _ := o.Default.(bool)
		return b
	}
	return false
}

func stringsOption(cfg Config, name string) []string {
	items, ok := asList(cfg[name])
	if !ok {
		return nil
	}
	return lo.FilterMap(items, func(item any, _ int) (string, bool) {
		s, ok := item.(string)
		return s, ok
	})
}

func portsOption(cfg Config, name string) []int {
	items, ok := asList(cfg[name])
	if !ok {
		return nil
	}
	return lo.FilterMap(items, func(item any, _ int) (int, bool) {
		return asPort(item)
	})
}

// familyOf is the OS family the generated script targets.
func familyOf(info ami.AMIInfo) os.Family {
	return scriptFamily(info.Family)
}
