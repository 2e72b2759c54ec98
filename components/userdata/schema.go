package userdata

import (
	"encoding/json"

	"github.com/invopop/jsonschema"

	"github.com/pepperico/ssm-ec2-rdp/components/os"
)

// WindowsOptions is the typed form of a Windows extension config.
type WindowsOptions struct {
	CustomCommands      []string `json:"custom_commands,omitempty" jsonschema:"description=PowerShell commands appended to the script"`
	EnableRDP           *bool    `json:"enable_rdp,omitempty" jsonschema:"description=Enable Remote Desktop and its firewall group,default=true"`
	EnableNLA           *bool    `json:"enable_nla,omitempty" jsonschema:"description=Require Network Level Authentication for RDP,default=true"`
	EnableWindowsUpdate *bool    `json:"enable_windows_update,omitempty" jsonschema:"description=Keep automatic Windows Update enabled,default=true"`
	EnableSSM           *bool    `json:"enable_ssm,omitempty" jsonschema:"description=Restart the SSM Agent once configured,default=true"`
	EnableIIS           *bool    `json:"enable_iis,omitempty" jsonschema:"description=Install the IIS web server role,default=false"`
	OpenPorts           []int    `json:"open_ports,omitempty" jsonschema:"description=TCP ports opened in the Windows firewall"`
}

// LinuxOptions is the typed form of a Linux extension config.
type LinuxOptions struct {
	CustomCommands      []string `json:"custom_commands,omitempty" jsonschema:"description=Shell commands appended to the script"`
	UpdateSystem        *bool    `json:"update_system,omitempty" jsonschema:"description=Update installed packages,default=true"`
	InstallSSM          *bool    `json:"install_ssm,omitempty" jsonschema:"description=Install and start the SSM Agent,default=true"`
	DisablePasswordAuth *bool    `json:"disable_password_auth,omitempty" jsonschema:"description=Disable SSH password authentication,default=true"`
	InstallBasicTools   *bool    `json:"install_basic_tools,omitempty" jsonschema:"description=Install htop curl wget and unzip,default=true"`
	EnableDocker        *bool    `json:"enable_docker,omitempty" jsonschema:"description=Install and start Docker,default=false"`
	InstallPackages     []string `json:"install_packages,omitempty" jsonschema:"description=Additional packages to install"`
}

// Schema returns the JSON schema of the extension config for family. Anything
// but Windows gets the Linux schema.
func Schema(family os.Family) *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		ExpandedStruct:            true,
		AllowAdditionalProperties: false,
	}

	if scriptFamily(family) == os.WindowsFamily {
		schema := reflector.Reflect(&WindowsOptions{})
		schema.Title = "Windows user data options"
		if ports, ok := schema.Properties.Get(OptionOpenPorts); ok && ports.Items != nil {
			ports.Items.Minimum = json.Number("1")
			ports.Items.Maximum = json.Number("65535")
		}
		return schema
	}

	schema := reflector.Reflect(&LinuxOptions{})
	schema.Title = "Linux user data options"
	return schema
}
