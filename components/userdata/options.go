package userdata

import (
	"github.com/samber/lo"

	"github.com/pepperico/ssm-ec2-rdp/components/os"
)

// Config is an extension config: option name to value, as decoded from JSON or YAML.
type Config map[string]any

// OptionType is the expected shape of an option value.
type OptionType string

const (
	TypeBool       OptionType = "bool"
	TypeStringList OptionType = "list[str]"
	TypePortList   OptionType = "list[int]"
)

// Option describes one recognized extension option.
type Option struct {
	Name string `json:"-" yaml:"-"`
	// Family is the OS the option applies to. UnknownFamily means every OS.
	Family os.Family `json:"-" yaml:"-"`
	// Exclusive options are reported by Validate when used on the other OS.
	Exclusive   bool       `json:"-" yaml:"-"`
	Type        OptionType `json:"type" yaml:"type"`
	Description string     `json:"description" yaml:"description"`
	Default     any        `json:"default,omitempty" yaml:"default,omitempty"`
	Example     any        `json:"example,omitempty" yaml:"example,omitempty"`
}

func (o Option) appliesTo(family os.Family) bool {
	return o.Family == os.UnknownFamily || o.Family == family
}

// Option names.
const (
	OptionCustomCommands = "custom_commands"

	OptionEnableRDP           = "enable_rdp"
	OptionEnableNLA           = "enable_nla"
	OptionEnableWindowsUpdate = "enable_windows_update"
	OptionEnableSSM           = "enable_ssm"
	OptionEnableIIS           = "enable_iis"
	OptionOpenPorts           = "open_ports"

	OptionUpdateSystem        = "update_system"
	OptionInstallSSM          = "install_ssm"
	OptionDisablePasswordAuth = "disable_password_auth"
	OptionInstallBasicTools   = "install_basic_tools"
	OptionEnableDocker        = "enable_docker"
	OptionInstallPackages     = "install_packages"
)

// options is the table every validation and generation step reads from.
var options = []Option{
	{
		Name:        OptionCustomCommands,
		Family:      os.UnknownFamily,
		Type:        TypeStringList,
		Description: "commands appended to the script",
		Example:     []string{`echo "Hello World"`},
	},

	{Name: OptionEnableRDP, Exclusive: true, Family: os.WindowsFamily, Type: TypeBool, Description: "enable Remote Desktop and its firewall group", Default: true},
	{Name: OptionEnableNLA, Exclusive: true, Family: os.WindowsFamily, Type: TypeBool, Description: "require Network Level Authentication for RDP", Default: true},
	{Name: OptionEnableWindowsUpdate, Family: os.WindowsFamily, Type: TypeBool, Description: "keep automatic Windows Update enabled", Default: true},
	{Name: OptionEnableSSM, Family: os.WindowsFamily, Type: TypeBool, Description: "restart the SSM Agent once configured", Default: true},
	{Name: OptionEnableIIS, Exclusive: true, Family: os.WindowsFamily, Type: TypeBool, Description: "install the IIS web server role", Default: false},
	{
		Name:        OptionOpenPorts,
		Family:      os.WindowsFamily,
		Exclusive:   true,
		Type:        TypePortList,
		Description: "TCP ports opened in the Windows firewall",
		Example:     []int{80, 443, 8080},
	},

	{Name: OptionUpdateSystem, Family: os.LinuxFamily, Type: TypeBool, Description: "update installed packages", Default: true},
	{Name: OptionInstallSSM, Family: os.LinuxFamily, Type: TypeBool, Description: "install, enable and start the SSM Agent", Default: true},
	{Name: OptionDisablePasswordAuth, Family: os.LinuxFamily, Type: TypeBool, Description: "disable SSH password authentication", Default: true},
	{Name: OptionInstallBasicTools, Family: os.LinuxFamily, Type: TypeBool, Description: "install htop, curl, wget and unzip", Default: true},
	{Name: OptionEnableDocker, Exclusive: true, Family: os.LinuxFamily, Type: TypeBool, Description: "install and start Docker", Default: false},
	{
		Name:        OptionInstallPackages,
		Family:      os.LinuxFamily,
		Exclusive:   true,
		Type:        TypeStringList,
		Description: "additional packages to install",
		Example:     []string{"git", "nodejs", "python3"},
	},
}

var optionsByName = lo.KeyBy(options, func(o Option) string { return o.Name })

// Options returns the whole option table.
func Options() []Option {
	return append([]Option(nil), options...)
}

// LookupOption returns the option called name.
func LookupOption(name string) (Option, bool) {
	o, ok := optionsByName[name]
	return o, ok
}

// optionsFor returns the options that apply to family, in table order.
func optionsFor(family os.Family) []Option {
	return lo.Filter(options, func(o Option, _ int) bool { return o.appliesTo(family) })
}

// scriptFamily is the family whose script is generated. Anything but Windows
// gets the Linux script.
func scriptFamily(family os.Family) os.Family {
	if family == os.WindowsFamily {
		return os.WindowsFamily
	}
	return os.LinuxFamily
}
