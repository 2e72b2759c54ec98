// Package ami resolves the configured image selector into a provisioner handle
// and a best effort guess of the operating system family behind it.
//
// The guess only looks at the selector text. An explicit AMI id always yields
// an unknown family; a parameter path is matched against keyword lists.
package ami

import (
	"fmt"
	"strings"

	"github.com/pepperico/ssm-ec2-rdp/components/ec2config"
	"github.com/pepperico/ssm-ec2-rdp/components/os"
)

// SelectorKind tells the provisioner how to interpret a selector value.
type SelectorKind int

const (
	SelectorID SelectorKind = iota + 1
	SelectorParameter
)

func (k SelectorKind) String() string {
	switch k {
	case SelectorID:
		return "id"
	case SelectorParameter:
		return "parameter"
	default:
		return fmt.Sprintf("SelectorKind(%d)", int(k))
	}
}

// Windows keywords are checked before Linux keywords.
var (
	windowsKeywords = []string{"windows", "win", "server-20", "server-201", "server-202"}
	linuxKeywords   = []string{"linux", "ubuntu", "amazon", "centos", "rhel", "suse", "debian", "amzn", "al20", "al2023", "canonical"}
)

// ImageProvisioner materializes a machine image from a selector. H is whatever
// the provisioner uses to reference an image.
type ImageProvisioner[H any] interface {
	MachineImage(kind SelectorKind, value string) (H, error)
}

// ImageProvisionerFunc adapts a function to ImageProvisioner.
type ImageProvisionerFunc[H any] func(kind SelectorKind, value string) (H, error)

func (f ImageProvisionerFunc[H]) MachineImage(kind SelectorKind, value string) (H, error) {
	return f(kind, value)
}

// AMIInfo is the resolved image description.
type AMIInfo struct {
	// Source is the AMI id or the parameter path.
	Source      string
	Kind        SelectorKind
	Family      os.Family
	Description string
}

func (i AMIInfo) IsWindows() bool {
	return i.Family == os.WindowsFamily
}

func (i AMIInfo) IsLinux() bool {
	return i.Family == os.LinuxFamily
}

// Resolver resolves AMI configurations through an ImageProvisioner.
type Resolver[H any] struct {
	provisioner ImageProvisioner[H]
}

func NewResolver[H any](provisioner ImageProvisioner[H]) *Resolver[H] {
	return &Resolver[H]{provisioner: provisioner}
}

// Resolve materializes the image and describes it. Every failure is a
// ec2config.KindNotFound error.
func (r *Resolver[H]) Resolve(cfg ec2config.AMIConfiguration) (H, AMIInfo, error) {
	var handle H

	info, err := Info(cfg)
	if err != nil {
		return handle, AMIInfo{}, err
	}

	if r.provisioner == nil {
		return handle, AMIInfo{}, ec2config.NotFound(fieldFor(info.Kind), nil, "AMI not found: no image provisioner")
	}

	handle, err = r.provisioner.MachineImage(info.Kind, info.Source)
	if err != nil {
		return handle, AMIInfo{}, ec2config.NotFound(fieldFor(info.Kind), err, "AMI not found: %s", info.Source)
	}

	return handle, info, nil
}

// Info describes cfg without materializing an image.
func Info(cfg ec2config.AMIConfiguration) (AMIInfo, error) {
	switch {
	case cfg.HasAMIID():
		return AMIInfo{
			Source:      cfg.AMIID(),
			Kind:        SelectorID,
			Family:      os.UnknownFamily,
			Description: fmt.Sprintf("Custom AMI (%s)", cfg.AMIID()),
		}, nil
	case cfg.HasAMIParameter():
		return AMIInfo{
			Source:      cfg.AMIParameter(),
			Kind:        SelectorParameter,
			Family:      InferFamily(cfg.AMIParameter()),
			Description: fmt.Sprintf("SSM Parameter (%s)", cfg.AMIParameter()),
		}, nil
	default:
		return AMIInfo{}, ec2config.NotFound(ec2config.FieldAMIID, nil, "AMI not found: neither ami-id nor ami-parameter is set")
	}
}

// IsWindows is false when cfg cannot be described.
func IsWindows(cfg ec2config.AMIConfiguration) bool {
	info, err := Info(cfg)
	return err == nil && info.IsWindows()
}

// IsLinux is false when cfg cannot be described.
func IsLinux(cfg ec2config.AMIConfiguration) bool {
	info, err := Info(cfg)
	return err == nil && info.IsLinux()
}

// InferFamily guesses the OS family from a parameter path.
func InferFamily(path string) os.Family {
	p := strings.ToLower(path)
	switch {
	case containsAny(p, windowsKeywords):
		return os.WindowsFamily
	case containsAny(p, linuxKeywords):
		return os.LinuxFamily
	default:
		return os.UnknownFamily
	}
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

func fieldFor(kind SelectorKind) string {
	if kind == SelectorParameter {
		return ec2config.FieldAMIParameter
	}
	return ec2config.FieldAMIID
}
