package keypair

// Access method identifiers.
const (
	AccessSessionManager = "ssm_session_manager"
	AccessSSHRDP         = "ssh_rdp"
)

// AccessMethod describes one way of reaching the instance.
type AccessMethod struct {
	Name         string   `json:"name" yaml:"name"`
	Available    bool     `json:"available" yaml:"available"`
	Description  string   `json:"description" yaml:"description"`
	Recommended  bool     `json:"recommended" yaml:"recommended"`
	Requirements []string `json:"requirements" yaml:"requirements"`
}

// AccessMethods always offers Session Manager as the recommended method.
// SSH/RDP is available only when name resolves to a key pair and is never
// recommended.
func (m *Manager[H]) AccessMethods(name string) []AccessMethod {
	ssh := AccessMethod{
		Name:         AccessSSHRDP,
		Description:  "SSH/RDP (requires a key pair)",
		Requirements: []string{"a key pair must be created"},
	}
	if m.Has(name) {
		ssh = AccessMethod{
			Name:         AccessSSHRDP,
			Available:    true,
			Description:  "SSH/RDP with the key pair",
			Requirements: []string{"key pair", "security group rules"},
		}
	}

	return []AccessMethod{
		{
			Name:         AccessSessionManager,
			Available:    true,
			Description:  "AWS Systems Manager Session Manager",
			Recommended:  true,
			Requirements: []string{"IAM permissions", "SSM Agent"},
		},
		ssh,
	}
}
