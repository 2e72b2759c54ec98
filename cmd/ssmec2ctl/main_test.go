package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/pepperico/ssm-ec2-rdp/components/ec2config"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code := execute(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const cdkJSON = `{
  "app": "python3 app.py",
  "context": {
    "ami-parameter": "/aws/service/ami-windows-latest/Windows_Server-2022-Japanese-Full-Base",
    "instance-type": "t3.medium",
    "user-data": {"open_ports": [8080], "enable_docker": true}
  }
}`

func TestValidate(t *testing.T) {
	t.Run("context file", func(t *testing.T) {
		path := writeFile(t, "cdk.json", cdkJSON)

		code, out, errOut := run(t, "validate", "-f", path, "-o", "json")
		require.Equal(t, 0, code, errOut)

		var report map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &report))
		assert.Equal(t, "Windows", report["ami"].(map[string]any)["os"])
		assert.Equal(t, "private", report["subnet_type"])
		assert.Equal(t, []any{"'enable_docker' is not supported on Windows"}, report["user_data_warnings"])
		keyPair := report["key_pair"].(map[string]any)
		assert.Equal(t, false, keyPair["specified"])
		assert.Len(t, keyPair["security_recommendations"], 4)
	})

	t.Run("flags override the context file", func(t *testing.T) {
		path := writeFile(t, "cdk.json", cdkJSON)

		code, out, errOut := run(t, "validate", "-f", path, "--instance-type", "m5.large", "--subnet-type", "public")
		require.Equal(t, 0, code, errOut)

		var report validateReport
		require.NoError(t, yaml.Unmarshal([]byte(out), &report))
		assert.Equal(t, "m5.large", report.InstanceType.InstanceType)
		assert.Equal(t, "public", report.SubnetType)
	})

	t.Run("environment", func(t *testing.T) {
		t.Setenv("SSMEC2_AMI_ID", "ami-0123456789abcdef0")
		t.Setenv("SSMEC2_INSTANCE_TYPE", "c5.xlarge")
		t.Setenv("SSMEC2_KEY_PAIR_NAME", "dev-key")

		code, out, errOut := run(t, "validate")
		require.Equal(t, 0, code, errOut)

		var report validateReport
		require.NoError(t, yaml.Unmarshal([]byte(out), &report))
		assert.Equal(t, "Unknown", report.AMI.OS)
		assert.Equal(t, "Custom AMI (ami-0123456789abcdef0)", report.AMI.Description)
		assert.Equal(t, "dev-key", report.KeyPair.Name)
		assert.Nil(t, report.KeyPair.Exists)
		assert.Equal(t, "key pair existence was not checked", report.KeyPair.RecommendedAction)
	})

	t.Run("missing values print the guide", func(t *testing.T) {
		code, out, errOut := run(t, "validate", "--instance-type", "t3.medium")

		assert.Equal(t, 1, code)
		assert.Empty(t, out)
		assert.Contains(t, errOut, "Configuration error:")
		assert.Contains(t, errOut, ec2config.Help())
	})

	t.Run("unsupported family is a configuration error", func(t *testing.T) {
		code, _, errOut := run(t, "validate", "--ami-id", "ami-0123456789abcdef0", "--instance-type", "zz9.large")

		assert.Equal(t, 1, code)
		assert.Contains(t, errOut, "unsupported family")
		assert.Contains(t, errOut, "Configuration guide")
	})
}

func TestInstanceType(t *testing.T) {
	code, out, _ := run(t, "instance-type", "t3.micro", "-o", "json")
	require.Equal(t, 0, code)
	assert.JSONEq(t, `{
		"instance_type": "t3.micro",
		"family": "t3",
		"size": "micro",
		"category": "Burstable Performance",
		"is_burstable": true,
		"is_valid": true
	}`, out)

	code, out, errOut := run(t, "instance-type", "t3.huge")
	assert.Equal(t, 1, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "Suggestions:")
	assert.Contains(t, errOut, "unsupported size")
	assert.NotContains(t, errOut, "Configuration guide")
}

func TestUserData(t *testing.T) {
	t.Run("linux with merged extensions", func(t *testing.T) {
		base := writeFile(t, "base.yaml", "install_packages: [jq]\nenable_docker: false\n")
		override := writeFile(t, "override.yaml", "enable_docker: true\n")

		code, out, errOut := run(t, "userdata",
			"--ami-parameter", "/aws/service/ami-amazon-linux-latest/al2023-ami-kernel-6.1-x86_64",
			"-e", base, "-e", override)
		require.Equal(t, 0, code, errOut)

		assert.Contains(t, out, "#!/bin/bash")
		assert.Contains(t, out, "jq")
		assert.Contains(t, out, "docker")
	})

	t.Run("strict mode rejects options of the other OS", func(t *testing.T) {
		ext := writeFile(t, "ext.yaml", "enable_iis: true\n")

		code, _, errOut := run(t, "userdata", "--strict",
			"--ami-parameter", "/aws/service/ami-amazon-linux-latest/al2023-ami-kernel-6.1-x86_64",
			"-e", ext)

		assert.Equal(t, 1, code)
		assert.Contains(t, errOut, "'enable_iis' is not supported on Linux")
	})

	t.Run("windows from the context file", func(t *testing.T) {
		path := writeFile(t, "cdk.json", cdkJSON)

		code, out, errOut := run(t, "userdata", "-f", path)
		require.Equal(t, 0, code, errOut)

		assert.Contains(t, out, "<powershell>")
		assert.Contains(t, out, "-LocalPort 8080")
	})

	t.Run("no AMI", func(t *testing.T) {
		code, _, errOut := run(t, "userdata")

		assert.Equal(t, 1, code)
		assert.Contains(t, errOut, "Configuration error:")
	})
}

func TestOptions(t *testing.T) {
	code, out, _ := run(t, "options", "--os", "linux")
	require.Equal(t, 0, code)

	var report struct {
		Defaults map[string]any `yaml:"defaults"`
		Options  map[string]any `yaml:"options"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &report))
	assert.Equal(t, true, report.Defaults["install_ssm"])
	assert.Contains(t, report.Options, "install_packages")
	assert.NotContains(t, report.Options, "enable_iis")

	code, out, _ = run(t, "options", "--os", "windows", "-o", "schema")
	require.Equal(t, 0, code)
	assert.Contains(t, out, `"title": "Windows user data options"`)

	code, _, errOut := run(t, "options", "--os", "macos")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "unknown OS")
}

func TestConfigHelp(t *testing.T) {
	code, out, _ := run(t, "config-help")

	require.Equal(t, 0, code)
	assert.Contains(t, out, ec2config.Help())
}

func TestStackConfig(t *testing.T) {
	path := writeFile(t, "cdk.json", cdkJSON)

	code, out, errOut := run(t, "stack-config", "-f", path, "--region", "ap-northeast-1", "--key-pair-name", "dev-key")
	require.Equal(t, 0, code, errOut)

	var stack struct {
		Config map[string]any `yaml:"config"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &stack))
	assert.Equal(t, "ap-northeast-1", stack.Config["aws:region"])
	assert.Equal(t, "t3.medium", stack.Config["ssmec2:instance-type"])
	assert.Equal(t, "dev-key", stack.Config["ssmec2:key-pair-name"])
	assert.NotContains(t, stack.Config, "ssmec2:ami-id")
	assert.Contains(t, stack.Config, "ssmec2:user-data")
}
