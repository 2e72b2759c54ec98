package ec2config

// Well-known public image parameters.
const (
	WindowsServer2022JapaneseParameter = "/aws/service/ami-windows-latest/Windows_Server-2022-Japanese-Full-Base"
	WindowsServer2022EnglishParameter  = "/aws/service/ami-windows-latest/Windows_Server-2022-English-Full-Base"
	AmazonLinux2023Parameter           = "/aws/service/ami-amazon-linux-latest/al2023-ami-kernel-6.1-x86_64"
)

const helpText = `Configuration guide

Required:
  - ami-id or ami-parameter (exactly one of them)
  - instance-type

Optional:
  - subnet-type      "private" (default) or "public"
  - key-pair-name    not needed when connecting through Session Manager

Example with an explicit AMI id:
{
  "context": {
    "ami-id": "ami-0123456789abcdef0",
    "instance-type": "t3.large"
  }
}

Example with an SSM parameter:
{
  "context": {
    "ami-parameter": "` + WindowsServer2022JapaneseParameter + `",
    "instance-type": "t3.medium",
    "subnet-type": "private",
    "key-pair-name": "my-key-pair"
  }
}

Details:
  - AMI: give the AMI id directly or an SSM parameter path that holds it
  - Instance type: an EC2 instance type such as t3.medium, m5.large or c5.xlarge
  - Subnet type:
      private: Session Manager access through VPC endpoints only
      public:  a public IP is associated, direct SSH/RDP is possible
  - Key pair: optional, Session Manager is used when it is not set

Public AMI parameters:
  - Windows Server 2022 Japanese: ` + WindowsServer2022JapaneseParameter + `
  - Windows Server 2022 English:  ` + WindowsServer2022EnglishParameter + `
  - Amazon Linux 2023:            ` + AmazonLinux2023Parameter + `
`

// Help returns the fixed configuration guide.
func Help() string {
	return helpText
}
