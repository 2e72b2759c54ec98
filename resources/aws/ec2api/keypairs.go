// Package ec2api queries EC2 directly, outside of a Pulumi program.
package ec2api

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ec2"
	"github.com/aws/smithy-go"
	"github.com/cenkalti/backoff/v4"

	"github.com/pepperico/ssm-ec2-rdp/components/keypair"
)

const (
	keyPairNotFoundCode = "InvalidKeyPair.NotFound"

	maxRetries    = 3
	retryInterval = 2 * time.Second
)

var throttlingCodes = map[string]struct{}{
	"RequestLimitExceeded": {},
	"Throttling":           {},
	"ThrottlingException":  {},
}

// DescribeKeyPairsAPI is the subset of the EC2 client used here.
type DescribeKeyPairsAPI interface {
	DescribeKeyPairs(ctx context.Context, params *ec2.DescribeKeyPairsInput, optFns ...func(*ec2.Options)) (*ec2.DescribeKeyPairsOutput, error)
}

// KeyPair is a key pair as reported by EC2.
type KeyPair struct {
	Name        string
	ID          string
	Type        string
	Fingerprint string
}

type Client struct {
	api           DescribeKeyPairsAPI
	retryInterval time.Duration
}

func NewClient(api DescribeKeyPairsAPI) *Client {
	return &Client{api: api, retryInterval: retryInterval}
}

// NewClientFromEnv builds a client from the default credential chain. An empty
// region keeps the region of the shared configuration.
func NewClientFromEnv(ctx context.Context, region string) (*Client, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if region != "" {
		opts = append(opts, awsconfig.WithRegion(region))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS configuration: %w", err)
	}
	return NewClient(ec2.NewFromConfig(cfg)), nil
}

// IsNotFound reports whether err is the EC2 error for an unknown key pair.
func IsNotFound(err error) bool {
	var apiErr smithy.APIError
	return errors.As(err, &apiErr) && apiErr.ErrorCode() == keyPairNotFoundCode
}

func isThrottled(err error) bool {
	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	_, found := throttlingCodes[apiErr.ErrorCode()]
	return found
}

// LookupKeyPair returns the named key pair. ok is false when EC2 does not know it.
// Throttled calls are retried.
func (c *Client) LookupKeyPair(ctx context.Context, name string) (kp KeyPair, ok bool, err error) {
	var out *ec2.DescribeKeyPairsOutput
	err = backoff.Retry(func() error {
		var err error
		out, err = c.api.DescribeKeyPairs(ctx, &ec2.DescribeKeyPairsInput{
			KeyNames: []string{name},
		})
		if err != nil && !isThrottled(err) {
			return backoff.Permanent(err)
		}
		return err
	}, backoff.WithContext(backoff.WithMaxRetries(backoff.NewConstantBackOff(c.retryInterval), maxRetries), ctx))
	if err != nil {
		if IsNotFound(err) {
			return KeyPair{}, false, nil
		}
		return KeyPair{}, false, err
	}
	if len(out.KeyPairs) == 0 {
		return KeyPair{}, false, nil
	}

	info := out.KeyPairs[0]
	return KeyPair{
		Name:        aws.ToString(info.KeyName),
		ID:          aws.ToString(info.KeyPairId),
		Type:        string(info.KeyType),
		Fingerprint: aws.ToString(info.KeyFingerprint),
	}, true, nil
}

// Provisioner exposes the client to keypair.Manager. Unknown key pairs are
// reported as errors.
func (c *Client) Provisioner(ctx context.Context) keypair.KeyPairProvisioner[KeyPair] {
	return keypair.KeyPairProvisionerFunc[KeyPair](func(name string) (KeyPair, error) {
		kp, ok, err := c.LookupKeyPair(ctx, name)
		if err != nil {
			return KeyPair{}, err
		}
		if !ok {
			return KeyPair{}, fmt.Errorf("key pair %q does not exist", name)
		}
		return kp, nil
	})
}
