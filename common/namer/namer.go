package namer

import (
	"strings"

	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"

	"github.com/pepperico/ssm-ec2-rdp/common/utils"
)

const nameSep = "-"

type Namer struct {
	ctx    *pulumi.Context
	prefix string
}

func NewNamer(ctx *pulumi.Context, prefix string) Namer {
	return Namer{
		ctx:    ctx,
		prefix: prefix,
	}
}

// ResourceName return the concatenation of `parts` prefixed
// with namer prefix. Empty parts are skipped.
func (n Namer) ResourceName(parts ...string) string {
	if len(parts) == 0 {
		panic("Resource name requires at least one part to generate name")
	}

	tokens := make([]string, 0, len(parts)+1)
	if n.prefix != "" {
		tokens = append(tokens, n.prefix)
	}
	for _, part := range parts {
		if part != "" {
			tokens = append(tokens, part)
		}
	}

	return strings.Join(tokens, nameSep)
}

// ResourceNameWithMaxLen is ResourceName shortened to maxLen with a hash suffix
// when needed.
func (n Namer) ResourceNameWithMaxLen(maxLen int, parts ...string) string {
	return utils.StrUniqueWithMaxLen(n.ResourceName(parts...), maxLen)
}

// DisplayName return pulumi.StringInput the concatanation of pulumi.StringInput `parts` prefixed
// with the stack name and the namer prefix
func (n Namer) DisplayName(parts ...pulumi.StringInput) pulumi.StringOutput {
	var convertedParts []interface{}
	for _, part := range parts {
		convertedParts = append(convertedParts, part)
	}
	return pulumi.All(convertedParts...).ApplyT(func(args []interface{}) string {
		strArgs := []string{n.ctx.Stack()}
		for _, arg := range args {
			strArgs = append(strArgs, arg.(string))
		}
		return n.ResourceName(strArgs...)
	}).(pulumi.StringOutput)
}
