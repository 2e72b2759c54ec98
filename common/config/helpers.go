package config

import (
	"fmt"
	"strings"

	"github.com/pulumi/pulumi/sdk/v3/go/pulumi"
)

func tagListToKeyValueMap(tagList []string) (map[string]string, error) {
	tags := map[string]string{}
	for _, tag := range tagList {
		if strings.TrimSpace(tag) == "" {
			continue
		}
		key, value, found := strings.Cut(tag, ":")
		if !found || key == "" {
			return tags, fmt.Errorf("invalid tag, expecting <key>:<value>, got %s", tag)
		}
		tags[key] = value
	}
	return tags, nil
}

func extendTagsMap(pulumiStringMap pulumi.StringMap, otherMap map[string]string) {
	for key, value := range otherMap {
		pulumiStringMap[strings.ReplaceAll(
			strings.ToLower(key), "_", "-")] = pulumi.String(value)
	}
}
