package instancetype

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"

	"github.com/pepperico/ssm-ec2-rdp/components/ec2config"
)

const (
	DefaultSuggestionLimit = 5
	examplesInMessage      = 10
)

var formatPattern = regexp.MustCompile(`^[a-z][a-z0-9]*[a-z0-9-]*\.[a-z0-9]+$`)

// Info describes a valid instance type.
type Info struct {
	InstanceType string `json:"instance_type" yaml:"instance_type"`
	Family       string `json:"family" yaml:"family"`
	Size         string `json:"size" yaml:"size"`
	Category     string `json:"category" yaml:"category"`
	IsBurstable  bool   `json:"is_burstable" yaml:"is_burstable"`
	IsValid      bool   `json:"is_valid" yaml:"is_valid"`
}

func lower(s string) string {
	return strings.ToLower(s)
}

func invalid(format string, args ...any) error {
	return ec2config.InvalidValue(ec2config.FieldInstanceType, format, args...)
}

// Validate checks instanceType against the format, the family catalog and the
// size catalog, in that order. A nil error means valid.
func Validate(instanceType string) error {
	if instanceType == "" {
		return invalid("missing value: no instance type was given")
	}

	if !formatPattern.MatchString(lower(instanceType)) {
		return invalid("bad format: %s, expected {family}.{size} such as t3.medium or m5.large", instanceType)
	}

	family, size, _ := strings.Cut(instanceType, ".")
	if !IsKnownFamily(family) {
		msg := fmt.Sprintf("unsupported family: %s, known families include %s...",
			family, strings.Join(Families()[:examplesInMessage], ", "))
		if nearest := SuggestFamilies(family, 3); len(nearest) > 0 {
			msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(nearest, ", "))
		}
		return invalid("%s", msg)
	}

	if !IsKnownSize(size) {
		return invalid("unsupported size: %s, known sizes include %s...",
			size, strings.Join(sizes[:examplesInMessage], ", "))
	}

	return nil
}

// ValidateValue accepts loosely typed input. Anything other than a string is
// rejected as the wrong type.
func ValidateValue(value any) error {
	switch v := value.(type) {
	case nil:
		return invalid("missing value: no instance type was given")
	case string:
		return Validate(v)
	case *string:
		if v == nil {
			return invalid("missing value: no instance type was given")
		}
		return Validate(*v)
	default:
		return invalid("wrong type: instance type must be a string, got %T", value)
	}
}

// FamilyAndSize splits instanceType into its lower-cased family and size.
// Only the format is checked.
func FamilyAndSize(instanceType string) (string, string, error) {
	normalized := lower(instanceType)
	if !formatPattern.MatchString(normalized) {
		return "", "", invalid("bad format: %s", instanceType)
	}
	family, size, _ := strings.Cut(normalized, ".")
	return family, size, nil
}

// Category returns the category label of instanceType, or CategoryUnknown when
// it cannot be parsed.
func Category(instanceType string) string {
	family, _, err := FamilyAndSize(instanceType)
	if err != nil {
		return CategoryUnknown
	}
	return familyCategory(family)
}

func familyCategory(family string) string {
	best := ""
	for prefix := range categoryPrefixes {
		if strings.HasPrefix(family, prefix) && len(prefix) > len(best) {
			best = prefix
		}
	}
	if best == "" {
		return CategoryGeneralPurpose
	}
	return categoryPrefixes[best]
}

// IsBurstable reports whether the family of instanceType starts with 't'. This
// is independent of Category: trn1 is burstable yet Accelerated Computing.
func IsBurstable(instanceType string) bool {
	family, _, err := FamilyAndSize(instanceType)
	if err != nil {
		return false
	}
	return burstableFamily(family)
}

func burstableFamily(family string) bool {
	return strings.HasPrefix(family, "t")
}

// Suggest returns up to limit other sizes of the same family, in size order.
// Unparsable input gets the popular types instead.
func Suggest(instanceType string, limit int) []string {
	if limit <= 0 {
		return nil
	}

	family, size, err := FamilyAndSize(instanceType)
	if err != nil {
		return lo.Slice(popularTypes, 0, limit)
	}

	candidates := lo.FilterMap(sizes, func(s string, _ int) (string, bool) {
		return family + "." + s, s != size
	})
	return lo.Slice(candidates, 0, limit)
}

// SuggestFamilies returns up to limit known families closest to family by edit
// distance. Families further than half their own length away are skipped.
func SuggestFamilies(family string, limit int) []string {
	family = lower(family)
	if family == "" || limit <= 0 {
		return nil
	}

	type ranked struct {
		name     string
		distance int
	}
	var matches []ranked
	for _, candidate := range Families() {
		d := fuzzy.LevenshteinDistance(family, candidate)
		if d == 0 || d > max(1, len(candidate)/2) {
			continue
		}
		matches = append(matches, ranked{name: candidate, distance: d})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].distance < matches[j].distance
	})

	return lo.Map(lo.Slice(matches, 0, limit), func(r ranked, _ int) string { return r.name })
}

// ValidateAndGetInfo validates instanceType and describes it.
func ValidateAndGetInfo(instanceType string) (Info, error) {
	if err := Validate(instanceType); err != nil {
		return Info{}, err
	}

	family, size, err := FamilyAndSize(instanceType)
	if err != nil {
		return Info{}, err
	}

	return Info{
		InstanceType: instanceType,
		Family:       family,
		Size:         size,
		Category:     familyCategory(family),
		IsBurstable:  burstableFamily(family),
		IsValid:      true,
	}, nil
}
