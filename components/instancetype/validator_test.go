package instancetype

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pepperico/ssm-ec2-rdp/components/ec2config"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		instanceType string
		wantErr      string
	}{
		{instanceType: "t3.medium"},
		{instanceType: "T3.Medium"},
		{instanceType: "m7i-flex.large"},
		{instanceType: "u-12tb1.112xlarge"},
		{instanceType: "hpc7g.16xlarge"},
		{instanceType: "", wantErr: "missing value"},
		{instanceType: "t3", wantErr: "bad format"},
		{instanceType: "t3.medium.extra", wantErr: "bad format"},
		{instanceType: "3t.medium", wantErr: "bad format"},
		{instanceType: "t9.medium", wantErr: "unsupported family"},
		{instanceType: "t3.huge", wantErr: "unsupported size"},
		{instanceType: "t3.5xlarge", wantErr: "unsupported size"},
	}

	for _, tt := range tests {
		t.Run(tt.instanceType, func(t *testing.T) {
			err := Validate(tt.instanceType)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, ec2config.ErrInvalidValue)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateSuggestsFamilies(t *testing.T) {
	err := Validate("t9.medium")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "did you mean t2, t3?")
}

func TestValidateValue(t *testing.T) {
	s := "c5.large"
	assert.NoError(t, ValidateValue("c5.large"))
	assert.NoError(t, ValidateValue(&s))
	assert.ErrorContains(t, ValidateValue(nil), "missing value")
	assert.ErrorContains(t, ValidateValue((*string)(nil)), "missing value")
	assert.ErrorContains(t, ValidateValue(42), "wrong type")
	assert.ErrorContains(t, ValidateValue([]string{"t3.micro"}), "wrong type")
}

func TestFamilyAndSize(t *testing.T) {
	family, size, err := FamilyAndSize("M5.XLarge")
	require.NoError(t, err)
	assert.Equal(t, "m5", family)
	assert.Equal(t, "xlarge", size)

	_, _, err = FamilyAndSize("not a type")
	assert.ErrorIs(t, err, ec2config.ErrInvalidValue)
}

func TestCategory(t *testing.T) {
	tests := map[string]string{
		"t3.medium":       CategoryBurstable,
		"t4g.nano":        CategoryBurstable,
		"a1.large":        CategoryGeneralPurpose,
		"m5.large":        CategoryGeneralPurpose,
		"c7i.xlarge":      CategoryComputeOptimized,
		"r6i.large":       CategoryMemoryOptimized,
		"x2idn.16xlarge":  CategoryMemoryOptimized,
		"z1d.large":       CategoryMemoryOptimized,
		"u-6tb1.56xlarge": CategoryHighMemory,
		"i4i.large":       CategoryStorageOptimized,
		"inf2.xlarge":     CategoryAcceleratedComputing,
		"trn1.2xlarge":    CategoryAcceleratedComputing,
		"vt1.3xlarge":     CategoryAcceleratedComputing,
		"p5.48xlarge":     CategoryAcceleratedComputing,
		"hpc6a.48xlarge":  CategoryHPC,
		"h1.2xlarge":      CategoryStorageOptimized,
		"bogus":           CategoryUnknown,
	}

	for instanceType, want := range tests {
		assert.Equal(t, want, Category(instanceType), instanceType)
	}
}

func TestIsBurstable(t *testing.T) {
	assert.True(t, IsBurstable("t3.medium"))
	assert.True(t, IsBurstable("T2.micro"))
	assert.True(t, IsBurstable("trn1.2xlarge"))
	assert.True(t, IsBurstable("trn1n.32xlarge"))
	assert.False(t, IsBurstable("m5.large"))
	assert.False(t, IsBurstable("garbage"))
}

func TestSuggest(t *testing.T) {
	assert.Equal(t, []string{"t3.nano", "t3.micro", "t3.small", "t3.large", "t3.xlarge"}, Suggest("t3.medium", 5))
	assert.Equal(t, []string{"m5.micro", "m5.small"}, Suggest("M5.NANO", 2))
	assert.Equal(t, []string{"t3.micro", "t3.small", "t3.medium", "m5.large", "c5.large"}, Suggest("???", 5))
	assert.Equal(t, []string{"t3.micro", "t3.small"}, Suggest("", 2))
	assert.Empty(t, Suggest("t3.medium", 0))
	assert.Len(t, Suggest("c5.large", 100), len(Sizes())-1)
}

func TestSuggestFamilies(t *testing.T) {
	assert.Equal(t, []string{"m5", "m5a", "m5d"}, SuggestFamilies("m5x", 3))
	assert.Equal(t, []string{"t2", "t3"}, SuggestFamilies("T9", 3))
	assert.Empty(t, SuggestFamilies("m5", 3), "exact matches are not suggestions")
	assert.Empty(t, SuggestFamilies("", 3))
	assert.Empty(t, SuggestFamilies("zzzzzzzzzz", 3))
}

func TestSizeIndex(t *testing.T) {
	assert.Equal(t, 0, SizeIndex("nano"))
	assert.Equal(t, 4, SizeIndex("LARGE"))
	assert.Equal(t, len(Sizes())-1, SizeIndex("112xlarge"))
	assert.Equal(t, -1, SizeIndex("huge"))
	assert.Less(t, SizeIndex("2xlarge"), SizeIndex("10xlarge"))
}

func TestValidateAndGetInfo(t *testing.T) {
	info, err := ValidateAndGetInfo("t3.medium")
	require.NoError(t, err)
	assert.Equal(t, Info{
		InstanceType: "t3.medium",
		Family:       "t3",
		Size:         "medium",
		Category:     CategoryBurstable,
		IsBurstable:  true,
		IsValid:      true,
	}, info)

	info, err = ValidateAndGetInfo("trn1n.32xlarge")
	require.NoError(t, err)
	assert.Equal(t, CategoryAcceleratedComputing, info.Category)
	assert.True(t, info.IsBurstable)

	_, err = ValidateAndGetInfo("t3.huge")
	assert.ErrorIs(t, err, ec2config.ErrInvalidValue)
}

func TestEveryCatalogCombinationIsValid(t *testing.T) {
	for _, family := range Families() {
		for _, size := range Sizes() {
			instanceType := family + "." + size
			require.NoError(t, Validate(instanceType))

			info, err := ValidateAndGetInfo(instanceType)
			require.NoError(t, err)
			assert.Equal(t, instanceType, info.InstanceType)
			assert.Equal(t, family, info.Family)
			assert.Equal(t, size, info.Size)
		}
	}
}

func FuzzFamilyAndSize(f *testing.F) {
	f.Add("t3.medium")
	f.Add("M5.XLarge")
	f.Add("u-3tb1.56xlarge")
	f.Add("not-a-type")
	f.Add("")

	f.Fuzz(func(t *testing.T, s string) {
		upperFamily, upperSize, upperErr := FamilyAndSize(strings.ToUpper(s))
		lowerFamily, lowerSize, lowerErr := FamilyAndSize(strings.ToLower(s))
		if upperErr != nil || lowerErr != nil {
			return
		}
		assert.Equal(t, lowerFamily, upperFamily)
		assert.Equal(t, lowerSize, upperSize)

		again, againSize, err := FamilyAndSize(lowerFamily + "." + lowerSize)
		require.NoError(t, err)
		assert.Equal(t, lowerFamily, again)
		assert.Equal(t, lowerSize, againSize)

		if Validate(s) == nil {
			info, err := ValidateAndGetInfo(s)
			require.NoError(t, err)
			assert.Equal(t, s, info.InstanceType)
		}
	})
}
