package instancetype

// Family catalog grouped by category. Lower case.
var (
	generalPurposeFamilies = []string{
		"a1", "t2", "t3", "t3a", "t4g",
		"m4", "m5", "m5a", "m5ad", "m5d", "m5dn", "m5n", "m5zn",
		"m6a", "m6g", "m6gd", "m6i", "m6id", "m6idn", "m6in",
		"m7a", "m7g", "m7gd", "m7i", "m7i-flex",
	}
	computeOptimizedFamilies = []string{
		"c4", "c5", "c5a", "c5ad", "c5d", "c5n",
		"c6a", "c6g", "c6gd", "c6gn", "c6i", "c6id", "c6in",
		"c7a", "c7g", "c7gd", "c7gn", "c7i", "c7i-flex",
	}
	memoryOptimizedFamilies = []string{
		"r4", "r5", "r5a", "r5ad", "r5b", "r5d", "r5dn", "r5n",
		"r6a", "r6g", "r6gd", "r6i", "r6id", "r6idn", "r6in",
		"r7a", "r7g", "r7gd", "r7i", "r7iz",
		"u-3tb1", "u-6tb1", "u-9tb1", "u-12tb1", "u-18tb1", "u-24tb1",
		"x1", "x1e", "x2gd", "x2idn", "x2iedn", "x2iezn", "z1d",
	}
	storageOptimizedFamilies = []string{
		"d2", "d3", "d3en", "h1", "i3", "i3en", "i4g", "i4i", "im4gn", "is4gen",
	}
	acceleratedComputingFamilies = []string{
		"f1", "g3", "g4ad", "g4dn", "g5", "g5g",
		"inf1", "inf2", "p2", "p3", "p3dn", "p4d", "p4de", "p5",
		"trn1", "trn1n", "vt1",
	}
	hpcFamilies = []string{
		"hpc6a", "hpc6id", "hpc7a", "hpc7g",
	}
)

// Sizes ordered from smallest to largest.
var sizes = []string{
	"nano", "micro", "small", "medium", "large", "xlarge",
	"2xlarge", "3xlarge", "4xlarge", "6xlarge", "8xlarge", "9xlarge",
	"10xlarge", "12xlarge", "16xlarge", "18xlarge", "24xlarge", "32xlarge",
	"48xlarge", "56xlarge", "96xlarge", "112xlarge",
}

// Popular types suggested when the input cannot be parsed.
var popularTypes = []string{"t3.micro", "t3.small", "t3.medium", "m5.large", "c5.large"}

// Category labels.
const (
	CategoryBurstable            = "Burstable Performance"
	CategoryGeneralPurpose       = "General Purpose"
	CategoryComputeOptimized     = "Compute Optimized"
	CategoryMemoryOptimized      = "Memory Optimized"
	CategoryHighMemory           = "High Memory"
	CategoryStorageOptimized     = "Storage Optimized"
	CategoryAcceleratedComputing = "Accelerated Computing"
	CategoryHPC                  = "High Performance Computing"
	CategoryUnknown              = "Unknown"
)

// categoryPrefixes maps a family prefix to its category. The longest matching
// prefix wins.
var categoryPrefixes = map[string]string{
	"t":   CategoryBurstable,
	"a":   CategoryGeneralPurpose,
	"m":   CategoryGeneralPurpose,
	"c":   CategoryComputeOptimized,
	"r":   CategoryMemoryOptimized,
	"x":   CategoryMemoryOptimized,
	"z":   CategoryMemoryOptimized,
	"u":   CategoryHighMemory,
	"d":   CategoryStorageOptimized,
	"h":   CategoryStorageOptimized,
	"i":   CategoryStorageOptimized,
	"f":   CategoryAcceleratedComputing,
	"g":   CategoryAcceleratedComputing,
	"p":   CategoryAcceleratedComputing,
	"inf": CategoryAcceleratedComputing,
	"trn": CategoryAcceleratedComputing,
	"vt":  CategoryAcceleratedComputing,
	"hpc": CategoryHPC,
}

var (
	knownFamilies = buildSet(
		generalPurposeFamilies,
		computeOptimizedFamilies,
		memoryOptimizedFamilies,
		storageOptimizedFamilies,
		acceleratedComputingFamilies,
		hpcFamilies,
	)
	sizeIndex = buildIndex(sizes)
)

func buildSet(groups ...[]string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, group := range groups {
		for _, v := range group {
			set[v] = struct{}{}
		}
	}
	return set
}

func buildIndex(values []string) map[string]int {
	index := make(map[string]int, len(values))
	for i, v := range values {
		index[v] = i
	}
	return index
}

// Families returns every known family, grouped in catalog order.
func Families() []string {
	var all []string
	for _, group := range [][]string{
		generalPurposeFamilies,
		computeOptimizedFamilies,
		memoryOptimizedFamilies,
		storageOptimizedFamilies,
		acceleratedComputingFamilies,
		hpcFamilies,
	} {
		all = append(all, group...)
	}
	return all
}

// Sizes returns the known sizes from smallest to largest.
func Sizes() []string {
	return append([]string(nil), sizes...)
}

// IsKnownFamily is case-insensitive.
func IsKnownFamily(family string) bool {
	_, ok := knownFamilies[lower(family)]
	return ok
}

// IsKnownSize is case-insensitive.
func IsKnownSize(size string) bool {
	_, ok := sizeIndex[lower(size)]
	return ok
}

// SizeIndex returns the position of size in the ordered catalog, or -1.
func SizeIndex(size string) int {
	if i, ok := sizeIndex[lower(size)]; ok {
		return i
	}
	return -1
}
