package rpmdb

// Architecture families as known to rpm. Compiled from the
// rpmUtils.arch tables; fixed at build time.
var (
	Arches64 = []string{"x86_64", "athlon", "amd64", "ia32e", "ia64", "geode"}
	Arches32 = []string{"i386", "i486", "i586", "i686"}

	ArchesPPC   = []string{"ppc", "ppc64", "ppc64le", "ppc64iseries", "ppc64pseries"}
	ArchesS390  = []string{"s390", "s390x"}
	ArchesSparc = []string{"sparc", "sparcv8", "sparcv9", "sparcv9v", "sparc64", "sparc64v"}
	ArchesAlpha = []string{
		"alpha", "alphaev4", "alphaev45", "alphaev5", "alphaev56",
		"alphapca56", "alphaev6", "alphaev67", "alphaev68", "alphaev7",
	}
	ArchesARM32 = []string{
		"armv5tel", "armv5tejl", "armv6l", "armv6hl",
		"armv7l", "armv7hl", "armv7hnl",
	}
	ArchesARM64 = []string{"aarch64"}
	ArchesSH    = []string{"sh3", "sh4", "sh4a"}
)

// Arches is the union of every known architecture family.
var Arches = concat(
	Arches64, Arches32, ArchesPPC, ArchesS390, ArchesSparc,
	ArchesAlpha, ArchesARM32, ArchesARM64, ArchesSH,
)

var (
	arches32Set    = toSet(Arches32)
	archesARM32Set = toSet(ArchesARM32)
)

// Check32 returns true if both the OS arch and the passed arch are x86
// or ARM 32-bit. Mixed families (one x86, one ARM) do not count.
func Check32(arch, osarch string) bool {
	if arches32Set[arch] && arches32Set[osarch] {
		return true
	}
	return archesARM32Set[arch] && archesARM32Set[osarch]
}

// ResolveName resolves a package name and arch into the unique name the
// package is referred to by. On a 64-bit OS a 32-bit package stays
// unsuffixed; any other foreign arch gets a ".arch" suffix. Noarch and
// native packages are never suffixed.
func ResolveName(name, arch, osarch string) string {
	if !Check32(arch, osarch) && arch != osarch && arch != "noarch" {
		name += "." + arch
	}
	return name
}

func toSet(arches []string) map[string]bool {
	set := make(map[string]bool, len(arches))
	for _, a := range arches {
		set[a] = true
	}
	return set
}

func concat(groups ...[]string) []string {
	var all []string
	for _, g := range groups {
		all = append(all, g...)
	}
	return all
}
