package scrambler

// Word pools for seed generation. Chosen for distinct pronunciation,
// unambiguous spelling, and no PII associations.

var adjectives = []string{
	"amber", "arctic", "aspen", "birch", "blaze", "bolt", "cedar", "chalk", "cinder",
	"cobalt", "copper", "coral", "crimson", "dawn", "delta", "dusk", "echo", "ember",
	"fern", "flint", "forge", "frost", "glint", "grove", "hazel", "heather", "hollow",
	"indigo", "inlet", "ivory", "jade", "jasper", "kestrel", "larch", "laurel", "linen",
	"lunar", "maple", "marsh", "mist", "navy", "nimbus", "ochre", "opal", "orbit", "otter",
	"petal", "pine", "prism", "quartz", "raven", "ridge", "river", "rowan", "runic",
	"sable", "sage", "salt", "sand", "scout", "shale", "slate", "smoke", "solar", "sparrow",
	"spruce", "starling", "storm", "summit", "swift", "tallow", "teal", "thistle", "timber",
	"trace", "tundra", "vale", "vault", "veldt", "wick", "willow", "wren", "zephyr", "zenith",
}

var nouns = []string{
	"anvil", "arch", "basin", "beacon", "bridge", "brook", "cable", "cairn", "canal",
	"canopy", "cast", "chord", "circuit", "cistern", "cleft", "crest", "current", "depth",
	"dial", "drift", "dune", "echo", "edge", "ember", "falls", "field", "flare", "frame",
	"gate", "glade", "gorge", "grid", "gully", "haven", "hearth", "helm", "hollow", "kelp",
	"knot", "latch", "ledge", "lens", "lever", "light", "line", "link", "loch", "lock",
	"loop", "lore", "mark", "mast", "meld", "mesh", "mill", "moor", "node", "notch",
	"orbit", "pass", "patch", "peak", "pier", "pillar", "pitch", "plain", "plank", "pool",
	"port", "post", "press", "range", "rapid", "reach", "reef", "relay", "ridge", "rift",
	"rivet", "root", "route", "rune", "seal", "shaft", "shore", "sill", "sluice", "span",
	"spoke", "stack", "stake", "stave", "stern", "strand", "strut", "surge", "sweep",
	"tide", "tine", "torch", "track", "trail", "vault", "vein", "weir", "well", "wharf",
}

// Adjectives returns a copy of the adjective pool.
// The returned slice is safe to modify; the pool itself is never mutated.
func Adjectives() []string {
	out := make([]string, len(adjectives))
	copy(out, adjectives)
	return out
}

// Nouns returns a copy of the noun pool.
func Nouns() []string {
	out := make([]string, len(nouns))
	copy(out, nouns)
	return out
}

// Space returns the total number of distinct adjective-noun pairs.
func Space() int {
	return len(adjectives) * len(nouns)
}
