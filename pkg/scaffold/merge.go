package scaffold

// Merge deep-merges override into base and returns a new map; neither input
// is mutated. The rule, applied at every nesting level: when both sides
// hold a nested mapping at the same key, recurse; otherwise the override
// side wins outright. That covers scalars, the disabled sentinel, and
// type mismatches alike, so override precedence is consistent at arbitrary
// depth.
func Merge(base, override map[string]interface{}) map[string]interface{} {
	merged := make(map[string]interface{}, len(base)+len(override))
	for key, value := range base {
		merged[key] = value
	}

	for key, overrideVal := range override {
		baseVal, exists := merged[key]
		if exists {
			baseMap, baseOk := baseVal.(map[string]interface{})
			overrideMap, overrideOk := overrideVal.(map[string]interface{})
			if baseOk && overrideOk {
				merged[key] = Merge(baseMap, overrideMap)
				continue
			}
		}
		merged[key] = overrideVal
	}

	return merged
}

// consolidateMappings folds the allowed packages' raw mappings together in
// ascending precedence order, so later packages override earlier ones at
// the leaf level while unrelated entries survive.
func consolidateMappings(allowed *AllowedPackages, result *Result) map[string]interface{} {
	consolidated := map[string]interface{}{}
	for _, name := range allowed.Names() {
		pkg, _ := allowed.Get(name)
		consolidated = Merge(consolidated, readFileMapping(pkg, result))
	}
	return consolidated
}
