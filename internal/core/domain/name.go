package domain

import "strings"

// ExtractName derives the canonical package name from a raw dependency
// declaration string. It handles the common formats:
//
//   - conda channel prefixes: "conda-forge::numpy=1.2" -> "numpy"
//   - pip direct references (PEP 508): "pkg @ url" -> "pkg"
//   - extras: "pkg[extra]==1.2" -> "pkg"
//
// The function is total: for input that yields no name token it returns the
// trimmed input unchanged, which simply will not match any canonical name.
func ExtractName(raw string) string {
	trimmed := strings.TrimSpace(raw)

	// Strip the channel qualifier up to and including the first "::".
	name := trimmed
	if _, rest, ok := strings.Cut(name, "::"); ok {
		name = rest
	}

	// The leading run of name characters is the distribution name. Version
	// constraints, extras brackets, operators and URLs never use characters
	// from this alphabet, so the run stops exactly at the first marker.
	end := 0
	for end < len(name) && isNameByte(name[end]) {
		end++
	}
	if end == 0 {
		// Falling back to the trimmed input (not the channel-stripped
		// remainder) keeps extraction idempotent.
		return trimmed
	}
	return name[:end]
}

func isNameByte(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z':
		return true
	case c >= 'A' && c <= 'Z':
		return true
	case c >= '0' && c <= '9':
		return true
	case c == '_' || c == '.' || c == '-':
		return true
	}
	return false
}
