package skills

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
	"time"
	"unicode/utf8"
)

// Frontmatter rule set. Fixed at compile time.
const (
	MaxNameLength        = 64
	MaxDescriptionLength = 1024
	MaxRecommendedLines  = 500
	todoMarker           = "[TODO"
)

// AllowedKeys are the frontmatter keys a SKILL.md may use, sorted
var AllowedKeys = []string{
	"allowed-tools",
	"compatibility",
	"description",
	"license",
	"metadata",
	"name",
}

var namePattern = regexp.MustCompile(`^[a-z0-9-]+$`)

// unexpectedKeys returns header keys outside AllowedKeys, sorted
func unexpectedKeys(h *Header) []string {
	var out []string
	for _, k := range h.Keys() {
		if !slices.Contains(AllowedKeys, k) {
			out = append(out, k)
		}
	}
	slices.Sort(out)
	return out
}

// CheckName validates a trimmed skill name. The empty name is accepted.
func CheckName(name string) error {
	if name == "" {
		return nil
	}
	if !namePattern.MatchString(name) {
		return fmt.Errorf("Name '%s' should be kebab-case (lowercase letters, digits, hyphens only)", name)
	}
	if strings.HasPrefix(name, "-") || strings.HasSuffix(name, "-") || strings.Contains(name, "--") {
		return fmt.Errorf("Name '%s' cannot start/end with hyphen or contain consecutive hyphens", name)
	}
	if len(name) > MaxNameLength {
		return fmt.Errorf("Name too long (%d chars). Maximum: %d", len(name), MaxNameLength)
	}
	return nil
}

// CheckDescription validates a trimmed description. The empty description is accepted.
func CheckDescription(desc string) error {
	if desc == "" {
		return nil
	}
	if strings.ContainsAny(desc, "<>") {
		return fmt.Errorf("Description cannot contain angle brackets (< or >)")
	}
	if n := utf8.RuneCountInString(desc); n > MaxDescriptionLength {
		return fmt.Errorf("Description too long (%d chars). Maximum: %d", n, MaxDescriptionLength)
	}
	return nil
}

// checkHeader applies key and field rules to a parsed header
func checkHeader(h *Header) error {
	if extra := unexpectedKeys(h); len(extra) > 0 {
		return fmt.Errorf("Unexpected key(s) in frontmatter: %s. Allowed: %s",
			strings.Join(extra, ", "), strings.Join(AllowedKeys, ", "))
	}

	name, ok := h.Get("name")
	if !ok {
		return fmt.Errorf("Missing 'name' in frontmatter")
	}
	desc, ok := h.Get("description")
	if !ok {
		return fmt.Errorf("Missing 'description' in frontmatter")
	}

	nameStr, ok := name.(string)
	if !ok {
		return fmt.Errorf("Name must be a string, got %s", typeName(name))
	}
	if err := CheckName(strings.TrimSpace(nameStr)); err != nil {
		return err
	}

	descStr, ok := desc.(string)
	if !ok {
		return fmt.Errorf("Description must be a string, got %s", typeName(desc))
	}
	return CheckDescription(strings.TrimSpace(descStr))
}

// typeName names a decoded YAML value the way a SKILL.md author would
func typeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case bool:
		return "bool"
	case int, int64, uint64:
		return "int"
	case float64:
		return "float"
	case []any:
		return "list"
	case map[string]any, map[any]any:
		return "dict"
	case time.Time:
		return "timestamp"
	default:
		return fmt.Sprintf("%T", v)
	}
}
