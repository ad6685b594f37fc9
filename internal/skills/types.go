package skills

// SkillFile is the metadata document every skill directory must contain
const SkillFile = "SKILL.md"

// Header is the ordered key/value mapping parsed from SKILL.md frontmatter
type Header struct {
	keys   []string
	values map[string]any
}

// NewHeader creates an empty header
func NewHeader() *Header {
	return &Header{values: map[string]any{}}
}

// Set stores a value. A repeated key keeps its first position.
func (h *Header) Set(key string, value any) {
	if _, ok := h.values[key]; !ok {
		h.keys = append(h.keys, key)
	}
	h.values[key] = value
}

// Get returns the value stored under key
func (h *Header) Get(key string) (any, bool) {
	v, ok := h.values[key]
	return v, ok
}

// Keys returns the keys in the order they first appeared
func (h *Header) Keys() []string {
	out := make([]string, len(h.keys))
	copy(out, h.keys)
	return out
}

// Len returns the number of keys
func (h *Header) Len() int {
	return len(h.keys)
}

// Result is the verdict of a validation run
type Result struct {
	Valid    bool
	Message  string
	Warnings []string // non-fatal advisories, in the order they were raised
}

// Skill is a skill directory found under a skills root
type Skill struct {
	Name     string
	Path     string
	Location string // path to SKILL.md
}
