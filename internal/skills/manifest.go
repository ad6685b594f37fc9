package skills

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

const frontmatterMarker = "---"

var frontmatterPattern = regexp.MustCompile(`(?s)^---\n(.*?)\n---`)

var (
	// ErrNoFrontmatter means the document does not start with the marker
	ErrNoFrontmatter = errors.New("no frontmatter")
	// ErrInvalidFrontmatter means the closing marker was never found
	ErrInvalidFrontmatter = errors.New("invalid frontmatter format")
	// ErrNotMapping means the frontmatter parsed to something other than a mapping
	ErrNotMapping = errors.New("frontmatter is not a mapping")
)

// Frontmatter is a SKILL.md split at its header markers
type Frontmatter struct {
	Raw  string // text between the markers
	Body string // text after the closing marker
}

// ExtractFrontmatter locates the header block of a SKILL.md document
func ExtractFrontmatter(content string) (Frontmatter, error) {
	if !strings.HasPrefix(content, frontmatterMarker) {
		return Frontmatter{}, ErrNoFrontmatter
	}

	loc := frontmatterPattern.FindStringSubmatchIndex(content)
	if loc == nil {
		return Frontmatter{}, ErrInvalidFrontmatter
	}

	return Frontmatter{
		Raw:  content[loc[2]:loc[3]],
		Body: content[loc[1]:],
	}, nil
}

// HeaderParser turns a raw frontmatter block into a header mapping
type HeaderParser interface {
	Name() string
	Parse(raw string) (*Header, error)
}

// LineParser is the permissive key: value parser. It never fails.
type LineParser struct{}

// Name returns the parser name used in configuration
func (LineParser) Name() string { return "line" }

// Parse extracts whatever key/value pairs it can, skipping anything else
func (LineParser) Parse(raw string) (*Header, error) {
	h := NewHeader()
	for _, line := range strings.Split(strings.TrimSpace(raw), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		h.Set(strings.TrimSpace(key), unquote(strings.TrimSpace(value)))
	}
	return h, nil
}

// unquote removes one layer of matching single or double quotes
func unquote(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}

// fullParser is set when a structured parser is compiled in
var fullParser HeaderParser

// DefaultParser returns the structured parser when available, else the line parser
func DefaultParser() HeaderParser {
	if fullParser != nil {
		return fullParser
	}
	return LineParser{}
}

// ParserByName resolves a configured parser name: auto, yaml or line
func ParserByName(name string) (HeaderParser, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return DefaultParser(), nil
	case "line", "simple":
		return LineParser{}, nil
	case "yaml":
		if fullParser == nil {
			return nil, fmt.Errorf("yaml parser not available in this build")
		}
		return fullParser, nil
	default:
		return nil, fmt.Errorf("unknown frontmatter parser: %s", name)
	}
}
