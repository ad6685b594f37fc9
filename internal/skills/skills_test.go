package skills

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// availableParsers returns every parser compiled into this build
func availableParsers() []HeaderParser {
	parsers := []HeaderParser{LineParser{}}
	if fullParser != nil {
		parsers = append(parsers, fullParser)
	}
	return parsers
}

func writeSkill(t *testing.T, dirName, content string) string {
	t.Helper()
	skillDir := filepath.Join(t.TempDir(), dirName)
	if err := os.Mkdir(skillDir, 0755); err != nil {
		t.Fatalf("Failed to create skill dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(skillDir, SkillFile), []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write skill file: %v", err)
	}
	return skillDir
}

func TestExtractFrontmatter(t *testing.T) {
	content := "---\nname: pdf-processing\ndescription: Extract text\n---\n\n# PDF Processing\n"

	fm, err := ExtractFrontmatter(content)
	if err != nil {
		t.Fatalf("ExtractFrontmatter failed: %v", err)
	}
	if fm.Raw != "name: pdf-processing\ndescription: Extract text" {
		t.Errorf("Unexpected raw frontmatter: %q", fm.Raw)
	}
	if fm.Body != "\n\n# PDF Processing\n" {
		t.Errorf("Unexpected body: %q", fm.Body)
	}
}

func TestExtractFrontmatterStopsAtFirstClosingMarker(t *testing.T) {
	content := "---\nname: a\n---\nbody\n---\nmore\n"

	fm, err := ExtractFrontmatter(content)
	if err != nil {
		t.Fatalf("ExtractFrontmatter failed: %v", err)
	}
	if fm.Raw != "name: a" {
		t.Errorf("Expected header to end at first marker, got %q", fm.Raw)
	}
	if !strings.Contains(fm.Body, "more") {
		t.Errorf("Expected later markers to stay in body, got %q", fm.Body)
	}
}

func TestExtractFrontmatterErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    error
	}{
		{"no marker", "# Just a title\n", ErrNoFrontmatter},
		{"leading blank line", "\n---\nname: a\n---\nbody", ErrNoFrontmatter},
		{"never closed", "---\nname: a\ndescription: b\n", ErrInvalidFrontmatter},
		{"marker only", "---", ErrInvalidFrontmatter},
		{"adjacent markers", "---\n---\nbody", ErrInvalidFrontmatter},
	}

	for _, tt := range tests {
		_, err := ExtractFrontmatter(tt.content)
		if err != tt.want {
			t.Errorf("%s: error = %v, want %v", tt.name, err, tt.want)
		}
	}
}

func TestLineParser(t *testing.T) {
	raw := `
# a comment
name: "quoted-name"
description: 'single quoted'
license:   MIT
homepage: https://example.com/x
this line has no separator
mixed: "half'
`
	h, err := LineParser{}.Parse(raw)
	if err != nil {
		t.Fatalf("LineParser never fails, got %v", err)
	}

	want := map[string]string{
		"name":        "quoted-name",
		"description": "single quoted",
		"license":     "MIT",
		"homepage":    "https://example.com/x",
		"mixed":       `"half'`,
	}
	if h.Len() != len(want) {
		t.Errorf("Expected %d keys, got %v", len(want), h.Keys())
	}
	for k, v := range want {
		got, ok := h.Get(k)
		if !ok || got != v {
			t.Errorf("Key %q = %v, want %q", k, got, v)
		}
	}

	keys := h.Keys()
	if keys[0] != "name" || keys[len(keys)-1] != "mixed" {
		t.Errorf("Expected keys in document order, got %v", keys)
	}
}

func TestLineParserNeverFails(t *testing.T) {
	inputs := []string{"", ":", "::::", "- a\n- b", "key: [unclosed", "\x00\xff"}
	for _, in := range inputs {
		if _, err := (LineParser{}).Parse(in); err != nil {
			t.Errorf("Parse(%q) returned error %v", in, err)
		}
	}
}

func TestCheckName(t *testing.T) {
	tests := []struct {
		name    string
		wantErr string
	}{
		{"pdf-processing", ""},
		{"my-skill", ""},
		{"skill123", ""},
		{"123-skill", ""},
		{"", ""},
		{"-invalid", "cannot start/end with hyphen"},
		{"invalid-", "cannot start/end with hyphen"},
		{"invalid--name", "consecutive hyphens"},
		{"Invalid", "should be kebab-case"},
		{"skill_name", "should be kebab-case"},
		{strings.Repeat("a", 64), ""},
		{strings.Repeat("a", 65), "Name too long (65 chars). Maximum: 64"},
	}

	for _, tt := range tests {
		err := CheckName(tt.name)
		switch {
		case tt.wantErr == "" && err != nil:
			t.Errorf("CheckName(%q) unexpected error: %v", tt.name, err)
		case tt.wantErr != "" && (err == nil || !strings.Contains(err.Error(), tt.wantErr)):
			t.Errorf("CheckName(%q) error = %v, want %q", tt.name, err, tt.wantErr)
		}
	}
}

func TestCheckDescription(t *testing.T) {
	if err := CheckDescription("does a thing"); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
	if err := CheckDescription("<script>"); err == nil || !strings.Contains(err.Error(), "angle brackets") {
		t.Errorf("Expected angle bracket error, got %v", err)
	}
	if err := CheckDescription(strings.Repeat("é", 1024)); err != nil {
		t.Errorf("1024 runes should be accepted, got %v", err)
	}
	err := CheckDescription(strings.Repeat("x", 1025))
	if err == nil || err.Error() != "Description too long (1025 chars). Maximum: 1024" {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		content string
		valid   bool
		message string
	}{
		{
			name:    "valid",
			content: "---\nname: foo-bar\ndescription: does a thing\n---\n\n# Foo Bar\n\nBody.\n",
			valid:   true,
			message: ValidMessage,
		},
		{
			name:    "no frontmatter",
			content: "# Foo\n",
			message: "No YAML frontmatter found",
		},
		{
			name:    "never closed",
			content: "---\nname: foo-bar\ndescription: does a thing\n\n# Foo\n",
			message: "Invalid frontmatter format",
		},
		{
			name:    "unexpected key",
			content: "---\nname: foo-bar\ndescription: does a thing\ncolor: blue\n---\nBody\n",
			message: "Unexpected key(s) in frontmatter: color. Allowed: allowed-tools, compatibility, description, license, metadata, name",
		},
		{
			name:    "unexpected keys sorted",
			content: "---\nname: foo-bar\nzeta: 1\ndescription: does a thing\nalpha: 2\n---\nBody\n",
			message: "Unexpected key(s) in frontmatter: alpha, zeta. Allowed: allowed-tools, compatibility, description, license, metadata, name",
		},
		{
			name:    "missing name",
			content: "---\ndescription: does a thing\n---\nBody\n",
			message: "Missing 'name' in frontmatter",
		},
		{
			name:    "missing description",
			content: "---\nname: foo-bar\n---\nBody\n",
			message: "Missing 'description' in frontmatter",
		},
		{
			name:    "consecutive hyphens",
			content: "---\nname: foo--bar\ndescription: does a thing\n---\nBody\n",
			message: "Name 'foo--bar' cannot start/end with hyphen or contain consecutive hyphens",
		},
		{
			name:    "uppercase name",
			content: "---\nname: Foo\ndescription: does a thing\n---\nBody\n",
			message: "Name 'Foo' should be kebab-case (lowercase letters, digits, hyphens only)",
		},
		{
			name:    "angle brackets",
			content: "---\nname: foo-bar\ndescription: runs <script> tags\n---\nBody\n",
			message: "Description cannot contain angle brackets (< or >)",
		},
		{
			name:    "whitespace body",
			content: "---\nname: foo-bar\ndescription: does a thing\n---\n  \n\t\n",
			message: "SKILL.md body is empty",
		},
		{
			name:    "empty name and description are accepted",
			content: "---\nname: \"\"\ndescription: ''\n---\nBody\n",
			valid:   true,
			message: ValidMessage,
		},
		{
			name:    "crlf line endings",
			content: "---\r\nname: foo-bar\r\ndescription: does a thing\r\n---\r\n\r\n# Foo\r\nBody\r\n",
			valid:   true,
			message: ValidMessage,
		},
		{
			name:    "lone cr line endings",
			content: "---\rname: foo-bar\rdescription: does a thing\r---\r\r# Foo\rBody\r",
			valid:   true,
			message: ValidMessage,
		},
		{
			name:    "crlf with unexpected key",
			content: "---\r\nname: foo-bar\r\ndescription: does a thing\r\ncolor: blue\r\n---\r\nBody\r\n",
			message: "Unexpected key(s) in frontmatter: color. Allowed: allowed-tools, compatibility, description, license, metadata, name",
		},
	}

	for _, p := range availableParsers() {
		v := NewValidator(p, nil)
		for _, tt := range tests {
			res := v.Validate(writeSkill(t, "foo-bar", tt.content))
			if res.Valid != tt.valid || res.Message != tt.message {
				t.Errorf("%s/%s: got (%v, %q), want (%v, %q)",
					p.Name(), tt.name, res.Valid, res.Message, tt.valid, tt.message)
			}
		}
	}
}

func TestValidateMissingSkillFile(t *testing.T) {
	res := NewValidator(nil, nil).Validate(t.TempDir())
	if res.Valid || res.Message != "SKILL.md not found" {
		t.Errorf("Unexpected result: %+v", res)
	}
}

func TestLoadNormalizesLineEndings(t *testing.T) {
	dir := writeSkill(t, "foo-bar", "---\r\nname: foo-bar\r\ndescription: does a thing\r\n---\r\n\r\n# Foo\r\nBody\r\n")

	for _, p := range availableParsers() {
		h, body, err := NewValidator(p, nil).Load(dir)
		if err != nil {
			t.Fatalf("%s: Load failed: %v", p.Name(), err)
		}
		if name, _ := h.Get("name"); name != "foo-bar" {
			t.Errorf("%s: name = %q", p.Name(), name)
		}
		if body != "\n\n# Foo\nBody\n" {
			t.Errorf("%s: body = %q", p.Name(), body)
		}
	}
}

func TestValidateTodoWarning(t *testing.T) {
	content := "---\nname: foo-bar\ndescription: \"[TODO: describe]\"\n---\nBody\n"
	res := NewValidator(LineParser{}, nil).Validate(writeSkill(t, "foo-bar", content))
	if !res.Valid {
		t.Fatalf("TODO placeholders must not fail validation: %s", res.Message)
	}
	if len(res.Warnings) != 1 || !strings.Contains(res.Warnings[0], "[TODO]") {
		t.Errorf("Expected one TODO warning, got %v", res.Warnings)
	}
}

func TestValidateTodoWarningWithEmptyBody(t *testing.T) {
	res := NewValidator(LineParser{}, nil).ValidateContent("---\nname: a\ndescription: \"[TODO x]\"\n---\n")
	if res.Valid || res.Message != "SKILL.md body is empty" {
		t.Fatalf("Unexpected result: %+v", res)
	}
	if len(res.Warnings) != 1 {
		t.Errorf("Warning raised before the body check should be kept, got %v", res.Warnings)
	}
}

func TestValidateLineCountWarning(t *testing.T) {
	content := "---\nname: foo-bar\ndescription: does a thing\n---\n" + strings.Repeat("line\n", 600)
	res := NewValidator(LineParser{}, nil).Validate(writeSkill(t, "foo-bar", content))
	if !res.Valid {
		t.Fatalf("Long documents must not fail validation: %s", res.Message)
	}
	if len(res.Warnings) != 1 || !strings.Contains(res.Warnings[0], "SKILL.md is 605 lines") {
		t.Errorf("Expected line count warning, got %v", res.Warnings)
	}
}

func TestValidateDirectoryNameWarning(t *testing.T) {
	content := "---\nname: foo-bar\ndescription: does a thing\n---\nBody\n"
	res := NewValidator(LineParser{}, nil).Validate(writeSkill(t, "other-dir", content))
	if !res.Valid {
		t.Fatalf("Unexpected failure: %s", res.Message)
	}
	if len(res.Warnings) != 1 || !strings.Contains(res.Warnings[0], "does not match directory 'other-dir'") {
		t.Errorf("Expected directory warning, got %v", res.Warnings)
	}
}

func TestValidateScriptWarning(t *testing.T) {
	content := "---\nname: foo-bar\ndescription: does a thing\n---\nBody\n"
	skillDir := writeSkill(t, "foo-bar", content)
	scripts := filepath.Join(skillDir, "scripts")
	if err := os.Mkdir(scripts, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(scripts, "ok.sh"), []byte("#!/bin/sh\necho ok\n"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(scripts, "broken.sh"), []byte("if true; then\n"), 0755); err != nil {
		t.Fatal(err)
	}

	res := NewValidator(LineParser{}, nil).Validate(skillDir)
	if !res.Valid {
		t.Fatalf("Script problems must not fail validation: %s", res.Message)
	}
	if len(res.Warnings) != 1 || !strings.Contains(res.Warnings[0], "broken.sh") {
		t.Errorf("Expected one warning for broken.sh, got %v", res.Warnings)
	}
}

func TestParserByName(t *testing.T) {
	p, err := ParserByName("line")
	if err != nil || p.Name() != "line" {
		t.Errorf("ParserByName(line) = %v, %v", p, err)
	}
	p, err = ParserByName("")
	if err != nil || p.Name() != DefaultParser().Name() {
		t.Errorf("ParserByName(\"\") = %v, %v", p, err)
	}
	if _, err := ParserByName("toml"); err == nil {
		t.Error("Expected error for unknown parser")
	}
}

func TestDiscover(t *testing.T) {
	tmpDir := t.TempDir()

	for _, name := range []string{"zeta-skill", "alpha-skill"} {
		skillDir := filepath.Join(tmpDir, name)
		if err := os.Mkdir(skillDir, 0755); err != nil {
			t.Fatalf("Failed to create skill dir: %v", err)
		}
		if err := os.WriteFile(filepath.Join(skillDir, SkillFile), []byte("---\n"), 0644); err != nil {
			t.Fatalf("Failed to write skill file: %v", err)
		}
	}
	// Not skills
	if err := os.Mkdir(filepath.Join(tmpDir, "no-skill-file"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(tmpDir, "README.md"), []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	found, err := Discover(tmpDir)
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}
	if len(found) != 2 {
		t.Fatalf("Expected 2 skills, got %d", len(found))
	}
	if found[0].Name != "alpha-skill" || found[1].Name != "zeta-skill" {
		t.Errorf("Expected sorted skills, got %v", found)
	}
	if found[0].Location != filepath.Join(tmpDir, "alpha-skill", SkillFile) {
		t.Errorf("Unexpected location %s", found[0].Location)
	}
}

func TestDiscoverMissingRoot(t *testing.T) {
	found, err := Discover(filepath.Join(t.TempDir(), "missing"))
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}
	if len(found) != 0 {
		t.Errorf("Expected no skills, got %v", found)
	}
}
