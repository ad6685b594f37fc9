package skills

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
)

// ValidMessage is reported when every check passes
const ValidMessage = "Skill is valid!"

// CRLF and lone CR line endings read as LF
var newlines = strings.NewReplacer("\r\n", "\n", "\r", "\n")

// Validator checks skill directories against the frontmatter rule set
type Validator struct {
	Parser HeaderParser
	Logger *log.Logger
}

// NewValidator creates a validator using parser, or the default parser when nil
func NewValidator(parser HeaderParser, logger *log.Logger) *Validator {
	if parser == nil {
		parser = DefaultParser()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Validator{Parser: parser, Logger: logger}
}

// Validate checks the skill at skillPath. It never panics on malformed input.
func (v *Validator) Validate(skillPath string) Result {
	skillFile := filepath.Join(skillPath, SkillFile)
	data, err := os.ReadFile(skillFile)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fail("SKILL.md not found")
		}
		return fail(fmt.Sprintf("Failed to read SKILL.md: %v", err))
	}
	v.Logger.Debug("read skill file", "path", skillFile, "bytes", len(data), "parser", v.Parser.Name())

	res := v.ValidateContent(newlines.Replace(string(data)))
	if !res.Valid {
		return res
	}

	// Advisories that need the directory, not just the document
	if h, _, err := v.Load(skillPath); err == nil {
		name, _ := h.Get("name")
		nameStr, _ := name.(string)
		nameStr = strings.TrimSpace(nameStr)
		dir := filepath.Base(filepath.Clean(skillPath))
		if nameStr != "" && nameStr != dir {
			res.Warnings = append(res.Warnings,
				fmt.Sprintf("Skill name '%s' does not match directory '%s'", nameStr, dir))
		}
	}
	res.Warnings = append(res.Warnings, CheckScripts(skillPath)...)
	return res
}

// ValidateContent runs the document checks on SKILL.md content
func (v *Validator) ValidateContent(content string) Result {
	var warnings []string
	failWith := func(msg string) Result {
		return Result{Message: msg, Warnings: warnings}
	}

	fm, err := ExtractFrontmatter(content)
	switch {
	case errors.Is(err, ErrNoFrontmatter):
		return failWith("No YAML frontmatter found")
	case err != nil:
		return failWith("Invalid frontmatter format")
	}

	header, err := v.Parser.Parse(fm.Raw)
	switch {
	case errors.Is(err, ErrNotMapping):
		return failWith("Frontmatter must be a YAML dictionary")
	case err != nil:
		return failWith(fmt.Sprintf("Invalid YAML in frontmatter: %v", err))
	}
	v.Logger.Debug("parsed frontmatter", "keys", header.Keys())

	if err := checkHeader(header); err != nil {
		return failWith(err.Error())
	}

	// Scans the whole document, header included
	if strings.Contains(content, todoMarker) {
		warnings = append(warnings, "SKILL.md still contains [TODO] placeholders")
	}

	if strings.TrimSpace(fm.Body) == "" {
		return failWith("SKILL.md body is empty")
	}

	if lines := strings.Count(content, "\n") + 1; lines > MaxRecommendedLines {
		warnings = append(warnings, fmt.Sprintf(
			"SKILL.md is %d lines (recommended: <%d). Consider splitting into reference files.",
			lines, MaxRecommendedLines))
	}

	return Result{Valid: true, Message: ValidMessage, Warnings: warnings}
}

// Load reads a skill's parsed frontmatter and body without applying the rules
func (v *Validator) Load(skillPath string) (*Header, string, error) {
	data, err := os.ReadFile(filepath.Join(skillPath, SkillFile))
	if err != nil {
		return nil, "", err
	}
	fm, err := ExtractFrontmatter(newlines.Replace(string(data)))
	if err != nil {
		return nil, "", err
	}
	h, err := v.Parser.Parse(fm.Raw)
	if err != nil {
		return nil, "", err
	}
	return h, fm.Body, nil
}

func fail(msg string) Result {
	return Result{Message: msg}
}
