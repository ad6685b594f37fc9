package skills

import (
	"fmt"
	"os"
	"path/filepath"

	"mvdan.cc/sh/v3/syntax"
)

// CheckScripts reports shell scripts under scripts/ that do not parse
func CheckScripts(skillPath string) []string {
	matches, err := filepath.Glob(filepath.Join(skillPath, "scripts", "*.sh"))
	if err != nil {
		return nil
	}

	var warnings []string
	parser := syntax.NewParser()
	for _, path := range matches {
		rel, _ := filepath.Rel(skillPath, path)
		f, err := os.Open(path)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("%s: %v", rel, err))
			continue
		}
		_, err = parser.Parse(f, rel)
		f.Close()
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("Script does not parse: %v", err))
		}
	}
	return warnings
}
