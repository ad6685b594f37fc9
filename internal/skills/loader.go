package skills

import (
	"os"
	"path/filepath"
	"sort"
)

// Discover scans root for skill directories, i.e. subdirectories with a SKILL.md
func Discover(root string) ([]Skill, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		// If directory doesn't exist, that's OK - no skills
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var found []Skill
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		skillPath := filepath.Join(root, entry.Name())
		skillFile := filepath.Join(skillPath, SkillFile)
		if _, err := os.Stat(skillFile); err != nil {
			continue
		}

		found = append(found, Skill{
			Name:     entry.Name(),
			Path:     skillPath,
			Location: skillFile,
		})
	}

	sort.Slice(found, func(i, j int) bool { return found[i].Name < found[j].Name })
	return found, nil
}
