// Package scaffold creates new skill directories from embedded templates.
package scaffold

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"unicode"
	"unicode/utf8"
)

//go:embed templates/*
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.tmpl"))

// ErrAlreadyExists is returned when the target skill directory exists
var ErrAlreadyExists = errors.New("skill directory already exists")

// StepError reports which creation step failed. Earlier steps are not undone.
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("creating %s: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// CreateOptions configures Create
type CreateOptions struct {
	// Name is the skill name, expected to be kebab-case
	Name string
	// ParentDir is the directory the skill directory is created in
	ParentDir string
	// OnCreated is called with each path created, relative to the skill directory
	OnCreated func(rel string)
}

type resource struct {
	dir      string
	file     string
	template string // empty for static files
	mode     os.FileMode
}

var resources = []resource{
	{dir: "scripts", file: "example.sh", template: "example.sh.tmpl", mode: 0o755},
	{dir: "references", file: "api_reference.md", template: "api_reference.md.tmpl", mode: 0o644},
	{dir: "assets", file: "example_asset.txt", mode: 0o644},
}

type templateData struct {
	Name  string
	Title string
}

// Create builds a new skill directory and returns its absolute path
func Create(opts CreateOptions) (string, error) {
	notify := opts.OnCreated
	if notify == nil {
		notify = func(string) {}
	}

	parent, err := filepath.Abs(opts.ParentDir)
	if err != nil {
		return "", &StepError{Step: "skill directory", Err: err}
	}
	skillDir := filepath.Join(parent, opts.Name)

	if _, err := os.Stat(skillDir); err == nil {
		return "", fmt.Errorf("%w: %s", ErrAlreadyExists, skillDir)
	}

	if err := os.MkdirAll(parent, 0o755); err != nil {
		return "", &StepError{Step: "skill directory", Err: err}
	}
	// Plain Mkdir so a directory created since the Stat is still reported
	if err := os.Mkdir(skillDir, 0o755); err != nil {
		if errors.Is(err, os.ErrExist) {
			return "", fmt.Errorf("%w: %s", ErrAlreadyExists, skillDir)
		}
		return "", &StepError{Step: "skill directory", Err: err}
	}
	notify(".")

	data := templateData{Name: opts.Name, Title: TitleCase(opts.Name)}

	skillMD, err := render("SKILL.md.tmpl", data)
	if err == nil {
		err = os.WriteFile(filepath.Join(skillDir, "SKILL.md"), skillMD, 0o644)
	}
	if err != nil {
		return "", &StepError{Step: "SKILL.md", Err: err}
	}
	notify("SKILL.md")

	for _, r := range resources {
		if err := writeResource(skillDir, r, data); err != nil {
			return "", &StepError{Step: "resource directories", Err: err}
		}
		notify(r.dir + "/" + r.file)
	}

	return skillDir, nil
}

func writeResource(skillDir string, r resource, data templateData) error {
	dir := filepath.Join(skillDir, r.dir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	var content []byte
	var err error
	if r.template != "" {
		content, err = render(r.template, data)
	} else {
		content, err = templateFS.ReadFile("templates/" + r.file)
	}
	if err != nil {
		return err
	}

	path := filepath.Join(dir, r.file)
	if err := os.WriteFile(path, content, r.mode); err != nil {
		return err
	}
	// WriteFile's mode is filtered by umask; set it explicitly.
	// On Windows this only toggles the read-only bit.
	return os.Chmod(path, r.mode)
}

func render(name string, data templateData) ([]byte, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// TitleCase converts a hyphenated skill name to Title Case
func TitleCase(name string) string {
	words := strings.Split(name, "-")
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		if size == 0 {
			continue
		}
		words[i] = string(unicode.ToUpper(r)) + strings.ToLower(w[size:])
	}
	return strings.Join(words, " ")
}
