// ABOUTME: Named prompt templates for the generation backend, embedded as TOML
// ABOUTME: Renders text/template bodies against per-call data

package prompts

import (
	"bytes"
	_ "embed"
	"fmt"
	"text/template"

	"github.com/BurntSushi/toml"
)

// Template names.
const (
	StoryScenario = "story_scenario"
	Caption       = "caption"
	ChatSystem    = "chat_system"
	ImageEdit     = "image_edit"
	AlgorithmNews = "algorithm_news"
)

//go:embed templates.toml
var templatesTOML []byte

type entry struct {
	Description string `toml:"description"`
	Template    string `toml:"template"`
}

var templates = mustParse()

func mustParse() map[string]*template.Template {
	var raw map[string]entry
	if err := toml.Unmarshal(templatesTOML, &raw); err != nil {
		panic(fmt.Sprintf("prompts: parsing embedded templates: %v", err))
	}

	parsed := make(map[string]*template.Template, len(raw))
	for name, e := range raw {
		tmpl, err := template.New(name).Parse(e.Template)
		if err != nil {
			panic(fmt.Sprintf("prompts: parsing template %q: %v", name, err))
		}
		parsed[name] = tmpl
	}
	return parsed
}

// Render fills in the named template with data. Unknown names are an
// error.
func Render(name string, data any) (string, error) {
	tmpl, ok := templates[name]
	if !ok {
		return "", fmt.Errorf("unknown prompt template %q", name)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("rendering prompt %q: %w", name, err)
	}
	return buf.String(), nil
}

// Names returns the available template names.
func Names() []string {
	names := make([]string, 0, len(templates))
	for name := range templates {
		names = append(names, name)
	}
	return names
}
