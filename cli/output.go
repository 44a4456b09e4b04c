package main

import (
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strings"
	"text/template"

	"github.com/alessio/shellescape"
	sprig "github.com/go-task/slim-sprig/v3"
)

// renderer writes a batch of generated names.
type renderer func(w io.Writer, names []string) error

var varNameRegex = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

func newRenderer(format string, tmpl string, varName string) (renderer, error) {
	switch format {
	case "plain":
		return renderPlain, nil
	case "json":
		return renderJSON, nil
	case "shell":
		if !varNameRegex.MatchString(varName) {
			return nil, fmt.Errorf("var '%s' must be a valid shell variable identifier", varName)
		}
		return shellRenderer(varName), nil
	case "template":
		return templateRenderer(tmpl)
	default:
		return nil, fmt.Errorf("unknown output format '%s'", format)
	}
}

func renderPlain(w io.Writer, names []string) error {
	for _, name := range names {
		if _, err := fmt.Fprintln(w, name); err != nil {
			return err
		}
	}
	return nil
}

func renderJSON(w io.Writer, names []string) error {
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	return encoder.Encode(names)
}

// shellRenderer prints NAME=value assignments, numbered NAME_1, NAME_2, ...
// when there is more than one name.
func shellRenderer(varName string) renderer {
	return func(w io.Writer, names []string) error {
		for i, name := range names {
			key := varName
			if len(names) > 1 {
				key = fmt.Sprintf("%s_%d", varName, i+1)
			}
			if _, err := fmt.Fprintf(w, "%s=%s\n", key, shellescape.Quote(name)); err != nil {
				return err
			}
		}
		return nil
	}
}

type TemplateData struct {
	Name  string
	Index int
}

func templateRenderer(source string) (renderer, error) {
	if strings.TrimSpace(source) == "" {
		return nil, fmt.Errorf("template is required by the template format")
	}

	tmpl, err := template.New("name").Funcs(sprig.TxtFuncMap()).Parse(source)
	if err != nil {
		return nil, fmt.Errorf("failed to parse template: %w", err)
	}

	return func(w io.Writer, names []string) error {
		for i, name := range names {
			var output strings.Builder
			if err := tmpl.Execute(&output, TemplateData{Name: name, Index: i + 1}); err != nil {
				return fmt.Errorf("failed to execute template: %w", err)
			}
			if _, err := fmt.Fprintln(w, output.String()); err != nil {
				return err
			}
		}
		return nil
	}, nil
}
