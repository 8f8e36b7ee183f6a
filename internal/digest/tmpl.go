// Package digest renders a markdown digest of recent activity, with YAML
// frontmatter suitable for publishing pipelines.
package digest

import (
	"bytes"
	_ "embed"
	"text/template"
)

type Item struct {
	Title       string
	URL         string
	Source      string
	Type        string
	Repo        string
	Description string
	Created     string
}

type Data struct {
	Title    string
	Slug     string
	Datetime string
	Summary  string
	Items    []Item
}

//go:embed digest.tmpl
var digestTpl string

var compiled = template.Must(template.New("digest").Parse(digestTpl))

func Render(d Data) (string, error) {
	var buf bytes.Buffer
	if err := compiled.Execute(&buf, d); err != nil {
		return "", err
	}
	return buf.String(), nil
}
