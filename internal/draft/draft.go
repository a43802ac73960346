package draft

import (
	"bytes"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Draft is one unit of generated text under review. Frontmatter is optional;
// a bare file is all body.
type Draft struct {
	Title      string
	Lane       string
	Tags       []string
	Body       string
	SourceFile string
}

func ParseFile(path string) (*Draft, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	d, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	d.SourceFile = path
	return d, nil
}

func Parse(content []byte) (*Draft, error) {
	trimmed := bytes.TrimLeft(content, "\ufeff\n\r\t ")
	if !bytes.HasPrefix(trimmed, []byte("---\n")) {
		return &Draft{Body: string(content)}, nil
	}

	rest := trimmed[len("---\n"):]
	end := bytes.Index(rest, []byte("---\n"))
	if end == -1 {
		return &Draft{Body: string(content)}, nil
	}

	var meta struct {
		Title string   `yaml:"title"`
		Lane  string   `yaml:"lane"`
		Tags  []string `yaml:"tags"`
	}
	if err := yaml.Unmarshal(rest[:end], &meta); err != nil {
		return nil, fmt.Errorf("invalid frontmatter: %w", err)
	}

	return &Draft{
		Title: strings.TrimSpace(meta.Title),
		Lane:  strings.TrimSpace(meta.Lane),
		Tags:  meta.Tags,
		Body:  string(rest[end+len("---\n"):]),
	}, nil
}
