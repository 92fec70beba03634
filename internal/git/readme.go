package git

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

var readmeNames = []string{"README.md", "readme.md", "README", "readme"}

// Readme renders the repository's readme file as HTML. A repository without
// a readme yields an empty string, not an error.
func (s *Service) Readme(path string) (string, error) {
	var content []byte
	for _, name := range readmeNames {
		c, err := os.ReadFile(filepath.Join(path, name))
		if err == nil {
			content = c
			break
		}
	}
	if content == nil {
		return "", nil
	}

	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
			html.WithXHTML(),
		),
	)

	var buf strings.Builder
	if err := md.Convert(content, &buf); err != nil {
		return "", fmt.Errorf("failed to convert markdown: %w", err)
	}
	return buf.String(), nil
}
