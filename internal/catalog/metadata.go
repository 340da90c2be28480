package catalog

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/decksmith/decksmith/internal/resource"
)

// Default descriptions when a template carries no usable metadata.
const (
	defaultSlideMetadata   = "General purpose slide"
	defaultReportMetadata  = "Report page template"
	defaultChartMetadata   = "Chart template"
	defaultOutlineMetadata = "Outline template"
)

// useCaseMarker is the leading-comment convention for HTML templates:
// <!-- Use case: one-line description -->
const useCaseMarker = "<!-- Use case:"

// describe extracts the one-line description for a template file.
// Extraction never fails: malformed or missing metadata degrades to the
// kind's default string.
func describe(path string, kind resource.Kind) string {
	fallback := defaultMetadata(kind)

	data, err := os.ReadFile(path)
	if err != nil {
		return fallback
	}
	content := string(data)

	switch kind {
	case resource.Slides, resource.Reports:
		if desc := htmlUseCase(content); desc != "" {
			return desc
		}
	case resource.Charts:
		if desc := docstringFirstLine(content); desc != "" {
			return desc
		}
	case resource.Outlines:
		if desc := frontmatterDescription(content); desc != "" {
			return desc
		}
	}
	return fallback
}

func defaultMetadata(kind resource.Kind) string {
	switch kind {
	case resource.Slides:
		return defaultSlideMetadata
	case resource.Reports:
		return defaultReportMetadata
	case resource.Charts:
		return defaultChartMetadata
	case resource.Outlines:
		return defaultOutlineMetadata
	}
	return ""
}

// htmlUseCase extracts the text between the use-case marker and the comment
// terminator.
func htmlUseCase(content string) string {
	start := strings.Index(content, useCaseMarker)
	if start < 0 {
		return ""
	}
	rest := content[start+len(useCaseMarker):]
	end := strings.Index(rest, "-->")
	if end < 0 {
		return ""
	}
	return strings.TrimSpace(rest[:end])
}

// docstringFirstLine extracts the first line of a Python module's leading
// triple-quoted docstring.
func docstringFirstLine(content string) string {
	start := strings.Index(content, `"""`)
	if start < 0 {
		return ""
	}
	rest := content[start+3:]
	end := strings.Index(rest, `"""`)
	if end < 0 {
		return ""
	}
	doc := strings.TrimSpace(rest[:end])
	line, _, _ := strings.Cut(doc, "\n")
	return strings.TrimSpace(line)
}

// frontmatterDescription extracts the description field from YAML frontmatter
// delimited by --- lines at the start of a Markdown template.
func frontmatterDescription(content string) string {
	frontmatter, _ := splitFrontmatter(content)
	if frontmatter == "" {
		return ""
	}

	var meta struct {
		Description string `yaml:"description"`
	}
	if err := yaml.Unmarshal([]byte(frontmatter), &meta); err != nil {
		return ""
	}
	return strings.TrimSpace(meta.Description)
}

// splitFrontmatter separates YAML frontmatter from content.
// Frontmatter is delimited by --- at the start and end.
func splitFrontmatter(raw string) (frontmatter, content string) {
	raw = strings.TrimSpace(raw)
	if !strings.HasPrefix(raw, "---") {
		return "", raw
	}

	rest := raw[3:]
	before, after, ok := strings.Cut(rest, "\n---")
	if !ok {
		return "", raw
	}

	return strings.TrimSpace(before), strings.TrimSpace(after)
}

// StripFrontmatter returns template content with any YAML frontmatter block
// removed. Materialized outlines must not carry catalog metadata.
func StripFrontmatter(raw string) string {
	_, content := splitFrontmatter(raw)
	return content
}
