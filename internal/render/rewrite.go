package render

import (
	"regexp"
	"strings"
)

// The rewrite passes below normalize an HTML template to the project it is
// being materialized into. Templates may be authored against a sample theme
// or the bundled directory layout; every stylesheet and logo reference is
// rebound to the current project theme at the project-local path. A pattern
// that matches nothing is a no-op, never an error.
var (
	// Any base stylesheet reference, however the template authored it
	// (../base.css, ../slide_base.css, deep bundled paths).
	baseCSSPattern = regexp.MustCompile(`href="[^"]*(?:slide_base|report_base|base)\.css"`)

	// Any theme stylesheet link, whatever theme name it currently encodes.
	themeCSSPattern = regexp.MustCompile(`href="[^"]*_theme\.css"`)

	// Logo image references, preserving the image extension.
	iconLogoPattern = regexp.MustCompile(`src="[^"]*_icon_logo\.(png|svg)"`)
	textLogoPattern = regexp.MustCompile(`src="[^"]*_text_logo\.(png|svg)"`)

	// Matplotlib style references inside chart scripts, either quote style.
	mplStylePattern = regexp.MustCompile(`(["'])[^"']*_style\.mplstyle(["'])`)
)

// HTMLContext carries the project-specific values for normalization.
type HTMLContext struct {
	// Theme is the project's active theme name.
	Theme string
	// BaseCSS is the shared base stylesheet for the template kind
	// (slide_base.css or report_base.css).
	BaseCSS string
	// PageNumber is the zero-padded page number, bound to [PAGE_NUMBER]
	// and to the legacy bare XX convention. Empty disables both.
	PageNumber string
}

// NormalizeHTML runs the path-rewriting passes over template content.
func NormalizeHTML(content string, ctx HTMLContext) string {
	content = baseCSSPattern.ReplaceAllString(content, `href="`+RelThemeDir+"/"+ctx.BaseCSS+`"`)
	content = themeCSSPattern.ReplaceAllString(content, `href="`+RelThemeDir+"/"+ctx.Theme+`_theme.css"`)
	content = iconLogoPattern.ReplaceAllString(content, `src="`+RelThemeDir+"/"+ctx.Theme+`_icon_logo.$1"`)
	content = textLogoPattern.ReplaceAllString(content, `src="`+RelThemeDir+"/"+ctx.Theme+`_text_logo.$1"`)
	return content
}

// MaterializeHTML reads an HTML template, normalizes its path references to
// the project, and applies bracket-token substitution.
func MaterializeHTML(path string, ctx HTMLContext, values Placeholders) (string, error) {
	content, err := ReadTemplate(path)
	if err != nil {
		return "", err
	}

	content = NormalizeHTML(content, ctx)

	merged := Placeholders{
		"THEME":          ctx.Theme,
		"BASE_CSS_PATH":  RelThemeDir + "/" + ctx.BaseCSS,
		"THEME_CSS_PATH": RelThemeDir + "/" + ctx.Theme + "_theme.css",
	}
	if ctx.PageNumber != "" {
		merged["PAGE_NUMBER"] = ctx.PageNumber
	}
	for key, value := range values {
		merged[key] = value
	}
	content = ApplyBrackets(content, merged)

	// Legacy bare-XX page number convention from older templates.
	if ctx.PageNumber != "" {
		content = strings.ReplaceAll(content, "XX", ctx.PageNumber)
	}

	return content, nil
}

// MaterializeMarkdown reads a Markdown template and applies brace-token
// substitution. Frontmatter stripping is the caller's concern (the catalog
// owns the frontmatter convention).
func MaterializeMarkdown(path string, values Placeholders) (string, error) {
	content, err := ReadTemplate(path)
	if err != nil {
		return "", err
	}
	return ApplyBraces(content, values), nil
}

// MaterializeChart reads a chart template and rebinds its output file names
// from the template's stem to the chart name. Chart templates carry no
// placeholder tokens; OUTPUT_NAME and the plots/<stem>_ prefix are the only
// rebound references.
func MaterializeChart(path, templateStem, chartName string) (string, error) {
	content, err := ReadTemplate(path)
	if err != nil {
		return "", err
	}
	content = strings.ReplaceAll(content, "OUTPUT_NAME", chartName)
	if templateStem != "" && templateStem != chartName {
		content = strings.ReplaceAll(content, "plots/"+templateStem+"_", "plots/"+chartName+"_")
	}
	return content, nil
}

// RebindChartStyle points a chart script's mplstyle reference at the project
// theme. No reference, no change.
func RebindChartStyle(content, theme string) string {
	if theme == "" {
		return content
	}
	return mplStylePattern.ReplaceAllString(content, `${1}`+RelThemeDir+"/"+theme+`_style.mplstyle${2}`)
}

// RewriteThemeName replaces references to an old theme's files with the new
// theme's, for already-materialized project files during a theme swap.
// File content without theme references is returned unchanged, and swapping
// a project to the theme it already uses is a no-op.
func RewriteThemeName(content, oldTheme, newTheme string) string {
	if oldTheme == "" || oldTheme == newTheme {
		return content
	}
	for _, suffix := range []string{"_theme.css", "_style.mplstyle", "_icon_logo.", "_text_logo."} {
		content = strings.ReplaceAll(content, oldTheme+suffix, newTheme+suffix)
	}
	return content
}
