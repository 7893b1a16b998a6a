package pipeline

import (
	"context"
	"strings"
)

// CSSInjector defines the contract for stylesheet injection into HTML.
type CSSInjector interface {
	InjectStyles(ctx context.Context, htmlContent string, sheets ...string) string
}

// CSSInjection places stylesheets as <style> blocks in a document's head.
type CSSInjection struct{}

// InjectStyles writes one <style> block per non-empty sheet, in order, so a
// later sheet overrides an earlier one. Tries </head> first, then just
// after <body>, then prepends to the HTML.
func (s *CSSInjection) InjectStyles(ctx context.Context, htmlContent string, sheets ...string) string {
	if ctx.Err() != nil {
		return htmlContent
	}

	var block strings.Builder
	for _, sheet := range sheets {
		if strings.TrimSpace(sheet) == "" {
			continue
		}
		block.WriteString("<style>")
		block.WriteString(sanitizeCSS(sheet))
		block.WriteString("</style>")
	}
	if block.Len() == 0 {
		return htmlContent
	}

	return insertIntoHead(htmlContent, block.String())
}

func insertIntoHead(htmlContent, fragment string) string {
	lowerHTML := strings.ToLower(htmlContent)

	if idx := strings.Index(lowerHTML, "</head>"); idx != -1 {
		return htmlContent[:idx] + fragment + htmlContent[idx:]
	}

	if idx := strings.Index(lowerHTML, "<body"); idx != -1 {
		if closeIdx := strings.Index(htmlContent[idx:], ">"); closeIdx != -1 {
			insertPos := idx + closeIdx + 1
			return htmlContent[:insertPos] + fragment + htmlContent[insertPos:]
		}
	}

	return fragment + htmlContent
}

// sanitizeCSS escapes </ so stylesheet content cannot close the <style> block.
func sanitizeCSS(css string) string {
	return strings.ReplaceAll(css, "</", `<\/`)
}
