package pipeline

import (
	"net/url"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
)

// RebaseRelativePaths rewrites relative img[src] and a[href] references in an
// HTML document so they still resolve when the document is written to
// outputDir instead of next to its Markdown source in sourceDir.
// Returns the HTML unchanged when either directory is empty or both are equal.
//
// References that climb out of sourceDir, URLs, anchors, and absolute paths are
// left alone.
func RebaseRelativePaths(htmlContent, sourceDir, outputDir string) (string, error) {
	if sourceDir == "" || outputDir == "" {
		return htmlContent, nil
	}

	absSource, err := filepath.Abs(sourceDir)
	if err != nil {
		return "", err
	}
	absOutput, err := filepath.Abs(outputDir)
	if err != nil {
		return "", err
	}
	if absSource == absOutput {
		return htmlContent, nil
	}

	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return "", err
	}

	rebaseNode(doc, absSource, absOutput)

	var buf strings.Builder
	if err := html.Render(&buf, doc); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// rebaseNode walks the tree and rewrites reference attributes.
func rebaseNode(n *html.Node, sourceDir, outputDir string) {
	if n.Type == html.ElementNode {
		switch n.Data {
		case "img":
			rebaseAttr(n, "src", sourceDir, outputDir)
		case "a":
			rebaseAttr(n, "href", sourceDir, outputDir)
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		rebaseNode(c, sourceDir, outputDir)
	}
}

func rebaseAttr(n *html.Node, attrName, sourceDir, outputDir string) {
	for i, attr := range n.Attr {
		if attr.Key != attrName || !isRelativePath(attr.Val) {
			continue
		}

		// Keep query strings and fragments attached to the rewritten path.
		ref, err := url.Parse(attr.Val)
		if err != nil || ref.Path == "" {
			continue
		}

		target := filepath.Join(sourceDir, filepath.FromSlash(ref.Path))
		if !isPathUnderDir(target, sourceDir) {
			continue
		}

		rel, err := filepath.Rel(outputDir, target)
		if err != nil {
			continue
		}
		ref.Path = filepath.ToSlash(rel)
		n.Attr[i].Val = ref.String()
	}
}

// isRelativePath returns true if the path should be rewritten.
func isRelativePath(path string) bool {
	if path == "" {
		return false
	}

	lower := strings.ToLower(path)
	for _, prefix := range []string{"http://", "https://", "file://", "data:", "mailto:", "//", "#"} {
		if strings.HasPrefix(lower, prefix) {
			return false
		}
	}

	return !filepath.IsAbs(path)
}

// isPathUnderDir checks if absPath is under dir (prevents path traversal).
func isPathUnderDir(absPath, dir string) bool {
	cleanPath := filepath.Clean(absPath)
	cleanDir := filepath.Clean(dir)

	if !strings.HasSuffix(cleanDir, string(filepath.Separator)) {
		cleanDir += string(filepath.Separator)
	}

	return strings.HasPrefix(cleanPath+string(filepath.Separator), cleanDir)
}
