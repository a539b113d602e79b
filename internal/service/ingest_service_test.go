package service

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseHTML(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestExtractArticleTextPrefersArticleTag(t *testing.T) {
	doc := parseHTML(t, `
		<html><body>
			<nav><p>Navigation links that should not appear</p></nav>
			<article>
				<h1>Understanding Embeddings</h1>
				<p>Embeddings map text into vector space.</p>
				<p>Nearby vectors mean similar meaning.</p>
			</article>
			<footer><p>Copyright notice</p></footer>
		</body></html>`)

	text := ExtractArticleText(doc)
	assert.Contains(t, text, "Understanding Embeddings")
	assert.Contains(t, text, "Embeddings map text into vector space.")
	assert.NotContains(t, text, "Navigation links")
	assert.NotContains(t, text, "Copyright notice")
}

func TestExtractArticleTextFallsBackToDensestContainer(t *testing.T) {
	filler := strings.Repeat("This paragraph carries enough body text to matter. ", 3)
	doc := parseHTML(t, `
		<html><body>
			<div class="sidebar"><p>Short ad</p></div>
			<div class="content">
				<p>`+filler+`</p>
				<p>`+filler+`</p>
				<p>`+filler+`</p>
			</div>
		</body></html>`)

	text := ExtractArticleText(doc)
	assert.Contains(t, text, "enough body text")
	assert.NotContains(t, text, "Short ad")
}

func TestExtractArticleTextSkipsContainersWithChrome(t *testing.T) {
	filler := strings.Repeat("Real article body text with plenty of length to qualify. ", 3)
	doc := parseHTML(t, `
		<html><body>
			<div class="wrapper">
				<nav><p>Menu</p></nav>
				<p>`+filler+`</p>
			</div>
			<div class="post">
				<p>`+filler+`</p>
				<p>`+filler+`</p>
			</div>
		</body></html>`)

	text := ExtractArticleText(doc)
	assert.Contains(t, text, "Real article body")
	assert.NotContains(t, text, "Menu")
}

func TestExtractArticleTextNoContent(t *testing.T) {
	doc := parseHTML(t, `<html><body><div><p>tiny</p></div></body></html>`)
	assert.Equal(t, "", ExtractArticleText(doc))
}
