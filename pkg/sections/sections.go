// Package sections analyzes the structure of a Wikipedia page: for each
// section it counts paragraphs, hyperlinks, pictures, and words.
package sections

import (
	"bytes"
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
	"github.com/pemistahl/lingua-go"

	"github.com/dnorberg/wiki-scraper/models"
	"github.com/dnorberg/wiki-scraper/pkg/analytics"
)

// MainContentSection is the section name used when a page has no
// section headings and the whole content area is analyzed as one block.
const MainContentSection = "Main Content"

const topKeywordCount = 5

// wordPattern tokenizes paragraph text the way \w+ does, including
// non-ASCII letters.
var wordPattern = regexp.MustCompile(`[\p{L}\p{N}_]+`)

// Analyzer walks a page's section headings and counts structural
// elements in each section's content block.
type Analyzer struct {
	analytics *analytics.Analytics
	detector  lingua.LanguageDetector
}

// NewAnalyzer returns a section analyzer. When detectLanguage is true
// the page language is identified with lingua; this loads language
// models and costs noticeable startup time, so it is opt-in.
func NewAnalyzer(detectLanguage bool) *Analyzer {
	a := &Analyzer{analytics: &analytics.Analytics{}}
	if detectLanguage {
		a.detector = lingua.NewLanguageDetectorBuilder().
			FromLanguages(
				lingua.English, lingua.French, lingua.German,
				lingua.Spanish, lingua.Italian, lingua.Portuguese,
			).
			Build()
	}
	return a
}

// Analyze parses the page HTML and produces a report per section.
// Pages without section headings are treated as one "Main Content"
// section; non-Wikipedia pages without the usual content container fall
// back to readability extraction of the main article body.
func (a *Analyzer) Analyze(pageURL string, html []byte) (*models.PageAnalysis, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	analysis := &models.PageAnalysis{URL: pageURL}

	headings := doc.Find("span.mw-headline")
	if headings.Length() == 0 {
		body := doc.Find("div#mw-content-text").First()
		if body.Length() == 0 {
			body, err = a.readableBody(pageURL, html)
			if err != nil {
				return nil, err
			}
		}
		if body != nil && body.Length() > 0 {
			analysis.Sections = append(analysis.Sections, countSection(MainContentSection, body))
		}
	} else {
		headings.Each(func(i int, heading *goquery.Selection) {
			name := strings.TrimSpace(heading.Text())
			block := heading.Parent().NextAllFiltered("div").First()
			if block.Length() == 0 {
				analysis.Sections = append(analysis.Sections, models.SectionReport{
					Name:      name,
					NoContent: true,
				})
				return
			}
			analysis.Sections = append(analysis.Sections, countSection(name, block))
		})
	}

	text := doc.Find("body").Text()
	analysis.Keywords = a.analytics.TopNWords(text, topKeywordCount)
	if a.detector != nil {
		if language, ok := a.detector.DetectLanguageOf(text); ok {
			analysis.Language = language.String()
		}
	}

	return analysis, nil
}

// readableBody extracts the main article content of a page that lacks
// the Wikipedia content container.
func (a *Analyzer) readableBody(pageURL string, html []byte) (*goquery.Selection, error) {
	parsedURL, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("invalid page URL: %w", err)
	}

	parser := readability.NewParser()
	article, err := parser.Parse(bytes.NewReader(html), parsedURL)
	if err != nil {
		return nil, fmt.Errorf("failed to extract main content: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(article.Content))
	if err != nil {
		return nil, fmt.Errorf("failed to parse extracted content: %w", err)
	}
	return doc.Find("body"), nil
}

// countSection counts structural elements over all paragraph elements
// in a content block. Links and pictures outside paragraphs do not count.
func countSection(name string, block *goquery.Selection) models.SectionReport {
	report := models.SectionReport{Name: name}

	paragraphs := block.Find("p")
	report.Paragraphs = paragraphs.Length()
	paragraphs.Each(func(i int, p *goquery.Selection) {
		report.Hyperlinks += p.Find("a").Length()
		report.Pictures += p.Find("img").Length()
		report.Words += len(wordPattern.FindAllString(p.Text(), -1))
	})

	return report
}
