package drive

import (
	"regexp"
	"strings"
)

// Match is one raw extraction hit, before dedup and name normalization.
type Match struct {
	ID   string
	Name string
}

// Strategy scans a fetched listing body for file entries. Each strategy is
// pure over its input so every pattern stays independently testable; the
// Lister runs them in order and stops at the first non-empty result.
type Strategy struct {
	Name    string
	Extract func(source string) []Match
}

// Drive embeds its file manifest inside inline script data as JS arrays
// of the shape ["<file id>","<file name>",...]. File ids are long
// alphanumeric-with-hyphen strings.
var inlineManifestRe = regexp.MustCompile(`(?i)\["([\w-]{25,})","([^"]+\.pdf)"`)

// Fallback for the markup variant that carries ids as data attributes,
// with the file name in a nearby div.
var dataAttrRe = regexp.MustCompile(`(?is)data-id="([\w-]{25,})"[^>]*>.*?<div[^>]*class="[^"]*"[^>]*>([^<]*\.pdf)<`)

// Embedded folder view: stricter variant requiring an explicit PDF MIME
// marker within the same array entry.
var embedMimeRe = regexp.MustCompile(`(?i)\["([\w-]{25,})","([^"]+)"(?:,"[^"]*"){0,5},"application/pdf"`)

// Embedded folder view, broadest variant: any id with the provider's
// leading "1" prefix; the name is filtered for a .pdf suffix after the
// match instead of inside the pattern.
var embedBroadRe = regexp.MustCompile(`\["(1[\w-]{20,})","([^"]+)"`)

// PrimaryStrategies run against the main folder listing page.
func PrimaryStrategies() []Strategy {
	return []Strategy{
		{Name: "inline-manifest", Extract: extractPairs(inlineManifestRe, false)},
		{Name: "data-attr", Extract: extractPairs(dataAttrRe, false)},
	}
}

// EmbeddedStrategies run against the embedded folder view page.
func EmbeddedStrategies() []Strategy {
	return []Strategy{
		{Name: "embed-mime", Extract: extractPairs(embedMimeRe, false)},
		{Name: "embed-broad", Extract: extractPairs(embedBroadRe, true)},
	}
}

func extractPairs(re *regexp.Regexp, requirePDFSuffix bool) func(string) []Match {
	return func(source string) []Match {
		var out []Match
		for _, m := range re.FindAllStringSubmatch(source, -1) {
			name := strings.TrimSpace(m[2])
			if requirePDFSuffix && !strings.HasSuffix(strings.ToLower(name), ".pdf") {
				continue
			}
			out = append(out, Match{ID: m[1], Name: name})
		}
		return out
	}
}
