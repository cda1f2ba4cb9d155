package intent

import "regexp"

// Scoring weights and decision thresholds. These are tuning constants carried
// over from production traffic analysis; change them only with eval data.
const (
	ownershipWeight     = 5
	reportKeywordWeight = 1
	cwvStrongWeight     = 3
	cwvWeakWeight       = 1
	conceptOpenerWeight = 3
	conceptTermWeight   = 2

	reportThreshold     = 5
	conceptThreshold    = 3
	weakReportThreshold = 2
)

// Ownership heuristic: a possessive/demonstrative pronoun plus an audit
// subject means the user is asking about their own report.
var (
	ownershipPronounRe = regexp.MustCompile(`\b(my|this|our|the)\b`)
	ownershipSubjectRe = regexp.MustCompile(`\b(site|website|page|report|score|audit|grade)\b`)
)

// Core Web Vitals acronyms. These boost report intent strongly only when a
// report is loaded or ownership is implied; a bare "what is LCP" is a
// concept question.
var cwvAcronymRe = regexp.MustCompile(`\b(lcp|cls|fcp|ttfb|tbt|fid)\b`)

// reportKeywords are matched as substrings of the lowercased message, one
// point each.
var reportKeywords = []string{
	"my score",
	"my report",
	"my website",
	"my site",
	"my page",
	"this report",
	"this site",
	"our website",
	"audit",
	"score",
	"grade",
	"report",
	"health",
	"performance",
	"page speed",
	"load time",
	"loading",
	"slow",
	"speed up",
	"improve",
	"fix",
	"issue",
	"problem",
	"error",
	"not working",
	"recommendation",
	"optimize",
	"optimise",
	"ranking",
	"alt text",
	"meta title",
	"meta description",
	"broken link",
	"mobile friendly",
	"usability",
	"readability",
	"word count",
	"duplicate content",
	"sitemap",
	"lighthouse",
	"crawl",
}

// conceptOpener is a question-opener pattern. exclude, when set, suppresses
// the match (RE2 has no negative lookahead, so "why is" followed by an
// ownership pronoun is carved out with a second pattern).
type conceptOpener struct {
	re      *regexp.Regexp
	exclude *regexp.Regexp
}

var conceptOpeners = []conceptOpener{
	{re: regexp.MustCompile(`^what (is|are|does)\b`)},
	{re: regexp.MustCompile(`^(can you |please )?explain\b`)},
	{
		re:      regexp.MustCompile(`^why (is|are|does)\b`),
		exclude: regexp.MustCompile(`^why (is|are|does) (my|this|our)\b`),
	},
	{re: regexp.MustCompile(`^how (does|do) .+ work`)},
	{re: regexp.MustCompile(`^define\b`)},
	{re: regexp.MustCompile(`difference between`)},
	{re: regexp.MustCompile(`meaning of`)},
}

// conceptTerms are web-vocabulary phrases matched as substrings, two points
// each. Bare CWV acronyms are deliberately absent; they are handled by
// cwvAcronymRe so that "confident" never matches "fid".
var conceptTerms = []string{
	"largest contentful paint",
	"cumulative layout shift",
	"first contentful paint",
	"time to first byte",
	"total blocking time",
	"core web vitals",
	"render blocking",
	"lazy loading",
	"minification",
	"minify",
	"caching",
	"cdn",
	"compression",
	"responsive design",
	"accessibility",
	"schema markup",
	"structured data",
	"canonical",
	"crawl budget",
	"indexing",
	"domain authority",
	"bounce rate",
	"alt attribute",
	"viewport",
	"semantic html",
}

// sourceTag links an audit module tag to the message vocabulary that usually
// concerns it. Order here is the order tags appear in responses.
type sourceTag struct {
	tag string
	re  *regexp.Regexp
}

var sourceTags = []sourceTag{
	{"performance", regexp.MustCompile(`(?i)\b(speed|slow|fast|load(ing)?( time)?|lcp|cls|fcp|ttfb|tbt|fid|core web vitals|performance|render)\b`)},
	{"seo", regexp.MustCompile(`(?i)\b(seo|meta (title|description|tag)s?|alt (text|tag|attribute)s?|heading|title tag|keyword|sitemap|robots|index(ing)?|ranking|backlink|canonical)\b`)},
	{"ux", regexp.MustCompile(`(?i)\b(ux|usability|mobile|responsive|accessib\w*|navigation|tap target|viewport|font|layout)\b`)},
	{"content", regexp.MustCompile(`(?i)\b(content|readab\w*|word count|duplicate|thin page|grammar|spelling)\b`)},
}
