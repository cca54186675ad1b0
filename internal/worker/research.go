package worker

import (
	"context"
	"sort"
	"strings"
)

// SearchResult is one ranked entry returned by the research agent.
type SearchResult struct {
	// Title is the headline of the matched entry.
	Title string `json:"title"`
	// Snippet is a short excerpt from the entry.
	Snippet string `json:"snippet"`
	// Score is the keyword-overlap relevance score.
	Score int `json:"score"`
}

// ResearchAgent performs keyword-scored search over a small built-in
// corpus. It stands in for a real search backend behind the same
// operation contract.
type ResearchAgent struct {
	corpus []corpusEntry
	// Limit caps the number of results returned per search.
	Limit int
}

type corpusEntry struct {
	title   string
	snippet string
}

// defaultCorpus is the built-in knowledge base searched by the agent.
var defaultCorpus = []corpusEntry{
	{"AI trends in industry", "Adoption of machine learning accelerates across research and production systems."},
	{"Market analysis fundamentals", "Data driven analysis of market trends, indicators, and risk."},
	{"Software security review", "Techniques for code review, security audits, and performance profiling."},
	{"Data visualization practices", "Choosing chart types that communicate data clearly."},
	{"Audio signal processing", "Waveform analysis, sampling, and feature extraction basics."},
	{"Technical writing guide", "Structuring reports and articles for a technical audience."},
}

// NewResearchAgent creates a research agent over the built-in corpus.
func NewResearchAgent(limit int) *ResearchAgent {
	if limit <= 0 {
		limit = 5
	}
	return &ResearchAgent{corpus: defaultCorpus, Limit: limit}
}

// Search returns corpus entries ranked by keyword overlap with the query,
// capped at limit. Entries with zero overlap are omitted; when nothing
// overlaps, the first entries are returned unranked so a search always
// produces something to report on.
func (a *ResearchAgent) Search(query string, limit int) []SearchResult {
	if limit <= 0 {
		limit = a.Limit
	}
	words := Tokenize(query)

	var results []SearchResult
	for _, e := range a.corpus {
		score := overlap(words, Tokenize(e.title+" "+e.snippet))
		if score > 0 {
			results = append(results, SearchResult{Title: e.title, Snippet: e.snippet, Score: score})
		}
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) == 0 {
		for _, e := range a.corpus {
			results = append(results, SearchResult{Title: e.title, Snippet: e.snippet})
		}
	}
	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

// Table returns the agent's operation declaration.
func (a *ResearchAgent) Table(name string) *Table {
	return NewTable().
		Register(KindResearch, func(_ context.Context, task string) (any, error) {
			return a.Search(task, a.Limit), nil
		}).
		Register(KindGeneric, Echo(name))
}

// overlap counts how many words in a appear in b.
func overlap(a, b []string) int {
	set := make(map[string]bool, len(b))
	for _, w := range b {
		set[w] = true
	}
	n := 0
	for _, w := range a {
		if set[w] {
			n++
		}
	}
	return n
}

// Tokenize splits text into lowercase words, ignoring punctuation.
func Tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9')
	})
}
