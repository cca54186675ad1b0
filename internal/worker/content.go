package worker

import (
	"context"
	"fmt"
	"strings"
)

// Article is a generated piece of content.
type Article struct {
	// Topic is the subject the article was generated for.
	Topic string `json:"topic"`
	// Title is the generated headline.
	Title string `json:"title"`
	// Body is the article text.
	Body string `json:"body"`
	// WordCount counts the words in the body.
	WordCount int `json:"word_count"`
}

// ContentAgent generates articles from a fixed template. It is the
// offline fallback for the Claude-backed content agent.
type ContentAgent struct{}

// NewContentAgent creates a template-based content agent.
func NewContentAgent() *ContentAgent {
	return &ContentAgent{}
}

// Article fills the article template with the topic.
func (a *ContentAgent) Article(topic string) *Article {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		topic = "the requested subject"
	}

	body := fmt.Sprintf(
		"%s is an area of growing interest. This article surveys the current "+
			"state of %s, the main challenges practitioners face, and where the "+
			"field is heading.\n\n"+
			"Recent developments in %s have changed how teams approach the "+
			"problem. The key considerations are scope, measurable outcomes, "+
			"and the tradeoffs between established practice and newer "+
			"techniques.\n\n"+
			"In summary, %s rewards a careful, incremental approach backed by "+
			"data.",
		capitalize(topic), topic, topic, topic)

	return &Article{
		Topic:     topic,
		Title:     fmt.Sprintf("An Overview of %s", capitalize(topic)),
		Body:      body,
		WordCount: len(strings.Fields(body)),
	}
}

// Table returns the agent's operation declaration.
func (a *ContentAgent) Table(name string) *Table {
	return NewTable().
		Register(KindContent, func(_ context.Context, task string) (any, error) {
			return a.Article(task), nil
		}).
		Register(KindGeneric, Echo(name))
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
