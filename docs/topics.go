// Package docs embeds the user manual of wp, one markdown file per topic.
package docs

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"slices"
	"strings"
)

//go:embed *.md
var docs embed.FS

// ErrUnknownTopic is returned for topics without a page.
var ErrUnknownTopic = errors.New("unknown topic")

// overview is the page shown without topic, it is not listed as a topic.
const overview = "readme"

// GetTopic returns the content of a documentation topic. "*" returns all
// topics.
func GetTopic(topic string) (string, error) {
	if topic == "*" {
		topics, err := GetAllTopics()
		if err != nil {
			return "", err
		}
		return GetTopics(topics...)
	}

	content, err := docs.ReadFile(topic + ".md")
	if errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("%w %q, try one of: %s", ErrUnknownTopic, topic, strings.Join(mustTopics(), ", "))
	}
	if err != nil {
		return "", fmt.Errorf("reading topic %q: %w", topic, err)
	}
	return string(content), nil
}

// GetTopics returns the content of multiple documentation topics concatenated together.
func GetTopics(topics ...string) (string, error) {
	var b strings.Builder
	for _, topic := range topics {
		content, err := GetTopic(topic)
		if err != nil {
			return "", err
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	return b.String(), nil
}

// GetAllTopics returns the sorted list of available topics.
func GetAllTopics() ([]string, error) {
	files, err := fs.Glob(docs, "*.md")
	if err != nil {
		return nil, err
	}
	topics := make([]string, 0, len(files))
	for _, f := range files {
		if name := strings.TrimSuffix(f, ".md"); name != overview {
			topics = append(topics, name)
		}
	}
	slices.Sort(topics)
	return topics, nil
}

func mustTopics() []string {
	topics, _ := GetAllTopics()
	return topics
}
