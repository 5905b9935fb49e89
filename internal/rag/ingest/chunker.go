package ingest

import (
	"strings"

	"github.com/avitale/VillageGuideAPI/internal/config"
)

//splitter

// ChunkText splits text into chunks of at most maxChunkSize characters,
// never cutting inside a sentence. Sentences accumulate greedily; a single
// sentence longer than the limit becomes its own oversized chunk rather
// than being cut mid thought.
func ChunkText(text string, maxChunkSize int) []string {
	if maxChunkSize <= 0 {
		maxChunkSize = config.DefaultMaxChunkSize
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if len(text) <= maxChunkSize {
		return []string{text}
	}

	var chunks []string
	var current strings.Builder

	for _, sentence := range splitSentences(text) {
		needed := len(sentence)
		if current.Len() > 0 {
			needed++ // joining space
		}

		if current.Len() > 0 && current.Len()+needed > maxChunkSize {
			chunks = append(chunks, current.String())
			current.Reset()
		}

		if current.Len() > 0 {
			current.WriteString(" ")
		}
		current.WriteString(sentence)
	}

	if current.Len() > 0 {
		chunks = append(chunks, current.String())
	}
	return chunks
}

func isSentenceEnd(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

// splitSentences cuts on ".", "!" and "?", keeping the punctuation with its
// sentence. Runs of terminators ("...", "?!") stay together.
func splitSentences(text string) []string {
	var sentences []string
	var current strings.Builder

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		current.WriteRune(runes[i])

		if isSentenceEnd(runes[i]) {
			for i+1 < len(runes) && isSentenceEnd(runes[i+1]) {
				i++
				current.WriteRune(runes[i])
			}
			if sentence := strings.TrimSpace(current.String()); sentence != "" {
				sentences = append(sentences, sentence)
			}
			current.Reset()
		}
	}

	// trailing text without a terminator is still a sentence
	if sentence := strings.TrimSpace(current.String()); sentence != "" {
		sentences = append(sentences, sentence)
	}
	return sentences
}
