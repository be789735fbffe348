// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package content

import (
	"regexp"
	"strings"

	"github.com/MKhiriev/notesync/models"
)

// UntitledNote is the title of a note with no heading or paragraph text.
const UntitledNote = "Untitled"

const maxTitleRunes = 500

var hashtagRegex = regexp.MustCompile(`#[\p{L}\p{N}_-]+`)

// InlineText concatenates the visible text of inline runs. Link runs
// contribute the text of their nested runs.
func InlineText(content []models.InlineContent) string {
	var sb strings.Builder
	for _, item := range content {
		switch item.Type {
		case models.InlineTypeText:
			sb.WriteString(item.Text)
		case models.InlineTypeLink:
			sb.WriteString(InlineText(item.Content))
		}
	}
	return sb.String()
}

// PlainText renders the tree depth-first, one block per line.
func PlainText(blocks []models.Block) string {
	lines := make([]string, 0, len(blocks))
	walk(blocks, func(b models.Block) {
		lines = append(lines, InlineText(b.Content))
	})
	return strings.TrimRight(strings.Join(lines, "\n"), "\n")
}

// ExtractTitle returns the text of the first non-empty heading or paragraph,
// truncated to 500 characters, or [UntitledNote].
func ExtractTitle(blocks []models.Block) string {
	title := ""
	walk(blocks, func(b models.Block) {
		if title != "" {
			return
		}
		if b.Type != models.BlockTypeHeading && b.Type != models.BlockTypeParagraph {
			return
		}
		title = strings.TrimSpace(InlineText(b.Content))
	})

	if title == "" {
		return UntitledNote
	}
	if r := []rune(title); len(r) > maxTitleRunes {
		title = string(r[:maxTitleRunes])
	}
	return title
}

// ExtractTags returns the unique hashtags of text without the leading '#',
// in order of first appearance.
func ExtractTags(text string) []string {
	matches := hashtagRegex.FindAllString(text, -1)
	tags := make([]string, 0, len(matches))
	seen := make(map[string]struct{}, len(matches))
	for _, m := range matches {
		tag := m[1:]
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}
	return tags
}

func walk(blocks []models.Block, fn func(models.Block)) {
	for _, b := range blocks {
		fn(b)
		walk(b.Children, fn)
	}
}
