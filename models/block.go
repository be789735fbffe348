// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

const (
	// BlockTypeCheckListItem is the node type of a checklist entry. Every
	// checklist node inside a note is mirrored by exactly one [Task].
	BlockTypeCheckListItem = "checkListItem"
	BlockTypeHeading       = "heading"
	BlockTypeParagraph     = "paragraph"

	// InlineTypeText and InlineTypeLink are the inline content kinds that carry
	// user visible text.
	InlineTypeText = "text"
	InlineTypeLink = "link"

	// PropChecked is the checklist node property holding the completion flag.
	PropChecked = "checked"
)

// Block is a single node of a note's structured content tree.
//
// Props keeps arbitrary editor properties (alignment, colours, checked flag)
// so that a tree received from another device round-trips without loss.
type Block struct {
	ID       string          `json:"id"`
	Type     string          `json:"type"`
	Props    map[string]any  `json:"props,omitempty"`
	Content  []InlineContent `json:"content,omitempty"`
	Children []Block         `json:"children,omitempty"`
}

// InlineContent is a run of inline content inside a [Block].
type InlineContent struct {
	Type    string          `json:"type"`
	Text    string          `json:"text,omitempty"`
	Href    string          `json:"href,omitempty"`
	Styles  map[string]any  `json:"styles,omitempty"`
	Content []InlineContent `json:"content,omitempty"`
}

// Checked returns the completion flag of a checklist node. Non-boolean or
// missing values are treated as unchecked.
func (b Block) Checked() bool {
	v, ok := b.Props[PropChecked].(bool)
	return ok && v
}
