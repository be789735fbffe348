// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package content

import (
	"maps"
	"strings"

	"github.com/MKhiriev/notesync/models"
)

// ExtractedTask is a checklist node found in a note.
type ExtractedTask struct {
	BlockID   string
	Title     string
	Completed bool
	Tags      []string
}

// ExtractTasks returns every checklist node of the tree, depth-first, nested
// children included.
func ExtractTasks(blocks []models.Block) []ExtractedTask {
	tasks := make([]ExtractedTask, 0)
	walk(blocks, func(b models.Block) {
		if b.Type != models.BlockTypeCheckListItem {
			return
		}
		title := strings.TrimSpace(InlineText(b.Content))
		tasks = append(tasks, ExtractedTask{
			BlockID:   b.ID,
			Title:     title,
			Completed: b.Checked(),
			Tags:      ExtractTags(title),
		})
	})
	return tasks
}

// TaskPatch holds the checklist fields to overwrite. Nil fields are kept.
type TaskPatch struct {
	Completed *bool
	Title     *string
}

// PatchTask returns a copy of blocks in which only the node with blockID has
// its checked prop and/or its inline text replaced. Blocks outside the path
// to that node are shared with the input. The second result reports whether
// the node was found; when it is false the input is returned unchanged.
func PatchTask(blocks []models.Block, blockID string, patch TaskPatch) ([]models.Block, bool) {
	for i, b := range blocks {
		if b.ID == blockID {
			out := make([]models.Block, len(blocks))
			copy(out, blocks)
			out[i] = patchBlock(b, patch)
			return out, true
		}

		children, found := PatchTask(b.Children, blockID, patch)
		if found {
			out := make([]models.Block, len(blocks))
			copy(out, blocks)
			out[i].Children = children
			return out, true
		}
	}
	return blocks, false
}

// RemoveTask returns a copy of blocks without the node with blockID. Nested
// children of the removed node take its place so that checklist items under
// it survive. The second result reports whether the node was found.
func RemoveTask(blocks []models.Block, blockID string) ([]models.Block, bool) {
	for i, b := range blocks {
		if b.ID == blockID {
			out := make([]models.Block, 0, len(blocks)-1+len(b.Children))
			out = append(out, blocks[:i]...)
			out = append(out, b.Children...)
			out = append(out, blocks[i+1:]...)
			return out, true
		}

		children, found := RemoveTask(b.Children, blockID)
		if found {
			out := make([]models.Block, len(blocks))
			copy(out, blocks)
			out[i].Children = children
			return out, true
		}
	}
	return blocks, false
}

func patchBlock(b models.Block, patch TaskPatch) models.Block {
	if patch.Completed != nil {
		props := make(map[string]any, len(b.Props)+1)
		maps.Copy(props, b.Props)
		props[models.PropChecked] = *patch.Completed
		b.Props = props
	}
	if patch.Title != nil {
		b.Content = []models.InlineContent{{Type: models.InlineTypeText, Text: *patch.Title}}
	}
	return b
}
