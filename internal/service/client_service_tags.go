package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/notesync/internal/logger"
	"github.com/MKhiriev/notesync/internal/store"
	"github.com/MKhiriev/notesync/models"
)

// tagAggregate keeps the tag usage counts in step with note and task tag
// lists.
type tagAggregate struct {
	repo store.LocalTagRepository
}

func newTagAggregate(repo store.LocalTagRepository) *tagAggregate {
	return &tagAggregate{repo: repo}
}

// apply increments tags present only in after and decrements tags present
// only in before. A tag whose count drops to zero is removed.
func (a *tagAggregate) apply(ctx context.Context, before, after []string, now time.Time) error {
	added, removed := diffTags(before, after)

	for _, name := range added {
		if err := a.adjust(ctx, name, 1, now); err != nil {
			return err
		}
	}
	for _, name := range removed {
		if err := a.adjust(ctx, name, -1, now); err != nil {
			return err
		}
	}
	return nil
}

func (a *tagAggregate) adjust(ctx context.Context, name string, delta int, now time.Time) error {
	log := logger.FromContext(ctx)

	tag, err := a.repo.GetTag(ctx, name)
	switch {
	case errors.Is(err, store.ErrTagNotFound):
		if delta < 0 {
			return nil
		}
		tag = models.Tag{Name: name}
	case err != nil:
		return fmt.Errorf("get tag %q: %w", name, err)
	}

	tag.UsageCount += delta
	if tag.UsageCount <= 0 {
		if err = a.repo.DeleteTag(ctx, name); err != nil {
			return fmt.Errorf("delete tag %q: %w", name, err)
		}
		log.Debug().Str("func", "tagAggregate.adjust").Str("tag", name).Msg("tag no longer used")
		return nil
	}

	if delta > 0 {
		tag.LastUsedAt = now
	}
	if err = a.repo.SaveTag(ctx, tag); err != nil {
		return fmt.Errorf("save tag %q: %w", name, err)
	}
	return nil
}

// diffTags returns the unique names only in after and only in before.
func diffTags(before, after []string) (added, removed []string) {
	old := make(map[string]struct{}, len(before))
	for _, t := range before {
		old[t] = struct{}{}
	}
	cur := make(map[string]struct{}, len(after))
	for _, t := range after {
		if _, dup := cur[t]; dup {
			continue
		}
		cur[t] = struct{}{}
		if _, ok := old[t]; !ok {
			added = append(added, t)
		}
	}
	seen := make(map[string]struct{}, len(before))
	for _, t := range before {
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		if _, ok := cur[t]; !ok {
			removed = append(removed, t)
		}
	}
	return added, removed
}
