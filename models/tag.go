package models

import "time"

// Tag is a derived aggregate counting how many notes and tasks reference a
// tag name.
type Tag struct {
	Name       string    `json:"name"`
	UsageCount int       `json:"usageCount"`
	LastUsedAt time.Time `json:"lastUsedAt"`
}
