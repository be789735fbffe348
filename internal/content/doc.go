// Package content derives secondary data from a note's block tree: the plain
// text cache, the title, hashtags, checklist tasks and their due dates. It
// also applies targeted patches to checklist nodes.
//
// All functions are pure; none of them mutate their input.
package content
