package content

import (
	"regexp"
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

var (
	dueMarkerRegex = regexp.MustCompile(`(?i)\bdue:`)
	isoDateRegex   = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)
	spacesRegex    = regexp.MustCompile(`\s{2,}`)

	dueParser = newDueParser()
)

func newDueParser() *when.Parser {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return w
}

// ParseDueDate strips "due:<expr>" from a task title. <expr> is either an
// ISO date (2026-03-14) or natural language understood relative to now
// ("due:tomorrow", "due:next friday"). It returns the display title and the
// due date; when no expression can be parsed the title is returned as-is.
func ParseDueDate(title string, now time.Time) (string, *time.Time) {
	loc := dueMarkerRegex.FindStringIndex(title)
	if loc == nil {
		return title, nil
	}

	before := title[:loc[0]]
	expr, after := title[loc[1]:], ""
	// hashtags end the expression
	if i := strings.Index(expr, "#"); i >= 0 {
		expr, after = expr[:i], expr[i:]
	}
	return parseDueExpr(before, expr, after, title, now)
}

func parseDueExpr(before, expr, after, original string, now time.Time) (string, *time.Time) {
	if m := isoDateRegex.FindString(expr); m != "" {
		d, err := time.ParseInLocation(time.DateOnly, m, now.Location())
		if err == nil {
			return displayTitle(before, expr[len(m):]+after), &d
		}
	}

	r, err := dueParser.Parse(expr, now)
	if err != nil || r == nil || strings.TrimSpace(expr[:r.Index]) != "" {
		return original, nil
	}

	due := r.Time
	return displayTitle(before, expr[r.Index+len(r.Text):]+after), &due
}

func displayTitle(before, after string) string {
	s := strings.TrimSpace(before) + " " + strings.TrimSpace(after)
	return strings.TrimSpace(spacesRegex.ReplaceAllString(s, " "))
}
