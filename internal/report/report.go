// Package report renders the calorie balance as a markdown document.
package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/hpungsan/caltrack/internal/activity"
	"github.com/hpungsan/caltrack/internal/tracker"
)

// Markdown renders a report of state: the balance table followed by the
// food and exercise entries in list order. Empty sections are omitted.
func Markdown(state tracker.State, generatedAt time.Time) string {
	totals := tracker.Aggregate(state.Activities)

	var b strings.Builder
	b.WriteString("# Calorie report\n\n")
	fmt.Fprintf(&b, "_Generated %s_\n\n", generatedAt.UTC().Format("2006-01-02 15:04 UTC"))

	b.WriteString("## Balance\n\n")
	b.WriteString("| | kcal |\n")
	b.WriteString("|---|---:|\n")
	fmt.Fprintf(&b, "| Consumed | %d |\n", totals.Consumed)
	fmt.Fprintf(&b, "| Burned | %d |\n", totals.Burned)
	fmt.Fprintf(&b, "| **Net** | **%d** |\n", totals.Net)

	if len(state.Activities) == 0 {
		b.WriteString("\nNo activities logged.\n")
		return b.String()
	}

	for _, cat := range activity.Categories {
		writeSection(&b, cat, state.Activities)
	}
	return b.String()
}

func writeSection(b *strings.Builder, cat activity.Category, activities []activity.Activity) {
	header := false
	for _, a := range activities {
		if a.Category != cat {
			continue
		}
		if !header {
			fmt.Fprintf(b, "\n## %s\n\n", cat)
			header = true
		}
		fmt.Fprintf(b, "- %s: %d kcal\n", Escape(a.Name), a.Calories)
	}
}

var escaper = strings.NewReplacer(
	`\`, `\\`, "`", "\\`", "*", `\*`, "_", `\_`,
	"[", `\[`, "]", `\]`, "<", `\<`, ">", `\>`,
	"#", `\#`, "|", `\|`, "!", `\!`,
)

// Escape makes user text render literally in markdown.
func Escape(s string) string {
	return escaper.Replace(strings.Join(strings.Fields(s), " "))
}
