package erp

import (
	"fmt"
	"sort"
	"strings"

	"github.com/loomhq/loom/pkg/config"
)

// Catalog renders the configured targets as the tool catalog handed to the
// reasoning engine. The catalog is the closed set: a decision naming a
// target absent from it fails the turn.
func Catalog(targets *config.TargetRegistry) string {
	var b strings.Builder
	for _, id := range targets.IDs() {
		t, err := targets.Get(id)
		if err != nil {
			continue
		}
		fmt.Fprintf(&b, "- %s: %s", id, t.Description)
		if len(t.Parameters) > 0 {
			names := make([]string, 0, len(t.Parameters))
			for name := range t.Parameters {
				names = append(names, name)
			}
			sort.Strings(names)
			b.WriteString(" (parameters: ")
			for i, name := range names {
				if i > 0 {
					b.WriteString(", ")
				}
				fmt.Fprintf(&b, "%s - %s", name, t.Parameters[name])
			}
			b.WriteString(")")
		}
		b.WriteString("\n")
	}
	return b.String()
}
