package orchestrator

import (
	"fmt"
	"html"
	"strings"
)

// shortcutAnswer renders the templated answer for a directory intent.
func (o *Orchestrator) shortcutAnswer(intent directoryIntent) string {
	switch intent {
	case intentRosterSize:
		return fmt.Sprintf("Team hiện có <b>%d thành viên</b>.", o.dir.Size())

	case intentMemberListing:
		var b strings.Builder
		fmt.Fprintf(&b, "<b>👥 Thành viên team</b> (%d người)\n", o.dir.Size())
		for _, m := range o.dir.Members {
			fmt.Fprintf(&b, "\n• %s", html.EscapeString(m.Username))
			if m.Role != "" {
				fmt.Fprintf(&b, " — <i>%s</i>", html.EscapeString(m.Role))
			}
		}
		return b.String()

	case intentRoles:
		var b strings.Builder
		b.WriteString("<b>🏷 Vai trò trong team</b>\n")
		for _, rc := range o.dir.Roles() {
			fmt.Fprintf(&b, "\n• %s: %d người", html.EscapeString(rc.Role), rc.Count)
		}
		return b.String()
	}
	return ""
}
