package formatter

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/pautahq/pauta/internal/domain"
)

// FormatClientList renders brand profiles as an aligned table.
func FormatClientList(clients []*domain.Client) string {
	rows := make([][]string, 0, len(clients))
	for _, c := range clients {
		swatch := StyleDim.Render("·")
		if c.BrandColor != "" {
			swatch = lipgloss.NewStyle().Foreground(lipgloss.Color(c.BrandColor)).Render("●")
		}
		state := StyleGreen.Render("active")
		if c.IsArchived() {
			state = StyleDim.Render("archived")
		}
		handle := c.Handle
		if handle == "" {
			handle = "—"
		}
		rows = append(rows, []string{
			TruncID(c.ID),
			swatch + " " + StyleFg.Render(c.Name),
			StyleDim.Render(handle),
			state,
		})
	}
	return RenderTable([]string{"ID", "Name", "Handle", "State"}, rows)
}

// FormatConnectionList renders a client's social connections.
func FormatConnectionList(conns []*domain.SocialConnection) string {
	rows := make([][]string, 0, len(conns))
	for _, conn := range conns {
		state := StyleGreen.Render("● connected")
		if !conn.Active {
			state = StyleDim.Render("○ inactive")
		}
		expires := StyleDim.Render("never")
		if conn.ExpiresAt != nil {
			expires = RelativeDateStyled(*conn.ExpiresAt)
		}
		rows = append(rows, []string{
			TruncID(conn.ID),
			PlatformBadge(conn.Platform),
			StyleFg.Render(conn.AccountName),
			state,
			expires,
		})
	}
	return RenderTable([]string{"ID", "Platform", "Account", "State", "Expires"}, rows)
}
