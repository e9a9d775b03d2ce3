package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/pautahq/pauta/internal/repository"
)

// resolveItemID resolves user input to a planning item ID: exact UUID first,
// then unique UUID prefix.
func resolveItemID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("item ID is required")
	}

	items, err := app.Items.List(ctx, repository.ItemFilter{})
	if err != nil {
		return "", err
	}

	for _, item := range items {
		if item.ID == input {
			return item.ID, nil
		}
	}

	var matches []string
	for _, item := range items {
		if strings.HasPrefix(item.ID, input) {
			matches = append(matches, item.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("item not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("item ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveClientID resolves user input to a client ID: exact name
// (case-insensitive), exact UUID, then unique UUID prefix.
func resolveClientID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("client is required")
	}

	clients, err := app.Clients.List(ctx, true)
	if err != nil {
		return "", err
	}

	for _, c := range clients {
		if strings.EqualFold(c.Name, input) {
			return c.ID, nil
		}
	}
	for _, c := range clients {
		if c.ID == input {
			return c.ID, nil
		}
	}

	var matches []string
	for _, c := range clients {
		if strings.HasPrefix(c.ID, input) {
			matches = append(matches, c.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("client not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("client %q is ambiguous (%d matches)", input, len(matches))
	}
}

// resolveColumnID resolves user input to a board column ID: exact title
// (case-insensitive), exact UUID, then unique UUID prefix.
func resolveColumnID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("column is required")
	}

	columns, err := app.Columns.List(ctx)
	if err != nil {
		return "", err
	}

	for _, col := range columns {
		if strings.EqualFold(col.Title, input) {
			return col.ID, nil
		}
	}
	for _, col := range columns {
		if col.ID == input {
			return col.ID, nil
		}
	}

	var matches []string
	for _, col := range columns {
		if strings.HasPrefix(col.ID, input) {
			matches = append(matches, col.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("column not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("column %q is ambiguous (%d matches)", input, len(matches))
	}
}
