package tui

import (
	"fmt"
	"strings"

	"github.com/andy/clienthub/internal/command"
	"github.com/andy/clienthub/internal/domain"
)

// renderClientLine renders one list row: index, name, phone, tags, priority
func renderClientLine(index int, c domain.Client) string {
	var b strings.Builder
	b.WriteString(indexStyle.Render(fmt.Sprintf("%d.", index)))
	b.WriteString(" ")
	b.WriteString(titleStyle.Render(c.Name().String()))
	fmt.Fprintf(&b, "  %s", c.Phone())

	for _, tag := range c.Tags() {
		b.WriteString("  ")
		b.WriteString(tagStyle.Render("[" + tag.String() + "]"))
	}
	if p, ok := c.Priority(); ok {
		b.WriteString("  ")
		b.WriteString(priorityStyle.Render(fmt.Sprintf("P%d", p)))
	}
	return b.String()
}

// renderClientDetail renders the expanded detail panel for one client
func renderClientDetail(c domain.Client) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(c.Name().String()))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Phone:    %s\n", c.Phone())
	fmt.Fprintf(&b, "Email:    %s\n", c.Email())
	fmt.Fprintf(&b, "Address:  %s\n", c.Address())

	if tags := c.Tags(); len(tags) > 0 {
		parts := make([]string, len(tags))
		for i, tag := range tags {
			parts[i] = tagStyle.Render("[" + tag.String() + "]")
		}
		fmt.Fprintf(&b, "Tags:     %s\n", strings.Join(parts, " "))
	}
	if pref, ok := c.Preference(); ok {
		fmt.Fprintf(&b, "Prefers:  %s\n", pref)
	}
	if desc, ok := c.Description(); ok {
		fmt.Fprintf(&b, "Notes:    %s\n", desc)
	}
	if p, ok := c.Priority(); ok {
		fmt.Fprintf(&b, "Priority: %d\n", p)
	}
	fmt.Fprintf(&b, "Total purchases: %d", c.TotalPurchase())

	return boxStyle.Render(b.String())
}

// helpView renders the command reference
func helpView() string {
	usages := []string{
		command.AddUsage,
		command.EditUsage,
		command.DeleteUsage,
		"list: Shows every client in name order.",
		command.FindUsage,
		command.FilterUsage,
		command.RankUsage,
		command.DescUsage,
		command.ExpandUsage,
		"clear: Removes every client from the registry.",
		"exit: Saves and quits.",
	}
	return helpStyle.Render(strings.Join(usages, "\n\n"))
}
