package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	catalogmodel "amana-bookstore/internal/domains/catalog/model"
)

// BookItem is one catalog entry in the browse list.
type BookItem struct {
	Book catalogmodel.Book
}

func (i BookItem) FilterValue() string { return i.Book.Title }

func (i BookItem) Title() string {
	stock := ""
	if !i.Book.InStock {
		stock = " " + warningStyle.Render("(out of stock)")
	}
	return fmt.Sprintf("%s by %s%s", i.Book.Title, i.Book.Author, stock)
}

func (i BookItem) Description() string {
	return mutedStyle.Render(fmt.Sprintf("$%s • %.1f★ (%d reviews)",
		i.Book.Price.StringFixed(2), i.Book.Rating, i.Book.ReviewCount))
}

// BookItemDelegate renders catalog entries.
type BookItemDelegate struct{}

func (d BookItemDelegate) Height() int                             { return 2 }
func (d BookItemDelegate) Spacing() int                            { return 1 }
func (d BookItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d BookItemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	i, ok := item.(BookItem)
	if !ok {
		return
	}

	var s string
	if index == m.Index() {
		s = selectedItemStyle.Render("▸ " + i.Title() + "\n  " + i.Description())
	} else {
		s = unselectedItemStyle.Render("  " + i.Title() + "\n  " + i.Description())
	}

	_, _ = fmt.Fprint(w, s)
}
