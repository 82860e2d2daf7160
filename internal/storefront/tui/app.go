// Package tui is the terminal storefront. Three surfaces render cart-derived
// data: the catalog browser (with a cart badge in its header), the book
// detail page and the cart page. Each surface owns a sync.Controller and a
// bus subscription; none of them share display state, they converge by
// re-reading the store whenever the bus signals a change.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	catalogmodel "amana-bookstore/internal/domains/catalog/model"
	"amana-bookstore/internal/storefront/client"
	"amana-bookstore/internal/storefront/sync"
	"amana-bookstore/pkg/events"
)

type Mode int

const (
	ModeCatalog Mode = iota
	ModeDetail
	ModeCart
)

// Model is the storefront's Bubble Tea model.
type Model struct {
	mode Mode

	api *client.Client
	bus *events.Bus

	list    list.Model
	catalog map[string]catalogmodel.Book
	detail  *catalogmodel.BookDetail

	// badge and cart are independent surfaces over the same store
	badge    *sync.Controller
	cart     *sync.Controller
	badgeSub *events.Subscription
	cartSub  *events.Subscription

	cartIndex int
	err       error
	width     int
	height    int
}

func NewModel(api *client.Client, bus *events.Bus) Model {
	l := list.New([]list.Item{}, BookItemDelegate{}, 0, 0)
	l.Title = "Amana Bookstore"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.Styles.Title = titleStyle

	return Model{
		mode:     ModeCatalog,
		api:      api,
		bus:      bus,
		list:     l,
		catalog:  make(map[string]catalogmodel.Book),
		badge:    sync.NewController(api, bus),
		cart:     sync.NewController(api, bus),
		badgeSub: bus.Subscribe(),
		cartSub:  bus.Subscribe(),
	}
}

// Messages

type booksLoadedMsg struct {
	books []catalogmodel.Book
}

type detailLoadedMsg struct {
	detail catalogmodel.BookDetail
}

type badgeSignalMsg struct{}

type cartSignalMsg struct{}

type cartOpDoneMsg struct {
	err error
}

type refreshDoneMsg struct {
	surface string
	err     error
}

type errorMsg struct {
	err error
}

// Commands

func loadBooksCmd(api *client.Client) tea.Cmd {
	return func() tea.Msg {
		books, err := api.ListBooks(context.Background())
		if err != nil {
			return errorMsg{err: fmt.Errorf("failed to load catalog: %w", err)}
		}
		return booksLoadedMsg{books: books}
	}
}

func loadDetailCmd(api *client.Client, id string) tea.Cmd {
	return func() tea.Msg {
		detail, err := api.GetBookDetail(context.Background(), id)
		if err != nil {
			return errorMsg{err: fmt.Errorf("failed to load book: %w", err)}
		}
		return detailLoadedMsg{detail: detail}
	}
}

// waitSignal blocks on a bus subscription and resurfaces as msg.
func waitSignal(sub *events.Subscription, msg tea.Msg) tea.Cmd {
	return func() tea.Msg {
		<-sub.C
		return msg
	}
}

func refreshCmd(ctrl *sync.Controller, surface string) tea.Cmd {
	return func() tea.Msg {
		err := ctrl.Refresh(context.Background())
		return refreshDoneMsg{surface: surface, err: err}
	}
}

func cartOpCmd(op func(context.Context) error) tea.Cmd {
	return func() tea.Msg {
		return cartOpDoneMsg{err: op(context.Background())}
	}
}

// Init starts catalog and cart loads and arms both bus listeners.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		loadBooksCmd(m.api),
		refreshCmd(m.badge, "badge"),
		refreshCmd(m.cart, "cart"),
		waitSignal(m.badgeSub, badgeSignalMsg{}),
		waitSignal(m.cartSub, cartSignalMsg{}),
		tea.EnterAltScreen,
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width-4, msg.Height-8)
		return m, nil

	case booksLoadedMsg:
		items := make([]list.Item, len(msg.books))
		for i, b := range msg.books {
			items[i] = BookItem{Book: b}
			m.catalog[b.ID] = b
		}
		m.list.SetItems(items)
		return m, nil

	case detailLoadedMsg:
		detail := msg.detail
		m.detail = &detail
		m.mode = ModeDetail
		return m, nil

	case badgeSignalMsg:
		// re-read and re-arm; the badge never trusts another surface's state
		return m, tea.Batch(
			refreshCmd(m.badge, "badge"),
			waitSignal(m.badgeSub, badgeSignalMsg{}),
		)

	case cartSignalMsg:
		return m, tea.Batch(
			refreshCmd(m.cart, "cart"),
			waitSignal(m.cartSub, cartSignalMsg{}),
		)

	case refreshDoneMsg:
		if msg.err != nil && msg.surface == "cart" {
			m.err = msg.err
		}
		m.clampCartIndex()
		return m, nil

	case cartOpDoneMsg:
		m.err = msg.err
		m.clampCartIndex()
		return m, nil

	case errorMsg:
		m.err = msg.err
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	if m.mode == ModeCatalog {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.mode {
	case ModeCatalog:
		return m.handleCatalogKey(msg)
	case ModeDetail:
		return m.handleDetailKey(msg)
	case ModeCart:
		return m.handleCartKey(msg)
	}
	return m, nil
}

func (m Model) handleCatalogKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "enter":
		if item, ok := m.list.SelectedItem().(BookItem); ok {
			return m, loadDetailCmd(m.api, item.Book.ID)
		}
		return m, nil

	case "a":
		if item, ok := m.list.SelectedItem().(BookItem); ok {
			bookID := item.Book.ID
			return m, cartOpCmd(func(ctx context.Context) error {
				return m.badge.Add(ctx, bookID, 1)
			})
		}
		return m, nil

	case "c":
		m.mode = ModeCart
		m.err = m.cart.Err()
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "esc", "b":
		m.mode = ModeCatalog
		m.detail = nil
		return m, nil

	case "a":
		if m.detail != nil {
			bookID := m.detail.Book.ID
			return m, cartOpCmd(func(ctx context.Context) error {
				return m.badge.Add(ctx, bookID, 1)
			})
		}
		return m, nil

	case "c":
		m.mode = ModeCart
		return m, nil
	}
	return m, nil
}

func (m Model) handleCartKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := m.cart.Items()

	switch msg.String() {
	case "q":
		return m, tea.Quit

	case "esc", "b":
		m.mode = ModeCatalog
		return m, nil

	case "up", "k":
		if m.cartIndex > 0 {
			m.cartIndex--
		}
		return m, nil

	case "down", "j":
		if m.cartIndex < len(items)-1 {
			m.cartIndex++
		}
		return m, nil

	case "+", "=":
		if m.cartIndex < len(items) {
			line := items[m.cartIndex]
			return m, cartOpCmd(func(ctx context.Context) error {
				return m.cart.SetQuantity(ctx, line.BookID, line.Quantity+1)
			})
		}
		return m, nil

	case "-":
		if m.cartIndex < len(items) {
			line := items[m.cartIndex]
			if line.Quantity <= 1 {
				return m, cartOpCmd(func(ctx context.Context) error {
					return m.cart.Remove(ctx, line.BookID)
				})
			}
			return m, cartOpCmd(func(ctx context.Context) error {
				return m.cart.SetQuantity(ctx, line.BookID, line.Quantity-1)
			})
		}
		return m, nil

	case "d", "x":
		if m.cartIndex < len(items) {
			line := items[m.cartIndex]
			return m, cartOpCmd(func(ctx context.Context) error {
				return m.cart.Remove(ctx, line.BookID)
			})
		}
		return m, nil

	case "C":
		return m, cartOpCmd(m.cart.Clear)

	case "r":
		// manual retry: re-read the authoritative state
		return m, refreshCmd(m.cart, "cart")
	}
	return m, nil
}

func (m *Model) clampCartIndex() {
	if n := len(m.cart.Items()); m.cartIndex >= n && n > 0 {
		m.cartIndex = n - 1
	} else if n == 0 {
		m.cartIndex = 0
	}
}

// View

func (m Model) View() string {
	switch m.mode {
	case ModeDetail:
		return m.viewDetail()
	case ModeCart:
		return m.viewCart()
	default:
		return m.viewCatalog()
	}
}

func (m Model) viewBadge() string {
	total := m.badge.TotalQuantity()
	label := fmt.Sprintf("Cart: %d", total)
	if m.badge.Status() != sync.StatusCommitted {
		label += " (" + m.badge.Status().String() + ")"
	}
	return badgeStyle.Render(label)
}

func (m Model) viewCatalog() string {
	help := helpStyle.Render(
		FormatKey("↑/↓", "navigate") + " • " +
			FormatKey("enter", "details") + " • " +
			FormatKey("a", "add to cart") + " • " +
			FormatKey("c", "cart") + " • " +
			FormatKey("q", "quit"),
	)

	sections := []string{m.viewBadge(), m.list.View(), help}
	if m.err != nil {
		sections = append(sections, m.viewError())
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewDetail() string {
	if m.detail == nil {
		return mutedStyle.Render("Loading...")
	}

	var b strings.Builder
	book := m.detail.Book

	b.WriteString(titleStyle.Render(book.Title))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("by " + book.Author))
	b.WriteString("\n\n")
	b.WriteString(book.Description)
	b.WriteString("\n\n")
	b.WriteString(infoStyle.Render(fmt.Sprintf("$%s", book.Price.StringFixed(2))))
	b.WriteString(mutedStyle.Render(fmt.Sprintf("  %.1f★ (%d reviews)", book.Rating, book.ReviewCount)))
	if !book.InStock {
		b.WriteString("  " + warningStyle.Render("out of stock"))
	}

	if len(m.detail.Reviews) > 0 {
		b.WriteString("\n\n")
		b.WriteString(titleStyle.Render("Reviews"))
		for _, r := range m.detail.Reviews {
			b.WriteString(fmt.Sprintf("\n%s %s\n", successStyle.Render(fmt.Sprintf("%.0f★", r.Rating)), r.Title))
			b.WriteString(mutedStyle.Render(r.Comment))
			b.WriteString("\n")
		}
	}

	help := helpStyle.Render(
		FormatKey("a", "add to cart") + " • " +
			FormatKey("c", "cart") + " • " +
			FormatKey("esc", "back") + " • " +
			FormatKey("q", "quit"),
	)

	sections := []string{m.viewBadge(), boxStyle.Render(b.String()), help}
	if m.err != nil {
		sections = append(sections, m.viewError())
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewCart() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Your Cart"))
	b.WriteString("\n")

	items := m.cart.Items()
	if len(items) == 0 {
		b.WriteString(mutedStyle.Render("Your cart is empty."))
	}

	total := 0
	for i, line := range items {
		title := line.BookID
		priceStr := ""
		if book, ok := m.catalog[line.BookID]; ok {
			title = book.Title
			lineTotal := book.Price.Mul(decimal.NewFromInt(int64(line.Quantity)))
			priceStr = "  $" + lineTotal.StringFixed(2)
		}

		row := fmt.Sprintf("%s  ×%d%s", title, line.Quantity, priceStr)
		if i == m.cartIndex {
			b.WriteString(selectedItemStyle.Render("▸ " + row))
		} else {
			b.WriteString(unselectedItemStyle.Render("  " + row))
		}
		b.WriteString("\n")
		total += line.Quantity
	}

	b.WriteString("\n")
	b.WriteString(infoStyle.Render(fmt.Sprintf("%d item(s)", total)))
	if m.cart.Status() != sync.StatusCommitted {
		b.WriteString("  " + warningStyle.Render(m.cart.Status().String()))
	}

	help := helpStyle.Render(
		FormatKey("+/-", "quantity") + " • " +
			FormatKey("d", "remove") + " • " +
			FormatKey("C", "clear") + " • " +
			FormatKey("r", "retry/refresh") + " • " +
			FormatKey("esc", "back") + " • " +
			FormatKey("q", "quit"),
	)

	sections := []string{m.viewBadge(), boxStyle.Render(b.String()), help}
	if m.err != nil {
		sections = append(sections, m.viewError())
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewError() string {
	return errorStyle.Render(m.err.Error() + "\n" + mutedStyle.Render("press r to retry"))
}

// Run starts the storefront UI and blocks until it exits.
func Run(api *client.Client, bus *events.Bus) error {
	p := tea.NewProgram(NewModel(api, bus))
	_, err := p.Run()
	return err
}
