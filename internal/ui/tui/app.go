package tui

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/bankcore/internal/account"
)

type screen int

const (
	screenHome screen = iota
	screenAccounts
	screenAccountDetail
	screenDiscounts
	screenPayments
)

type menuAction int

const (
	actionAccounts menuAction = iota
	actionDiscounts
	actionPayments
	actionInit
	actionQuit
)

type menuItem struct {
	title  string
	desc   string
	action menuAction
}

func (m menuItem) Title() string       { return m.title }
func (m menuItem) Description() string { return m.desc }
func (m menuItem) FilterValue() string { return m.title }

type accountItem struct {
	acc account.Account
}

func (a accountItem) Title() string {
	return fmt.Sprintf("%s  %s", a.acc.Holder(), a.acc.Balance())
}
func (a accountItem) Description() string {
	return fmt.Sprintf("%s • %s • %s", a.acc.Kind(), a.acc.Capabilities(), a.acc.ID())
}
func (a accountItem) FilterValue() string { return a.acc.Holder() }

type model struct {
	theme Theme
	deps  Deps

	scr      screen
	menu     list.Model
	accounts list.Model
	selected account.Account
	loading  bool
	toast    string

	workspaceFound bool
	workspaceRoot  string
	cwd            string
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, m.deps.Logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	if deps.Logger == nil {
		deps.Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	items := []list.Item{
		menuItem{"Accounts", "Balances, capabilities and positions", actionAccounts},
		menuItem{"Discount tiers", "What each tier grants on 1000.00", actionDiscounts},
		menuItem{"Payment methods", "Registered payment methods", actionPayments},
		menuItem{"Init workspace", "Create bankcore.yaml in the current directory", actionInit},
		menuItem{"Quit", "Exit bankcore", actionQuit},
	}

	menu := list.New(items, list.NewDefaultDelegate(), 0, 0)
	menu.Title = "bankcore"
	menu.SetShowStatusBar(false)
	menu.SetFilteringEnabled(true)
	menu.SetShowHelp(false)

	accs := list.New(nil, list.NewDefaultDelegate(), 0, 0)
	accs.Title = "Accounts"
	accs.SetShowStatusBar(true)
	accs.SetShowHelp(false)

	m := model{
		theme:    DefaultTheme(),
		deps:     deps,
		scr:      screenHome,
		menu:     menu,
		accounts: accs,
	}

	if deps.WorkspaceRoot != "" {
		m.workspaceFound = true
		m.workspaceRoot = deps.WorkspaceRoot
	}
	if wd, err := os.Getwd(); err == nil {
		m.cwd = wd
	}
	return m
}

func (m model) Init() tea.Cmd {
	if m.workspaceFound {
		return nil
	}
	return cmdRefreshWorkspace(m.deps)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.menu.SetSize(msg.Width-4, msg.Height-10)
		m.accounts.SetSize(msg.Width-4, msg.Height-10)
		return m, nil

	case workspaceRefreshedMsg:
		m.cwd = msg.cwd
		m.workspaceFound = msg.found
		m.workspaceRoot = msg.root
		return m, nil

	case initWorkspaceDoneMsg:
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			return m, nil
		}
		m.toast = "Workspace created at " + msg.root + " (restart bankcore to load it)"
		return m, cmdRefreshWorkspace(m.deps)

	case accountsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.toast = userMessage(msg.err)
			m.scr = screenHome
			return m, nil
		}
		items := make([]list.Item, 0, len(msg.accounts))
		for _, a := range msg.accounts {
			items = append(items, accountItem{acc: a})
		}
		cmd := m.accounts.SetItems(items)
		return m, cmd

	case tea.KeyMsg:
		if next, cmd, handled := m.handleKey(msg); handled {
			return next, cmd
		}
	}

	var cmd tea.Cmd
	switch m.scr {
	case screenHome:
		m.menu, cmd = m.menu.Update(msg)
	case screenAccounts:
		m.accounts, cmd = m.accounts.Update(msg)
	}
	return m, cmd
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd, bool) {
	filtering := (m.scr == screenHome && m.menu.FilterState() == list.Filtering) ||
		(m.scr == screenAccounts && m.accounts.FilterState() == list.Filtering)
	if filtering {
		return m, nil, false
	}

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit, true

	case "q":
		if m.scr == screenHome {
			return m, tea.Quit, true
		}
		m.scr = screenHome
		return m, nil, true

	case "esc", "b":
		switch m.scr {
		case screenHome:
			return m, nil, false
		case screenAccountDetail:
			m.scr = screenAccounts
		default:
			m.scr = screenHome
		}
		return m, nil, true

	case "r":
		if m.scr == screenAccounts {
			m.loading = true
			return m, cmdLoadAccounts(m.deps), true
		}

	case "enter":
		switch m.scr {
		case screenHome:
			it, ok := m.menu.SelectedItem().(menuItem)
			if !ok {
				return m, nil, true
			}
			next, cmd := m.open(it.action)
			return next, cmd, true
		case screenAccounts:
			if it, ok := m.accounts.SelectedItem().(accountItem); ok {
				m.selected = it.acc
				m.scr = screenAccountDetail
			}
			return m, nil, true
		}
	}
	return m, nil, false
}

func (m model) open(a menuAction) (model, tea.Cmd) {
	m.toast = ""
	switch a {
	case actionQuit:
		return m, tea.Quit
	case actionAccounts:
		m.scr = screenAccounts
		m.loading = true
		return m, cmdLoadAccounts(m.deps)
	case actionDiscounts:
		m.scr = screenDiscounts
	case actionPayments:
		m.scr = screenPayments
	case actionInit:
		if m.workspaceFound {
			m.toast = "Workspace already exists at " + m.workspaceRoot
			return m, nil
		}
		return m, cmdInitWorkspaceHere(m.deps, m.cwd)
	}
	return m, nil
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	header := m.theme.Title.Render("bankcore") + "\n" +
		m.theme.Subtitle.Render("accounts, discount tiers and payment methods") + "\n"

	var banner string
	if m.workspaceFound {
		banner = m.theme.Help.Render(fmt.Sprintf("Workspace: %s", m.workspaceRoot))
	} else {
		banner = m.theme.Card.Render("⚠ No workspace found.\n\nChoose Init workspace to create one here.")
	}
	if m.toast != "" {
		banner += "\n" + m.theme.Toast.Render(m.toast)
	}

	var body, help string
	switch m.scr {
	case screenHome:
		body = m.menu.View()
		help = "↑/↓ navigate • enter open • / search • q quit"
	case screenAccounts:
		if m.loading {
			body = "Loading accounts…"
		} else {
			body = m.accounts.View()
		}
		help = "enter details • r reload • / search • esc back"
	case screenAccountDetail:
		body = renderAccountDetails(m.theme, m.selected)
		help = "esc back • q home"
	case screenDiscounts:
		body = renderDiscounts(m.theme, m.deps.Discounts)
		help = "esc back"
	case screenPayments:
		body = renderPayments(m.deps.Payments)
		help = "esc back"
	default:
		body = "unknown state"
	}

	return wrap.Render(header + "\n" + banner + "\n\n" + m.theme.Card.Render(body) + "\n" + m.theme.Help.Render(help))
}
