package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aalvaropc/bankcore/internal/domain"
)

const loadTimeout = 10 * time.Second

func cmdRefreshWorkspace(deps Deps) tea.Cmd {
	return func() tea.Msg {
		wd, err := os.Getwd()
		if err != nil {
			return workspaceRefreshedMsg{err: fmt.Errorf("getwd: %w", err)}
		}
		if deps.WorkspaceLocator == nil {
			return workspaceRefreshedMsg{cwd: wd, err: errors.New("WorkspaceLocator is nil")}
		}

		root, findErr := deps.WorkspaceLocator.FindRoot(wd)
		if findErr != nil {
			return workspaceRefreshedMsg{cwd: wd, err: findErr}
		}
		return workspaceRefreshedMsg{cwd: wd, found: true, root: root}
	}
}

func cmdInitWorkspaceHere(deps Deps, root string) tea.Cmd {
	return func() tea.Msg {
		if deps.WorkspaceInitializer == nil {
			return initWorkspaceDoneMsg{root: root, err: errors.New("WorkspaceInitializer is nil")}
		}

		err := deps.WorkspaceInitializer.Init(domain.WorkspaceSpec{Root: root}, false)
		if err != nil {
			deps.Logger.Error("tui.init_workspace.failed", "root", root, "err", err)
		}
		return initWorkspaceDoneMsg{root: root, err: err}
	}
}

func cmdLoadAccounts(deps Deps) tea.Cmd {
	return func() tea.Msg {
		if deps.Accounts == nil {
			return accountsLoadedMsg{err: &domain.OpError{
				Op:   "workspacefinder.findroot",
				Kind: domain.KindNotFound,
				Err:  domain.ErrNotFound,
			}}
		}

		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()

		accs, err := deps.Accounts.List(ctx)
		if err != nil {
			deps.Logger.Error("tui.accounts.load_failed", "err", err)
		} else {
			deps.Logger.Debug("tui.accounts.loaded", "count", len(accs))
		}
		return accountsLoadedMsg{accounts: accs, err: err}
	}
}
