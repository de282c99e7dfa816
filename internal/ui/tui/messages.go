package tui

import "github.com/aalvaropc/bankcore/internal/account"

type workspaceRefreshedMsg struct {
	cwd   string
	found bool
	root  string
	err   error
}

type initWorkspaceDoneMsg struct {
	root string
	err  error
}

type accountsLoadedMsg struct {
	accounts []account.Account
	err      error
}
