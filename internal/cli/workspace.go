package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/aalvaropc/bankcore/internal/account"
	"github.com/aalvaropc/bankcore/internal/domain"
	"github.com/aalvaropc/bankcore/internal/infra/accountstore"
	"github.com/aalvaropc/bankcore/internal/infra/logger"
	"github.com/aalvaropc/bankcore/internal/infra/notify"
	"github.com/aalvaropc/bankcore/internal/infra/report"
	"github.com/aalvaropc/bankcore/internal/infra/workspacefinder"
	"github.com/aalvaropc/bankcore/internal/ports"
	"github.com/aalvaropc/bankcore/internal/strategy/discount"
	"github.com/aalvaropc/bankcore/internal/strategy/payment"
	"github.com/aalvaropc/bankcore/internal/usecase"
)

// workspaceCtx is the composition root: every adapter and strategy a command needs,
// built once from bankcore.yaml.
type workspaceCtx struct {
	root string
	cfg  domain.Config

	catalog *account.Catalog
	store   ports.AccountStore
	teller  *usecase.Teller

	strategies
}

type strategies struct {
	discounts *discount.Registry
	payments  *payment.Processor
}

func loadWorkspace(workspaceFlag string) (*workspaceCtx, error) {
	root, err := resolveWorkspaceRoot(workspaceFlag)
	if err != nil {
		return nil, err
	}

	cfg, err := workspacefinder.LoadConfig(root)
	if err != nil {
		return nil, err
	}

	st, err := newStrategies(cfg)
	if err != nil {
		return nil, err
	}

	catalog := account.DefaultCatalog()
	store := accountstore.NewJSONStore(root, cfg, catalog, accountstore.WithIndex(true))
	teller := usecase.NewTeller(
		catalog,
		store,
		notify.New(root, cfg),
		report.NewYAMLGenerator(root, cfg),
		usecase.WithLogger(logger.L()),
	)

	return &workspaceCtx{
		root:       root,
		cfg:        cfg,
		catalog:    catalog,
		store:      store,
		teller:     teller,
		strategies: st,
	}, nil
}

// loadStrategies builds the registries for commands that also work outside a
// workspace. Inside one, configured discount tiers are added to the defaults.
func loadStrategies(workspaceFlag string) (strategies, error) {
	ws, err := loadWorkspace(workspaceFlag)
	if err == nil {
		return ws.strategies, nil
	}
	if strings.TrimSpace(workspaceFlag) == "" && isWorkspaceMissing(err) {
		return newStrategies(domain.DefaultConfig())
	}
	return strategies{}, err
}

func newStrategies(cfg domain.Config) (strategies, error) {
	extra, err := discount.FromConfig(cfg.Discounts)
	if err != nil {
		return strategies{}, err
	}
	discounts, err := discount.NewRegistry(append(discount.Defaults(), extra...)...)
	if err != nil {
		return strategies{}, err
	}

	methods, err := payment.NewRegistry(payment.Defaults()...)
	if err != nil {
		return strategies{}, err
	}

	return strategies{discounts: discounts, payments: payment.NewProcessor(methods)}, nil
}

func resolveWorkspaceRoot(workspaceFlag string) (string, error) {
	w := strings.TrimSpace(workspaceFlag)
	if w != "" {
		abs, err := filepath.Abs(w)
		if err != nil {
			return "", fmt.Errorf("invalid workspace path: %w", err)
		}
		return abs, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}

	locator := workspacefinder.NewFinder()
	root, err := locator.FindRoot(wd)
	if err != nil {
		return "", fmt.Errorf("workspace not found from %q (tip: run `bankcore init`): %w", wd, err)
	}
	return root, nil
}

func isWorkspaceMissing(err error) bool {
	return domain.IsKind(err, domain.KindNotFound)
}

func parseAccountID(arg string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(arg))
	if err != nil {
		return uuid.Nil, domain.NewDomainError(domain.KindInvalidInput, "account id %q: %v", arg, err)
	}
	return id, nil
}
