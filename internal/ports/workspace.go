package ports

import "github.com/aalvaropc/bankcore/internal/domain"

type WorkspaceInitializer interface {
	Init(spec domain.WorkspaceSpec, force bool) error
}
