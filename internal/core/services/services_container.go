package services

import (
	portsrepo "github.com/georgeperezsalinas/siscont-erp-sub001/internal/core/ports/repositories"
	portssvc "github.com/georgeperezsalinas/siscont-erp-sub001/internal/core/ports/services"
	"github.com/georgeperezsalinas/siscont-erp-sub001/internal/platform/catalog"
	"github.com/georgeperezsalinas/siscont-erp-sub001/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(cfg *config.Config, cat *catalog.Catalog, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Event = NewEventService(repos.EventRepo, cat)
	container.Rule = NewRuleService(repos.RuleRepo, repos.EventRepo, cat)
	container.Mapping = NewMappingService(repos.MappingRepo, repos.AccountRepo, cat)
	container.Generator = NewGeneratorService(
		repos.EventRepo,
		repos.RuleRepo,
		repos.MappingRepo,
		repos.AccountRepo,
		repos.LedgerRepo,
		cfg.UnitCostFallback,
	)

	return container
}

// Compile-time interface checks.
var (
	_ portssvc.EventSvcFacade     = (*eventService)(nil)
	_ portssvc.RuleSvcFacade      = (*ruleService)(nil)
	_ portssvc.MappingSvcFacade   = (*mappingService)(nil)
	_ portssvc.GeneratorSvcFacade = (*generatorService)(nil)
)
