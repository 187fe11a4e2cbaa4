package repositories

// RepositoryProvider bundles all repository implementations for injection
// into the service layer.
type RepositoryProvider struct {
	EventRepo   EventRepositoryFacade
	RuleRepo    RuleRepositoryFacade
	MappingRepo MappingRepositoryFacade
	AccountRepo AccountReader
	LedgerRepo  LedgerRepositoryFacade
}
