package game

// Service is the entry point for recording games (facade)
type Service struct {
	Repo  ResultRepository
	Cache TallyCache
}

func NewService(repo ResultRepository, cache TallyCache) *Service {
	return &Service{
		Repo:  repo,
		Cache: cache,
	}
}
