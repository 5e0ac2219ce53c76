package ravy

import (
	"context"
	"net/http"
)

// GuildsService exposes lookups under /guilds.
type GuildsService struct {
	client *Client
}

// Get retrieves the trust and ban information for a guild. Requires the
// "guilds" permission.
func (s *GuildsService) Get(ctx context.Context, guildID int64) (*GuildInfo, error) {
	if err := s.client.guard.Check(PermissionGuilds); err != nil {
		return nil, err
	}

	route := s.client.paths.Guilds(guildID)

	var info GuildInfo
	if err := s.client.do(ctx, http.MethodGet, route.Route(), nil, nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}
