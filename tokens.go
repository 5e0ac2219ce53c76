package ravy

import (
	"context"
	"net/http"
)

// TokensService exposes lookups for the token in use.
type TokensService struct {
	client *Client
}

// Current retrieves information about the current token, including the
// permission strings it was granted.
//
// This is the bootstrap that populates the permission snapshot, so unlike
// the other endpoint services it is not itself guarded; it must be
// callable before any permissions are known. It also bypasses any
// configured response cache, so a refresh always reflects the API's
// current grants.
func (s *TokensService) Current(ctx context.Context) (*TokenInfo, error) {
	route := s.client.paths.Tokens()

	var info TokenInfo
	if err := s.client.doFresh(ctx, http.MethodGet, route.Route(), nil, nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}
