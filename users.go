package ravy

import (
	"context"
	"net/http"
)

// UsersService exposes lookups under /users. Every method checks its
// required permission before building a request; a denial short-circuits
// locally with an *AccessError and never reaches the network.
type UsersService struct {
	client *Client
}

// Get retrieves the combined pronouns, trust, ban, whitelist and
// reputation information for a user. Requires the "users" permission.
func (s *UsersService) Get(ctx context.Context, userID int64) (*User, error) {
	if err := s.client.guard.Check(PermissionUsers); err != nil {
		return nil, err
	}

	route := s.client.paths.Users(userID)

	var user User
	if err := s.client.do(ctx, http.MethodGet, route.Route(), nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// GetPronouns retrieves a user's pronouns. Requires the "users.pronouns"
// permission.
func (s *UsersService) GetPronouns(ctx context.Context, userID int64) (*Pronouns, error) {
	if err := s.client.guard.Check(PermissionUsersPronouns); err != nil {
		return nil, err
	}

	route := s.client.paths.Users(userID)

	var pronouns Pronouns
	if err := s.client.do(ctx, http.MethodGet, route.Pronouns(), nil, nil, &pronouns); err != nil {
		return nil, err
	}
	return &pronouns, nil
}

// GetBans retrieves a user's ban records. Requires the "users.bans"
// permission.
func (s *UsersService) GetBans(ctx context.Context, userID int64) ([]BanEntry, error) {
	if err := s.client.guard.Check(PermissionUsersBans); err != nil {
		return nil, err
	}

	route := s.client.paths.Users(userID)

	var payload struct {
		Bans []BanEntry `json:"bans"`
	}
	if err := s.client.do(ctx, http.MethodGet, route.Bans(), nil, nil, &payload); err != nil {
		return nil, err
	}
	return payload.Bans, nil
}

// GetWhitelists retrieves a user's whitelist records. Requires the
// "users.whitelists" permission.
func (s *UsersService) GetWhitelists(ctx context.Context, userID int64) ([]WhitelistEntry, error) {
	if err := s.client.guard.Check(PermissionUsersWhitelists); err != nil {
		return nil, err
	}

	route := s.client.paths.Users(userID)

	var payload struct {
		Whitelists []WhitelistEntry `json:"whitelists"`
	}
	if err := s.client.do(ctx, http.MethodGet, route.Whitelists(), nil, nil, &payload); err != nil {
		return nil, err
	}
	return payload.Whitelists, nil
}

// GetReputation retrieves a user's per-provider reputation scores.
// Requires the "users.rep" permission.
func (s *UsersService) GetReputation(ctx context.Context, userID int64) ([]ReputationEntry, error) {
	if err := s.client.guard.Check(PermissionUsersReputation); err != nil {
		return nil, err
	}

	route := s.client.paths.Users(userID)

	var payload struct {
		Reputation []ReputationEntry `json:"rep"`
	}
	if err := s.client.do(ctx, http.MethodGet, route.Reputation(), nil, nil, &payload); err != nil {
		return nil, err
	}
	return payload.Reputation, nil
}
