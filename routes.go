package ravy

import (
	"strconv"
)

// DefaultBaseURL is the root of the Ravy API. The avatars route lives
// directly at this root rather than under a sub-path.
const DefaultBaseURL = "https://ravy.org/api/v1"

// Paths builds route path strings for the API's resource families. All
// constructors are pure: identical inputs always yield identical paths,
// and no validation or I/O happens. Identifier sanity (positive IDs,
// well-formed URLs) is deliberately left to the remote service.
type Paths struct{}

// NewPaths creates a Paths value.
func NewPaths() Paths {
	return Paths{}
}

// Avatars returns the route for the avatars resource.
func (Paths) Avatars() AvatarsRoute {
	return AvatarsRoute{}
}

// Guilds returns the route for a guild.
func (Paths) Guilds(guildID int64) GuildsRoute {
	return GuildsRoute{
		guildID: guildID,
		route:   "/guilds/" + strconv.FormatInt(guildID, 10),
	}
}

// Tokens returns the route for the current token.
func (Paths) Tokens() TokensRoute {
	return TokensRoute{}
}

// URLs returns the route for a website URL. The URL is embedded verbatim;
// callers pass an already-safe string, no escaping is performed here.
func (Paths) URLs(url string) URLsRoute {
	return URLsRoute{
		url:   url,
		route: "/urls/" + url,
	}
}

// Users returns the route for a user and its child resources.
func (Paths) Users(userID int64) UsersRoute {
	return UsersRoute{
		userID: userID,
		route:  "/users/" + strconv.FormatInt(userID, 10),
	}
}

// AvatarsRoute is the route for the avatars resource. Avatar checks are
// served at the API root, so Route returns the base URL itself.
type AvatarsRoute struct{}

// Route returns the production API root. Like every route value it is a
// constant of the resource, not of any client: a Client with an
// overridden base URL still issues avatar checks against its own root.
func (AvatarsRoute) Route() string {
	return DefaultBaseURL
}

// GuildsRoute is the route for one guild.
type GuildsRoute struct {
	guildID int64
	route   string
}

// Route returns the route path, e.g. "/guilds/7".
func (r GuildsRoute) Route() string {
	return r.route
}

// GuildID returns the guild ID the route was built from.
func (r GuildsRoute) GuildID() int64 {
	return r.guildID
}

// TokensRoute is the route for the current token.
type TokensRoute struct{}

// Route returns the route path "/tokens/@current".
func (TokensRoute) Route() string {
	return "/tokens/@current"
}

// URLsRoute is the route for one website URL.
type URLsRoute struct {
	url   string
	route string
}

// Route returns the route path, e.g. "/urls/example.com".
func (r URLsRoute) Route() string {
	return r.route
}

// URL returns the raw URL the route was built from.
func (r URLsRoute) URL() string {
	return r.url
}

// UsersRoute is the route for one user. Child resources are derived
// strings, the parent path plus a fixed suffix; there is no independent
// child route value.
type UsersRoute struct {
	userID int64
	route  string
}

// Route returns the route path, e.g. "/users/42".
func (r UsersRoute) Route() string {
	return r.route
}

// UserID returns the user ID the route was built from.
func (r UsersRoute) UserID() int64 {
	return r.userID
}

// Pronouns returns the child route for the user's pronouns.
func (r UsersRoute) Pronouns() string {
	return r.route + "/pronouns"
}

// Bans returns the child route for the user's bans.
func (r UsersRoute) Bans() string {
	return r.route + "/bans"
}

// Whitelists returns the child route for the user's whitelists.
func (r UsersRoute) Whitelists() string {
	return r.route + "/whitelists"
}

// Reputation returns the child route for the user's reputation. The API
// abbreviates this segment to "rep".
func (r UsersRoute) Reputation() string {
	return r.route + "/rep"
}
