package ravy

// TokenInfo describes the API token making requests, including the
// permission strings it was granted.
type TokenInfo struct {
	// User is the ID of the user the token belongs to.
	User string `json:"user"`

	// Access lists the permission strings granted to the token.
	Access []string `json:"access"`

	// Application is the ID of the application the token was issued to.
	Application int64 `json:"application"`

	// Type is the token type, "ravy" or "ksoft".
	Type string `json:"type"`
}

// Trust is an aggregate trustworthiness assessment.
type Trust struct {
	// Level ranges from 0 (very untrustworthy) to 6 (very trustworthy).
	Level int `json:"level"`

	// Label is a human-readable description of the level.
	Label string `json:"label"`
}

// BanEntry is one ban record reported by a provider.
type BanEntry struct {
	Provider  string `json:"provider"`
	Reason    string `json:"reason"`
	ReasonKey string `json:"reasonKey,omitempty"`
	Moderator string `json:"moderator"`
}

// WhitelistEntry is one whitelist record reported by a provider.
type WhitelistEntry struct {
	Provider string `json:"provider"`
	Reason   string `json:"reason"`
}

// ReputationEntry is one reputation score reported by a provider.
type ReputationEntry struct {
	Provider string `json:"provider"`

	// Score ranges from 0 to 1.
	Score float64 `json:"score"`

	Upvotes   int `json:"upvotes,omitempty"`
	Downvotes int `json:"downvotes,omitempty"`
}

// Pronouns is a user's pronoun setting.
type Pronouns struct {
	Pronouns string `json:"pronouns"`
}

// User is the combined anti-abuse information for one user.
type User struct {
	Pronouns   string            `json:"pronouns"`
	Trust      Trust             `json:"trust"`
	Bans       []BanEntry        `json:"bans"`
	Whitelists []WhitelistEntry  `json:"whitelists"`
	Reputation []ReputationEntry `json:"rep"`
}

// GuildInfo is the anti-abuse information for one guild.
type GuildInfo struct {
	Trust Trust      `json:"trust"`
	Bans  []BanEntry `json:"bans"`
}

// URLInfo is the fraud assessment for one website URL.
type URLInfo struct {
	IsFraudulent bool   `json:"isFraudulent"`
	Message      string `json:"message"`
}

// AvatarCheck is the result of matching an avatar against known
// spam-bot avatars.
type AvatarCheck struct {
	// Matched reports whether the avatar matched a known spam avatar
	// within the requested threshold.
	Matched bool `json:"matched"`

	// Key identifies the matched avatar, empty when Matched is false.
	Key string `json:"key"`

	// Similarity is the match confidence between 0 and 1.
	Similarity float64 `json:"similarity"`
}
