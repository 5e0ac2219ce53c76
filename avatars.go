package ravy

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

// AvatarsService exposes the avatar spam check served at the API root.
type AvatarsService struct {
	client *Client
}

// Check matches an avatar URL against known spam-bot avatars. The
// threshold is the minimum similarity, between 0 and 1, for a match to
// count. Requires the "avatars" permission.
func (s *AvatarsService) Check(ctx context.Context, avatarURL string, threshold float64) (*AvatarCheck, error) {
	if err := s.client.guard.Check(PermissionAvatars); err != nil {
		return nil, err
	}

	query := url.Values{}
	query.Set("avatar", avatarURL)
	query.Set("threshold", strconv.FormatFloat(threshold, 'f', -1, 64))

	// Avatar checks are served at the API root, not under a sub-path.
	var check AvatarCheck
	if err := s.client.do(ctx, http.MethodGet, "", query, nil, &check); err != nil {
		return nil, err
	}
	return &check, nil
}
