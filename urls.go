package ravy

import (
	"context"
	"net/http"
)

// URLsService exposes lookups under /urls.
type URLsService struct {
	client *Client
}

// Get retrieves the fraud assessment for a website URL. The URL must
// already be request-safe; no escaping is performed. Requires the "urls"
// permission.
func (s *URLsService) Get(ctx context.Context, url string) (*URLInfo, error) {
	if err := s.client.guard.Check(PermissionURLs); err != nil {
		return nil, err
	}

	route := s.client.paths.URLs(url)

	var info URLInfo
	if err := s.client.do(ctx, http.MethodGet, route.Route(), nil, nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// Edit sets the fraud assessment for a website URL. Requires the
// "admin.urls" permission.
func (s *URLsService) Edit(ctx context.Context, url string, isFraudulent bool, message string) error {
	if err := s.client.guard.Check(PermissionURLsManage); err != nil {
		return err
	}

	route := s.client.paths.URLs(url)

	body := URLInfo{
		IsFraudulent: isFraudulent,
		Message:      message,
	}
	return s.client.do(ctx, http.MethodPost, route.Route(), nil, body, nil)
}
