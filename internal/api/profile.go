package api

import "context"

// ProfileService handles the authenticated photographer's own profile.
//
// A NotFound result from Me is the normal "no profile created yet" outcome,
// not a failure; callers branch on it to enter the create path.
type ProfileService struct {
	client *Client
}

// Me fetches the caller's own profile.
func (s *ProfileService) Me(ctx context.Context, token string) (*Photographer, error) {
	var profile Photographer
	if err := s.client.get(ctx, "/profile/me", token, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// Create creates the caller's profile.
func (s *ProfileService) Create(ctx context.Context, token string, params ProfileParams) error {
	return s.client.post(ctx, "/profile", token, params, nil)
}

// Update updates the caller's existing profile.
func (s *ProfileService) Update(ctx context.Context, token string, params ProfileParams) error {
	return s.client.put(ctx, "/profile", token, params, nil)
}

// Upload submits all staged portfolio files as one multipart request under
// the "files" field. The service enforces the 5-photo cap as well.
func (s *ProfileService) Upload(ctx context.Context, token string, files []Upload) ([]string, error) {
	var resp uploadResponse
	if err := s.client.postMultipart(ctx, "/profile/upload", token, "files", files, &resp); err != nil {
		return nil, err
	}
	return resp.FileURLs, nil
}
