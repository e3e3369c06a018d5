package api

import (
	"context"
	"net/url"
)

// PhotographersService handles public directory browsing.
type PhotographersService struct {
	client *Client
}

// List fetches all photographer listings.
func (s *PhotographersService) List(ctx context.Context) ([]Photographer, error) {
	var entries []Photographer
	if err := s.client.get(ctx, "/photographers", "", &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// ListFiltered fetches listings filtered server-side by city and/or
// photography type. Empty arguments are omitted from the query.
func (s *PhotographersService) ListFiltered(ctx context.Context, city, photographyType string) ([]Photographer, error) {
	q := url.Values{}
	if city != "" {
		q.Set("city", city)
	}
	if photographyType != "" {
		q.Set("type", photographyType)
	}

	path := "/photographers"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var entries []Photographer
	if err := s.client.get(ctx, path, "", &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Get fetches one photographer by id.
func (s *PhotographersService) Get(ctx context.Context, id string) (*Photographer, error) {
	var entry Photographer
	if err := s.client.get(ctx, "/photographer/"+url.PathEscape(id), "", &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}
