// Copyright (c) 2025 Marouane Kaddouri.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

var ErrConflict = errors.New("record already exists for this session")

// Rating is one evaluation across the four criteria.
type Rating struct {
	Presentation int `json:"presentation"`
	Technical    int `json:"technical"`
	Innovation   int `json:"innovation"`
	Overall      int `json:"overall"`
}

// Store is the remote rating/comment store the submission flow writes
// to. Both collections are keyed by (projectID, userSession). GetRating
// returns (nil, nil) and LatestComment ("", false, nil) when no record
// exists; errors are reserved for transport or server failures.
type Store interface {
	GetRating(ctx context.Context, projectID, userSession string) (*Rating, error)
	InsertRating(ctx context.Context, projectID, userSession string, r Rating) error
	UpdateRating(ctx context.Context, projectID, userSession string, r Rating) error
	LatestComment(ctx context.Context, projectID, userSession string) (string, bool, error)
	InsertComment(ctx context.Context, projectID, userSession, content string) error
	UpdateComment(ctx context.Context, projectID, userSession, content string) error
}

// HTTPStore talks to the EvalProject API.
type HTTPStore struct {
	baseURL string
	client  *http.Client
}

// NewHTTPStore builds a store for the API at baseURL (no trailing slash).
func NewHTTPStore(baseURL string) *HTTPStore {
	return &HTTPStore{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *HTTPStore) GetRating(ctx context.Context, projectID, userSession string) (*Rating, error) {
	path := "/projects/" + url.PathEscape(projectID) + "/rating?user_session=" + url.QueryEscape(userSession)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("rating lookup failed: %w", err)
	}
	defer drain(resp)

	switch resp.StatusCode {
	case http.StatusOK:
		var r Rating
		if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
			return nil, fmt.Errorf("rating lookup failed: %w", err)
		}
		return &r, nil
	case http.StatusNotFound:
		return nil, nil
	default:
		return nil, fmt.Errorf("rating lookup failed: status %d", resp.StatusCode)
	}
}

func (s *HTTPStore) InsertRating(ctx context.Context, projectID, userSession string, r Rating) error {
	return s.writeRating(ctx, http.MethodPost, projectID, userSession, r)
}

func (s *HTTPStore) UpdateRating(ctx context.Context, projectID, userSession string, r Rating) error {
	return s.writeRating(ctx, http.MethodPut, projectID, userSession, r)
}

func (s *HTTPStore) writeRating(ctx context.Context, method, projectID, userSession string, r Rating) error {
	body := map[string]interface{}{
		"user_session": userSession,
		"presentation": r.Presentation,
		"technical":    r.Technical,
		"innovation":   r.Innovation,
		"overall":      r.Overall,
	}
	return s.write(ctx, method, "/projects/"+url.PathEscape(projectID)+"/rating", body)
}

func (s *HTTPStore) LatestComment(ctx context.Context, projectID, userSession string) (string, bool, error) {
	path := "/projects/" + url.PathEscape(projectID) + "/comment?user_session=" + url.QueryEscape(userSession)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+path, nil)
	if err != nil {
		return "", false, err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return "", false, fmt.Errorf("comment lookup failed: %w", err)
	}
	defer drain(resp)

	switch resp.StatusCode {
	case http.StatusOK:
		var c struct {
			Content string `json:"content"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&c); err != nil {
			return "", false, fmt.Errorf("comment lookup failed: %w", err)
		}
		return c.Content, true, nil
	case http.StatusNotFound:
		return "", false, nil
	default:
		return "", false, fmt.Errorf("comment lookup failed: status %d", resp.StatusCode)
	}
}

func (s *HTTPStore) InsertComment(ctx context.Context, projectID, userSession, content string) error {
	return s.writeComment(ctx, http.MethodPost, projectID, userSession, content)
}

func (s *HTTPStore) UpdateComment(ctx context.Context, projectID, userSession, content string) error {
	return s.writeComment(ctx, http.MethodPut, projectID, userSession, content)
}

func (s *HTTPStore) writeComment(ctx context.Context, method, projectID, userSession, content string) error {
	body := map[string]interface{}{
		"user_session": userSession,
		"content":      content,
	}
	return s.write(ctx, method, "/projects/"+url.PathEscape(projectID)+"/comment", body)
}

func (s *HTTPStore) write(ctx context.Context, method, path string, body interface{}) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, method, s.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("remote write failed: %w", err)
	}
	defer drain(resp)

	switch {
	case resp.StatusCode == http.StatusConflict:
		return ErrConflict
	case resp.StatusCode >= 400:
		return fmt.Errorf("remote write failed: status %d", resp.StatusCode)
	}
	return nil
}

// Ping checks backend liveness; used by the auto-sync loop.
func (s *HTTPStore) Ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/health", nil)
	if err != nil {
		return err
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	defer drain(resp)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check failed: status %d", resp.StatusCode)
	}
	return nil
}

// drain discards the remaining body so the connection can be reused.
func drain(resp *http.Response) {
	io.Copy(io.Discard, resp.Body)
	resp.Body.Close()
}
