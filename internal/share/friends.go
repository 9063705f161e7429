package share

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// APIFriendSource fetches best friends from the app's /api/best-friends endpoint.
type APIFriendSource struct {
	BaseURL string
	Client  *http.Client
}

type bestFriendsResponse struct {
	BestFriends []Friend `json:"bestFriends"`
}

// BestFriends implements FriendSource.
func (s APIFriendSource) BestFriends(ctx context.Context, fid int) ([]Friend, error) {
	endpoint := strings.TrimRight(s.BaseURL, "/") + "/api/best-friends?" +
		url.Values{"fid": {strconv.Itoa(fid)}}.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build best friends request: %w", err)
	}
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch best friends: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch best friends: unexpected status %s", resp.Status)
	}
	var body bestFriendsResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode best friends: %w", err)
	}
	return body.BestFriends, nil
}
