package backend

import (
	"context"
	"fmt"
	"net/http"
)

// ListRepos lists the repositories visible to the repo-access token.
func (c *Client) ListRepos(ctx context.Context, token string) (*RepoList, error) {
	var list RepoList
	if err := c.doJSON(ctx, token, http.MethodGet, "/user/repos", nil, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

type indexRequest struct {
	RepoIDs     []int64 `json:"repo_ids"`
	AccessToken string  `json:"access_token"`
}

// IndexRepos asks the backend to index the selected repositories. The
// token rides both in the bearer header and the body, per the contract.
func (c *Client) IndexRepos(ctx context.Context, token string, repoIDs []int64) (*IndexAck, error) {
	var ack IndexAck
	body := indexRequest{RepoIDs: repoIDs, AccessToken: token}
	if err := c.doJSON(ctx, token, http.MethodPost, "/user/repos/index", nil, body, &ack); err != nil {
		return nil, err
	}
	return &ack, nil
}

// RepoStatus polls the indexing status of one repository.
func (c *Client) RepoStatus(ctx context.Context, token string, repoID int64) (*IndexingStatus, error) {
	var status IndexingStatus
	path := fmt.Sprintf("/user/repos/%d/status", repoID)
	if err := c.doJSON(ctx, token, http.MethodGet, path, nil, nil, &status); err != nil {
		return nil, err
	}
	return &status, nil
}
