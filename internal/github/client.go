package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/go-github/v66/github"
	"golang.org/x/oauth2"
)

// RemoteFile is the current state of a file in the repository. SHA is the
// version token GitHub requires as the precondition on the next write; it is
// empty when the path does not resolve to a regular file.
type RemoteFile struct {
	SHA     string
	Content string
}

// APIError is a non-success status from the GitHub API, carrying the remote
// status code and the message from the parsed error body.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("github api: status %d: %s", e.StatusCode, e.Body)
}

// DecodeError is a response body from the GitHub API that did not parse as
// JSON.
type DecodeError struct {
	Detail string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("github api: non-JSON response: %s", e.Detail)
}

type Client struct {
	token string
	hc    *http.Client // optional; for tests
}

func NewClient(token string) *Client {
	return &Client{token: token}
}

// NewClientWithHTTPClient returns a client that uses the given http.Client for
// API calls (e.g. in tests).
func NewClientWithHTTPClient(hc *http.Client) *Client {
	return &Client{hc: hc}
}

func (c *Client) api(ctx context.Context) *github.Client {
	if c.hc != nil {
		return github.NewClient(c.hc)
	}
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: c.token})
	return github.NewClient(oauth2.NewClient(ctx, ts))
}

// classify maps go-github failures onto the client's typed error set. Errors
// that are neither API statuses nor decode failures (e.g. transport errors)
// pass through unchanged.
func classify(err error) error {
	var ghErr *github.ErrorResponse
	if errors.As(err, &ghErr) {
		apiErr := &APIError{Body: ghErr.Message}
		if ghErr.Response != nil {
			apiErr.StatusCode = ghErr.Response.StatusCode
		}
		return apiErr
	}
	var synErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &synErr) || errors.As(err, &typeErr) {
		return &DecodeError{Detail: err.Error()}
	}
	return err
}

// GetFile fetches the metadata and content of a single file at ref. A path
// that resolves to a directory yields a RemoteFile with an empty SHA rather
// than an error; the caller decides whether that is fatal.
func (c *Client) GetFile(ctx context.Context, owner, repo, path, ref string) (*RemoteFile, error) {
	opts := &github.RepositoryContentGetOptions{Ref: ref}
	file, _, _, err := c.api(ctx).Repositories.GetContents(ctx, owner, repo, path, opts)
	if err != nil {
		return nil, classify(err)
	}
	if file == nil {
		return &RemoteFile{}, nil
	}
	content, err := file.GetContent()
	if err != nil {
		return nil, &DecodeError{Detail: err.Error()}
	}
	return &RemoteFile{SHA: file.GetSHA(), Content: content}, nil
}

// PutFile writes content to the file at path on branch, with sha as the
// optimistic-concurrency precondition. A single attempt: if another writer
// updated the file since sha was read, GitHub rejects the write and the 409
// surfaces as an APIError. Returns the new commit SHA, which may be empty if
// the response omits it.
func (c *Client) PutFile(ctx context.Context, owner, repo, path, branch, sha, content, message string) (string, error) {
	opts := &github.RepositoryContentFileOptions{
		Message: github.String(message),
		Content: []byte(content),
		SHA:     github.String(sha),
		Branch:  github.String(branch),
	}
	res, _, err := c.api(ctx).Repositories.UpdateFile(ctx, owner, repo, path, opts)
	if err != nil {
		return "", classify(err)
	}
	if res == nil || res.Commit.SHA == nil {
		return "", nil
	}
	return *res.Commit.SHA, nil
}
