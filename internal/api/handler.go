package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/dkries/ghrelay/internal/config"
	"github.com/dkries/ghrelay/internal/github"
	"github.com/dkries/ghrelay/internal/signature"
)

const signatureHeader = "x-hub-signature-256"

// ContentClient reads and conditionally writes repository files. Implemented
// by *github.Client; inject a fake in tests.
type ContentClient interface {
	GetFile(ctx context.Context, owner, repo, path, ref string) (*github.RemoteFile, error)
	PutFile(ctx context.Context, owner, repo, path, branch, sha, content, message string) (string, error)
}

type Handler struct {
	cfg config.Config
	gh  ContentClient
}

func NewHandler(cfg config.Config) *Handler {
	return &Handler{cfg: cfg, gh: github.NewClient(cfg.GitHubToken)}
}

// NewHandlerWithClient builds a handler with a custom ContentClient (e.g. for tests).
func NewHandlerWithClient(cfg config.Config, gh ContentClient) *Handler {
	return &Handler{cfg: cfg, gh: gh}
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func respondError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		log.Errorf("[relay] request failed: %v", err)
	}
	respondJSON(w, status, errorResponse{Error: err.Error()})
}

// Update reads the configured file's current version token and writes the
// submitted content back with that token as the precondition. The read and
// write are two sequential round-trips; a concurrent writer in between makes
// GitHub reject the write, which surfaces as a 500 and is not retried.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, &InvalidInputError{Reason: "body must be JSON"})
		return
	}
	if req.Content == "" {
		respondError(w, &InvalidInputError{Reason: "content is required"})
		return
	}

	cfg := h.cfg
	file, err := h.gh.GetFile(r.Context(), cfg.Owner, cfg.Repo, cfg.FilePath, cfg.Branch)
	if err != nil {
		respondError(w, err)
		return
	}
	if file.SHA == "" {
		respondError(w, &PreconditionFailedError{Owner: cfg.Owner, Repo: cfg.Repo, Path: cfg.FilePath})
		return
	}

	message := fmt.Sprintf("relay: update %s", cfg.FilePath)
	commit, err := h.gh.PutFile(r.Context(), cfg.Owner, cfg.Repo, cfg.FilePath, cfg.Branch, file.SHA, req.Content, message)
	if err != nil {
		respondError(w, err)
		return
	}
	log.Infof("[relay] updated %s/%s/%s at %s", cfg.Owner, cfg.Repo, cfg.FilePath, commit)
	respondJSON(w, http.StatusOK, UpdateResponse{Message: "Update triggered", Commit: commit})
}

// Webhook verifies and classifies workflow_run events. Verification runs over
// the exact bytes received, before any JSON parsing, so an unauthenticated
// body is never interpreted. Non-POST requests are treated as liveness probes.
func (h *Handler) Webhook(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
		return
	}
	body, err := io.ReadAll(r.Body)
	if err != nil {
		respondError(w, fmt.Errorf("read request body: %w", err))
		return
	}
	if !signature.Verify(body, r.Header.Get(signatureHeader), h.cfg.WebhookSecret) {
		respondError(w, &UnauthorizedError{})
		return
	}

	var event WebhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		respondError(w, &MalformedPayloadError{Err: err})
		return
	}
	if event.Action != "completed" || event.WorkflowRun == nil {
		log.Infof("[relay] ignoring webhook action %q", event.Action)
		respondJSON(w, http.StatusOK, ignoredResponse{Message: "Ignored event"})
		return
	}
	run := event.WorkflowRun
	log.Infof("[relay] workflow %q concluded %s at %s", run.Name, run.Conclusion, run.HeadSHA)
	respondJSON(w, http.StatusOK, RunSummary{
		Workflow:   run.Name,
		Status:     run.Status,
		Conclusion: run.Conclusion,
		Commit:     run.HeadSHA,
	})
}
