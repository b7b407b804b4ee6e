package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"

	"knowledgechat/internal/models"
	"knowledgechat/internal/repositories"
)

// DeploymentService keeps a history of every project deployed to the
// preview: one database row per deployment plus a commit in a local snapshot
// git repository, so earlier generations can be inspected and diffed.
type DeploymentService struct {
	ctx         context.Context
	deployments repositories.DeploymentRepository
	snapshotDir string
	mu          sync.Mutex
}

func NewDeploymentService(deployments repositories.DeploymentRepository, snapshotDir string) *DeploymentService {
	return &DeploymentService{deployments: deployments, snapshotDir: snapshotDir}
}

func (s *DeploymentService) Startup(ctx context.Context) error {
	s.ctx = ctx
	if s.deployments == nil {
		return fmt.Errorf("deployment repository not configured")
	}
	if strings.TrimSpace(s.snapshotDir) == "" {
		return fmt.Errorf("snapshot directory not configured")
	}
	if err := os.MkdirAll(s.snapshotDir, 0755); err != nil {
		return fmt.Errorf("create snapshot directory: %w", err)
	}
	if _, err := git.PlainOpen(s.snapshotDir); err != nil {
		if !errors.Is(err, git.ErrRepositoryNotExists) {
			return fmt.Errorf("open snapshot repository: %w", err)
		}
		if _, err := git.PlainInit(s.snapshotDir, false); err != nil {
			return fmt.Errorf("init snapshot repository: %w", err)
		}
	}
	return nil
}

// Record persists a deployment row and commits the project files to the
// snapshot repository. Virtual paths are confined to the snapshot root; a
// path that escapes it fails the whole deployment record.
func (s *DeploymentService) Record(turnID string, files []models.ProjectFile) (*models.Deployment, error) {
	if len(files) == 0 {
		return nil, fmt.Errorf("no files to record")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	hash, err := s.commitSnapshot(turnID, files)
	if err != nil {
		return nil, err
	}

	filesJSON, err := json.Marshal(files)
	if err != nil {
		return nil, fmt.Errorf("marshal project files: %w", err)
	}

	deployment := &models.Deployment{
		TurnID:     turnID,
		FileCount:  len(files),
		FilesJSON:  string(filesJSON),
		CommitHash: hash,
	}
	if err := s.deployments.Create(context.Background(), deployment); err != nil {
		return nil, fmt.Errorf("persist deployment: %w", err)
	}
	return deployment, nil
}

// History lists the most recent deployments, newest first.
func (s *DeploymentService) History(limit int) ([]models.Deployment, error) {
	return s.deployments.List(context.Background(), limit)
}

func (s *DeploymentService) commitSnapshot(turnID string, files []models.ProjectFile) (string, error) {
	repo, err := git.PlainOpen(s.snapshotDir)
	if err != nil {
		return "", fmt.Errorf("open snapshot repository: %w", err)
	}
	wt, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("snapshot worktree: %w", err)
	}

	for _, f := range files {
		abs, err := s.resolveSnapshotPath(f.Path)
		if err != nil {
			return "", err
		}
		if err := os.MkdirAll(filepath.Dir(abs), 0755); err != nil {
			return "", fmt.Errorf("create snapshot subdirectory: %w", err)
		}
		if err := os.WriteFile(abs, []byte(f.Content), 0644); err != nil {
			return "", fmt.Errorf("write snapshot file %s: %w", f.Path, err)
		}
	}

	if err := wt.AddGlob("."); err != nil {
		return "", fmt.Errorf("stage snapshot: %w", err)
	}

	hash, err := wt.Commit(fmt.Sprintf("deploy %s (%d files)", turnID, len(files)), &git.CommitOptions{
		Author: &object.Signature{
			Name:  "Knowledge Chat Studio",
			Email: "studio@knowledgechat.local",
			When:  time.Now(),
		},
		AllowEmptyCommits: true,
	})
	if err != nil {
		return "", fmt.Errorf("commit snapshot: %w", err)
	}
	return hash.String(), nil
}

// resolveSnapshotPath maps a virtual project path onto the snapshot root and
// rejects anything that would escape it.
func (s *DeploymentService) resolveSnapshotPath(virtualPath string) (string, error) {
	cleaned := strings.TrimPrefix(strings.TrimSpace(virtualPath), "/")
	if cleaned == "" {
		return "", fmt.Errorf("empty project file path")
	}
	absRoot, err := filepath.Abs(s.snapshotDir)
	if err != nil {
		return "", err
	}
	absCandidate, err := filepath.Abs(filepath.Join(absRoot, filepath.FromSlash(cleaned)))
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(absRoot, absCandidate)
	if err != nil {
		return "", err
	}
	if strings.HasPrefix(rel, "..") {
		return "", fmt.Errorf("project file path escapes the snapshot root: %s", virtualPath)
	}
	return absCandidate, nil
}
