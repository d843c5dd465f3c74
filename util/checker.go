package util

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/go-github/v63/github"
	"golang.org/x/mod/semver"

	"github.com/dixieflatline76/Wiggle/config"
)

// DefaultUpdateCacheTTL is how long a successful release lookup is reused.
// Unauthenticated GitHub API calls are limited to 60 per hour.
const DefaultUpdateCacheTTL = 30 * time.Minute

// CheckForUpdatesResult holds the outcome of the update check.
type CheckForUpdatesResult struct {
	UpdateAvailable bool
	CurrentVersion  string
	LatestVersion   string
	ReleaseURL      string
	ReleaseNotes    string
}

// UpdateChecker compares config.AppVersion with the latest GitHub release of
// Owner/Repo and remembers the answer for TTL.
type UpdateChecker struct {
	Owner string
	Repo  string
	TTL   time.Duration

	client *github.Client
	now    func() time.Time

	mu        sync.Mutex
	last      *CheckForUpdatesResult
	checkedAt time.Time
}

// NewUpdateChecker creates a checker for the Wiggle repository. A nil
// httpClient uses http.DefaultClient.
func NewUpdateChecker(httpClient *http.Client) *UpdateChecker {
	client := github.NewClient(httpClient)
	client.UserAgent = config.UserAgent()
	return &UpdateChecker{
		Owner:  "dixieflatline76",
		Repo:   config.AppName,
		TTL:    DefaultUpdateCacheTTL,
		client: client,
		now:    time.Now,
	}
}

// Check returns the cached result while it is fresh, otherwise it asks GitHub.
// Failures are not cached.
func (c *UpdateChecker) Check(ctx context.Context) (*CheckForUpdatesResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.last != nil && c.now().Sub(c.checkedAt) < c.TTL {
		return c.last, nil
	}

	release, _, err := c.client.Repositories.GetLatestRelease(ctx, c.Owner, c.Repo)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch latest GitHub release: %w", err)
	}

	c.last = compareRelease(config.AppVersion, release)
	c.checkedAt = c.now()
	return c.last, nil
}

// compareRelease builds the result for the running version against release.
// Tags that are not semantic versions never count as updates.
func compareRelease(current string, release *github.RepositoryRelease) *CheckForUpdatesResult {
	result := &CheckForUpdatesResult{
		CurrentVersion: canonicalVersion(current),
		LatestVersion:  canonicalVersion(release.GetTagName()),
		ReleaseURL:     release.GetHTMLURL(),
		ReleaseNotes:   strings.TrimSpace(release.GetBody()),
	}
	if semver.IsValid(result.LatestVersion) && semver.IsValid(result.CurrentVersion) {
		result.UpdateAvailable = semver.Compare(result.LatestVersion, result.CurrentVersion) > 0
	}
	return result
}

// canonicalVersion adds the "v" prefix semver expects.
func canonicalVersion(v string) string {
	if !strings.HasPrefix(v, "v") {
		return "v" + v
	}
	return v
}
