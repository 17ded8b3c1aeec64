package update

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	appver "projctl/internal/version"
)

// Result describes the outcome of a release check.
type Result struct {
	Current    string
	Latest     string
	UpToDate   bool
	ReleaseURL string
}

// Checker queries the release endpoint for the latest published version.
// The zero value uses the default endpoint and a short timeout.
type Checker struct {
	BaseURL string        // override for tests
	Timeout time.Duration // defaults to 6s
}

type releaseInfo struct {
	TagName string `json:"tag_name"`
	HTMLURL string `json:"html_url"`
}

// Check fetches the latest release and compares against the running version.
// Network failures are returned to the caller; nothing is retried here.
func (c *Checker) Check(ctx context.Context) (Result, error) {
	base := c.BaseURL
	if base == "" {
		base = "https://api.github.com"
	}
	timeout := c.Timeout
	if timeout == 0 {
		timeout = 6 * time.Second
	}

	url := fmt.Sprintf("%s/repos/%s/releases/latest", base, appver.Repo)
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Result{}, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("release check: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return Result{}, fmt.Errorf("release check: unexpected status %s", resp.Status)
	}

	var rel releaseInfo
	if err := json.NewDecoder(resp.Body).Decode(&rel); err != nil {
		return Result{}, fmt.Errorf("release check: %w", err)
	}

	latest := ParseVersion(rel.TagName)
	if latest == "" {
		latest = NormalizeVersion(rel.TagName)
	}
	current := NormalizeVersion(appver.AppVersion)
	return Result{
		Current:    current,
		Latest:     latest,
		UpToDate:   !VersionLess(current, latest),
		ReleaseURL: rel.HTMLURL,
	}, nil
}
