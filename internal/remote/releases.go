package remote

import (
	"context"
	"fmt"
	"sort"

	"github.com/Masterminds/semver/v3"
	"github.com/google/go-github/v58/github"

	"github.com/dennisklein/size"
)

// Asset is a downloadable file attached to a release.
type Asset struct {
	Name      string
	Size      size.Size
	Downloads int
}

// Release is a published release and its assets.
type Release struct {
	Tag    string
	Name   string
	Assets []Asset
}

// Total returns the combined size of all assets.
func (r Release) Total() size.Size {
	sizes := make([]size.Size, len(r.Assets))
	for i, a := range r.Assets {
		sizes[i] = a.Size
	}

	return size.Sum(sizes...)
}

// LatestRelease returns the latest published release of owner/repo.
func (c *Client) LatestRelease(ctx context.Context, owner, repo string) (Release, error) {
	release, _, err := c.github.Repositories.GetLatestRelease(ctx, owner, repo)
	if err != nil {
		return Release{}, fmt.Errorf("failed to get latest %s/%s release: %w", owner, repo, err)
	}

	return convertRelease(release), nil
}

// Releases returns up to limit recent releases of owner/repo, newest version
// first. Tags that are not semantic versions sort after those that are.
func (c *Client) Releases(ctx context.Context, owner, repo string, limit int) ([]Release, error) {
	opts := &github.ListOptions{PerPage: limit}

	list, _, err := c.github.Repositories.ListReleases(ctx, owner, repo, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s/%s releases: %w", owner, repo, err)
	}

	releases := make([]Release, 0, len(list))
	for _, r := range list {
		releases = append(releases, convertRelease(r))
	}

	SortByVersion(releases)

	if limit > 0 && len(releases) > limit {
		releases = releases[:limit]
	}

	return releases, nil
}

func convertRelease(r *github.RepositoryRelease) Release {
	release := Release{
		Tag:    r.GetTagName(),
		Name:   r.GetName(),
		Assets: make([]Asset, 0, len(r.Assets)),
	}

	for _, a := range r.Assets {
		release.Assets = append(release.Assets, Asset{
			Name:      a.GetName(),
			Size:      size.FromBytes(int64(a.GetSize())),
			Downloads: a.GetDownloadCount(),
		})
	}

	return release
}

// SortByVersion orders releases by semantic version, newest first. Tags that
// do not parse as versions come last, in descending string order.
func SortByVersion(releases []Release) {
	versions := make(map[string]*semver.Version, len(releases))

	for _, r := range releases {
		if v, err := semver.NewVersion(r.Tag); err == nil {
			versions[r.Tag] = v
		}
	}

	sort.SliceStable(releases, func(i, j int) bool {
		vi, okI := versions[releases[i].Tag]
		vj, okJ := versions[releases[j].Tag]

		switch {
		case okI && okJ:
			return vi.GreaterThan(vj)
		case okI != okJ:
			return okI
		default:
			return releases[i].Tag > releases[j].Tag
		}
	})
}
