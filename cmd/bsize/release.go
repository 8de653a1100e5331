package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/dennisklein/size/internal/remote"
	"github.com/dennisklein/size/internal/render"
)

var (
	tagStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	oldTagStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("8"))
)

func newReleaseCmd(cfg remote.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "release <owner/repo>",
		Short: "Show release asset sizes of a GitHub repository",
		Long: `List the assets of recent GitHub releases with their sizes, newest version
first. Set GITHUB_TOKEN to raise the API rate limit.`,
		Args: cobra.ExactArgs(1),
	}

	flags := addFormatFlags(cmd)
	cmd.Flags().IntP("limit", "n", 5, "Number of releases to show")
	cmd.Flags().Bool("latest", false, "Only show the latest release")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		owner, repo, err := splitRepo(args[0])
		if err != nil {
			return err
		}

		limit, err := cmd.Flags().GetInt("limit")
		if err != nil {
			return fmt.Errorf("failed to get --limit flag: %w", err)
		}

		latest, err := cmd.Flags().GetBool("latest")
		if err != nil {
			return fmt.Errorf("failed to get --latest flag: %w", err)
		}

		client, err := remote.NewClient(cfg)
		if err != nil {
			return err
		}

		var releases []remote.Release

		if latest {
			release, err := client.LatestRelease(ctx, owner, repo)
			if err != nil {
				return err
			}

			releases = []remote.Release{release}
		} else {
			releases, err = client.Releases(ctx, owner, repo, limit)
			if err != nil {
				return err
			}
		}

		out := cmd.OutOrStdout()
		r := render.New(out, flags.formatter())

		for i, release := range releases {
			style := oldTagStyle
			if i == 0 {
				style = tagStyle
			}

			if err := writeLine(out, "%s", style.Render(release.Tag)); err != nil {
				return err
			}

			for _, asset := range release.Assets {
				if err := r.SizeRow(asset.Name, asset.Size); err != nil {
					return err
				}
			}

			if err := r.TotalRow(fmt.Sprintf("%d assets", len(release.Assets)), release.Total()); err != nil {
				return err
			}

			if i < len(releases)-1 {
				if err := writeLine(out, ""); err != nil {
					return err
				}
			}
		}

		return nil
	}

	return cmd
}

func splitRepo(arg string) (owner, repo string, err error) {
	owner, repo, ok := strings.Cut(arg, "/")
	if !ok || owner == "" || repo == "" || strings.Contains(repo, "/") {
		return "", "", fmt.Errorf("expected owner/repo, got %q", arg)
	}

	return owner, repo, nil
}
