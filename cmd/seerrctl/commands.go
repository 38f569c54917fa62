package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/amaumene/seerrctl/internal/models"
	"github.com/amaumene/seerrctl/internal/render"
	"github.com/amaumene/seerrctl/internal/utils"
	"github.com/spf13/cobra"
)

func (a *app) recentCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "recent",
		Short: "List recently added media",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			summaries, err := a.client.GetRecentlyAdded(cmd.Context())
			if err != nil {
				return err
			}
			render.Summaries(a.out, summaries)
			return nil
		},
	}
}

func (a *app) searchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search movies, shows and people",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, err := a.client.Search(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			render.SearchResults(a.out, results)
			return nil
		},
	}
}

func (a *app) detailCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "detail <tv|movie> <id>",
		Short: "Show a title's detail",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			mediaType, err := models.ParseMediaType(args[0])
			if err != nil {
				return err
			}
			id, err := parseID(args[1])
			if err != nil {
				return err
			}

			detail, err := a.client.GetMedia(cmd.Context(), id, mediaType)
			if err != nil {
				return err
			}
			render.MediaDetail(a.out, detail, a.client.WebURL(mediaType, id))
			return nil
		},
	}
}

func (a *app) requestCommand() *cobra.Command {
	var (
		title      string
		seasons    []int
		allSeasons bool
		force      bool
	)

	cmd := &cobra.Command{
		Use:   "request <tv|movie> [id]",
		Short: "Request a movie or TV show",
		Long: "Request a movie or TV show by id, or by the closest search match with --title.\n" +
			"TV requests need --seasons or --all-seasons.",
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			mediaType, err := models.ParseMediaType(args[0])
			if err != nil {
				return err
			}

			var id int
			switch {
			case len(args) == 2 && title != "":
				return fmt.Errorf("give either an id or --title, not both")
			case len(args) == 2:
				if id, err = parseID(args[1]); err != nil {
					return err
				}
			case title != "":
				results, err := a.client.Search(ctx, title)
				if err != nil {
					return err
				}
				match, err := closestResult(results, mediaType, title)
				if err != nil {
					return err
				}
				id = match.ID()
			default:
				return fmt.Errorf("an id or --title is required")
			}

			detail, err := a.client.GetMedia(ctx, id, mediaType)
			if err != nil {
				return err
			}
			if status := models.StatusOf(detail.MediaInfo()); !status.Requestable() && !force {
				return fmt.Errorf("%s is already %s; use --force to request it anyway", detail.Title(), status.Label())
			}

			var selected []int
			if mediaType == models.MediaTypeTV {
				selected, err = selectSeasons(detail.TV, seasons, cmd.Flags().Changed("seasons"), allSeasons)
				if err != nil {
					return err
				}
			}

			created, err := a.client.CreateRequest(ctx, id, mediaType, selected)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Requested %s (%s)\n", detail.Title(), created.Status)
			return nil
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "request the closest search match for this title")
	cmd.Flags().IntSliceVar(&seasons, "seasons", nil, "season numbers to request, e.g. 1,2")
	cmd.Flags().BoolVar(&allSeasons, "all-seasons", false, "request every season")
	cmd.Flags().BoolVar(&force, "force", false, "request even if the title is already requested or available")
	return cmd
}

func (a *app) issuesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "issues",
		Short: "List issues with their comments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			issues, err := a.client.GetIssues(cmd.Context())
			if err != nil {
				return err
			}
			render.Issues(a.out, issues)
			return nil
		},
	}

	var closeAfter bool
	comment := &cobra.Command{
		Use:   "comment <id> <message>",
		Short: "Comment on an issue",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			message := strings.TrimSpace(strings.Join(args[1:], " "))
			if message == "" {
				return fmt.Errorf("comment message must not be empty")
			}

			if _, err := a.client.AddIssueComment(cmd.Context(), id, message); err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Commented on issue #%d\n", id)

			if closeAfter {
				if _, err := a.client.UpdateIssueStatus(cmd.Context(), id, models.IssueStatusResolved); err != nil {
					return err
				}
				fmt.Fprintf(a.out, "Closed issue #%d\n", id)
			}
			return nil
		},
	}
	comment.Flags().BoolVar(&closeAfter, "close", false, "resolve the issue after commenting")

	cmd.AddCommand(
		comment,
		a.issueStatusCommand("close", "Resolve an issue", models.IssueStatusResolved),
		a.issueStatusCommand("reopen", "Reopen a resolved issue", models.IssueStatusOpen),
	)
	return cmd
}

func (a *app) issueStatusCommand(use, short string, status models.IssueStatus) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			issue, err := a.client.UpdateIssueStatus(cmd.Context(), id, status)
			if err != nil {
				return err
			}
			fmt.Fprintf(a.out, "Issue #%d is now %s\n", issue.ID, issue.Status)
			return nil
		},
	}
}

func parseID(s string) (int, error) {
	id, err := strconv.Atoi(s)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

// closestResult picks the search hit of the wanted type whose title is nearest to title
func closestResult(results []models.SearchResult, mediaType models.MediaType, title string) (*models.SearchResult, error) {
	var (
		candidates []*models.SearchResult
		titles     []string
	)
	for i := range results {
		if results[i].MediaType == mediaType {
			candidates = append(candidates, &results[i])
			titles = append(titles, results[i].Title())
		}
	}

	best := utils.BestMatch(title, titles)
	if best < 0 {
		return nil, fmt.Errorf("no %s matches %q", mediaType, title)
	}
	return candidates[best], nil
}

// selectSeasons resolves the season flags of a TV request
func selectSeasons(tv *models.TVDetail, seasons []int, seasonsSet, all bool) ([]int, error) {
	switch {
	case all && seasonsSet:
		return nil, fmt.Errorf("use either --seasons or --all-seasons")
	case all:
		return tv.SeasonNumbers(), nil
	case seasonsSet:
		if seasons == nil {
			seasons = []int{}
		}
		return seasons, nil
	}
	return nil, fmt.Errorf("select seasons with --seasons or --all-seasons")
}
