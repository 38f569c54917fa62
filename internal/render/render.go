// Package render formats API results for the terminal.
package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/amaumene/seerrctl/internal/models"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	titleCase  = cases.Title(language.English)
	titleStyle = lipgloss.NewStyle().Bold(true)
	dimStyle   = lipgloss.NewStyle().Faint(true)
)

var palette = map[models.Color]lipgloss.Color{
	models.ColorGreen:  lipgloss.Color("2"),
	models.ColorPurple: lipgloss.Color("5"),
	models.ColorYellow: lipgloss.Color("3"),
	models.ColorOrange: lipgloss.Color("208"),
	models.ColorRed:    lipgloss.Color("1"),
}

func tint(c models.Color, s string) string {
	color, ok := palette[c]
	if !ok {
		return s
	}
	return lipgloss.NewStyle().Foreground(color).Render(s)
}

// StatusBadge renders the icon and label of a media status, or "" when there is no badge
func StatusBadge(s models.MediaStatus) string {
	icon := s.Icon()
	if icon.IsZero() {
		return ""
	}
	return tint(icon.Color, icon.Glyph+" "+titleCase.String(s.Label()))
}

// IssueTypeTag renders an issue category in its colour
func IssueTypeTag(t models.IssueType) string {
	return tint(t.Color(), "["+t.Label()+"]")
}

func line(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintf(w, format+"\n", args...)
}

// Summaries writes the recently added grid as a list
func Summaries(w io.Writer, summaries []models.ContentSummary) {
	if len(summaries) == 0 {
		line(w, "Nothing recently added")
		return
	}
	for _, s := range summaries {
		badge := StatusBadge(s.Status)
		if badge != "" {
			badge = "  " + badge
		}
		line(w, "%s %s%s", titleStyle.Render(s.Title), dimStyle.Render(fmt.Sprintf("(%s #%d)", s.Type, s.ID)), badge)
	}
}

// SearchResults writes search hits; people are listed but marked as not requestable
func SearchResults(w io.Writer, results []models.SearchResult) {
	if len(results) == 0 {
		line(w, "No results")
		return
	}
	for i := range results {
		r := &results[i]
		var extra string
		switch r.MediaType {
		case models.MediaTypeMovie:
			extra = year(r.Movie.ReleaseDate)
		case models.MediaTypeTV:
			extra = year(r.TV.FirstAirDate)
		case models.MediaTypePerson:
			extra = "person"
		default:
			panic(fmt.Sprintf("unhandled media type %q", r.MediaType))
		}

		badge := StatusBadge(models.StatusOf(r.MediaInfo()))
		if badge != "" {
			badge = "  " + badge
		}
		line(w, "%-6s %8d  %s %s%s", r.MediaType, r.ID(), titleStyle.Render(r.Title()), dimStyle.Render(extra), badge)
	}
}

// MediaDetail writes a title's detail page
func MediaDetail(w io.Writer, d *models.MediaDetail, webURL string) {
	line(w, "%s", titleStyle.Render(d.Title()))
	if poster := models.PosterURL(d.PosterPath()); poster != "" {
		line(w, "%s", dimStyle.Render(poster))
	}

	info := d.MediaInfo()
	if badge := StatusBadge(models.StatusOf(info)); badge != "" {
		line(w, "Availability: %s", badge)
	}

	switch d.Type {
	case models.MediaTypeTV:
		tv := d.TV
		if len(tv.CreatedBy) > 0 {
			names := make([]string, 0, len(tv.CreatedBy))
			for _, c := range tv.CreatedBy {
				names = append(names, c.Name)
			}
			line(w, "Created by: %s", strings.Join(names, ", "))
		}
		if directors := tv.Credits.Directors(); len(directors) > 0 {
			line(w, "Director(s): %s", strings.Join(directors, ", "))
		}
		line(w, "Status: %s", tv.Status)
		line(w, "Seasons: %d  Episodes: %d", tv.NumberOfSeasons, tv.NumberOfEpisodes)
		for _, s := range tv.Seasons {
			line(w, "  %3d  %s %s", s.SeasonNumber, s.Name, dimStyle.Render(fmt.Sprintf("(%d episodes%s)", s.EpisodeCount, airDate(s.AirDate))))
		}
		if tv.Overview != "" {
			line(w, "\n%s", tv.Overview)
		}
	case models.MediaTypeMovie:
		movie := d.Movie
		if directors := movie.Credits.Directors(); len(directors) > 0 {
			line(w, "Director(s): %s", strings.Join(directors, ", "))
		}
		line(w, "Status: %s", movie.Status)
		if movie.ReleaseDate != "" {
			line(w, "Released: %s", movie.ReleaseDate)
		}
		if movie.Runtime > 0 {
			line(w, "Runtime: %d min", movie.Runtime)
		}
		if movie.Overview != "" {
			line(w, "\n%s", movie.Overview)
		}
	default:
		panic(fmt.Sprintf("unhandled media type %q", d.Type))
	}

	line(w, "")
	line(w, "Open in server: %s", webURL)
	if info != nil && info.PlexURL != "" {
		line(w, "Open in Plex:   %s", info.PlexURL)
	}
}

// Issues writes the issue list with each thread
func Issues(w io.Writer, issues []models.Issue) {
	if len(issues) == 0 {
		line(w, "No open issues")
		return
	}
	for i, issue := range issues {
		if i > 0 {
			line(w, "")
		}
		line(w, "#%d %s %s", issue.ID, titleStyle.Render(issue.Title), IssueTypeTag(issue.IssueType))

		meta := []string{"by " + issue.CreatedBy.DisplayName}
		if !issue.CreatedAt.IsZero() {
			meta = append(meta, issue.CreatedAt.Format("2 Jan 2006"))
		}
		if issue.ProblemSeason != nil {
			meta = append(meta, fmt.Sprintf("season %d", *issue.ProblemSeason))
		}
		if ep := issue.EpisodeLabel(); ep != "" {
			meta = append(meta, "episode "+ep)
		}
		meta = append(meta, issue.Status.String())
		line(w, "   %s", dimStyle.Render(strings.Join(meta, " · ")))

		for _, c := range issue.Comments {
			line(w, "   %s: %s", titleStyle.Render(c.User.DisplayName), c.Message)
		}
	}
}

func year(date string) string {
	if len(date) < 4 {
		return ""
	}
	return "(" + date[:4] + ")"
}

func airDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return ""
	}
	return ", aired " + t.Format("2 Jan 2006")
}
