package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/jonathan/brandcraft/internal/synth"
	"github.com/jonathan/brandcraft/internal/types"
)

// Brand palette for terminal output
var (
	colorPrimary = lipgloss.Color("#7C3AED")
	colorAccent  = lipgloss.Color("#F59E0B")
	colorMuted   = lipgloss.Color("#6B7280")
	colorGood    = lipgloss.Color("#10B981")
	colorBad     = lipgloss.Color("#EF4444")
)

// printer writes generator results either as JSON or as styled terminal text.
type printer struct {
	out      io.Writer
	json     bool
	title    lipgloss.Style
	heading  lipgloss.Style
	item     lipgloss.Style
	muted    lipgloss.Style
	box      lipgloss.Style
	positive lipgloss.Style
	negative lipgloss.Style
}

func newPrinter(out io.Writer, asJSON bool) *printer {
	r := lipgloss.NewRenderer(out)
	return &printer{
		out:      out,
		json:     asJSON,
		title:    r.NewStyle().Bold(true).Foreground(colorPrimary).MarginBottom(1),
		heading:  r.NewStyle().Bold(true).Foreground(colorAccent),
		item:     r.NewStyle().PaddingLeft(2),
		muted:    r.NewStyle().Foreground(colorMuted),
		box:      r.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorPrimary).Padding(0, 1),
		positive: r.NewStyle().Foreground(colorGood),
		negative: r.NewStyle().Foreground(colorBad),
	}
}

func (p *printer) writeJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	_, err = fmt.Fprintln(p.out, string(data))
	return err
}

// markdown renders md for the terminal, falling back to the raw text.
func (p *printer) markdown(md string) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return md
	}
	rendered, err := renderer.Render(md)
	if err != nil {
		return md
	}
	return rendered
}

func (p *printer) lines(parts ...string) error {
	_, err := fmt.Fprintln(p.out, strings.Join(parts, "\n"))
	return err
}

func (p *printer) list(items []string) string {
	rows := make([]string, len(items))
	for i, it := range items {
		rows[i] = p.item.Render(fmt.Sprintf("%2d. %s", i+1, it))
	}
	return strings.Join(rows, "\n")
}

func (p *printer) bullets(items []string) string {
	rows := make([]string, len(items))
	for i, it := range items {
		rows[i] = p.item.Render("• " + it)
	}
	return strings.Join(rows, "\n")
}

func (p *printer) BrandNames(resp types.BrandNameResponse) error {
	if p.json {
		return p.writeJSON(resp)
	}
	return p.lines(
		p.title.Render(fmt.Sprintf("Brand names for %s", resp.Industry)),
		p.list(resp.BrandNames),
	)
}

func (p *printer) Logos(resp types.LogoResponse) error {
	if p.json {
		return p.writeJSON(resp)
	}
	rows := make([]string, 0, len(resp.Logos))
	for _, logo := range resp.Logos {
		rows = append(rows, p.box.Render(p.heading.Render(logo.Label)+"\n"+p.muted.Render(logo.URL)))
	}
	return p.lines(
		p.title.Render(fmt.Sprintf("Logo concepts for %s", resp.BrandName)),
		strings.Join(rows, "\n"),
	)
}

func (p *printer) Identity(brandName string, id synth.Identity) error {
	if p.json {
		return p.writeJSON(id)
	}
	return p.lines(
		p.title.Render(brandName),
		p.box.Render(p.heading.Render(id.Tagline)),
		p.heading.Render("Mission"), p.item.Render(id.Mission),
		p.heading.Render("Vision"), p.item.Render(id.Vision),
		p.heading.Render("Core values"), p.bullets(id.CoreValues),
		p.heading.Render("Story"), p.item.Render(id.BrandStory),
	)
}

func (p *printer) Content(piece synth.ContentPiece) error {
	if p.json {
		return p.writeJSON(piece)
	}
	return p.lines(
		p.title.Render(piece.Title),
		p.markdown(piece.Content),
		p.muted.Render("SEO: "+strings.Join(piece.SEOKeywords, ", ")),
	)
}

func (p *printer) Sentiment(result synth.SentimentResult) error {
	if p.json {
		return p.writeJSON(result)
	}
	return p.lines(
		p.title.Render("Sentiment"),
		p.item.Render(p.positive.Render(fmt.Sprintf("positive %5.1f%%", result.Positive))),
		p.item.Render(fmt.Sprintf("neutral  %5.1f%%", result.Neutral)),
		p.item.Render(p.negative.Render(fmt.Sprintf("negative %5.1f%%", result.Negative))),
		p.heading.Render(fmt.Sprintf("Brand perception: %.1f / 10", result.BrandPerceptionScore)),
		p.bullets(result.Suggestions),
	)
}

func (p *printer) Chat(reply synth.ChatReply) error {
	if p.json {
		return p.writeJSON(reply)
	}
	return p.lines(
		p.markdown(reply.Response),
		p.heading.Render("Try asking"),
		p.bullets(reply.Suggestions),
	)
}
