// Package boxscore renders the per-player statistical summary as a tabular
// PDF, one row per roster player plus a header block with the match info.
package boxscore

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/hooptrack/scorebook/internal/game"
)

// ErrNoActions is returned when the action log is empty; no file is written.
var ErrNoActions = errors.New("no recorded actions to export")

type column struct {
	title string
	width float64
}

var columns = []column{
	{"Player", 45},
	{"PTS", 12},
	{"FG (2+3)", 24},
	{"3PT", 24},
	{"FT", 24},
	{"DR", 12},
	{"OR", 12},
	{"AST", 12},
	{"STL", 12},
	{"BLK", 12},
	{"TO", 12},
	{"PF", 12},
	{"Q1", 12},
	{"Q2", 12},
	{"Q3", 12},
	{"Q4", 12},
}

// Generate writes the box-score PDF for the given state to w. The state is
// read-only input; the tracked team's score is derived from the log.
func Generate(w io.Writer, s game.State) error {
	if len(s.ActionLog) == 0 {
		return ErrNoActions
	}

	info := withFallbacks(s.MatchInfo)
	myScore := game.TeamScore(s.ActionLog)

	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, "Game Report - Full Scout", "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 12)
	pdf.SetTextColor(100, 100, 100)
	pdf.CellFormat(0, 8, fmt.Sprintf("%s - %s", info.Competition, formatDate(info.Date)),
		"", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 10, fmt.Sprintf("%s  %d  x  %d  %s",
		info.HomeTeam, myScore, s.OpponentScore, info.AwayTeam),
		"", 1, "L", false, 0, "")
	pdf.Ln(4)

	// Header row.
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetFillColor(41, 128, 185)
	pdf.SetTextColor(255, 255, 255)
	for _, c := range columns {
		pdf.CellFormat(c.width, 7, c.title, "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 8)
	pdf.SetTextColor(0, 0, 0)
	for _, p := range s.Players {
		for i, cell := range playerRow(p, s.ActionLog) {
			align := "C"
			if i == 0 {
				align = "L"
			}
			pdf.CellFormat(columns[i].width, 6, cell, "1", 0, align, false, 0, "")
		}
		pdf.Ln(-1)
	}

	return pdf.Output(w)
}

func playerRow(p game.Player, log []game.ActionLogEntry) []string {
	rec := game.PlayerStats(p, log)
	byPeriod := game.PointsByPeriod(p, log)

	return []string{
		fmt.Sprintf("#%d %s", p.Number, p.Name),
		fmt.Sprintf("%d", rec.Points),
		splits(rec.FGMade, rec.FGAttempted),
		splits(rec.ThreeMade, rec.ThreeAttempt),
		splits(rec.FTMade, rec.FTAttempted),
		fmt.Sprintf("%d", rec.DefRebounds),
		fmt.Sprintf("%d", rec.OffRebounds),
		fmt.Sprintf("%d", rec.Assists),
		fmt.Sprintf("%d", rec.Steals),
		fmt.Sprintf("%d", rec.Blocks),
		fmt.Sprintf("%d", rec.Turnovers),
		fmt.Sprintf("%d", rec.Fouls),
		fmt.Sprintf("%d", byPeriod[1]),
		fmt.Sprintf("%d", byPeriod[2]),
		fmt.Sprintf("%d", byPeriod[3]),
		fmt.Sprintf("%d", byPeriod[4]),
	}
}

func splits(made, attempted int) string {
	return fmt.Sprintf("%d/%d (%d%%)", made, attempted, game.Percent(made, attempted))
}

func withFallbacks(info game.MatchInfo) game.MatchInfo {
	def := game.DefaultMatchInfo()
	if info.HomeTeam == "" {
		info.HomeTeam = def.HomeTeam
	}
	if info.AwayTeam == "" {
		info.AwayTeam = def.AwayTeam
	}
	if info.Competition == "" {
		info.Competition = def.Competition
	}
	return info
}

// formatDate turns an ISO date (2026-08-30) into DD/MM/YYYY, falling back to
// today for anything else.
func formatDate(iso string) string {
	d, err := time.Parse("2006-01-02", iso)
	if err != nil {
		d = time.Now()
	}
	return d.Format("02/01/2006")
}
