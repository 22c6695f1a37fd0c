package game

import "math"

// StatRecord is one player's line in the box score. Counts only; percentages
// are derived at presentation time with Percent.
type StatRecord struct {
	PlayerID     string `json:"playerId"`
	Name         string `json:"name"`
	Number       int    `json:"number"`
	Points       int    `json:"points"`
	FGMade       int    `json:"fgMade"`
	FGAttempted  int    `json:"fgAttempted"`
	ThreeMade    int    `json:"threeMade"`
	ThreeAttempt int    `json:"threeAttempted"`
	FTMade       int    `json:"ftMade"`
	FTAttempted  int    `json:"ftAttempted"`
	DefRebounds  int    `json:"defRebounds"`
	OffRebounds  int    `json:"offRebounds"`
	Rebounds     int    `json:"rebounds"`
	Assists      int    `json:"assists"`
	Steals       int    `json:"steals"`
	Blocks       int    `json:"blocks"`
	Turnovers    int    `json:"turnovers"`
	Fouls        int    `json:"fouls"`
}

// TeamScore sums the points implied by made shots over the whole log.
// An empty log scores 0.
func TeamScore(log []ActionLogEntry) int {
	total := 0
	for _, e := range log {
		total += e.Points()
	}
	return total
}

// PlayerStats computes one player's box-score line from the log. The function
// is pure: it never mutates its inputs and always yields the same output for
// the same log.
func PlayerStats(p Player, log []ActionLogEntry) StatRecord {
	rec := StatRecord{
		PlayerID: p.ID,
		Name:     p.Name,
		Number:   p.Number,
	}

	for _, e := range log {
		if e.PlayerID != p.ID {
			continue
		}
		switch e.Type {
		case FreeThrow:
			rec.FTAttempted++
			if e.Outcome == Hit {
				rec.FTMade++
				rec.Points++
			}
		case TwoPoint:
			rec.FGAttempted++
			if e.Outcome == Hit {
				rec.FGMade++
				rec.Points += 2
			}
		case ThreePoint:
			rec.FGAttempted++
			rec.ThreeAttempt++
			if e.Outcome == Hit {
				rec.FGMade++
				rec.ThreeMade++
				rec.Points += 3
			}
		case DefRebound:
			rec.DefRebounds++
			rec.Rebounds++
		case OffRebound:
			rec.OffRebounds++
			rec.Rebounds++
		case Assist:
			rec.Assists++
		case Steal:
			rec.Steals++
		case Block:
			rec.Blocks++
		case Turnover:
			rec.Turnovers++
		case Foul:
			rec.Fouls++
		}
	}
	return rec
}

// PointsByPeriod maps each of the four periods to the points the player
// scored in it. All four keys are always present.
func PointsByPeriod(p Player, log []ActionLogEntry) map[Period]int {
	byPeriod := map[Period]int{1: 0, 2: 0, 3: 0, 4: 0}
	for _, e := range log {
		if e.PlayerID != p.ID {
			continue
		}
		if _, ok := byPeriod[e.Period]; !ok {
			continue
		}
		byPeriod[e.Period] += e.Points()
	}
	return byPeriod
}

// Percent is the made/attempted ratio rounded to a whole percentage,
// defined as 0 when nothing was attempted.
func Percent(made, attempted int) int {
	if attempted == 0 {
		return 0
	}
	return int(math.Round(100 * float64(made) / float64(attempted)))
}
