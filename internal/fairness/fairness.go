package fairness

import (
	"fmt"
	"math"
	"sort"

	"fairlens/internal/models"
)

// Grouping attributes accepted by Aggregate.
const (
	GroupByGender = "gender"
	GroupByRole   = "role"
)

// airEpsilon floors the AIR denominator so a zero top pass rate cannot
// divide by zero.
const airEpsilon = 1e-9

// GroupStat holds the per-group aggregate for one distinct group value.
type GroupStat struct {
	Group          string  `json:"group"`
	Count          int     `json:"count"`
	MeanKPI        float64 `json:"kpi_rating_mean"`
	MeanCompetency float64 `json:"competency_rating_mean"`
	MeanInitiative float64 `json:"initiative_rating_mean"`
	MeanOverall    float64 `json:"overall_rating_mean"`
	PassRate       float64 `json:"pass_rate"`
}

// Report is the full fairness output for one grouping attribute and
// threshold. MeanGap and AIR are nil when fewer than two distinct groups
// exist, never reported as a misleading single-group number.
type Report struct {
	GroupBy   string      `json:"group_by"`
	Threshold int         `json:"threshold"`
	Groups    []GroupStat `json:"groups"`
	MeanGap   *float64    `json:"mean_gap,omitempty"`
	AIR       *float64    `json:"air,omitempty"`
}

// Aggregate computes per-group rating means, counts and pass rates over the
// given snapshot, plus the mean-gap and adverse-impact-ratio scalars. It is
// a full recompute on every call; nothing is cached or streamed. The pass
// rate is the fraction of a group's reviews with overall rating >= threshold.
func Aggregate(reviews []models.Review, groupBy string, threshold int) (Report, error) {
	var key func(models.Review) string
	switch groupBy {
	case GroupByGender:
		key = func(r models.Review) string { return r.Gender }
	case GroupByRole:
		key = func(r models.Review) string { return r.Role }
	default:
		return Report{}, fmt.Errorf("unknown grouping attribute %q", groupBy)
	}
	if threshold < 1 || threshold > 5 {
		return Report{}, fmt.Errorf("threshold %d out of range [1,5]", threshold)
	}

	type acc struct {
		count                       int
		kpi, competency, initiative int
		overall                     int
		passed                      int
	}
	groups := make(map[string]*acc)
	for _, r := range reviews {
		g := key(r)
		a, ok := groups[g]
		if !ok {
			a = &acc{}
			groups[g] = a
		}
		a.count++
		a.kpi += r.KPIRating
		a.competency += r.CompetencyRating
		a.initiative += r.InitiativeRating
		a.overall += r.OverallRating
		if r.OverallRating >= threshold {
			a.passed++
		}
	}

	report := Report{GroupBy: groupBy, Threshold: threshold}
	names := make([]string, 0, len(groups))
	for g := range groups {
		names = append(names, g)
	}
	sort.Strings(names)
	for _, g := range names {
		a := groups[g]
		n := float64(a.count)
		report.Groups = append(report.Groups, GroupStat{
			Group:          g,
			Count:          a.count,
			MeanKPI:        float64(a.kpi) / n,
			MeanCompetency: float64(a.competency) / n,
			MeanInitiative: float64(a.initiative) / n,
			MeanOverall:    float64(a.overall) / n,
			PassRate:       float64(a.passed) / n,
		})
	}

	if len(report.Groups) >= 2 {
		minMean, maxMean := report.Groups[0].MeanOverall, report.Groups[0].MeanOverall
		minRate, maxRate := report.Groups[0].PassRate, report.Groups[0].PassRate
		for _, g := range report.Groups[1:] {
			minMean = math.Min(minMean, g.MeanOverall)
			maxMean = math.Max(maxMean, g.MeanOverall)
			minRate = math.Min(minRate, g.PassRate)
			maxRate = math.Max(maxRate, g.PassRate)
		}
		gap := round2(maxMean - minMean)
		air := round2(minRate / math.Max(maxRate, airEpsilon))
		report.MeanGap = &gap
		report.AIR = &air
	}
	return report, nil
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
