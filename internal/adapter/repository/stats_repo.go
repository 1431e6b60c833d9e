package repository

import (
	"log"

	"github.com/akshay543210/propfirm143/internal/core"

	"github.com/pocketbase/dbx"
	pbCore "github.com/pocketbase/pocketbase/core"
)

type PBStatsRepo struct {
	app pbCore.App
}

func NewStatsRepo(app pbCore.App) core.StatsRepository {
	return &PBStatsRepo{app: app}
}

func (r *PBStatsRepo) count(table string, where dbx.Expression) (int64, error) {
	var total int64
	q := r.app.DB().Select("count(*)").From(table)
	if where != nil {
		q = q.Where(where)
	}
	err := q.Row(&total)
	return total, err
}

func (r *PBStatsRepo) DashboardStats() (*core.DashboardStats, error) {
	stats := &core.DashboardStats{
		SectionCounts: make(map[string]int64),
	}

	var err error
	if stats.TotalFirms, err = r.count("prop_firms", nil); err != nil {
		return nil, err
	}
	if stats.TotalReviews, err = r.count("reviews", nil); err != nil {
		return nil, err
	}
	if stats.PendingDramaCount, err = r.count("drama_reports", dbx.HashExp{"status": core.StatusPending}); err != nil {
		return nil, err
	}

	for _, section := range core.Sections {
		n, err := r.count(section.Collection(), nil)
		if err != nil {
			// One missing join table should not blank the whole dashboard.
			log.Printf("Error counting %s: %v", section.Collection(), err)
			continue
		}
		stats.SectionCounts[string(section)] = n
	}

	return stats, nil
}

func (r *PBStatsRepo) FirmRatings(limit int) ([]core.FirmRating, error) {
	var results []core.FirmRating

	err := r.app.DB().Select(
		"f.id as firm_id",
		"f.name as firm_name",
		"COUNT(rv.id) as review_count",
		"COALESCE(AVG(rv.rating), 0) as avg_rating",
	).
		From("prop_firms f").
		LeftJoin("reviews rv", dbx.NewExp("rv.firm_id = f.id")).
		GroupBy("f.id", "f.name").
		OrderBy("avg_rating DESC", "review_count DESC").
		Limit(int64(limit)).
		All(&results)

	if err != nil {
		return nil, err
	}
	return results, nil
}
