package usecase

import (
	"context"
	"math"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"golang.org/x/sync/errgroup"

	"github.com/lensworks/crewdesk/pkg/domain/interfaces"
	"github.com/lensworks/crewdesk/pkg/domain/model"
	"github.com/lensworks/crewdesk/pkg/domain/types"
)

// DefaultRevenueMonths is the revenue-growth window when none is requested
const DefaultRevenueMonths = 6

type AnalyticsUseCase struct {
	repo interfaces.Repository
}

func NewAnalyticsUseCase(repo interfaces.Repository) *AnalyticsUseCase {
	return &AnalyticsUseCase{repo: repo}
}

// WeeklyTaskStats counts completion over tasks created in the trailing
// seven days.
type WeeklyTaskStats struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
}

func (uc *AnalyticsUseCase) WeeklyTasks(ctx context.Context) (*WeeklyTaskStats, error) {
	tasks, err := uc.repo.Task().List(ctx,
		interfaces.WithTaskCreatedAfter(time.Now().UTC().AddDate(0, 0, -7)),
	)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list weekly tasks")
	}

	stats := &WeeklyTaskStats{Total: len(tasks)}
	for _, task := range tasks {
		if task.Status == types.TaskStatusCompleted {
			stats.Completed++
		}
	}
	return stats, nil
}

// TeamWorkload maps each assignee to their open task count. A task with N
// assignees contributes one unit to each of them.
func (uc *AnalyticsUseCase) TeamWorkload(ctx context.Context) (map[model.UserID]int, error) {
	tasks, err := uc.repo.Task().List(ctx, interfaces.WithOpenTasks())
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list open tasks")
	}

	workload := make(map[model.UserID]int)
	for _, task := range tasks {
		for _, userID := range task.AssignedTo {
			workload[userID]++
		}
	}
	return workload, nil
}

// MonthlyRevenue is one point in a revenue-growth series.
type MonthlyRevenue struct {
	Month  string  `json:"month"`
	Amount float64 `json:"amount"`
}

// RevenueGrowth returns paid revenue for the trailing N months, oldest
// first. Months with no paid invoices appear as zero.
func (uc *AnalyticsUseCase) RevenueGrowth(ctx context.Context, months int) ([]MonthlyRevenue, error) {
	if months <= 0 {
		months = DefaultRevenueMonths
	}

	now := time.Now().UTC()
	currentMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	series := make([]MonthlyRevenue, 0, months)
	for i := months - 1; i >= 0; i-- {
		monthStart := currentMonth.AddDate(0, -i, 0)

		paid, err := uc.repo.Invoice().ListPaidBetween(ctx, monthStart, monthStart.AddDate(0, 1, 0))
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list paid invoices", goerr.V("month", monthStart))
		}

		var amount float64
		for _, invoice := range paid {
			amount += invoice.Total
		}
		series = append(series, MonthlyRevenue{
			Month:  monthStart.Format("2006-01"),
			Amount: amount,
		})
	}

	return series, nil
}

// ProductivityScore scores a user over tasks assigned in the trailing 30
// days: round(50 x completed ratio + 50 x on-time ratio), zero with no
// tasks. On-time keeps the updated_at <= deadline comparison.
func (uc *AnalyticsUseCase) ProductivityScore(ctx context.Context, userID model.UserID) (int, error) {
	tasks, err := uc.repo.Task().List(ctx,
		interfaces.WithTaskAssignee(userID),
		interfaces.WithTaskCreatedAfter(time.Now().UTC().AddDate(0, 0, -30)),
	)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to list tasks for productivity score", goerr.V("userID", userID))
	}

	total := len(tasks)
	if total == 0 {
		return 0, nil
	}

	var completed, onTime int
	for _, task := range tasks {
		if task.Status == types.TaskStatusCompleted {
			completed++
		}
		if task.CompletedOnTime() {
			onTime++
		}
	}

	score := 50*float64(completed)/float64(total) + 50*float64(onTime)/float64(total)
	return int(math.Round(score)), nil
}

// LeadConversionRate is won leads over all leads as a percentage, zero when
// there are no leads.
func (uc *AnalyticsUseCase) LeadConversionRate(ctx context.Context) (float64, error) {
	leads, err := uc.repo.Lead().List(ctx)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to list leads")
	}
	if len(leads) == 0 {
		return 0, nil
	}

	var won int
	for _, lead := range leads {
		if lead.Status == types.LeadStatusWon {
			won++
		}
	}
	return float64(won) / float64(len(leads)) * 100, nil
}

// Insights is the default executive dashboard bundle.
type Insights struct {
	WeeklyTasks    *WeeklyTaskStats `json:"weekly_tasks"`
	RevenueGrowth  []MonthlyRevenue `json:"revenue_growth"`
	LeadConversion float64          `json:"lead_conversion"`
}

// DefaultInsights composes the bundle concurrently; the first failing part
// fails the whole bundle.
func (uc *AnalyticsUseCase) DefaultInsights(ctx context.Context) (*Insights, error) {
	var insights Insights

	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		stats, err := uc.WeeklyTasks(ctx)
		if err != nil {
			return err
		}
		insights.WeeklyTasks = stats
		return nil
	})
	eg.Go(func() error {
		series, err := uc.RevenueGrowth(ctx, DefaultRevenueMonths)
		if err != nil {
			return err
		}
		insights.RevenueGrowth = series
		return nil
	})
	eg.Go(func() error {
		rate, err := uc.LeadConversionRate(ctx)
		if err != nil {
			return err
		}
		insights.LeadConversion = rate
		return nil
	})

	if err := eg.Wait(); err != nil {
		return nil, goerr.Wrap(err, "failed to build insights bundle")
	}
	return &insights, nil
}
