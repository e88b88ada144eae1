package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"tokenomics-lab/internal/core/domain"
	"tokenomics-lab/internal/core/ports/output"
)

const defaultReportTitle = "Tokenomics Simulation Report"

type ReportService struct {
	reportRepo ports.ReportRepository
	runRepo    ports.RunRepository
	advisor    ports.AdvisorClient
}

func NewReportService(reportRepo ports.ReportRepository, runRepo ports.RunRepository, advisor ports.AdvisorClient) *ReportService {
	return &ReportService{reportRepo: reportRepo, runRepo: runRepo, advisor: advisor}
}

// Generate renders a markdown report from a stored run and persists it. When
// includeAnalysis is set the advisor must be configured: the caller asked for
// a section we cannot render without it.
func (s *ReportService) Generate(ctx context.Context, runID uuid.UUID, title string, includeAnalysis bool) (*domain.Report, error) {
	run, err := s.runRepo.GetByID(ctx, runID)
	if err != nil {
		return nil, err
	}
	if len(run.Results) == 0 {
		return nil, domain.ErrEmptySimulationData
	}

	analysis := ""
	if includeAnalysis {
		if s.advisor == nil || !s.advisor.IsAvailable() {
			return nil, domain.ErrAdvisorNotAvailable
		}
		analysis, err = s.advisor.Analyze(ctx, run.Results)
		if err != nil {
			return nil, err
		}
	}

	if title == "" {
		title = defaultReportTitle
	}

	now := time.Now()
	report := &domain.Report{
		ID:        uuid.New(),
		CreatedAt: now,
		RunID:     runID,
		Title:     title,
		Format:    domain.ReportFormatMarkdown,
		Content:   renderMarkdown(title, now, run, analysis),
	}

	if err := s.reportRepo.Create(ctx, report); err != nil {
		return nil, err
	}

	return s.reportRepo.GetByID(ctx, report.ID)
}

func (s *ReportService) Get(ctx context.Context, id uuid.UUID) (*domain.Report, error) {
	return s.reportRepo.GetByID(ctx, id)
}

func (s *ReportService) List(ctx context.Context, filter ports.ReportListFilter) ([]*domain.Report, int, error) {
	if filter.Limit <= 0 {
		filter.Limit = 20
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}
	return s.reportRepo.List(ctx, filter)
}

func (s *ReportService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.reportRepo.Delete(ctx, id)
}

func renderMarkdown(title string, generatedAt time.Time, run *domain.SimulationRun, analysis string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", title)
	fmt.Fprintf(&b, "Generated %s from run `%s` (%d months simulated).\n\n",
		generatedAt.UTC().Format("2006-01-02 15:04 UTC"), run.ID, len(run.Results))

	b.WriteString("## Parameters\n\n")
	b.WriteString("| Parameter | Value |\n")
	b.WriteString("|-----------|-------|\n")
	p := run.Parameters
	for _, row := range []struct {
		name  string
		value string
	}{
		{"total_supply", formatTokens(p.TotalSupply)},
		{"initial_circulating_supply", formatTokens(p.InitialCirculatingSupply)},
		{"simulation_duration_months", strconv.Itoa(p.SimulationDurationMonths)},
		{"team_allocation_pct", formatTokens(p.TeamAllocationPct)},
		{"private_sale_pct", formatTokens(p.PrivateSalePct)},
		{"public_sale_pct", formatTokens(p.PublicSalePct)},
		{"treasury_pct", formatTokens(p.TreasuryPct)},
		{"community_rewards_pct", formatTokens(p.CommunityRewardsPct)},
		{"liquidity_mining_pct", formatTokens(p.LiquidityMiningPct)},
		{"team_cliff_months", strconv.Itoa(p.TeamCliffMonths)},
		{"team_vesting_linear_months", strconv.Itoa(p.TeamVestingLinearMonths)},
		{"private_sale_cliff_months", strconv.Itoa(p.PrivateSaleCliffMonths)},
		{"private_sale_vesting_linear_months", strconv.Itoa(p.PrivateSaleVestingLinearMonths)},
		{"monthly_emission_tokens", formatTokens(p.MonthlyEmissionTokens)},
		{"transaction_fee_burn_pct", formatTokens(p.TransactionFeeBurnPct)},
		{"monthly_simulated_transactions", formatTokens(p.MonthlySimulatedTransactions)},
	} {
		fmt.Fprintf(&b, "| %s | %s |\n", row.name, row.value)
	}
	b.WriteString("\n")

	final := run.Results[len(run.Results)-1]
	totalMinted := 0.0
	totalBurned := 0.0
	peakUnlock := 0.0
	peakMonth := 0
	for _, snap := range run.Results {
		totalMinted += snap.MintedTokens
		totalBurned += snap.BurnedTokens
		if unlock := snap.UnlockedTeam + snap.UnlockedPrivateSale; unlock > peakUnlock {
			peakUnlock = unlock
			peakMonth = snap.Month
		}
	}

	growth := "n/a"
	if p.InitialCirculatingSupply > 0 {
		growth = strconv.FormatFloat(final.CirculatingSupply/p.InitialCirculatingSupply, 'f', 2, 64) + "x"
	}
	peak := "none"
	if peakMonth > 0 {
		peak = fmt.Sprintf("month %d (%s tokens)", peakMonth, formatTokens(peakUnlock))
	}

	b.WriteString("## Headline Metrics\n\n")
	b.WriteString("| Metric | Value |\n")
	b.WriteString("|--------|-------|\n")
	fmt.Fprintf(&b, "| Final total supply | %s |\n", formatTokens(final.TotalSupply))
	fmt.Fprintf(&b, "| Final circulating supply | %s |\n", formatTokens(final.CirculatingSupply))
	fmt.Fprintf(&b, "| Circulating growth multiple | %s |\n", growth)
	fmt.Fprintf(&b, "| Total minted | %s |\n", formatTokens(totalMinted))
	fmt.Fprintf(&b, "| Total burned | %s |\n", formatTokens(totalBurned))
	fmt.Fprintf(&b, "| Peak combined unlock | %s |\n", peak)

	if analysis != "" {
		b.WriteString("\n## Risk Analysis\n\n")
		b.WriteString(analysis)
		b.WriteString("\n")
	}

	return b.String()
}

func formatTokens(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
