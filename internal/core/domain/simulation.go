package domain

import (
	"fmt"
	"math"
)

// allocationSumTolerance absorbs float rounding when checking that the
// allocation percentages do not exceed the whole supply.
const allocationSumTolerance = 1e-9

// Parameters describes one tokenomics model: supply, allocation split,
// vesting schedules, and the emission/burn mechanics applied each month.
type Parameters struct {
	TotalSupply              float64 `json:"total_supply"`
	InitialCirculatingSupply float64 `json:"initial_circulating_supply"`
	SimulationDurationMonths int     `json:"simulation_duration_months"`

	TeamAllocationPct   float64 `json:"team_allocation_pct"`
	PrivateSalePct      float64 `json:"private_sale_pct"`
	PublicSalePct       float64 `json:"public_sale_pct"`
	TreasuryPct         float64 `json:"treasury_pct"`
	CommunityRewardsPct float64 `json:"community_rewards_pct"`
	LiquidityMiningPct  float64 `json:"liquidity_mining_pct"`

	TeamCliffMonths                int `json:"team_cliff_months"`
	TeamVestingLinearMonths        int `json:"team_vesting_linear_months"`
	PrivateSaleCliffMonths         int `json:"private_sale_cliff_months"`
	PrivateSaleVestingLinearMonths int `json:"private_sale_vesting_linear_months"`

	MonthlyEmissionTokens        float64 `json:"monthly_emission_tokens"`
	TransactionFeeBurnPct        float64 `json:"transaction_fee_burn_pct"`
	MonthlySimulatedTransactions float64 `json:"monthly_simulated_transactions"`
}

// MonthSnapshot is the state of the token economy at the end of one
// simulated month. Locked balances are the post-unlock remainders.
type MonthSnapshot struct {
	Month                    int     `json:"month"`
	TotalSupply              float64 `json:"total_supply"`
	CirculatingSupply        float64 `json:"circulating_supply"`
	UnlockedTeam             float64 `json:"unlocked_team"`
	UnlockedPrivateSale      float64 `json:"unlocked_private_sale"`
	MintedTokens             float64 `json:"minted_tokens"`
	BurnedTokens             float64 `json:"burned_tokens"`
	CurrentTeamLocked        float64 `json:"current_team_locked"`
	CurrentPrivateSaleLocked float64 `json:"current_private_sale_locked"`
}

// Validate rejects parameter sets the engine cannot meaningfully simulate.
func (p Parameters) Validate() error {
	if p.SimulationDurationMonths < 1 {
		return ErrInvalidDuration
	}
	if p.TotalSupply <= 0 || math.IsNaN(p.TotalSupply) || math.IsInf(p.TotalSupply, 0) {
		return ErrInvalidTotalSupply
	}
	if p.InitialCirculatingSupply < 0 || p.InitialCirculatingSupply > p.TotalSupply {
		return ErrInvalidCirculatingSupply
	}

	allocations := []struct {
		field string
		pct   float64
	}{
		{"team_allocation_pct", p.TeamAllocationPct},
		{"private_sale_pct", p.PrivateSalePct},
		{"public_sale_pct", p.PublicSalePct},
		{"treasury_pct", p.TreasuryPct},
		{"community_rewards_pct", p.CommunityRewardsPct},
		{"liquidity_mining_pct", p.LiquidityMiningPct},
	}
	sum := 0.0
	for _, a := range allocations {
		if a.pct < 0 || a.pct > 1 || math.IsNaN(a.pct) {
			return fmt.Errorf("%s: %w", a.field, ErrInvalidAllocationPct)
		}
		sum += a.pct
	}
	if sum > 1+allocationSumTolerance {
		return ErrAllocationSumExceedsOne
	}

	if p.TransactionFeeBurnPct < 0 || p.TransactionFeeBurnPct > 1 || math.IsNaN(p.TransactionFeeBurnPct) {
		return ErrInvalidBurnPct
	}
	if p.TeamCliffMonths < 0 || p.TeamVestingLinearMonths < 0 ||
		p.PrivateSaleCliffMonths < 0 || p.PrivateSaleVestingLinearMonths < 0 {
		return ErrNegativeSchedule
	}
	if p.MonthlyEmissionTokens < 0 || p.MonthlySimulatedTransactions < 0 {
		return ErrNegativeEmission
	}

	return nil
}

// Simulate runs the month-by-month supply model and returns one snapshot per
// month, from month 1 through the configured duration.
//
// Vesting: each tranche stays fully locked through its cliff, then releases
// a constant 1/vesting_months share of the initial tranche per month until
// exhausted. A zero linear-vesting duration means the tranche never unlocks.
// Emission and burn are constant per month; burn is the simulated transaction
// volume times the fee burn percentage and may exceed emission.
func Simulate(p Parameters) ([]MonthSnapshot, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	initialTeamLocked := p.TotalSupply * p.TeamAllocationPct
	initialPrivateLocked := p.TotalSupply * p.PrivateSalePct

	teamMonthlyUnlock := 0.0
	if p.TeamVestingLinearMonths > 0 {
		teamMonthlyUnlock = initialTeamLocked / float64(p.TeamVestingLinearMonths)
	}
	privateMonthlyUnlock := 0.0
	if p.PrivateSaleVestingLinearMonths > 0 {
		privateMonthlyUnlock = initialPrivateLocked / float64(p.PrivateSaleVestingLinearMonths)
	}

	circulating := p.InitialCirculatingSupply
	total := p.TotalSupply
	teamLocked := initialTeamLocked
	privateLocked := initialPrivateLocked

	snapshots := make([]MonthSnapshot, 0, p.SimulationDurationMonths)
	for month := 1; month <= p.SimulationDurationMonths; month++ {
		unlockedTeam := 0.0
		if month > p.TeamCliffMonths && teamLocked > 0 {
			unlockedTeam = math.Min(teamMonthlyUnlock, teamLocked)
			teamLocked -= unlockedTeam
		}

		unlockedPrivate := 0.0
		if month > p.PrivateSaleCliffMonths && privateLocked > 0 {
			unlockedPrivate = math.Min(privateMonthlyUnlock, privateLocked)
			privateLocked -= unlockedPrivate
		}

		minted := p.MonthlyEmissionTokens
		burned := p.MonthlySimulatedTransactions * p.TransactionFeeBurnPct

		total += minted - burned
		circulating += unlockedTeam + unlockedPrivate + minted - burned

		snapshots = append(snapshots, MonthSnapshot{
			Month:                    month,
			TotalSupply:              total,
			CirculatingSupply:        circulating,
			UnlockedTeam:             unlockedTeam,
			UnlockedPrivateSale:      unlockedPrivate,
			MintedTokens:             minted,
			BurnedTokens:             burned,
			CurrentTeamLocked:        teamLocked,
			CurrentPrivateSaleLocked: privateLocked,
		})
	}

	return snapshots, nil
}
