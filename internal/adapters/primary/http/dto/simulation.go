package dto

import (
	"tokenomics-lab/internal/core/domain"
)

// SimulationParametersDTO mirrors domain.Parameters field for field. Numeric
// fields carry no binding tags: zero is a legal value for most of them (no
// cliff, no emission), so range checks live in domain.Parameters.Validate.
type SimulationParametersDTO struct {
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

func (d SimulationParametersDTO) ToParameters() domain.Parameters {
	return domain.Parameters{
		TotalSupply:                    d.TotalSupply,
		InitialCirculatingSupply:       d.InitialCirculatingSupply,
		SimulationDurationMonths:       d.SimulationDurationMonths,
		TeamAllocationPct:              d.TeamAllocationPct,
		PrivateSalePct:                 d.PrivateSalePct,
		PublicSalePct:                  d.PublicSalePct,
		TreasuryPct:                    d.TreasuryPct,
		CommunityRewardsPct:            d.CommunityRewardsPct,
		LiquidityMiningPct:             d.LiquidityMiningPct,
		TeamCliffMonths:                d.TeamCliffMonths,
		TeamVestingLinearMonths:        d.TeamVestingLinearMonths,
		PrivateSaleCliffMonths:         d.PrivateSaleCliffMonths,
		PrivateSaleVestingLinearMonths: d.PrivateSaleVestingLinearMonths,
		MonthlyEmissionTokens:          d.MonthlyEmissionTokens,
		TransactionFeeBurnPct:          d.TransactionFeeBurnPct,
		MonthlySimulatedTransactions:   d.MonthlySimulatedTransactions,
	}
}

func FromParameters(p domain.Parameters) SimulationParametersDTO {
	return SimulationParametersDTO{
		TotalSupply:                    p.TotalSupply,
		InitialCirculatingSupply:       p.InitialCirculatingSupply,
		SimulationDurationMonths:       p.SimulationDurationMonths,
		TeamAllocationPct:              p.TeamAllocationPct,
		PrivateSalePct:                 p.PrivateSalePct,
		PublicSalePct:                  p.PublicSalePct,
		TreasuryPct:                    p.TreasuryPct,
		CommunityRewardsPct:            p.CommunityRewardsPct,
		LiquidityMiningPct:             p.LiquidityMiningPct,
		TeamCliffMonths:                p.TeamCliffMonths,
		TeamVestingLinearMonths:        p.TeamVestingLinearMonths,
		PrivateSaleCliffMonths:         p.PrivateSaleCliffMonths,
		PrivateSaleVestingLinearMonths: p.PrivateSaleVestingLinearMonths,
		MonthlyEmissionTokens:          p.MonthlyEmissionTokens,
		TransactionFeeBurnPct:          p.TransactionFeeBurnPct,
		MonthlySimulatedTransactions:   p.MonthlySimulatedTransactions,
	}
}
