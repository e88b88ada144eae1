package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tokenomics-lab/internal/core/domain"
	"tokenomics-lab/internal/core/services"
	"tokenomics-lab/internal/environment"
	"tokenomics-lab/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// setupE2ERouter creates a full handler with mock repos for contract tests.
func setupE2ERouter() (*testutil.MockScenarioRepo, *testutil.MockRunRepo, *testutil.MockReportRepo, *testutil.MockAdvisorClient, *gin.Engine) {
	gin.SetMode(gin.TestMode)
	scenarioRepo := new(testutil.MockScenarioRepo)
	runRepo := new(testutil.MockRunRepo)
	reportRepo := new(testutil.MockReportRepo)
	advisor := new(testutil.MockAdvisorClient)

	descriptor := &environment.Descriptor{
		Name:  "Tokenomics Lab",
		Image: "mcr.microsoft.com/devcontainers/python:3.10",
		ForwardPorts: []interface{}{
			float64(8000),
			float64(3000),
		},
		PortsAttributes: map[string]environment.PortAttribute{
			"8000": {Label: "FastAPI Backend", OnAutoForward: "notify"},
			"3000": {Label: "React Frontend", OnAutoForward: "openBrowser"},
		},
	}

	simulationSvc := services.NewSimulationService()
	scenarioSvc := services.NewScenarioService(scenarioRepo, runRepo)
	analysisSvc := services.NewAnalysisService(advisor, runRepo)
	reportSvc := services.NewReportService(reportRepo, runRepo, advisor)
	environmentSvc := services.NewEnvironmentService(descriptor)

	h := New(simulationSvc, scenarioSvc, analysisSvc, reportSvc, environmentSvc)
	r := gin.New()
	api := r.Group("/api/v1/tokenomics")
	h.RegisterRoutes(api)

	return scenarioRepo, runRepo, reportRepo, advisor, r
}

// ---------------------------------------------------------------------------
// Helper: assert JSON field exists and has expected type
// ---------------------------------------------------------------------------

func assertFieldString(t *testing.T, resp map[string]interface{}, key string) {
	t.Helper()
	val, ok := resp[key]
	assert.True(t, ok, "response missing field %q", key)
	if ok {
		_, isStr := val.(string)
		assert.True(t, isStr, "field %q should be string, got %T", key, val)
	}
}

func assertFieldNumber(t *testing.T, resp map[string]interface{}, key string) {
	t.Helper()
	val, ok := resp[key]
	assert.True(t, ok, "response missing field %q", key)
	if ok {
		_, isNum := val.(float64)
		assert.True(t, isNum, "field %q should be number, got %T", key, val)
	}
}

func assertFieldMap(t *testing.T, resp map[string]interface{}, key string) {
	t.Helper()
	val, ok := resp[key]
	assert.True(t, ok, "response missing field %q", key)
	if ok && val != nil {
		_, isMap := val.(map[string]interface{})
		assert.True(t, isMap, "field %q should be object/map, got %T", key, val)
	}
}

func assertFieldArray(t *testing.T, resp map[string]interface{}, key string) {
	t.Helper()
	val, ok := resp[key]
	assert.True(t, ok, "response missing field %q", key)
	if ok {
		_, isArr := val.([]interface{})
		assert.True(t, isArr, "field %q should be array, got %T", key, val)
	}
}

// assertParametersFields checks the full parameter object shape.
func assertParametersFields(t *testing.T, resp map[string]interface{}) {
	t.Helper()
	assertFieldNumber(t, resp, "total_supply")
	assertFieldNumber(t, resp, "initial_circulating_supply")
	assertFieldNumber(t, resp, "simulation_duration_months")
	assertFieldNumber(t, resp, "team_allocation_pct")
	assertFieldNumber(t, resp, "private_sale_pct")
	assertFieldNumber(t, resp, "public_sale_pct")
	assertFieldNumber(t, resp, "treasury_pct")
	assertFieldNumber(t, resp, "community_rewards_pct")
	assertFieldNumber(t, resp, "liquidity_mining_pct")
	assertFieldNumber(t, resp, "team_cliff_months")
	assertFieldNumber(t, resp, "team_vesting_linear_months")
	assertFieldNumber(t, resp, "private_sale_cliff_months")
	assertFieldNumber(t, resp, "private_sale_vesting_linear_months")
	assertFieldNumber(t, resp, "monthly_emission_tokens")
	assertFieldNumber(t, resp, "transaction_fee_burn_pct")
	assertFieldNumber(t, resp, "monthly_simulated_transactions")
}

// assertSnapshotFields checks one month entry of a simulation result.
func assertSnapshotFields(t *testing.T, resp map[string]interface{}) {
	t.Helper()
	assertFieldNumber(t, resp, "month")
	assertFieldNumber(t, resp, "total_supply")
	assertFieldNumber(t, resp, "circulating_supply")
	assertFieldNumber(t, resp, "unlocked_team")
	assertFieldNumber(t, resp, "unlocked_private_sale")
	assertFieldNumber(t, resp, "minted_tokens")
	assertFieldNumber(t, resp, "burned_tokens")
	assertFieldNumber(t, resp, "current_team_locked")
	assertFieldNumber(t, resp, "current_private_sale_locked")
}

func assertScenarioResponseFields(t *testing.T, resp map[string]interface{}) {
	t.Helper()
	assertFieldString(t, resp, "id")
	assertFieldString(t, resp, "created_at")
	assertFieldString(t, resp, "updated_at")
	assertFieldString(t, resp, "name")
	assertFieldString(t, resp, "slug")
	assertFieldString(t, resp, "description")

	params, ok := resp["parameters"]
	assert.True(t, ok, "response missing field 'parameters'")
	if ok && params != nil {
		paramsMap, isMap := params.(map[string]interface{})
		assert.True(t, isMap, "parameters should be object")
		if isMap {
			assertParametersFields(t, paramsMap)
		}
	}
}

func assertRunResponseFields(t *testing.T, resp map[string]interface{}) {
	t.Helper()
	assertFieldString(t, resp, "id")
	assertFieldString(t, resp, "created_at")
	assertFieldString(t, resp, "scenario_id")
	assertFieldMap(t, resp, "parameters")
	assertFieldArray(t, resp, "results")
}

func assertRunSummaryFields(t *testing.T, resp map[string]interface{}) {
	t.Helper()
	assertFieldString(t, resp, "id")
	assertFieldString(t, resp, "created_at")
	assertFieldString(t, resp, "scenario_id")
	assertFieldNumber(t, resp, "months")
}

func assertReportResponseFields(t *testing.T, resp map[string]interface{}) {
	t.Helper()
	assertFieldString(t, resp, "id")
	assertFieldString(t, resp, "created_at")
	assertFieldString(t, resp, "run_id")
	assertFieldString(t, resp, "title")
	assertFieldString(t, resp, "format")
	assertFieldString(t, resp, "content")
}

// assertListResponseFields checks pagination envelope fields.
func assertListResponseFields(t *testing.T, resp map[string]interface{}) {
	t.Helper()
	assertFieldArray(t, resp, "items")
	assertFieldNumber(t, resp, "total")
	assertFieldNumber(t, resp, "page_size")
	assertFieldNumber(t, resp, "next_offset")
}

// ---------------------------------------------------------------------------
// Fixture helpers
// ---------------------------------------------------------------------------

func fixtureParameters() domain.Parameters {
	return domain.Parameters{
		TotalSupply:                    1_000_000,
		InitialCirculatingSupply:       100_000,
		SimulationDurationMonths:       12,
		TeamAllocationPct:              0.2,
		PrivateSalePct:                 0.1,
		PublicSalePct:                  0.1,
		TreasuryPct:                    0.3,
		CommunityRewardsPct:            0.2,
		LiquidityMiningPct:             0.1,
		TeamCliffMonths:                3,
		TeamVestingLinearMonths:        6,
		PrivateSaleCliffMonths:         1,
		PrivateSaleVestingLinearMonths: 4,
		MonthlyEmissionTokens:          1_000,
		TransactionFeeBurnPct:          0.001,
		MonthlySimulatedTransactions:   50_000,
	}
}

func fixtureScenario() *domain.Scenario {
	return &domain.Scenario{
		ID:          uuid.New(),
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
		Name:        "Base Case",
		Slug:        "base-case",
		Description: "conservative launch assumptions",
		Parameters:  fixtureParameters(),
	}
}

func fixtureRun(t *testing.T, scenarioID uuid.UUID) *domain.SimulationRun {
	t.Helper()
	params := fixtureParameters()
	results, err := domain.Simulate(params)
	require.NoError(t, err)
	return &domain.SimulationRun{
		ID:         uuid.New(),
		CreatedAt:  time.Now(),
		ScenarioID: scenarioID,
		Parameters: params,
		Results:    results,
	}
}

func fixtureReport(runID uuid.UUID) *domain.Report {
	return &domain.Report{
		ID:        uuid.New(),
		CreatedAt: time.Now(),
		RunID:     runID,
		Title:     "Tokenomics Simulation Report",
		Format:    domain.ReportFormatMarkdown,
		Content:   "# Tokenomics Simulation Report\n",
	}
}

// ===========================================================================
// Simulation E2E contract tests
// ===========================================================================

func TestE2E_Simulate(t *testing.T) {
	_, _, _, _, r := setupE2ERouter()

	body, _ := json.Marshal(fixtureParameters())

	req, _ := http.NewRequest("POST", "/api/v1/tokenomics/simulate", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 12)
	assertSnapshotFields(t, resp[0])

	assert.Equal(t, float64(1), resp[0]["month"])
	assert.Equal(t, float64(12), resp[11]["month"])
}

func TestE2E_Simulate_InvalidParameters(t *testing.T) {
	_, _, _, _, r := setupE2ERouter()

	params := fixtureParameters()
	params.SimulationDurationMonths = 0
	body, _ := json.Marshal(params)

	req, _ := http.NewRequest("POST", "/api/v1/tokenomics/simulate", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assertFieldString(t, resp, "error")
}

// ===========================================================================
// Risk analysis E2E contract tests
// ===========================================================================

func TestE2E_Analyze_InlineData(t *testing.T) {
	_, _, _, advisor, r := setupE2ERouter()

	results, err := domain.Simulate(fixtureParameters())
	require.NoError(t, err)

	advisor.On("IsAvailable").Return(true)
	advisor.On("Analyze", mock.Anything, mock.AnythingOfType("[]domain.MonthSnapshot")).Return("supply inflates after month 3", nil)

	body, _ := json.Marshal(map[string]interface{}{
		"simulation_data": results,
	})

	req, _ := http.NewRequest("POST", "/api/v1/tokenomics/analyze", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "supply inflates after month 3", resp["analysis"])
}

func TestE2E_Analyze_ByRunID(t *testing.T) {
	_, runRepo, _, advisor, r := setupE2ERouter()

	run := fixtureRun(t, uuid.New())
	runRepo.On("GetByID", mock.Anything, run.ID).Return(run, nil)
	advisor.On("IsAvailable").Return(true)
	advisor.On("Analyze", mock.Anything, mock.AnythingOfType("[]domain.MonthSnapshot")).Return("burn outpaces emission", nil)

	body, _ := json.Marshal(map[string]interface{}{
		"run_id": run.ID.String(),
	})

	req, _ := http.NewRequest("POST", "/api/v1/tokenomics/analyze", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "burn outpaces emission", resp["analysis"])
}

func TestE2E_Analyze_BothInputsRejected(t *testing.T) {
	_, _, _, _, r := setupE2ERouter()

	results, err := domain.Simulate(fixtureParameters())
	require.NoError(t, err)

	body, _ := json.Marshal(map[string]interface{}{
		"simulation_data": results,
		"run_id":          uuid.New().String(),
	})

	req, _ := http.NewRequest("POST", "/api/v1/tokenomics/analyze", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestE2E_Analyze_AdvisorUnavailable(t *testing.T) {
	_, _, _, advisor, r := setupE2ERouter()

	results, err := domain.Simulate(fixtureParameters())
	require.NoError(t, err)

	advisor.On("IsAvailable").Return(false)

	body, _ := json.Marshal(map[string]interface{}{
		"simulation_data": results,
	})

	req, _ := http.NewRequest("POST", "/api/v1/tokenomics/analyze", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusServiceUnavailable, w.Code)
}

// ===========================================================================
// Scenario E2E contract tests
// ===========================================================================

func TestE2E_CreateScenario(t *testing.T) {
	scenarioRepo, _, _, _, r := setupE2ERouter()

	returned := fixtureScenario()
	scenarioRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Scenario")).Return(nil)
	scenarioRepo.On("GetByID", mock.Anything, mock.AnythingOfType("uuid.UUID")).Return(returned, nil)

	body, _ := json.Marshal(map[string]interface{}{
		"name":        "Base Case",
		"description": "conservative launch assumptions",
		"parameters":  fixtureParameters(),
	})

	req, _ := http.NewRequest("POST", "/api/v1/tokenomics/scenarios", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assertScenarioResponseFields(t, resp)

	assert.Equal(t, "Base Case", resp["name"])
	assert.Equal(t, "base-case", resp["slug"])
}

func TestE2E_CreateScenario_NameConflict(t *testing.T) {
	scenarioRepo, _, _, _, r := setupE2ERouter()

	scenarioRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Scenario")).Return(domain.ErrScenarioNameConflict)

	body, _ := json.Marshal(map[string]interface{}{
		"name":       "Base Case",
		"parameters": fixtureParameters(),
	})

	req, _ := http.NewRequest("POST", "/api/v1/tokenomics/scenarios", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusConflict, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "scenario with this name already exists", resp["error"])
}

func TestE2E_GetScenario(t *testing.T) {
	scenarioRepo, _, _, _, r := setupE2ERouter()

	scenario := fixtureScenario()
	scenarioRepo.On("GetByID", mock.Anything, scenario.ID).Return(scenario, nil)

	req, _ := http.NewRequest("GET", "/api/v1/tokenomics/scenarios/"+scenario.ID.String(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assertScenarioResponseFields(t, resp)
	assert.Equal(t, scenario.ID.String(), resp["id"])
}

func TestE2E_GetScenario_NotFound(t *testing.T) {
	scenarioRepo, _, _, _, r := setupE2ERouter()

	id := uuid.New()
	scenarioRepo.On("GetByID", mock.Anything, id).Return(nil, domain.ErrScenarioNotFound)

	req, _ := http.NewRequest("GET", "/api/v1/tokenomics/scenarios/"+id.String(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "scenario not found", resp["error"])
}

func TestE2E_ListScenarios(t *testing.T) {
	scenarioRepo, _, _, _, r := setupE2ERouter()

	scenarios := []*domain.Scenario{fixtureScenario()}
	scenarioRepo.On("List", mock.Anything, mock.AnythingOfType("output.ScenarioListFilter")).Return(scenarios, 1, nil)

	req, _ := http.NewRequest("GET", "/api/v1/tokenomics/scenarios?limit=10&offset=0", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assertListResponseFields(t, resp)

	items := resp["items"].([]interface{})
	require.Len(t, items, 1)
	assertScenarioResponseFields(t, items[0].(map[string]interface{}))
	assert.Equal(t, float64(1), resp["total"])
	assert.Equal(t, float64(10), resp["page_size"])
	assert.Equal(t, float64(1), resp["next_offset"])
}

func TestE2E_UpdateScenario(t *testing.T) {
	scenarioRepo, _, _, _, r := setupE2ERouter()

	existing := fixtureScenario()
	updated := fixtureScenario()
	updated.ID = existing.ID
	updated.Name = "Aggressive Burn"
	updated.Slug = "aggressive-burn"

	scenarioRepo.On("GetByID", mock.Anything, existing.ID).Return(existing, nil).Once()
	scenarioRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Scenario")).Return(nil)
	scenarioRepo.On("GetByID", mock.Anything, existing.ID).Return(updated, nil)

	body, _ := json.Marshal(map[string]interface{}{
		"name": "Aggressive Burn",
	})

	req, _ := http.NewRequest("PATCH", "/api/v1/tokenomics/scenarios/"+existing.ID.String(), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assertScenarioResponseFields(t, resp)
	assert.Equal(t, "Aggressive Burn", resp["name"])
	assert.Equal(t, "aggressive-burn", resp["slug"])
}

func TestE2E_DeleteScenario(t *testing.T) {
	scenarioRepo, _, _, _, r := setupE2ERouter()

	id := uuid.New()
	scenarioRepo.On("Delete", mock.Anything, id).Return(nil)

	req, _ := http.NewRequest("DELETE", "/api/v1/tokenomics/scenarios/"+id.String(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "deleted", resp["status"])
}

func TestE2E_InvalidScenarioID(t *testing.T) {
	_, _, _, _, r := setupE2ERouter()

	req, _ := http.NewRequest("GET", "/api/v1/tokenomics/scenarios/not-a-uuid", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "invalid scenario id", resp["error"])
}

// ===========================================================================
// Simulation run E2E contract tests
// ===========================================================================

func TestE2E_ExecuteRun(t *testing.T) {
	scenarioRepo, runRepo, _, _, r := setupE2ERouter()

	scenario := fixtureScenario()
	returned := fixtureRun(t, scenario.ID)

	scenarioRepo.On("GetByID", mock.Anything, scenario.ID).Return(scenario, nil)
	runRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.SimulationRun")).Return(nil)
	runRepo.On("GetByID", mock.Anything, mock.AnythingOfType("uuid.UUID")).Return(returned, nil)

	req, _ := http.NewRequest("POST", "/api/v1/tokenomics/scenarios/"+scenario.ID.String()+"/runs", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assertRunResponseFields(t, resp)

	assert.Equal(t, scenario.ID.String(), resp["scenario_id"])
	results := resp["results"].([]interface{})
	require.Len(t, results, 12)
	assertSnapshotFields(t, results[0].(map[string]interface{}))
}

func TestE2E_ExecuteRun_ScenarioNotFound(t *testing.T) {
	scenarioRepo, _, _, _, r := setupE2ERouter()

	id := uuid.New()
	scenarioRepo.On("GetByID", mock.Anything, id).Return(nil, domain.ErrScenarioNotFound)

	req, _ := http.NewRequest("POST", "/api/v1/tokenomics/scenarios/"+id.String()+"/runs", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestE2E_ListRuns(t *testing.T) {
	scenarioRepo, runRepo, _, _, r := setupE2ERouter()

	scenario := fixtureScenario()
	runs := []*domain.SimulationRun{fixtureRun(t, scenario.ID)}

	scenarioRepo.On("GetByID", mock.Anything, scenario.ID).Return(scenario, nil)
	runRepo.On("ListByScenario", mock.Anything, mock.AnythingOfType("output.RunListFilter")).Return(runs, 1, nil)

	req, _ := http.NewRequest("GET", "/api/v1/tokenomics/scenarios/"+scenario.ID.String()+"/runs", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assertListResponseFields(t, resp)

	items := resp["items"].([]interface{})
	require.Len(t, items, 1)
	assertRunSummaryFields(t, items[0].(map[string]interface{}))
	assert.Equal(t, float64(12), items[0].(map[string]interface{})["months"])
}

func TestE2E_GetRun(t *testing.T) {
	_, runRepo, _, _, r := setupE2ERouter()

	run := fixtureRun(t, uuid.New())
	runRepo.On("GetByID", mock.Anything, run.ID).Return(run, nil)

	req, _ := http.NewRequest("GET", "/api/v1/tokenomics/runs/"+run.ID.String(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assertRunResponseFields(t, resp)
	assert.Equal(t, run.ID.String(), resp["id"])
}

func TestE2E_DeleteRun(t *testing.T) {
	_, runRepo, _, _, r := setupE2ERouter()

	id := uuid.New()
	runRepo.On("Delete", mock.Anything, id).Return(nil)

	req, _ := http.NewRequest("DELETE", "/api/v1/tokenomics/runs/"+id.String(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "deleted", resp["status"])
}

// ===========================================================================
// Report E2E contract tests
// ===========================================================================

func TestE2E_GenerateReport(t *testing.T) {
	_, runRepo, reportRepo, _, r := setupE2ERouter()

	run := fixtureRun(t, uuid.New())
	returned := fixtureReport(run.ID)

	runRepo.On("GetByID", mock.Anything, run.ID).Return(run, nil)
	reportRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Report")).Return(nil)
	reportRepo.On("GetByID", mock.Anything, mock.AnythingOfType("uuid.UUID")).Return(returned, nil)

	body, _ := json.Marshal(map[string]interface{}{
		"run_id": run.ID.String(),
	})

	req, _ := http.NewRequest("POST", "/api/v1/tokenomics/reports", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assertReportResponseFields(t, resp)

	assert.Equal(t, run.ID.String(), resp["run_id"])
	assert.Equal(t, "markdown", resp["format"])
}

func TestE2E_GenerateReport_RunNotFound(t *testing.T) {
	_, runRepo, _, _, r := setupE2ERouter()

	id := uuid.New()
	runRepo.On("GetByID", mock.Anything, id).Return(nil, domain.ErrRunNotFound)

	body, _ := json.Marshal(map[string]interface{}{
		"run_id": id.String(),
	})

	req, _ := http.NewRequest("POST", "/api/v1/tokenomics/reports", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestE2E_ListReports(t *testing.T) {
	_, _, reportRepo, _, r := setupE2ERouter()

	reports := []*domain.Report{fixtureReport(uuid.New())}
	reportRepo.On("List", mock.Anything, mock.AnythingOfType("output.ReportListFilter")).Return(reports, 1, nil)

	req, _ := http.NewRequest("GET", "/api/v1/tokenomics/reports?limit=10", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assertListResponseFields(t, resp)

	items := resp["items"].([]interface{})
	require.Len(t, items, 1)
	item := items[0].(map[string]interface{})
	assertFieldString(t, item, "id")
	assertFieldString(t, item, "title")
	_, hasContent := item["content"]
	assert.False(t, hasContent, "list items should not carry rendered content")
}

func TestE2E_GetReport(t *testing.T) {
	_, _, reportRepo, _, r := setupE2ERouter()

	report := fixtureReport(uuid.New())
	reportRepo.On("GetByID", mock.Anything, report.ID).Return(report, nil)

	req, _ := http.NewRequest("GET", "/api/v1/tokenomics/reports/"+report.ID.String(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assertReportResponseFields(t, resp)
	assert.Equal(t, report.ID.String(), resp["id"])
}

func TestE2E_DeleteReport(t *testing.T) {
	_, _, reportRepo, _, r := setupE2ERouter()

	id := uuid.New()
	reportRepo.On("Delete", mock.Anything, id).Return(nil)

	req, _ := http.NewRequest("DELETE", "/api/v1/tokenomics/reports/"+id.String(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "deleted", resp["status"])
}

// ===========================================================================
// Environment E2E contract tests
// ===========================================================================

func TestE2E_GetEnvironment(t *testing.T) {
	_, _, _, _, r := setupE2ERouter()

	req, _ := http.NewRequest("GET", "/api/v1/tokenomics/environment", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assertFieldString(t, resp, "name")
	assertFieldString(t, resp, "image")
	assertFieldArray(t, resp, "ports")

	ports := resp["ports"].([]interface{})
	require.Len(t, ports, 2)
	first := ports[0].(map[string]interface{})
	assert.Equal(t, float64(8000), first["port"])
	assert.Equal(t, "FastAPI Backend", first["label"])
}

func TestE2E_GetEnvironment_NotLoaded(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := New(
		services.NewSimulationService(),
		services.NewScenarioService(new(testutil.MockScenarioRepo), new(testutil.MockRunRepo)),
		services.NewAnalysisService(nil, new(testutil.MockRunRepo)),
		services.NewReportService(new(testutil.MockReportRepo), new(testutil.MockRunRepo), nil),
		services.NewEnvironmentService(nil),
	)
	r := gin.New()
	api := r.Group("/api/v1/tokenomics")
	h.RegisterRoutes(api)

	req, _ := http.NewRequest("GET", "/api/v1/tokenomics/environment", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusServiceUnavailable, w.Code)

	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "environment descriptor not loaded", resp["error"])
}
