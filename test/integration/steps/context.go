// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"

	"github.com/alvaro-malheiros/pipo-budget-manager/internal/application/usecase/budget"
	"github.com/alvaro-malheiros/pipo-budget-manager/internal/application/usecase/dashboard"
	"github.com/alvaro-malheiros/pipo-budget-manager/internal/application/usecase/insight"
	"github.com/alvaro-malheiros/pipo-budget-manager/internal/application/usecase/transaction"
	"github.com/alvaro-malheiros/pipo-budget-manager/internal/domain/entity"
	"github.com/alvaro-malheiros/pipo-budget-manager/internal/infra/server/router"
	"github.com/alvaro-malheiros/pipo-budget-manager/internal/integration/entrypoint/controller"
	"github.com/alvaro-malheiros/pipo-budget-manager/internal/integration/persistence"
	"github.com/alvaro-malheiros/pipo-budget-manager/test/integration/mock"
)

// TestContext holds the test state for each scenario.
type TestContext struct {
	server       *httptest.Server
	engine       *gin.Engine
	gateway      *mock.InsightGateway
	response     *http.Response
	responseBody []byte
}

// contextKey is used to store TestContext in context.Context.
type contextKey struct{}

// GetTestContext retrieves the TestContext from context.
func GetTestContext(ctx context.Context) *TestContext {
	if tc, ok := ctx.Value(contextKey{}).(*TestContext); ok {
		return tc
	}
	return nil
}

// SetTestContext stores the TestContext in context.
func SetTestContext(ctx context.Context, tc *TestContext) context.Context {
	return context.WithValue(ctx, contextKey{}, tc)
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc, err := newTestContext()
		if err != nil {
			return ctx, err
		}
		return SetTestContext(ctx, tc), nil
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		tc := GetTestContext(ctx)
		if tc != nil && tc.server != nil {
			tc.server.Close()
		}
		return ctx, nil
	})

	registerAPISteps(ctx)
	registerGatewaySteps(ctx)
	registerResponseSteps(ctx)
}

// newTestContext wires a full application stack on a fresh in-memory
// database, the default budget goals, and a scriptable AI gateway. Alerts and
// the insight cache stay unwired, same as a minimal production config.
func newTestContext() (*TestContext, error) {
	db, err := mock.NewDb()
	if err != nil {
		return nil, err
	}

	store, err := persistence.NewTransactionStore(db)
	if err != nil {
		return nil, err
	}

	budgets, err := entity.NewBudgetGoalSet(entity.DefaultBudgetGoals())
	if err != nil {
		return nil, err
	}
	gateway := mock.NewInsightGateway("Scripted insight one.", "Scripted insight two.")

	healthController := controller.NewHealthController(func() bool { return true })
	transactionController := controller.NewTransactionController(
		transaction.NewListTransactionsUseCase(store),
		transaction.NewRecordTransactionUseCase(store, budgets, nil),
		transaction.NewRemoveTransactionUseCase(store),
	)
	categoryController := controller.NewCategoryController()
	budgetController := controller.NewBudgetController(
		budget.NewListBudgetsUseCase(budgets),
		budget.NewGetPanelUseCase(store, budgets),
	)
	dashboardController := controller.NewDashboardController(
		dashboard.NewGetOverviewUseCase(store),
		dashboard.NewGetBreakdownUseCase(store),
	)
	insightController := controller.NewInsightController(
		insight.NewGetInsightsUseCase(store, budgets, gateway, nil, 0),
		insight.NewScanReceiptUseCase(gateway),
	)

	r := router.NewRouter(
		healthController,
		transactionController,
		categoryController,
		budgetController,
		dashboardController,
		insightController,
	)

	tc := &TestContext{gateway: gateway}
	tc.engine = r.Setup("test")
	tc.server = httptest.NewServer(tc.engine)
	return tc, nil
}

// registerAPISteps registers HTTP request steps.
func registerAPISteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the API server is running$`, theAPIServerIsRunning)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, iSendARequestToWithBody)
}

// registerGatewaySteps registers AI gateway scripting steps.
func registerGatewaySteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the AI provider is failing$`, theAIProviderIsFailing)
	ctx.Step(`^the AI provider is not configured$`, theAIProviderIsNotConfigured)
	ctx.Step(`^the AI provider extracts the receipt draft:$`, theAIProviderExtractsTheReceiptDraft)
}

// registerResponseSteps registers response validation steps.
func registerResponseSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
	ctx.Step(`^the response should be JSON$`, theResponseShouldBeJSON)
	ctx.Step(`^the response should contain "([^"]*)"$`, theResponseShouldContain)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, theResponseFieldShouldExist)
}

// Step implementations

func theAPIServerIsRunning(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil || tc.server == nil {
		return fmt.Errorf("test server is not running")
	}
	return nil
}

func iSendARequestTo(ctx context.Context, method, endpoint string) (context.Context, error) {
	return sendRequest(ctx, method, endpoint, nil)
}

func iSendARequestToWithBody(ctx context.Context, method, endpoint string, body *godog.DocString) (context.Context, error) {
	return sendRequest(ctx, method, endpoint, bytes.NewBufferString(body.Content))
}

func sendRequest(ctx context.Context, method, endpoint string, body io.Reader) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	req, err := http.NewRequest(method, tc.server.URL+endpoint, body)
	if err != nil {
		return ctx, fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return ctx, fmt.Errorf("failed to send request: %w", err)
	}

	tc.response = resp
	tc.responseBody, err = io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return ctx, fmt.Errorf("failed to read response body: %w", err)
	}

	return SetTestContext(ctx, tc), nil
}

func theAIProviderIsFailing(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	tc.gateway.Fail = true
	return nil
}

func theAIProviderIsNotConfigured(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	tc.gateway.Unavailable = true
	return nil
}

func theAIProviderExtractsTheReceiptDraft(ctx context.Context, body *godog.DocString) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	var draft struct {
		Amount   json.Number `json:"amount"`
		Merchant string      `json:"merchant"`
		Date     string      `json:"date"`
		Category string      `json:"category"`
	}
	if err := json.Unmarshal([]byte(body.Content), &draft); err != nil {
		return fmt.Errorf("failed to parse scripted draft: %w", err)
	}

	parsed, err := mock.NewReceiptDraft(draft.Amount.String(), draft.Merchant, draft.Date, draft.Category)
	if err != nil {
		return err
	}
	tc.gateway.Draft = parsed
	return nil
}

func theResponseStatusShouldBe(ctx context.Context, expectedStatus int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if tc.response == nil {
		return fmt.Errorf("no response received")
	}
	if tc.response.StatusCode != expectedStatus {
		return fmt.Errorf("expected status %d, got %d. Body: %s", expectedStatus, tc.response.StatusCode, string(tc.responseBody))
	}
	return nil
}

func theResponseShouldBeJSON(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	var js json.RawMessage
	if err := json.Unmarshal(tc.responseBody, &js); err != nil {
		return fmt.Errorf("response is not valid JSON: %w", err)
	}
	return nil
}

func theResponseShouldContain(ctx context.Context, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if !strings.Contains(string(tc.responseBody), expected) {
		return fmt.Errorf("response does not contain '%s'. Body: %s", expected, string(tc.responseBody))
	}
	return nil
}

func theResponseFieldShouldBe(ctx context.Context, field, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	var data map[string]interface{}
	if err := json.Unmarshal(tc.responseBody, &data); err != nil {
		return fmt.Errorf("failed to parse response JSON: %w", err)
	}

	value, ok := data[field]
	if !ok {
		return fmt.Errorf("field '%s' not found in response", field)
	}

	actual := fmt.Sprintf("%v", value)
	if actual != expected {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expected, actual)
	}

	return nil
}

func theResponseFieldShouldExist(ctx context.Context, field string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	var data map[string]interface{}
	if err := json.Unmarshal(tc.responseBody, &data); err != nil {
		return fmt.Errorf("failed to parse response JSON: %w", err)
	}

	if _, ok := data[field]; !ok {
		return fmt.Errorf("field '%s' not found in response", field)
	}

	return nil
}
