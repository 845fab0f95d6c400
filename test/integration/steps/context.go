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
	"os"
	"strconv"
	"strings"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"

	"github.com/budget-planner/backend/internal/application/usecase/analytics"
	"github.com/budget-planner/backend/internal/application/usecase/auth"
	"github.com/budget-planner/backend/internal/application/usecase/budget"
	"github.com/budget-planner/backend/internal/application/usecase/category"
	"github.com/budget-planner/backend/internal/application/usecase/dashboard"
	"github.com/budget-planner/backend/internal/application/usecase/goal"
	"github.com/budget-planner/backend/internal/application/usecase/transaction"
	"github.com/budget-planner/backend/internal/infra/server/router"
	"github.com/budget-planner/backend/internal/integration/adapters"
	"github.com/budget-planner/backend/internal/integration/entrypoint/controller"
	"github.com/budget-planner/backend/internal/integration/entrypoint/middleware"
	"github.com/budget-planner/backend/internal/integration/persistence"
	"github.com/budget-planner/backend/test/integration/mock"
)

const testJWTSecret = "integration-test-secret"

// TestContext holds the test state for each scenario.
type TestContext struct {
	// HTTP
	server       *httptest.Server
	response     *http.Response
	responseBody []byte

	// Request building
	requestHeaders map[string]string

	// Auth
	accessToken  string
	refreshToken string

	// Stored values captured from earlier responses
	stored map[string]string
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

// buildEngine wires the full application against the in-process database and
// redis doubles.
func buildEngine() *gin.Engine {
	db := mock.NewDb()
	redisClient := mock.NewRedis()

	userRepo := persistence.NewUserRepository(db)
	categoryRepo := persistence.NewCategoryRepository(db)
	budgetRepo := persistence.NewBudgetRepository(db)
	transactionRepo := persistence.NewTransactionRepository(db)
	goalRepo := persistence.NewGoalRepository(db)
	tokenStore := persistence.NewRedisTokenStore(redisClient)

	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(testJWTSecret, tokenStore)

	healthController := controller.NewHealthController(func() bool { return true })
	authController := controller.NewAuthController(
		auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService),
		auth.NewLoginUserUseCase(userRepo, passwordService, tokenService),
		auth.NewRefreshTokenUseCase(tokenService),
		auth.NewLogoutUserUseCase(tokenService),
	)
	transactionController := controller.NewTransactionController(
		transaction.NewListTransactionsUseCase(transactionRepo),
		transaction.NewCreateTransactionUseCase(transactionRepo),
		transaction.NewUpdateTransactionUseCase(transactionRepo),
		transaction.NewDeleteTransactionUseCase(transactionRepo),
	)
	budgetController := controller.NewBudgetController(
		budget.NewListBudgetsUseCase(budgetRepo),
		budget.NewCreateBudgetUseCase(budgetRepo),
		category.NewListCategoriesUseCase(categoryRepo),
	)
	goalController := controller.NewGoalController(
		goal.NewListGoalsUseCase(goalRepo),
		goal.NewCreateGoalUseCase(goalRepo),
		goal.NewUpdateGoalUseCase(goalRepo),
		goal.NewDeleteGoalUseCase(goalRepo),
		goal.NewAddContributionUseCase(goalRepo),
		goal.NewGetSuggestionsUseCase(),
	)
	dashboardController := controller.NewDashboardController(
		dashboard.NewGetStatsUseCase(transactionRepo, budgetRepo),
	)
	analyticsController := controller.NewAnalyticsController(
		analytics.NewGetAnalyticsUseCase(transactionRepo, budgetRepo),
	)

	r := router.NewRouter(
		healthController,
		authController,
		transactionController,
		budgetController,
		goalController,
		dashboardController,
		analyticsController,
		middleware.NewRateLimiter(),
		middleware.NewAuthMiddleware(tokenService),
	)

	return r.Setup("test")
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		_ = os.Setenv("ENV", "test")
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		if err := mock.ClearDb(mock.NewDb()); err != nil {
			return ctx, err
		}
		if err := mock.ClearRedis(mock.NewRedis()); err != nil {
			return ctx, err
		}

		// Every scenario starts with the shared default categories in place
		seed := category.NewSeedDefaultsUseCase(persistence.NewCategoryRepository(mock.NewDb()))
		if err := seed.Execute(ctx); err != nil {
			return ctx, err
		}

		tc := &TestContext{
			requestHeaders: make(map[string]string),
			stored:         make(map[string]string),
		}
		tc.server = httptest.NewServer(buildEngine())

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
	registerResponseSteps(ctx)
}

// registerAPISteps registers HTTP request steps.
func registerAPISteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the API server is running$`, theAPIServerIsRunning)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, iSendARequestToWithBody)
	ctx.Step(`^I set header "([^"]*)" to "([^"]*)"$`, iSetHeaderTo)
	ctx.Step(`^I am registered as "([^"]*)" with password "([^"]*)"$`, iAmRegisteredAsWithPassword)
	ctx.Step(`^I am authenticated as "([^"]*)" with password "([^"]*)"$`, iAmAuthenticatedAsWithPassword)
	ctx.Step(`^I store the response field "([^"]*)" as "([^"]*)"$`, iStoreTheResponseFieldAs)
}

// registerResponseSteps registers response validation steps.
func registerResponseSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
	ctx.Step(`^the response should be JSON$`, theResponseShouldBeJSON)
	ctx.Step(`^the response should contain "([^"]*)"$`, theResponseShouldContain)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, theResponseFieldShouldExist)
	ctx.Step(`^the response field "([^"]*)" should have (\d+) items$`, theResponseFieldShouldHaveItems)
}

// Step implementations

func theAPIServerIsRunning(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil || tc.server == nil {
		return fmt.Errorf("test server is not running")
	}
	return nil
}

func (tc *TestContext) doRequest(method, endpoint string, body io.Reader) error {
	url := tc.server.URL + tc.substitute(endpoint)
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for key, value := range tc.requestHeaders {
		req.Header.Set(key, value)
	}
	if tc.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+tc.accessToken)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}

	tc.response = resp
	tc.responseBody, err = io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}
	return nil
}

// substitute replaces {name} placeholders with values stored from earlier
// responses.
func (tc *TestContext) substitute(s string) string {
	for name, value := range tc.stored {
		s = strings.ReplaceAll(s, "{"+name+"}", value)
	}
	return s
}

func iSendARequestTo(ctx context.Context, method, endpoint string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	if err := tc.doRequest(method, endpoint, nil); err != nil {
		return ctx, err
	}
	return SetTestContext(ctx, tc), nil
}

func iSendARequestToWithBody(ctx context.Context, method, endpoint string, body *godog.DocString) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	content := tc.substitute(body.Content)
	if err := tc.doRequest(method, endpoint, bytes.NewBufferString(content)); err != nil {
		return ctx, err
	}
	return SetTestContext(ctx, tc), nil
}

func iSetHeaderTo(ctx context.Context, header, value string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	tc.requestHeaders[header] = value
	return SetTestContext(ctx, tc), nil
}

func iAmRegisteredAsWithPassword(ctx context.Context, email, password string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}

	payload := fmt.Sprintf(`{"email":%q,"name":"Test User","password":%q}`, email, password)
	if err := tc.doRequest(http.MethodPost, "/api/auth/register", bytes.NewBufferString(payload)); err != nil {
		return ctx, err
	}
	if tc.response.StatusCode != http.StatusCreated {
		return ctx, fmt.Errorf("registration failed with status %d: %s", tc.response.StatusCode, string(tc.responseBody))
	}
	return SetTestContext(ctx, tc), nil
}

func iAmAuthenticatedAsWithPassword(ctx context.Context, email, password string) (context.Context, error) {
	ctx, err := iAmRegisteredAsWithPassword(ctx, email, password)
	if err != nil {
		return ctx, err
	}
	tc := GetTestContext(ctx)

	payload := fmt.Sprintf(`{"email":%q,"password":%q}`, email, password)
	if err := tc.doRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(payload)); err != nil {
		return ctx, err
	}
	if tc.response.StatusCode != http.StatusOK {
		return ctx, fmt.Errorf("login failed with status %d: %s", tc.response.StatusCode, string(tc.responseBody))
	}

	accessToken, err := tc.lookupField("data.accessToken")
	if err != nil {
		return ctx, err
	}
	refreshToken, err := tc.lookupField("data.refreshToken")
	if err != nil {
		return ctx, err
	}
	tc.accessToken = fmt.Sprintf("%v", accessToken)
	tc.refreshToken = fmt.Sprintf("%v", refreshToken)

	return SetTestContext(ctx, tc), nil
}

func iStoreTheResponseFieldAs(ctx context.Context, field, name string) (context.Context, error) {
	tc := GetTestContext(ctx)
	if tc == nil {
		return ctx, fmt.Errorf("test context not found")
	}
	value, err := tc.lookupField(field)
	if err != nil {
		return ctx, err
	}
	tc.stored[name] = fmt.Sprintf("%v", value)
	return SetTestContext(ctx, tc), nil
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
	body := tc.decodedBody()
	if !strings.Contains(body, tc.substitute(expected)) {
		return fmt.Errorf("response does not contain '%s'. Body: %s", expected, body)
	}
	return nil
}

// decodedBody returns the response body with gin's HTML escaping undone, so
// substring matches work on literals like "Food & Dining" that the encoder
// ships as "Food & Dining".
func (tc *TestContext) decodedBody() string {
	var parsed any
	if err := json.Unmarshal(tc.responseBody, &parsed); err != nil {
		return string(tc.responseBody)
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(parsed); err != nil {
		return string(tc.responseBody)
	}
	return strings.TrimRight(buf.String(), "\n")
}

// lookupField walks a dot-separated path (with numeric segments indexing
// into arrays) through the response JSON.
func (tc *TestContext) lookupField(path string) (any, error) {
	var data any
	if err := json.Unmarshal(tc.responseBody, &data); err != nil {
		return nil, fmt.Errorf("failed to parse response JSON: %w", err)
	}

	current := data
	for _, segment := range strings.Split(path, ".") {
		switch node := current.(type) {
		case map[string]any:
			value, ok := node[segment]
			if !ok {
				return nil, fmt.Errorf("field '%s' not found in response. Body: %s", path, string(tc.responseBody))
			}
			current = value
		case []any:
			index, err := strconv.Atoi(segment)
			if err != nil || index < 0 || index >= len(node) {
				return nil, fmt.Errorf("invalid array index '%s' in path '%s'", segment, path)
			}
			current = node[index]
		default:
			return nil, fmt.Errorf("cannot descend into '%s' in path '%s'", segment, path)
		}
	}
	return current, nil
}

func theResponseFieldShouldBe(ctx context.Context, field, expected string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	value, err := tc.lookupField(field)
	if err != nil {
		return err
	}

	actual := fmt.Sprintf("%v", value)
	if actual != tc.substitute(expected) {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expected, actual)
	}
	return nil
}

func theResponseFieldShouldExist(ctx context.Context, field string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	_, err := tc.lookupField(field)
	return err
}

func theResponseFieldShouldHaveItems(ctx context.Context, field string, count int) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	value, err := tc.lookupField(field)
	if err != nil {
		return err
	}
	items, ok := value.([]any)
	if !ok {
		return fmt.Errorf("field '%s' is not an array", field)
	}
	if len(items) != count {
		return fmt.Errorf("field '%s' expected %d items, got %d", field, count, len(items))
	}
	return nil
}
