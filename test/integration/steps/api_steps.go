package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/cucumber/godog"
)

func registerAPISteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the API server is running$`, theAPIServerIsRunning)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)"$`, iSendARequestTo)
	ctx.Step(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, iSendARequestToWithBody)
}

func registerSetupSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^a goal exists with:$`, aGoalExistsWith)
	ctx.Step(`^a transaction exists with:$`, aTransactionExistsWith)
	ctx.Step(`^a backup has been created$`, aBackupHasBeenCreated)
}

func registerResponseSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the response status should be (\d+)$`, theResponseStatusShouldBe)
	ctx.Step(`^the response field "([^"]*)" should be "([^"]*)"$`, theResponseFieldShouldBe)
	ctx.Step(`^the response field "([^"]*)" should exist$`, theResponseFieldShouldExist)
	ctx.Step(`^the response list "([^"]*)" should have (\d+) items?$`, theResponseListShouldHaveItems)
}

func theAPIServerIsRunning(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil || tc.server == nil {
		return fmt.Errorf("test server is not running")
	}
	return nil
}

// expandPath substitutes captured IDs into request paths, so scenarios can
// reference entities created in earlier steps.
func (tc *TestContext) expandPath(path string) string {
	path = strings.ReplaceAll(path, "{goalId}", tc.goalID)
	return strings.ReplaceAll(path, "{transactionId}", tc.transactionID)
}

func (tc *TestContext) doRequest(method, path string, body []byte) error {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequest(method, tc.server.URL+tc.expandPath(path), reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := tc.server.Client().Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	tc.response = resp
	tc.responseBody, err = io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	tc.captureIDs()
	return nil
}

// captureIDs remembers the ID of the last created or fetched entity.
func (tc *TestContext) captureIDs() {
	var payload map[string]any
	if err := json.Unmarshal(tc.responseBody, &payload); err != nil {
		return
	}

	id, ok := payload["id"].(string)
	if !ok {
		return
	}
	if _, isGoal := payload["targetValue"]; isGoal {
		tc.goalID = id
		return
	}
	if _, isTransaction := payload["amount"]; isTransaction {
		tc.transactionID = id
	}
}

func iSendARequestTo(ctx context.Context, method, path string) error {
	tc := GetTestContext(ctx)
	return tc.doRequest(method, path, nil)
}

func iSendARequestToWithBody(ctx context.Context, method, path string, body *godog.DocString) error {
	tc := GetTestContext(ctx)
	return tc.doRequest(method, path, []byte(body.Content))
}

func aGoalExistsWith(ctx context.Context, body *godog.DocString) error {
	tc := GetTestContext(ctx)
	if err := tc.doRequest(http.MethodPost, "/api/v1/goals", []byte(body.Content)); err != nil {
		return err
	}
	if tc.response.StatusCode != http.StatusCreated {
		return fmt.Errorf("goal setup failed with status %d: %s", tc.response.StatusCode, tc.responseBody)
	}
	return nil
}

func aTransactionExistsWith(ctx context.Context, body *godog.DocString) error {
	tc := GetTestContext(ctx)
	if err := tc.doRequest(http.MethodPost, "/api/v1/transactions", []byte(body.Content)); err != nil {
		return err
	}
	if tc.response.StatusCode != http.StatusCreated {
		return fmt.Errorf("transaction setup failed with status %d: %s", tc.response.StatusCode, tc.responseBody)
	}
	return nil
}

func aBackupHasBeenCreated(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if err := tc.doRequest(http.MethodPost, "/api/v1/snapshot/backup", nil); err != nil {
		return err
	}
	if tc.response.StatusCode != http.StatusOK {
		return fmt.Errorf("backup setup failed with status %d: %s", tc.response.StatusCode, tc.responseBody)
	}
	return nil
}

func theResponseStatusShouldBe(ctx context.Context, status int) error {
	tc := GetTestContext(ctx)
	if tc.response.StatusCode != status {
		return fmt.Errorf("expected status %d, got %d: %s", status, tc.response.StatusCode, tc.responseBody)
	}
	return nil
}

// lookupField walks a dot-separated path through the decoded response body.
func (tc *TestContext) lookupField(field string) (any, error) {
	var payload any
	if err := json.Unmarshal(tc.responseBody, &payload); err != nil {
		return nil, fmt.Errorf("response is not valid JSON: %w", err)
	}

	current := payload
	for _, part := range strings.Split(field, ".") {
		object, ok := current.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("field %q not found in response: %s", field, tc.responseBody)
		}
		current, ok = object[part]
		if !ok {
			return nil, fmt.Errorf("field %q not found in response: %s", field, tc.responseBody)
		}
	}
	return current, nil
}

func theResponseFieldShouldBe(ctx context.Context, field, expected string) error {
	tc := GetTestContext(ctx)
	value, err := tc.lookupField(field)
	if err != nil {
		return err
	}

	actual := fmt.Sprintf("%v", value)
	if number, ok := value.(float64); ok {
		actual = strings.TrimSuffix(strings.TrimSuffix(fmt.Sprintf("%.2f", number), "0"), "0")
		actual = strings.TrimSuffix(actual, ".")
	}
	if actual != expected {
		return fmt.Errorf("field %q = %q, expected %q", field, actual, expected)
	}
	return nil
}

func theResponseFieldShouldExist(ctx context.Context, field string) error {
	tc := GetTestContext(ctx)
	_, err := tc.lookupField(field)
	return err
}

func theResponseListShouldHaveItems(ctx context.Context, field string, count int) error {
	tc := GetTestContext(ctx)
	value, err := tc.lookupField(field)
	if err != nil {
		return err
	}

	list, ok := value.([]any)
	if !ok {
		return fmt.Errorf("field %q is not a list", field)
	}
	if len(list) != count {
		return fmt.Errorf("list %q has %d items, expected %d", field, len(list), count)
	}
	return nil
}
