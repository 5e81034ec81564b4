package hrishandler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"strings"
	"testing"
	"time"

	"hris/internal/app/server"
	"hris/internal/platform/config"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func testConfig(dbURL string) config.Config {
	return config.Config{
		Addr:              ":0",
		DatabaseURL:       dbURL,
		JWTSecret:         "test-secret",
		TokenTTL:          time.Hour,
		AllowedOrigins:    []string{"http://localhost:8081"},
		Environment:       "test",
		SeedAdminName:     "Test Admin",
		SeedAdminEmail:    "admin@test.local",
		SeedAdminUsername: "admin",
		SeedAdminPassword: "secret",
		RunMigrations:     true,
		RunSeed:           true,
		MigrationsDir:     "../../../../../migrations",
		MaxBodyBytes:      1048576,
		DefaultPageSize:   100,
		MaxPageSize:       500,
	}
}

func startApp(t *testing.T) (*server.App, *httptest.Server) {
	t.Helper()

	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	app, err := server.New(context.Background(), testConfig(dbURL))
	if err != nil {
		t.Fatalf("failed to start app: %v", err)
	}
	t.Cleanup(app.Close)

	ts := httptest.NewServer(app.Router)
	t.Cleanup(ts.Close)
	return app, ts
}

func login(t *testing.T, client *http.Client, baseURL, username, password string) string {
	t.Helper()

	form := url.Values{"username": {username}, "password": {password}}
	resp, err := client.Post(baseURL+"/token", "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	if err != nil {
		t.Fatalf("login request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("login failed with %d: %s", resp.StatusCode, body)
	}
	var token struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		t.Fatalf("decode token: %v", err)
	}
	if token.TokenType != "bearer" || token.AccessToken == "" {
		t.Fatalf("unexpected token response: %+v", token)
	}
	return token.AccessToken
}

func doJSON(t *testing.T, client *http.Client, method, rawURL, token string, payload any) (*http.Response, envelope) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(encoded)
	}
	req, err := http.NewRequest(method, rawURL, body)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, rawURL, err)
	}
	defer resp.Body.Close()

	var env envelope
	raw, _ := io.ReadAll(resp.Body)
	_ = json.Unmarshal(raw, &env)
	return resp, env
}

func TestEmployeeDirectoryJourney(t *testing.T) {
	_, ts := startApp(t)
	client := ts.Client()
	token := login(t, client, ts.URL, "admin", "secret")

	deptName := fmt.Sprintf("Engineering %d", time.Now().UnixNano())
	resp, env := doJSON(t, client, http.MethodPost, ts.URL+"/departments/", token, map[string]any{
		"DeptName": deptName,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("create department: expected 200, got %d", resp.StatusCode)
	}
	var dept struct {
		DepartmentID int64  `json:"DepartmentID"`
		DeptName     string `json:"DeptName"`
	}
	if err := json.Unmarshal(env.Data, &dept); err != nil {
		t.Fatalf("decode department: %v", err)
	}
	if dept.DeptName != deptName || dept.DepartmentID == 0 {
		t.Fatalf("unexpected department: %+v", dept)
	}

	// A second department with the same name hits the unique constraint.
	resp, env = doJSON(t, client, http.MethodPost, ts.URL+"/departments/", token, map[string]any{
		"DeptName": deptName,
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("duplicate department: expected 400, got %d", resp.StatusCode)
	}
	if env.Error == nil || env.Error.Code != "constraint_violation" {
		t.Fatalf("expected constraint_violation, got %+v", env.Error)
	}

	resp, env = doJSON(t, client, http.MethodGet, fmt.Sprintf("%s/departments/%d", ts.URL, dept.DepartmentID), token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("get department: expected 200, got %d", resp.StatusCode)
	}
	var fetched struct {
		DepartmentID int64  `json:"DepartmentID"`
		DeptName     string `json:"DeptName"`
	}
	if err := json.Unmarshal(env.Data, &fetched); err != nil {
		t.Fatalf("decode department: %v", err)
	}
	if fetched != dept {
		t.Fatalf("fetched department differs: %+v vs %+v", fetched, dept)
	}

	email := fmt.Sprintf("journey-%d@example.com", time.Now().UnixNano())
	resp, env = doJSON(t, client, http.MethodPost, ts.URL+"/employees/", token, map[string]any{
		"FirstName":    "Jordan",
		"LastName":     "Journey",
		"DOB":          "1990-04-01",
		"Email":        email,
		"Gender":       "female",
		"DepartmentID": dept.DepartmentID,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("create employee: expected 200, got %d", resp.StatusCode)
	}
	var emp struct {
		EmployeeID int64  `json:"EmployeeID"`
		DOB        string `json:"DOB"`
		Gender     string `json:"Gender"`
	}
	if err := json.Unmarshal(env.Data, &emp); err != nil {
		t.Fatalf("decode employee: %v", err)
	}
	if emp.DOB != "1990-04-01" || emp.Gender != "female" {
		t.Fatalf("unexpected employee echo: %+v", emp)
	}

	// Employee emails are unique as well.
	resp, env = doJSON(t, client, http.MethodPost, ts.URL+"/employees/", token, map[string]any{
		"FirstName": "Casey",
		"LastName":  "Copycat",
		"Email":     email,
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("duplicate employee email: expected 400, got %d", resp.StatusCode)
	}
	if env.Error == nil || env.Error.Code != "constraint_violation" {
		t.Fatalf("expected constraint_violation, got %+v", env.Error)
	}

	day := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	resp, _ = doJSON(t, client, http.MethodPost, ts.URL+"/attendances/", token, map[string]any{
		"EmployeeID": emp.EmployeeID,
		"Date":       day,
		"timeIn":     "09:00:00",
		"timeOut":    "17:30:00",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("create attendance: expected 200, got %d", resp.StatusCode)
	}

	// Same employee, same day: unique constraint surfaces as 400.
	resp, env = doJSON(t, client, http.MethodPost, ts.URL+"/attendances/", token, map[string]any{
		"EmployeeID": emp.EmployeeID,
		"Date":       day,
		"timeIn":     "10:00:00",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("duplicate attendance: expected 400, got %d", resp.StatusCode)
	}
	if env.Error == nil || env.Error.Code != "constraint_violation" {
		t.Fatalf("expected constraint_violation, got %+v", env.Error)
	}

	resp, env = doJSON(t, client, http.MethodPost, ts.URL+"/payrolls/", token, map[string]any{
		"EmployeeID": emp.EmployeeID,
		"Salary":     5200.50,
		"Bonus":      300,
		"Deduction":  120.25,
		"PayDate":    day,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("create payroll: expected 200, got %d", resp.StatusCode)
	}
	var pay struct {
		PayrollID int64 `json:"PayrollID"`
	}
	if err := json.Unmarshal(env.Data, &pay); err != nil {
		t.Fatalf("decode payroll: %v", err)
	}

	req, _ := http.NewRequest(http.MethodGet, fmt.Sprintf("%s/payrolls/%d/payslip", ts.URL, pay.PayrollID), nil)
	req.Header.Set("Authorization", "Bearer "+token)
	pdfResp, err := client.Do(req)
	if err != nil {
		t.Fatalf("payslip request failed: %v", err)
	}
	defer pdfResp.Body.Close()
	if pdfResp.StatusCode != http.StatusOK {
		t.Fatalf("payslip: expected 200, got %d", pdfResp.StatusCode)
	}
	if ct := pdfResp.Header.Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("payslip: expected application/pdf, got %s", ct)
	}
	pdfBytes, _ := io.ReadAll(pdfResp.Body)
	if !bytes.HasPrefix(pdfBytes, []byte("%PDF")) {
		t.Fatal("payslip body is not a PDF document")
	}

	// An out-of-range score reaches the database and trips the check
	// constraint; both ends of the range reject the same way.
	for _, score := range []int{0, 11} {
		resp, env = doJSON(t, client, http.MethodPost, ts.URL+"/performance_reviews/", token, map[string]any{
			"EmployeeID": emp.EmployeeID,
			"ReviewDate": day,
			"Score":      score,
		})
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("score %d: expected 400, got %d", score, resp.StatusCode)
		}
		if env.Error == nil || env.Error.Code != "constraint_violation" {
			t.Fatalf("score %d: expected constraint_violation, got %+v", score, env.Error)
		}
	}

	resp, _ = doJSON(t, client, http.MethodDelete, fmt.Sprintf("%s/employees/%d", ts.URL, emp.EmployeeID), token, nil)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("delete referenced employee: expected 400, got %d", resp.StatusCode)
	}
}

func TestAuthGateAndDebugEndpoint(t *testing.T) {
	_, ts := startApp(t)
	client := ts.Client()

	resp, env := doJSON(t, client, http.MethodGet, ts.URL+"/departments/", "", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("ungated list: expected 401, got %d", resp.StatusCode)
	}
	if env.Error == nil || env.Error.Message != "could not validate credentials" {
		t.Fatalf("unexpected rejection body: %+v", env.Error)
	}

	resp, _ = doJSON(t, client, http.MethodGet, ts.URL+"/departments/", "not-a-token", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("garbage token: expected 401, got %d", resp.StatusCode)
	}

	resp, env = doJSON(t, client, http.MethodGet, ts.URL+"/debug/users/admin", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("debug user: expected 200, got %d", resp.StatusCode)
	}
	var debug struct {
		Found              bool   `json:"found"`
		Username           string `json:"username"`
		PasswordStartsWith string `json:"password_starts_with"`
	}
	if err := json.Unmarshal(env.Data, &debug); err != nil {
		t.Fatalf("decode debug payload: %v", err)
	}
	if !debug.Found || debug.Username != "admin" {
		t.Fatalf("unexpected debug payload: %+v", debug)
	}
	if !strings.HasPrefix(debug.PasswordStartsWith, "$2") || !strings.HasSuffix(debug.PasswordStartsWith, "...") {
		t.Fatalf("expected masked bcrypt prefix, got %q", debug.PasswordStartsWith)
	}

	resp, env = doJSON(t, client, http.MethodGet, ts.URL+"/debug/users/nobody-here", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("debug unknown user: expected 200, got %d", resp.StatusCode)
	}
	var missing struct {
		Found bool `json:"found"`
	}
	if err := json.Unmarshal(env.Data, &missing); err != nil {
		t.Fatalf("decode debug payload: %v", err)
	}
	if missing.Found {
		t.Fatal("expected found=false for unknown username")
	}
}

func TestListPaginationClamp(t *testing.T) {
	_, ts := startApp(t)
	client := ts.Client()
	token := login(t, client, ts.URL, "admin", "secret")

	prefix := fmt.Sprintf("Page %d", time.Now().UnixNano())
	for i := 0; i < 5; i++ {
		resp, _ := doJSON(t, client, http.MethodPost, ts.URL+"/departments/", token, map[string]any{
			"DeptName": fmt.Sprintf("%s-%d", prefix, i),
		})
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("seed department %d: got %d", i, resp.StatusCode)
		}
	}

	resp, env := doJSON(t, client, http.MethodGet, ts.URL+"/departments/?limit=2", token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", resp.StatusCode)
	}
	var page []json.RawMessage
	if err := json.Unmarshal(env.Data, &page); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(page) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(page))
	}

	// An absurd limit is clamped server-side instead of rejected.
	resp, env = doJSON(t, client, http.MethodGet, ts.URL+"/departments/?limit=1000000", token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("clamped list: expected 200, got %d", resp.StatusCode)
	}
	if err := json.Unmarshal(env.Data, &page); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(page) > 500 {
		t.Fatalf("limit not clamped, got %d rows", len(page))
	}

	resp, env = doJSON(t, client, http.MethodGet, ts.URL+"/departments/?skip=1&limit=2", token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("skip list: expected 200, got %d", resp.StatusCode)
	}
	var first []struct {
		DepartmentID int64 `json:"DepartmentID"`
	}
	if err := json.Unmarshal(env.Data, &first); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(first) == 0 {
		t.Fatal("expected rows after skip")
	}
}

func TestBannerReportsCounts(t *testing.T) {
	_, ts := startApp(t)
	client := ts.Client()

	resp, env := doJSON(t, client, http.MethodGet, ts.URL+"/", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("banner: expected 200, got %d", resp.StatusCode)
	}
	var banner struct {
		Message string `json:"message"`
		Stats   struct {
			Users  int64 `json:"users"`
			Admins int64 `json:"admins"`
		} `json:"stats"`
	}
	if err := json.Unmarshal(env.Data, &banner); err != nil {
		t.Fatalf("decode banner: %v", err)
	}
	if banner.Message == "" {
		t.Fatal("expected banner message")
	}
	// Seed guarantees at least one admin and one account.
	if banner.Stats.Users < 1 || banner.Stats.Admins < 1 {
		t.Fatalf("expected seeded counts, got %+v", banner.Stats)
	}
}

func TestUserAccountNeverEchoesSecret(t *testing.T) {
	_, ts := startApp(t)
	client := ts.Client()
	token := login(t, client, ts.URL, "admin", "secret")

	resp, env := doJSON(t, client, http.MethodPost, ts.URL+"/admins/", token, map[string]any{
		"FirstName": "Second",
		"LastName":  "Admin",
		"Email":     fmt.Sprintf("second-%d@test.local", time.Now().UnixNano()),
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("create admin: expected 200, got %d", resp.StatusCode)
	}
	var admin struct {
		AdminID int64 `json:"AdminID"`
	}
	if err := json.Unmarshal(env.Data, &admin); err != nil {
		t.Fatalf("decode admin: %v", err)
	}

	username := fmt.Sprintf("second-%d", time.Now().UnixNano())
	resp, env = doJSON(t, client, http.MethodPost, ts.URL+"/user_accounts/", token, map[string]any{
		"adminID":  admin.AdminID,
		"Username": username,
		"password": "hunter22",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("create user account: expected 200, got %d", resp.StatusCode)
	}
	if strings.Contains(string(env.Data), "hunter22") {
		t.Fatal("response echoed the raw password")
	}
	var account map[string]any
	if err := json.Unmarshal(env.Data, &account); err != nil {
		t.Fatalf("decode account: %v", err)
	}
	if _, ok := account["password"]; ok {
		t.Fatal("password field must be omitted from responses")
	}

	// The new account can log in immediately.
	login(t, client, ts.URL, username, "hunter22")

	// Second account for the same admin trips the unique FK.
	resp, env = doJSON(t, client, http.MethodPost, ts.URL+"/user_accounts/", token, map[string]any{
		"adminID":  admin.AdminID,
		"Username": username + "-dup",
		"password": "hunter22",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("duplicate admin account: expected 400, got %d", resp.StatusCode)
	}
	if env.Error == nil || env.Error.Code != "constraint_violation" {
		t.Fatalf("expected constraint_violation, got %+v", env.Error)
	}
}
