package router_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"farmlink/entities"
	agentCtrlImp "farmlink/pkg/agent/controllerImp"
	farmerCtrlImp "farmlink/pkg/farmer/controllerImp"
	healthCtrlImp "farmlink/pkg/health/controllerImp"
	idCtrlImp "farmlink/pkg/identity/controllerImp"
	idRepoImp "farmlink/pkg/identity/repositoryImp"
	idSvc "farmlink/pkg/identity/service"
	idSvcImp "farmlink/pkg/identity/serviceImp"
	"farmlink/pkg/metrics"
	ownRepoImp "farmlink/pkg/ownership/repositoryImp"
	reportRepoImp "farmlink/pkg/report/repositoryImp"
	reportSvcImp "farmlink/pkg/report/serviceImp"
	"farmlink/pkg/respond"
	"farmlink/pkg/testutil"
	tradeRepoImp "farmlink/pkg/trade/repositoryImp"
	tradeSvcImp "farmlink/pkg/trade/serviceImp"
	"farmlink/router"
)

type app struct {
	e   *echo.Echo
	db  *gorm.DB
	ids idSvc.IdentityService
}

func newApp(t *testing.T) *app {
	t.Helper()
	db := testutil.DB(t)

	actors := idRepoImp.New(db)
	graph := ownRepoImp.New(db)
	ids := idSvcImp.New(actors, "test-secret", time.Hour)
	reportSvc := reportSvcImp.New(reportRepoImp.New(db), time.UTC)
	tradeSvc := tradeSvcImp.New(tradeRepoImp.New(db), graph)

	e := echo.New()
	e.HTTPErrorHandler = respond.ErrorHandler(slog.Default())
	router.New(
		e,
		ids,
		idCtrlImp.New(actors, ids),
		agentCtrlImp.New(graph, actors, reportSvc, tradeSvc),
		farmerCtrlImp.New(graph, actors, reportSvc, tradeSvc),
		healthCtrlImp.NewHealthCtrl(db),
		metrics.New(),
	)
	return &app{e: e, db: db, ids: ids}
}

func (a *app) do(t *testing.T, method, path, token, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	a.e.ServeHTTP(rec, req)

	var parsed map[string]any
	if rec.Body.Len() > 0 {
		_ = json.Unmarshal(rec.Body.Bytes(), &parsed)
	}
	return rec, parsed
}

func (a *app) token(t *testing.T, actor *entities.Actor) string {
	t.Helper()
	token, err := a.ids.IssueToken(actor.ID)
	require.NoError(t, err)
	return token
}

func TestAgentFarmerWorkflow(t *testing.T) {
	a := newApp(t)

	agentA := testutil.Agent(t, a.db, "AgentA")
	agentB := testutil.Agent(t, a.db, "AgentB")
	f1 := testutil.Farmer(t, a.db, "FarmerOne", agentA)
	testutil.Farmer(t, a.db, "FarmerTwo", agentB)

	tokA := a.token(t, agentA)
	tokF1 := a.token(t, f1)

	// agent A sees only its own farmer
	rec, body := a.do(t, http.MethodGet, "/agent/farmers", tokA, "")
	require.Equal(t, http.StatusOK, rec.Code)
	farmers := body["data"].([]any)
	require.Len(t, farmers, 1)
	assert.Equal(t, "FarmerOne", farmers[0].(map[string]any)["name"])

	// F1 creates a farm
	rec, body = a.do(t, http.MethodPost, "/farmer/farm/create", tokF1, `{"area":2.5}`)
	require.Equal(t, http.StatusOK, rec.Code)
	farmID := body["data"].(map[string]any)["id"].(string)

	// F1 submits a report; it starts unacknowledged
	rec, body = a.do(t, http.MethodPost, "/farmer/report/"+farmID, tokF1, `{"crop":"sugarcane","condition":"good"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	report := body["data"].(map[string]any)
	reportID := report["id"].(string)
	assert.Equal(t, false, report["isAcknowledged"])
	assert.Equal(t, 2.5, report["farm"].(map[string]any)["area"])

	// A acknowledges; the flag flips and stays flipped on a second call
	rec, body = a.do(t, http.MethodPatch, "/agent/report/"+reportID, tokA, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["data"].(map[string]any)["isAcknowledged"])

	rec, body = a.do(t, http.MethodPatch, "/agent/report/"+reportID, tokA, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["data"].(map[string]any)["isAcknowledged"])

	// A records a trade for the farm
	trade := `{"farm":"` + farmID + `","farmer":"` + f1.ID.String() + `","amount":1500,"kind":"sale"}`
	rec, _ = a.do(t, http.MethodPost, "/agent/trade/create", tokA, trade)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, body = a.do(t, http.MethodGet, "/agent/trade/"+farmID, tokA, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, body["data"].([]any), 1)

	// farmer sees the transaction with farm resolved to its area
	rec, body = a.do(t, http.MethodGet, "/farmer/transaction", tokF1, "")
	require.Equal(t, http.StatusOK, rec.Code)
	txns := body["data"].([]any)
	require.Len(t, txns, 1)
	txn := txns[0].(map[string]any)
	assert.Equal(t, 2.5, txn["farm"].(map[string]any)["area"])
	assert.NotContains(t, txn, "agent")
	assert.NotContains(t, txn, "farmer")
}

func TestMalformedReferenceIsBadRequestNotNotFound(t *testing.T) {
	a := newApp(t)
	agent := testutil.Agent(t, a.db, "AgentA")
	tok := a.token(t, agent)

	rec, body := a.do(t, http.MethodGet, "/agent/reports/not-a-ref", tok, "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "fail", body["status"])
}

func TestCreateFarmWithEmptyArea(t *testing.T) {
	a := newApp(t)
	agent := testutil.Agent(t, a.db, "AgentA")
	farmer := testutil.Farmer(t, a.db, "FarmerOne", agent)
	tok := a.token(t, farmer)

	rec, body := a.do(t, http.MethodPost, "/farmer/farm/create", tok, `{}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "fail", body["status"])

	var n int64
	require.NoError(t, a.db.Model(&entities.Farm{}).Count(&n).Error)
	assert.Zero(t, n, "no farm persisted")
}

func TestRoleRestriction(t *testing.T) {
	a := newApp(t)
	agent := testutil.Agent(t, a.db, "AgentA")
	farmer := testutil.Farmer(t, a.db, "FarmerOne", agent)

	rec, _ := a.do(t, http.MethodGet, "/agent/farmers", a.token(t, farmer), "")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, _ = a.do(t, http.MethodGet, "/farmer/farms", a.token(t, agent), "")
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec, _ = a.do(t, http.MethodGet, "/agent/farmers", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestFarmAreaSharedLookup(t *testing.T) {
	a := newApp(t)
	agent := testutil.Agent(t, a.db, "AgentA")
	farmer := testutil.Farmer(t, a.db, "FarmerOne", agent)
	farm := testutil.Farm(t, a.db, farmer, 3.25)

	// reachable through either role's scope
	rec, body := a.do(t, http.MethodGet, "/agent/farmarea/"+farm.FarmID.String(), a.token(t, agent), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 3.25, body["data"])

	rec, body = a.do(t, http.MethodGet, "/agent/farmarea/"+farm.FarmID.String(), a.token(t, farmer), "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 3.25, body["data"])
}

func TestDevLoginIssuesUsableToken(t *testing.T) {
	a := newApp(t)
	testutil.Agent(t, a.db, "AgentA")

	rec, body := a.do(t, http.MethodGet, "/devlogin?email=agenta@example.com", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	token := body["data"].(map[string]any)["token"].(string)

	rec, body = a.do(t, http.MethodGet, "/whoami", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "agenta@example.com", body["data"].(map[string]any)["email"])
}

func TestHealthAndMetrics(t *testing.T) {
	a := newApp(t)

	rec, _ := a.do(t, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec, _ = a.do(t, http.MethodGet, "/metrics", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "farmlink_http_requests_total")
}
