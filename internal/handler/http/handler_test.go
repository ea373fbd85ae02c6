package http

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fccrm/crm-admin/internal/config"
	"github.com/fccrm/crm-admin/internal/logger"
	"github.com/fccrm/crm-admin/internal/service"
	"github.com/fccrm/crm-admin/models"
)

// ─────────────────────────────────────────────
// Mocks: service layer
// ─────────────────────────────────────────────

type mockCompanyService struct {
	listFn   func(ctx context.Context, params service.ListParams) ([]models.Company, int64, service.ListParams, error)
	getFn    func(ctx context.Context, id int64) (models.Company, error)
	createFn func(ctx context.Context, input models.CompanyInput) (models.Company, error)
	updateFn func(ctx context.Context, id int64, input models.CompanyInput) (models.Company, error)
	deleteFn func(ctx context.Context, id int64) (bool, error)
}

func (m *mockCompanyService) List(ctx context.Context, params service.ListParams) ([]models.Company, int64, service.ListParams, error) {
	if m.listFn != nil {
		return m.listFn(ctx, params)
	}
	return nil, 0, params, nil
}

func (m *mockCompanyService) Get(ctx context.Context, id int64) (models.Company, error) {
	if m.getFn != nil {
		return m.getFn(ctx, id)
	}
	return models.Company{}, nil
}

func (m *mockCompanyService) Create(ctx context.Context, input models.CompanyInput) (models.Company, error) {
	if m.createFn != nil {
		return m.createFn(ctx, input)
	}
	return models.Company{}, nil
}

func (m *mockCompanyService) Update(ctx context.Context, id int64, input models.CompanyInput) (models.Company, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, input)
	}
	return models.Company{}, nil
}

func (m *mockCompanyService) Delete(ctx context.Context, id int64) (bool, error) {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return false, nil
}

type mockAuditService struct {
	logAPIRequestFn func(ctx context.Context, record models.APILogRecord)
}

func (m *mockAuditService) LogAPIRequest(ctx context.Context, record models.APILogRecord) {
	if m.logAPIRequestFn != nil {
		m.logAPIRequestFn(ctx, record)
	}
}

func (m *mockAuditService) LogUsage(_ context.Context, _ models.UsageLogRecord) {}

func (m *mockAuditService) RecordSendAttempt(_ context.Context, _ models.SendHistoryRecord) (int64, error) {
	return 0, nil
}

func (m *mockAuditService) CleanupLogs(_ context.Context) (int64, error) {
	return 0, nil
}

type mockHealthService struct {
	checkFn func(ctx context.Context) models.Health
}

func (m *mockHealthService) Check(ctx context.Context) models.Health {
	if m.checkFn != nil {
		return m.checkFn(ctx)
	}
	return models.Health{Status: models.HealthStatusOK, Database: true}
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func testConfig() *config.Config {
	return &config.Config{
		Server: config.Server{APIPrefix: "/api"},
		CORS: config.CORS{
			AllowedOrigins: "*",
			AllowedMethods: "GET, POST, PUT, DELETE, OPTIONS",
			AllowedHeaders: "Content-Type",
		},
		Logs: config.Logs{APIRequests: true},
	}
}

func newTestHandler(company *mockCompanyService, audit *mockAuditService, health *mockHealthService) *Handler {
	if company == nil {
		company = &mockCompanyService{}
	}
	if audit == nil {
		audit = &mockAuditService{}
	}
	if health == nil {
		health = &mockHealthService{}
	}

	services := &service.Services{
		CompanyService: company,
		AuditService:   audit,
		HealthService:  health,
	}
	return NewHandler(services, testConfig(), logger.Nop())
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) models.Response {
	t.Helper()
	var resp models.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}
