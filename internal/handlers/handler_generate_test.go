package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/georgeperezsalinas/siscont-erp-sub001/internal/apperrors"
	"github.com/georgeperezsalinas/siscont-erp-sub001/internal/core/domain"
	portssvc "github.com/georgeperezsalinas/siscont-erp-sub001/internal/core/ports/services"
	"github.com/georgeperezsalinas/siscont-erp-sub001/internal/dto"
	"github.com/georgeperezsalinas/siscont-erp-sub001/internal/handlers"
	"github.com/georgeperezsalinas/siscont-erp-sub001/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock GeneratorService ---
type MockGeneratorService struct {
	mock.Mock
}

var _ portssvc.GeneratorSvcFacade = (*MockGeneratorService)(nil)

func (m *MockGeneratorService) Generate(ctx context.Context, req dto.GenerateRequest, userID string) (*domain.GeneratedEntry, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GeneratedEntry), args.Error(1)
}

func (m *MockGeneratorService) GetEntry(ctx context.Context, companyID int64, asientoID int64) (*domain.GeneratedEntry, error) {
	args := m.Called(ctx, companyID, asientoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GeneratedEntry), args.Error(1)
}

// --- Mock EventService ---
type MockEventService struct {
	mock.Mock
}

var _ portssvc.EventSvcFacade = (*MockEventService)(nil)

func (m *MockEventService) ListEvents(ctx context.Context, companyID int64, autoInit bool) ([]domain.Event, error) {
	args := m.Called(ctx, companyID, autoInit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Event), args.Error(1)
}

func (m *MockEventService) CreateEvent(ctx context.Context, companyID int64, req dto.CreateEventRequest, creatorUserID string) (*domain.Event, error) {
	args := m.Called(ctx, companyID, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}

func (m *MockEventService) UpdateEvent(ctx context.Context, companyID int64, eventID string, req dto.UpdateEventRequest, updaterUserID string) (*domain.Event, error) {
	args := m.Called(ctx, companyID, eventID, req, updaterUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}

func (m *MockEventService) ToggleEventActive(ctx context.Context, companyID int64, eventID string, updaterUserID string) (*domain.Event, error) {
	args := m.Called(ctx, companyID, eventID, updaterUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Event), args.Error(1)
}

// --- Mock RuleService ---
type MockRuleService struct {
	mock.Mock
}

var _ portssvc.RuleSvcFacade = (*MockRuleService)(nil)

func (m *MockRuleService) ListRules(ctx context.Context, companyID int64, eventID *string) ([]domain.Rule, error) {
	args := m.Called(ctx, companyID, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rule), args.Error(1)
}

func (m *MockRuleService) CreateRule(ctx context.Context, companyID int64, req dto.CreateRuleRequest, creatorUserID string) (*domain.Rule, error) {
	args := m.Called(ctx, companyID, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rule), args.Error(1)
}

func (m *MockRuleService) UpdateRule(ctx context.Context, companyID int64, ruleID string, req dto.UpdateRuleRequest, updaterUserID string) (*domain.Rule, error) {
	args := m.Called(ctx, companyID, ruleID, req, updaterUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rule), args.Error(1)
}

func (m *MockRuleService) DeleteRule(ctx context.Context, companyID int64, ruleID string) error {
	args := m.Called(ctx, companyID, ruleID)
	return args.Error(0)
}

func (m *MockRuleService) InitDefaultRules(ctx context.Context, companyID int64, eventoTipo string, creatorUserID string) (int, error) {
	args := m.Called(ctx, companyID, eventoTipo, creatorUserID)
	return args.Int(0), args.Error(1)
}

// --- Mock MappingService ---
type MockMappingService struct {
	mock.Mock
}

var _ portssvc.MappingSvcFacade = (*MockMappingService)(nil)

func (m *MockMappingService) ListMappings(ctx context.Context, companyID int64) ([]domain.AccountTypeMapping, error) {
	args := m.Called(ctx, companyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountTypeMapping), args.Error(1)
}

func (m *MockMappingService) CreateMapping(ctx context.Context, companyID int64, req dto.CreateMappingRequest, creatorUserID string) (*domain.AccountTypeMapping, error) {
	args := m.Called(ctx, companyID, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountTypeMapping), args.Error(1)
}

func (m *MockMappingService) ResolveAccount(ctx context.Context, companyID int64, tipoCuenta string) (*domain.Account, error) {
	args := m.Called(ctx, companyID, tipoCuenta)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockMappingService) Suggest(ctx context.Context, companyID int64, tipoCuenta string, topN int) ([]domain.MappingSuggestion, error) {
	args := m.Called(ctx, companyID, tipoCuenta, topN)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MappingSuggestion), args.Error(1)
}

func (m *MockMappingService) AutoMapOne(ctx context.Context, companyID int64, tipoCuenta string, userID string) (*dto.AutoMapResult, error) {
	args := m.Called(ctx, companyID, tipoCuenta, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AutoMapResult), args.Error(1)
}

func (m *MockMappingService) AutoMapAll(ctx context.Context, companyID int64, userID string) (*dto.AutoMapSummary, error) {
	args := m.Called(ctx, companyID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.AutoMapSummary), args.Error(1)
}

// --- Test Suite ---
type GenerateHandlerTestSuite struct {
	suite.Suite
	router           *gin.Engine
	mockGeneratorSvc *MockGeneratorService
}

func (suite *GenerateHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.mockGeneratorSvc = new(MockGeneratorService)

	services := &portssvc.ServiceContainer{
		Event:     new(MockEventService),
		Rule:      new(MockRuleService),
		Mapping:   new(MockMappingService),
		Generator: suite.mockGeneratorSvc,
	}

	suite.router = gin.New()
	handlers.RegisterRoutes(suite.router, &config.Config{}, services)
}

func (suite *GenerateHandlerTestSuite) postGenerate(body map[string]any) *httptest.ResponseRecorder {
	payload, err := json.Marshal(body)
	suite.Require().NoError(err)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/asientos/generar", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", "contador-1")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *GenerateHandlerTestSuite) validBody() map[string]any {
	return map[string]any{
		"company_id":  77,
		"evento_tipo": "COMPRA",
		"datos": map[string]string{
			"base":  "1000.00",
			"igv":   "180.00",
			"total": "1180.00",
		},
		"fecha": "2026-03-15",
		"glosa": "Compra FT-001",
		"mode":  "SIMULATE",
	}
}

func (suite *GenerateHandlerTestSuite) TestGenerateSimulateOK() {
	entry := &domain.GeneratedEntry{
		CompanyID:    77,
		EventoTipo:   "COMPRA",
		EventoNombre: "Compra de mercadería",
		Fecha:        time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		Lines: []domain.GeneratedLine{
			{AccountCode: "6011", AccountName: "Mercaderías", Lado: domain.Debe, Amount: decimal.RequireFromString("1000.00")},
			{AccountCode: "4011", AccountName: "IGV crédito fiscal", Lado: domain.Debe, Amount: decimal.RequireFromString("180.00")},
			{AccountCode: "4212", AccountName: "Facturas por pagar", Lado: domain.Haber, Amount: decimal.RequireFromString("1180.00")},
		},
		TotalDebe:  decimal.RequireFromString("1180.00"),
		TotalHaber: decimal.RequireFromString("1180.00"),
		Cuadra:     true,
		Mode:       domain.ModeSimulate,
	}
	suite.mockGeneratorSvc.On("Generate", mock.Anything, mock.AnythingOfType("dto.GenerateRequest"), "contador-1").Return(entry, nil).Once()

	w := suite.postGenerate(suite.validBody())

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.GenerateResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Success)
	suite.True(resp.Cuadra)
	suite.Nil(resp.AsientoID)
	suite.Require().Len(resp.Lineas, 3)
	suite.Equal("6011", resp.Lineas[0].AccountCode)
	suite.True(resp.Lineas[0].Debit.Equal(decimal.RequireFromString("1000.00")))
	suite.True(resp.Lineas[0].Credit.IsZero())
	suite.True(resp.Lineas[2].Credit.Equal(decimal.RequireFromString("1180.00")))
	suite.mockGeneratorSvc.AssertExpectations(suite.T())
}

func (suite *GenerateHandlerTestSuite) TestGeneratePersistReturnsAsientoID() {
	entry := &domain.GeneratedEntry{
		CompanyID:  77,
		EventoTipo: "COMPRA",
		TotalDebe:  decimal.RequireFromString("1180.00"),
		TotalHaber: decimal.RequireFromString("1180.00"),
		Cuadra:     true,
		Mode:       domain.ModePersist,
		AsientoID:  4321,
	}
	suite.mockGeneratorSvc.On("Generate", mock.Anything, mock.AnythingOfType("dto.GenerateRequest"), "contador-1").Return(entry, nil).Once()

	body := suite.validBody()
	body["mode"] = "PERSIST"
	w := suite.postGenerate(body)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.GenerateResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().NotNil(resp.AsientoID)
	suite.Equal(int64(4321), *resp.AsientoID)
}

func (suite *GenerateHandlerTestSuite) TestGenerateEventNotFoundIs404() {
	suite.mockGeneratorSvc.On("Generate", mock.Anything, mock.AnythingOfType("dto.GenerateRequest"), "contador-1").
		Return(nil, apperrors.NewEventNotFound("COMPRA")).Once()

	w := suite.postGenerate(suite.validBody())

	suite.Equal(http.StatusNotFound, w.Code)
	var resp dto.GenerateErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.False(resp.Success)
	suite.Equal("EventNotFound", resp.Kind)
}

func (suite *GenerateHandlerTestSuite) TestGenerateUnbalancedIs422WithTotals() {
	suite.mockGeneratorSvc.On("Generate", mock.Anything, mock.AnythingOfType("dto.GenerateRequest"), "contador-1").
		Return(nil, apperrors.NewUnbalancedEntry(decimal.RequireFromString("1000.00"), decimal.RequireFromString("1180.00"))).Once()

	w := suite.postGenerate(suite.validBody())

	suite.Equal(http.StatusUnprocessableEntity, w.Code)
	var resp dto.GenerateErrorResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("UnbalancedEntry", resp.Kind)
	suite.Require().NotNil(resp.Detail)
	suite.Require().NotNil(resp.Detail.TotalDebit)
	suite.True(resp.Detail.TotalDebit.Equal(decimal.RequireFromString("1000.00")))
	suite.True(resp.Detail.TotalCredit.Equal(decimal.RequireFromString("1180.00")))
}

func (suite *GenerateHandlerTestSuite) TestGenerateInvalidModeRejected() {
	body := suite.validBody()
	body["mode"] = "DRY_RUN"
	w := suite.postGenerate(body)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockGeneratorSvc.AssertNotCalled(suite.T(), "Generate", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *GenerateHandlerTestSuite) TestGenerateInvalidDateRejected() {
	body := suite.validBody()
	body["fecha"] = "15/03/2026"
	w := suite.postGenerate(body)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockGeneratorSvc.AssertNotCalled(suite.T(), "Generate", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *GenerateHandlerTestSuite) TestGenerateClosedPeriodIs409() {
	suite.mockGeneratorSvc.On("Generate", mock.Anything, mock.AnythingOfType("dto.GenerateRequest"), "contador-1").
		Return(nil, apperrors.ErrPeriodClosed).Once()

	w := suite.postGenerate(suite.validBody())

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *GenerateHandlerTestSuite) TestGetEntryOK() {
	entry := &domain.GeneratedEntry{
		CompanyID:  77,
		EventoTipo: "COMPRA",
		TotalDebe:  decimal.RequireFromString("1180.00"),
		TotalHaber: decimal.RequireFromString("1180.00"),
		Cuadra:     true,
		Mode:       domain.ModePersist,
		AsientoID:  4321,
	}
	suite.mockGeneratorSvc.On("GetEntry", mock.Anything, int64(77), int64(4321)).Return(entry, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/asientos/4321?company_id=77", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.GenerateResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().NotNil(resp.AsientoID)
	suite.Equal(int64(4321), *resp.AsientoID)
}

func (suite *GenerateHandlerTestSuite) TestGetEntryNotFound() {
	suite.mockGeneratorSvc.On("GetEntry", mock.Anything, int64(77), int64(99)).Return(nil, apperrors.ErrNotFound).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/asientos/99?company_id=77", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func TestGenerateHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GenerateHandlerTestSuite))
}
