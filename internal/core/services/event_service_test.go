package services_test

import (
	"context"
	"testing"

	"github.com/georgeperezsalinas/siscont-erp-sub001/internal/apperrors"
	"github.com/georgeperezsalinas/siscont-erp-sub001/internal/core/domain"
	portssvc "github.com/georgeperezsalinas/siscont-erp-sub001/internal/core/ports/services"
	"github.com/georgeperezsalinas/siscont-erp-sub001/internal/core/services"
	"github.com/georgeperezsalinas/siscont-erp-sub001/internal/dto"
	"github.com/georgeperezsalinas/siscont-erp-sub001/internal/platform/catalog"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type EventServiceTestSuite struct {
	suite.Suite
	mockEventRepo *MockEventRepository
	service       portssvc.EventSvcFacade

	companyID int64
	userID    string
	catalog   *catalog.Catalog
}

func (suite *EventServiceTestSuite) SetupTest() {
	suite.mockEventRepo = new(MockEventRepository)

	cat, err := catalog.Load()
	suite.Require().NoError(err)
	suite.catalog = cat

	suite.service = services.NewEventService(suite.mockEventRepo, cat)
	suite.companyID = 77
	suite.userID = uuid.NewString()
}

func (suite *EventServiceTestSuite) TestListEventsAutoInitSeedsCatalog() {
	ctx := context.Background()
	seeded := make([]domain.Event, 0, len(suite.catalog.Eventos))
	suite.mockEventRepo.On("InsertEventIfAbsent", mock.Anything, mock.AnythingOfType("domain.Event")).
		Run(func(args mock.Arguments) {
			seeded = append(seeded, args.Get(1).(domain.Event))
		}).
		Return(true, nil).
		Times(len(suite.catalog.Eventos))
	// Return captures the slice header at setup time, before Run appends fill
	// it; reslice to full capacity so the returned value sees the appended rows.
	suite.mockEventRepo.On("ListEvents", mock.Anything, suite.companyID).Return(seeded[:len(suite.catalog.Eventos)], nil).Once()

	events, err := suite.service.ListEvents(ctx, suite.companyID, true)

	suite.Require().NoError(err)
	suite.Len(events, len(suite.catalog.Eventos))
	suite.mockEventRepo.AssertExpectations(suite.T())

	tipos := make(map[string]bool, len(seeded))
	for _, e := range seeded {
		suite.Equal(suite.companyID, e.CompanyID)
		suite.True(e.Activo)
		suite.Equal("catalog-init", e.CreatedBy)
		tipos[e.Tipo] = true
	}
	suite.True(tipos["COMPRA"])
	suite.True(tipos["VENTA"])
}

func (suite *EventServiceTestSuite) TestListEventsAutoInitIdempotent() {
	ctx := context.Background()
	existing := []domain.Event{
		{EventID: uuid.NewString(), CompanyID: suite.companyID, Tipo: "COMPRA", Nombre: "Compras (editado)", Activo: true},
	}
	// Every insert reports "already present"; existing rows are untouched.
	suite.mockEventRepo.On("InsertEventIfAbsent", mock.Anything, mock.AnythingOfType("domain.Event")).
		Return(false, nil).
		Times(len(suite.catalog.Eventos))
	suite.mockEventRepo.On("ListEvents", mock.Anything, suite.companyID).Return(existing, nil).Once()

	events, err := suite.service.ListEvents(ctx, suite.companyID, true)

	suite.Require().NoError(err)
	suite.Require().Len(events, 1)
	suite.Equal("Compras (editado)", events[0].Nombre)
	suite.mockEventRepo.AssertNotCalled(suite.T(), "UpdateEvent", mock.Anything, mock.Anything)
}

func (suite *EventServiceTestSuite) TestListEventsWithoutAutoInit() {
	ctx := context.Background()
	suite.mockEventRepo.On("ListEvents", mock.Anything, suite.companyID).Return([]domain.Event{}, nil).Once()

	events, err := suite.service.ListEvents(ctx, suite.companyID, false)

	suite.Require().NoError(err)
	suite.NotNil(events)
	suite.Empty(events)
	suite.mockEventRepo.AssertNotCalled(suite.T(), "InsertEventIfAbsent", mock.Anything, mock.Anything)
}

func (suite *EventServiceTestSuite) TestCreateEventDuplicateTipo() {
	ctx := context.Background()
	suite.mockEventRepo.On("SaveEvent", mock.Anything, mock.AnythingOfType("domain.Event")).Return(apperrors.ErrDuplicate).Once()

	req := dto.CreateEventRequest{Tipo: "COMPRA", Nombre: "Compras", Categoria: domain.CategoryCompras}
	_, err := suite.service.CreateEvent(ctx, suite.companyID, req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *EventServiceTestSuite) TestUpdateEventCrossTenantNotFound() {
	ctx := context.Background()
	foreign := domain.Event{EventID: uuid.NewString(), CompanyID: suite.companyID + 1, Tipo: "COMPRA", Activo: true}
	suite.mockEventRepo.On("FindEventByID", mock.Anything, foreign.EventID).Return(&foreign, nil).Once()

	nombre := "Nuevo nombre"
	_, err := suite.service.UpdateEvent(ctx, suite.companyID, foreign.EventID, dto.UpdateEventRequest{Nombre: &nombre}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockEventRepo.AssertNotCalled(suite.T(), "UpdateEvent", mock.Anything, mock.Anything)
}

func (suite *EventServiceTestSuite) TestToggleEventActive() {
	ctx := context.Background()
	event := domain.Event{EventID: uuid.NewString(), CompanyID: suite.companyID, Tipo: "COMPRA", Activo: true}
	suite.mockEventRepo.On("FindEventByID", mock.Anything, event.EventID).Return(&event, nil).Once()
	suite.mockEventRepo.On("SetEventActive", mock.Anything, event.EventID, false, suite.userID, mock.AnythingOfType("time.Time")).Return(nil).Once()

	updated, err := suite.service.ToggleEventActive(ctx, suite.companyID, event.EventID, suite.userID)

	suite.Require().NoError(err)
	suite.False(updated.Activo)
	suite.Equal(suite.userID, updated.LastUpdatedBy)
	suite.mockEventRepo.AssertExpectations(suite.T())
}

func TestEventServiceTestSuite(t *testing.T) {
	suite.Run(t, new(EventServiceTestSuite))
}
