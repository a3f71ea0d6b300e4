package handlers_test

import (
	"net/http"
	"testing"

	"github.com/Top-Technologies/downtime/internal/api/handlers"
	apperrors "github.com/Top-Technologies/downtime/internal/errors"
	"github.com/Top-Technologies/downtime/internal/mocks"
	"github.com/Top-Technologies/downtime/internal/service"
	"github.com/Top-Technologies/downtime/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ProductionOrderHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockProductionOrderServiceInterface
	httpSuite   *testutils.HTTPTestSuite
}

func (suite *ProductionOrderHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockProductionOrderServiceInterface(suite.ctrl)
	handler := handlers.NewProductionOrderHandler(suite.mockService)

	suite.httpSuite = testutils.SetupHTTPTest()
	orders := suite.httpSuite.Router.Group("/api/v1/production-orders")
	orders.POST("", handler.CreateProductionOrder)
	orders.GET("", handler.SearchProductionOrders)
	orders.GET("/:id", handler.GetProductionOrder)
}

func (suite *ProductionOrderHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ProductionOrderHandlerTestSuite) TestCreateProductionOrder() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().
			Create(gomock.Any(), &service.CreateProductionOrderRequest{Reference: "MO/00042", Product: "Gearbox"}).
			Return(&service.ProductionOrderResponse{ID: uuid.New(), Reference: "MO/00042", Product: "Gearbox", State: "confirmed"}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/production-orders", map[string]string{"reference": "MO/00042", "product": "Gearbox"})

		var response service.ProductionOrderResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusCreated, &response)
		assert.Equal(t, "confirmed", response.State)
	})

	suite.T().Run("Duplicate reference", func(t *testing.T) {
		suite.mockService.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, apperrors.ErrProductionOrderExists)

		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/production-orders", map[string]string{"reference": "MO/00042"})

		testutils.AssertErrorResponse(t, recorder, http.StatusConflict, "production order already exists")
	})
}

func (suite *ProductionOrderHandlerTestSuite) TestGetProductionOrder() {
	suite.T().Run("Not found", func(t *testing.T) {
		id := uuid.New()
		suite.mockService.EXPECT().GetByID(gomock.Any(), id).Return(nil, apperrors.ErrProductionOrderNotFound)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/production-orders/"+id.String(), nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "production order not found")
	})
}

func (suite *ProductionOrderHandlerTestSuite) TestSearchProductionOrders() {
	suite.T().Run("Passes query", func(t *testing.T) {
		suite.mockService.EXPECT().Search(gomock.Any(), "MO/0", 2, 10).
			Return(&service.ProductionOrderListResponse{ProductionOrders: []service.ProductionOrderResponse{{Reference: "MO/00042"}}, Total: 11, Page: 2, PageSize: 10}, nil)

		recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/production-orders?q=MO/0&page=2&page_size=10", nil)

		var response service.ProductionOrderListResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, int64(11), response.Total)
		assert.Len(t, response.ProductionOrders, 1)
	})
}

func TestProductionOrderHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ProductionOrderHandlerTestSuite))
}
