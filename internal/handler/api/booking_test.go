//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"shareit/internal/handler/api"
	resdto "shareit/internal/handler/dto/response"
	"shareit/internal/handler/middleware"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/queries"
	"shareit/tests/common/builder"
	"shareit/tests/common/httptest"
	"shareit/tests/common/testutil"
	commandsmock "shareit/tests/mock/commands"
	queriesmock "shareit/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler

	sharerID uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)
	s.sharerID = uuid.New()

	identity := middleware.RequireSharer()
	s.router.POST("/bookings", identity, s.handler.Create)
	s.router.GET("/bookings", identity, s.handler.ListOwn)
	s.router.GET("/bookings/owner", identity, s.handler.ListForOwnedItems)
	s.router.GET("/bookings/:id", identity, s.handler.Get)
	s.router.PATCH("/bookings/:id", identity, s.handler.Decide)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

type testCaseBooking struct {
	name         string
	mutate       func(m map[string]any)
	expectCode   int
	expectInBody string
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"

	reqBody := builder.NewBookingBuilder().BuildCreateRequestDTO()
	returnView := builder.NewBookingBuilder().BuildView()

	s.Run("success: returns 201 Created with WAITING booking", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), s.sharerID, reqBody.ItemID, gomock.Any(), gomock.Any()).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, s.sharerID.String())

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal("WAITING", response.Status)
		s.Equal(returnView.Booker.Name, response.Booker.Name)
		s.Equal(returnView.Item.Name, response.Item.Name)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		missing := []testCaseBooking{
			{name: "missing field: itemId (required)", mutate: testutil.Field("itemId", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: start (required)", mutate: testutil.Field("start", nil), expectCode: http.StatusBadRequest},
			{name: "missing field: end (required)", mutate: testutil.Field("end", nil), expectCode: http.StatusBadRequest},
			{name: "malformed itemId", mutate: testutil.Field("itemId", "not-a-uuid"), expectCode: http.StatusBadRequest},
		}

		for _, tc := range missing {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, s.sharerID.String())
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})

	s.Run("error: 400 Bad Request when identity header is missing", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, middleware.SharerHeader)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "unknown booker",
				commandsError:  errs.ErrUserNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "User not found",
			},
			{
				name:           "unknown item",
				commandsError:  errs.ErrItemNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Item not found",
			},
			{
				name:           "own item looks like a missing item",
				commandsError:  errs.ErrSelfBooking,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Item not found",
			},
			{
				name:           "item not available",
				commandsError:  errs.ErrItemNotAvailable,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Item is not available",
			},
			{
				name:           "invalid time window",
				commandsError:  errs.ErrInvalidTimeWindow,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid booking time window",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), s.sharerID, reqBody.ItemID, gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, s.sharerID.String())
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestDecide
// ================================================================================

func (s *BookingHandlerTestSuite) TestDecide() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String()

	s.Run("success: approve returns APPROVED booking", func() {
		returnView := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.ID = bookingID
			b.Status = "APPROVED"
		}).BuildView()

		s.mockCommands.EXPECT().Decide(gomock.Any(), bookingID, s.sharerID, true).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url+"?approved=true", nil, s.sharerID.String())

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("APPROVED", response.Status)
	})

	s.Run("success: reject returns REJECTED booking", func() {
		returnView := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.ID = bookingID
			b.Status = "REJECTED"
		}).BuildView()

		s.mockCommands.EXPECT().Decide(gomock.Any(), bookingID, s.sharerID, false).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url+"?approved=false", nil, s.sharerID.String())

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("REJECTED", response.Status)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, "/bookings/invalid-uuid?approved=true", nil, s.sharerID.String())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID format")
	})

	s.Run("error: 400 Bad Request for missing or malformed approved parameter", func() {
		for _, suffix := range []string{"", "?approved=", "?approved=maybe"} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url+suffix, nil, s.sharerID.String())
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "approved")
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "booking not found",
				commandsError:  errs.ErrBookingNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Booking not found",
			},
			{
				name:           "decider is not the owner",
				commandsError:  errs.ErrNotOwner,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "Only the item owner",
			},
			{
				name:           "already decided",
				commandsError:  errs.ErrAlreadyDecided,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "already been decided",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Decide(gomock.Any(), bookingID, s.sharerID, true).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url+"?approved=true", nil, s.sharerID.String())
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *BookingHandlerTestSuite) TestGet() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String()

	s.Run("success: returns 200 OK with BookingResponse", func() {
		returnView := builder.NewBookingBuilder().With(func(b *builder.BookingBuilder) {
			b.ID = bookingID
		}).BuildView()

		s.mockQueries.EXPECT().Get(gomock.Any(), bookingID, s.sharerID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, s.sharerID.String())

		var response resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(bookingID, response.ID)
		s.Equal(returnView.Item.ID, response.Item.ID)
		s.Equal(returnView.Booker.ID, response.Booker.ID)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/invalid-uuid", nil, s.sharerID.String())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID format")
	})

	s.Run("error: third party sees 404 Not Found", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), bookingID, s.sharerID).
			Return(nil, errs.ErrNotAuthorized).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, s.sharerID.String())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *BookingHandlerTestSuite) TestList() {
	url := "/bookings"

	views := []*queries.BookingView{
		builder.NewBookingBuilder().BuildView(),
		builder.NewBookingBuilder().BuildView(),
	}

	s.Run("success: defaults to ALL with first page", func() {
		s.mockQueries.EXPECT().ListByBooker(gomock.Any(), s.sharerID, "ALL", 0, queries.DefaultPageSize).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, s.sharerID.String())

		var response []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
	})

	s.Run("success: passes state and pagination through", func() {
		s.mockQueries.EXPECT().ListByBooker(gomock.Any(), s.sharerID, "FUTURE", 5, 10).
			Return(views[:1], nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?state=FUTURE&from=5&size=10", nil, s.sharerID.String())

		var response []resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
	})

	s.Run("success: owner listing uses its own query path", func() {
		s.mockQueries.EXPECT().ListByOwnedItems(gomock.Any(), s.sharerID, "ALL", 0, queries.DefaultPageSize).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"/owner", nil, s.sharerID.String())
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: 400 Bad Request for non-integer pagination", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?from=abc", nil, s.sharerID.String())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "'from' must be an integer")

		rec = httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?size=abc", nil, s.sharerID.String())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "'size' must be an integer")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			queriesError   error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "unsupported state bucket",
				queriesError:   errs.ErrUnsupportedState,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Unknown state: UNSUPPORTED_STATUS",
			},
			{
				name:           "invalid pagination values",
				queriesError:   errs.ErrInvalidPagination,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "Invalid pagination",
			},
			{
				name:           "unknown requesting user",
				queriesError:   errs.ErrUserNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "User not found",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().ListByBooker(gomock.Any(), s.sharerID, "ALL", 0, queries.DefaultPageSize).
					Return(nil, tc.queriesError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, s.sharerID.String())
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
