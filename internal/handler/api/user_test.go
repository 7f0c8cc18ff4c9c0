//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"shareit/internal/handler/api"
	resdto "shareit/internal/handler/dto/response"
	"shareit/internal/pkg/errs"
	"shareit/internal/usecase/commands"
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

type UserHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockUserCommands
	mockQueries  *queriesmock.MockUserQueries
	handler      *api.UserHandler
}

func (s *UserHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockUserCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockUserQueries(s.mockCtrl)
	s.handler = api.NewUserHandler(s.mockCommands, s.mockQueries)

	// User routes carry no identity middleware.
	s.router.POST("/users", s.handler.Create)
	s.router.GET("/users", s.handler.List)
	s.router.GET("/users/:id", s.handler.Get)
	s.router.PATCH("/users/:id", s.handler.Patch)
	s.router.DELETE("/users/:id", s.handler.Delete)
}

func (s *UserHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestUserHandlerSuite(t *testing.T) {
	suite.Run(t, new(UserHandlerTestSuite))
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *UserHandlerTestSuite) TestCreate() {
	url := "/users"

	reqBody := builder.NewUserBuilder().BuildCreateRequestDTO()
	returnView := builder.NewUserBuilder().BuildView()

	s.Run("success: returns 201 Created with UserResponse", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), commands.CreateUserParams{
			Name:  reqBody.Name,
			Email: reqBody.Email,
		}).Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		var response resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(returnView.ID, response.ID)
		s.Equal(returnView.Name, response.Name)
		s.Equal(returnView.Email, response.Email)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		invalid := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field: name (required)", mutate: testutil.Field("name", nil)},
			{name: "missing field: email (required)", mutate: testutil.Field("email", nil)},
			{name: "malformed email", mutate: testutil.Field("email", "not-an-email")},
		}

		for _, tc := range invalid {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
			})
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
				name:           "duplicate email",
				commandsError:  errs.ErrDuplicateEmail,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Email is already in use",
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
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *UserHandlerTestSuite) TestGet() {
	userID := uuid.New()
	url := "/users/" + userID.String()

	s.Run("success: returns 200 OK with UserResponse", func() {
		returnView := builder.NewUserBuilder().With(func(b *builder.UserBuilder) {
			b.ID = userID
		}).BuildView()

		s.mockQueries.EXPECT().Get(gomock.Any(), userID).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(userID, response.ID)
	})

	s.Run("error: 400 Bad Request for invalid UUID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users/invalid-uuid", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid user ID format")
	})

	s.Run("error: 404 Not Found for unknown user", func() {
		s.mockQueries.EXPECT().Get(gomock.Any(), userID).
			Return(nil, errs.ErrUserNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "User not found")
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *UserHandlerTestSuite) TestList() {
	s.Run("success: returns every user", func() {
		views := []*queries.UserView{
			builder.NewUserBuilder().BuildView(),
			builder.NewUserBuilder().With(func(b *builder.UserBuilder) {
				b.Name = "Bob"
				b.Email = "bob@example.com"
			}).BuildView(),
		}

		s.mockQueries.EXPECT().List(gomock.Any()).
			Return(views, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/users", nil, "")

		var response []resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 2)
	})
}

// ================================================================================
// TestPatch
// ================================================================================

func (s *UserHandlerTestSuite) TestPatch() {
	userID := uuid.New()
	url := "/users/" + userID.String()

	s.Run("success: renames without touching email", func() {
		name := "Alicia"
		returnView := builder.NewUserBuilder().With(func(b *builder.UserBuilder) {
			b.ID = userID
			b.Name = name
		}).BuildView()

		s.mockCommands.EXPECT().Patch(gomock.Any(), userID, commands.PatchUserParams{Name: &name}).
			Return(returnView, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"name": name}, "")

		var response resdto.UserResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(name, response.Name)
		s.Equal("alice@example.com", response.Email)
	})

	s.Run("error: 400 Bad Request for malformed email", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"email": "nope"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "unknown user",
				commandsError:  errs.ErrUserNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "User not found",
			},
			{
				name:           "email taken by another user",
				commandsError:  errs.ErrDuplicateEmail,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Email is already in use",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Patch(gomock.Any(), userID, gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, map[string]any{"name": "Alicia"}, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestDelete
// ================================================================================

func (s *UserHandlerTestSuite) TestDelete() {
	userID := uuid.New()
	url := "/users/" + userID.String()

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), userID).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 404 Not Found for unknown user", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), userID).
			Return(errs.ErrUserNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "User not found")
	})
}
