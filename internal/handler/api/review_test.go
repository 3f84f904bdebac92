//go:build unit

package api_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"tourease/internal/domain/review"
	"tourease/internal/handler/api"
	resdto "tourease/internal/handler/dto/response"
	"tourease/internal/pkg/errs"
	"tourease/internal/usecase/commands"
	"tourease/internal/usecase/queries"
	"tourease/tests/common/httptest"
	commandsmock "tourease/tests/mock/commands"
	queriesmock "tourease/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReviewHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReviewCommands
	mockQueries  *queriesmock.MockReviewQueries
	handler      *api.ReviewHandler
	authorID     uuid.UUID
}

func (s *ReviewHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReviewCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReviewQueries(s.mockCtrl)
	s.handler = api.NewReviewHandler(s.mockCommands, s.mockQueries)
	s.authorID = uuid.New()

	s.router.GET("/listings/:id/reviews", s.handler.ListByListing)
	s.router.POST("/listings/:id/reviews", func(c *gin.Context) {
		// Stands in for RequireAuth during handler-level tests.
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", s.authorID)
		}
		s.handler.Create(c)
	})
}

func (s *ReviewHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReviewHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReviewHandlerTestSuite))
}

func (s *ReviewHandlerTestSuite) TestListByListing() {
	listingID := uuid.New()
	url := fmt.Sprintf("/listings/%s/reviews", listingID)

	s.Run("success: returns reviews with the summary", func() {
		s.mockQueries.EXPECT().ListByListing(gomock.Any(), listingID).
			Return(&queries.ListingReviewsView{
				Summary: queries.RatingSummaryView{Average: 4.5, Count: 2, Stars: 5},
				Reviews: []*queries.ReviewView{
					{ID: uuid.New(), ListingID: listingID, AuthorName: "Asha Rao", Rating: 5, CreatedAt: time.Now()},
					{ID: uuid.New(), ListingID: listingID, AuthorName: "Bala", Rating: 4, CreatedAt: time.Now()},
				},
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var response queries.ListingReviewsView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(4.5, response.Summary.Average)
		s.Len(response.Reviews, 2)
	})

	s.Run("error: 400 on malformed listing ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/listings/not-a-uuid/reviews", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid listing ID format")
	})

	s.Run("error: 404 on unknown listing", func() {
		s.mockQueries.EXPECT().ListByListing(gomock.Any(), listingID).
			Return(nil, errs.ErrListingNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Listing not found")
	})
}

func (s *ReviewHandlerTestSuite) TestCreate() {
	listingID := uuid.New()
	url := fmt.Sprintf("/listings/%s/reviews", listingID)
	reqBody := map[string]any{"rating": 5, "comment": "Loved the stay"}

	s.Run("success: returns 201 with the new review ID", func() {
		reviewID := uuid.New()
		s.mockCommands.EXPECT().Create(gomock.Any(), commands.CreateReviewInput{
			ListingID: listingID,
			AuthorID:  s.authorID,
			Rating:    5,
			Comment:   "Loved the stay",
		}).Return(reviewID, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.CreatedResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(reviewID, response.ID)
	})

	s.Run("error: 400 when rating is out of range at binding", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"rating": 6}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "unknown listing",
				commandsError:  errs.ErrListingNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Listing not found",
			},
			{
				name:           "comment too long",
				commandsError:  review.ErrCommentTooLong,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "",
			},
			{
				name:           "store failure",
				commandsError:  errors.New("store down"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
					Return(uuid.Nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}
