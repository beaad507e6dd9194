//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"smartlocker/internal/domain/locker"
	"smartlocker/internal/handler/api"
	resdto "smartlocker/internal/handler/dto/response"
	"smartlocker/internal/pkg/errs"
	"smartlocker/internal/usecase/commands"
	"smartlocker/internal/usecase/shared"
	"smartlocker/tests/common/builder"
	commonhttp "smartlocker/tests/common/httptest"
	commandsmock "smartlocker/tests/mock/commands"
	queriesmock "smartlocker/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type LockerHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockLockerCommands
	mockQueries  *queriesmock.MockLockerQueries
	handler      *api.LockerHandler
}

func (s *LockerHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockLockerCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockLockerQueries(s.mockCtrl)
	s.handler = api.NewLockerHandler(s.mockCommands, s.mockQueries)

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Set("subject_id", uuid.New())
		c.Next()
	}

	// Setup routes
	s.router.POST("/lockers/allocate", authMiddleware, s.handler.Allocate)
	s.router.POST("/lockers/release", authMiddleware, s.handler.ReleaseByOccupant)
	s.router.POST("/lockers/:id/unlock", authMiddleware, s.handler.Unlock)
	s.router.POST("/lockers/:id/lock", authMiddleware, s.handler.Lock)
	s.router.POST("/lockers/:id/release", authMiddleware, s.handler.Release)
	s.router.POST("/lockers/:id/occupant", authMiddleware, s.handler.AssignOccupant)
	s.router.POST("/lockers/:id/maintenance", authMiddleware, s.handler.SetMaintenance)
	s.router.DELETE("/lockers/:id/maintenance", authMiddleware, s.handler.ClearMaintenance)
	s.router.GET("/lockers", s.handler.List)
	s.router.GET("/lockers/:id", s.handler.Get)
}

func (s *LockerHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestLockerHandlerSuite(t *testing.T) {
	suite.Run(t, new(LockerHandlerTestSuite))
}

const testToken = "valid-jwt"

func (s *LockerHandlerTestSuite) TestAllocate() {
	s.Run("success", func() {
		expiresAt := time.Now().Add(5 * time.Minute)
		s.mockCommands.EXPECT().AllocateNext(gomock.Any()).Return(&commands.AllocationResult{
			LockerID:  "LOCKER_001",
			Token:     "deadbeef",
			ExpiresAt: expiresAt,
			QRContent: locker.QRContent("LOCKER_001", "deadbeef", expiresAt),
		}, nil)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/lockers/allocate", nil, testToken)

		var body resdto.AllocationResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &body)
		s.Equal("LOCKER_001", body.LockerID)
		s.Equal("deadbeef", body.Token)
		s.Contains(body.QRContent, "TOKEN_deadbeef")
	})

	s.Run("no locker available", func() {
		s.mockCommands.EXPECT().AllocateNext(gomock.Any()).Return(nil, errs.ErrNoLockerAvailable)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/lockers/allocate", nil, testToken)
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusConflict, "No locker available")
	})

	s.Run("unauthenticated", func() {
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/lockers/allocate", nil, "")
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Unauthorized")
	})
}

func (s *LockerHandlerTestSuite) TestUnlock() {
	body := map[string]any{"token": "deadbeef"}

	s.Run("success", func() {
		s.mockCommands.EXPECT().
			Unlock(gomock.Any(), "LOCKER_001", "deadbeef").
			Return(&commands.UnlockResult{LockerID: "LOCKER_001", Status: locker.StatusOccupied, Dispatched: true}, nil)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/lockers/LOCKER_001/unlock", body, testToken)

		var res resdto.UnlockResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		s.Equal("LOCKER_001", res.LockerID)
		s.Equal("OCCUPIED", res.Status)
		s.True(res.Dispatched)
	})

	s.Run("dispatch failure still returns success", func() {
		s.mockCommands.EXPECT().
			Unlock(gomock.Any(), "LOCKER_001", "deadbeef").
			Return(&commands.UnlockResult{LockerID: "LOCKER_001", Status: locker.StatusOccupied, Dispatched: false}, nil)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/lockers/LOCKER_001/unlock", body, testToken)

		var res resdto.UnlockResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		s.False(res.Dispatched)
	})

	s.Run("missing token in body", func() {
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/lockers/LOCKER_001/unlock", map[string]any{}, testToken)
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid request format")
	})

	s.Run("error mapping", func() {
		cases := []struct {
			name       string
			err        error
			expectCode int
		}{
			{name: "unknown locker", err: errs.ErrLockerNotFound, expectCode: http.StatusNotFound},
			{name: "token mismatch", err: errs.ErrTokenMismatch, expectCode: http.StatusUnauthorized},
			{name: "token expired", err: errs.ErrTokenExpired, expectCode: http.StatusGone},
			{name: "store failure", err: errs.ErrStoreOperationFailed, expectCode: http.StatusInternalServerError},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().
					Unlock(gomock.Any(), "LOCKER_001", "deadbeef").
					Return(nil, tc.err)

				w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/lockers/LOCKER_001/unlock", body, testToken)
				commonhttp.AssertErrorResponse(s.T(), w, tc.expectCode, "")
			})
		}
	})
}

func (s *LockerHandlerTestSuite) TestLock() {
	s.Run("success", func() {
		s.mockCommands.EXPECT().Lock(gomock.Any(), "LOCKER_001").Return(true, nil)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/lockers/LOCKER_001/lock", nil, testToken)

		var res resdto.DispatchResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		s.True(res.Dispatched)
	})

	s.Run("unknown locker", func() {
		s.mockCommands.EXPECT().Lock(gomock.Any(), "LOCKER_404").Return(false, errs.ErrLockerNotFound)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/lockers/LOCKER_404/lock", nil, testToken)
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusNotFound, "Locker not found")
	})
}

func (s *LockerHandlerTestSuite) TestRelease() {
	s.Run("success", func() {
		s.mockCommands.EXPECT().Release(gomock.Any(), "LOCKER_001").Return(nil)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/lockers/LOCKER_001/release", nil, testToken)

		var res resdto.ReleaseResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		s.Equal("AVAILABLE", res.Status)
	})

	s.Run("unknown locker", func() {
		s.mockCommands.EXPECT().Release(gomock.Any(), "LOCKER_404").Return(errs.ErrLockerNotFound)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/lockers/LOCKER_404/release", nil, testToken)
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusNotFound, "")
	})
}

func (s *LockerHandlerTestSuite) TestReleaseByOccupant() {
	ref := uuid.New()
	body := map[string]any{"occupant_ref": ref.String()}

	s.Run("success", func() {
		s.mockCommands.EXPECT().ReleaseByOccupant(gomock.Any(), ref).Return("LOCKER_002", nil)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/lockers/release", body, testToken)

		var res resdto.ReleaseResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		s.Equal("LOCKER_002", res.LockerID)
	})

	s.Run("no locker holds the reference", func() {
		s.mockCommands.EXPECT().ReleaseByOccupant(gomock.Any(), ref).Return("", errs.ErrLockerNotFound)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/lockers/release", body, testToken)
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusNotFound, "")
	})

	s.Run("invalid body", func() {
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/lockers/release", map[string]any{"occupant_ref": "not-a-uuid"}, testToken)
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "")
	})
}

func (s *LockerHandlerTestSuite) TestAssignOccupant() {
	ref := uuid.New()
	body := map[string]any{"occupant_ref": ref.String()}

	s.Run("success", func() {
		s.mockCommands.EXPECT().AssignOccupant(gomock.Any(), "LOCKER_001", ref).Return(nil)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/lockers/LOCKER_001/occupant", body, testToken)
		s.Equal(http.StatusNoContent, w.Code)
	})

	s.Run("locker not occupied", func() {
		s.mockCommands.EXPECT().AssignOccupant(gomock.Any(), "LOCKER_001", ref).Return(errs.ErrLockerNotOccupied)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/lockers/LOCKER_001/occupant", body, testToken)
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusConflict, "not occupied")
	})
}

func (s *LockerHandlerTestSuite) TestMaintenance() {
	s.Run("set", func() {
		s.mockCommands.EXPECT().SetMaintenance(gomock.Any(), "LOCKER_001").Return(nil)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/lockers/LOCKER_001/maintenance", nil, testToken)
		s.Equal(http.StatusNoContent, w.Code)
	})

	s.Run("clear", func() {
		s.mockCommands.EXPECT().ClearMaintenance(gomock.Any(), "LOCKER_001").Return(nil)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodDelete, "/lockers/LOCKER_001/maintenance", nil, testToken)
		s.Equal(http.StatusNoContent, w.Code)
	})
}

func (s *LockerHandlerTestSuite) TestGet() {
	s.Run("success", func() {
		snap := builder.NewLockerBuilder().BuildSnapshot()
		s.mockQueries.EXPECT().GetLocker(gomock.Any(), "LOCKER_001").Return(snap, nil)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/lockers/LOCKER_001", nil, "")

		var res resdto.LockerResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		s.Equal("LOCKER_001", res.LockerID)
		s.Equal("AVAILABLE", res.Status)
	})

	s.Run("lease token is never exposed", func() {
		now := time.Now()
		snap := builder.NewLockerBuilder().WithLease("secret-token", now, now.Add(time.Minute)).BuildSnapshot()
		s.mockQueries.EXPECT().GetLocker(gomock.Any(), "LOCKER_001").Return(snap, nil)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/lockers/LOCKER_001", nil, "")

		s.Equal(http.StatusOK, w.Code)
		s.NotContains(w.Body.String(), "secret-token")
	})

	s.Run("unknown locker", func() {
		s.mockQueries.EXPECT().GetLocker(gomock.Any(), "LOCKER_404").Return(nil, errs.ErrLockerNotFound)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/lockers/LOCKER_404", nil, "")
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusNotFound, "")
	})
}

func (s *LockerHandlerTestSuite) TestList() {
	snaps := []*shared.LockerSnapshot{
		builder.NewLockerBuilder().BuildSnapshot(),
		builder.NewLockerBuilder().With(func(b *builder.LockerBuilder) { b.ID = "LOCKER_002" }).BuildSnapshot(),
	}
	s.mockQueries.EXPECT().ListLockers(gomock.Any()).Return(snaps, nil)

	w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/lockers", nil, "")

	var res []resdto.LockerResponse
	commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
	s.Len(res, 2)
}
