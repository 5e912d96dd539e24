package usecase_test

import (
	"context"
	"testing"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSessionUsecase_Start_InvalidClerkCode(t *testing.T) {
	tx := newTxManagerStub()
	uc := usecase.NewSessionUsecase(tx, new(SessionRepoMock), "30")

	for _, code := range []string{"", "0", "6", "abc"} {
		_, err := uc.Start(context.Background(), usecase.StartSessionInput{ClerkCode: code, StoreCode: "30"})
		assertErrContains(t, err, "clerkCode must be 1-5")
	}
}

func TestSessionUsecase_Start_DeactivatesOthersThenCreates(t *testing.T) {
	ctx := context.Background()

	tx := newTxManagerStub()
	uc := usecase.NewSessionUsecase(tx, new(SessionRepoMock), "30")

	tx.repos.sessions.On("DeactivateAll", mock.Anything, mock.Anything).Return(nil)
	tx.repos.sessions.On("Create", mock.Anything, mock.MatchedBy(func(s model.ClerkSession) bool {
		return s.ClerkCode == "3" && s.StoreCode == "12" && s.IsActive && !s.StartedAt.IsZero()
	})).Return(model.ClerkSession{
		ID:        "sess-1",
		ClerkCode: "3",
		StoreCode: "12",
		IsActive:  true,
		StartedAt: time.Now(),
	}, nil)

	out, err := uc.Start(ctx, usecase.StartSessionInput{ClerkCode: "3", StoreCode: "12"})
	assert.NoError(t, err)
	assert.Equal(t, "sess-1", out.ID)
	assert.True(t, out.IsActive)
	assert.Nil(t, out.EndedAt)

	tx.repos.sessions.AssertExpectations(t)
}

func TestSessionUsecase_Start_DefaultStoreCode(t *testing.T) {
	ctx := context.Background()

	tx := newTxManagerStub()
	uc := usecase.NewSessionUsecase(tx, new(SessionRepoMock), "30")

	tx.repos.sessions.On("DeactivateAll", mock.Anything, mock.Anything).Return(nil)
	tx.repos.sessions.On("Create", mock.Anything, mock.MatchedBy(func(s model.ClerkSession) bool {
		return s.StoreCode == "30"
	})).Return(model.ClerkSession{ID: "sess-2", ClerkCode: "1", StoreCode: "30", IsActive: true}, nil)

	out, err := uc.Start(ctx, usecase.StartSessionInput{ClerkCode: "1"})
	assert.NoError(t, err)
	assert.Equal(t, "30", out.StoreCode)

	tx.repos.sessions.AssertExpectations(t)
}

func TestSessionUsecase_GetActive_NotFound(t *testing.T) {
	sessions := new(SessionRepoMock)
	uc := usecase.NewSessionUsecase(newTxManagerStub(), sessions, "30")

	sessions.On("FindActive", mock.Anything).Return(model.ClerkSession{}, repo.ErrNotFound)

	_, err := uc.GetActive(context.Background())
	assertErrContains(t, err, "active session not found")

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, 404, he.Status)
}

func TestSessionUsecase_GetActive_Success(t *testing.T) {
	sessions := new(SessionRepoMock)
	uc := usecase.NewSessionUsecase(newTxManagerStub(), sessions, "30")

	sessions.On("FindActive", mock.Anything).Return(model.ClerkSession{
		ID:        "sess-1",
		ClerkCode: "2",
		StoreCode: "30",
		IsActive:  true,
		StartedAt: time.Now(),
	}, nil)

	out, err := uc.GetActive(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, "sess-1", out.ID)
	assert.Equal(t, "2", out.ClerkCode)
}

func TestSessionUsecase_End_NotFound(t *testing.T) {
	tx := newTxManagerStub()
	uc := usecase.NewSessionUsecase(tx, new(SessionRepoMock), "30")

	tx.repos.sessions.On("FindActive", mock.Anything).Return(model.ClerkSession{}, repo.ErrNotFound)

	_, err := uc.End(context.Background())
	assertErrContains(t, err, "active session not found")
}

func TestSessionUsecase_End_Success(t *testing.T) {
	tx := newTxManagerStub()
	uc := usecase.NewSessionUsecase(tx, new(SessionRepoMock), "30")

	tx.repos.sessions.On("FindActive", mock.Anything).Return(model.ClerkSession{
		ID:        "sess-1",
		ClerkCode: "1",
		StoreCode: "30",
		IsActive:  true,
		StartedAt: time.Now(),
	}, nil)
	tx.repos.sessions.On("Deactivate", mock.Anything, "sess-1", mock.Anything).Return(nil)

	out, err := uc.End(context.Background())
	assert.NoError(t, err)
	assert.False(t, out.IsActive)
	assert.NotNil(t, out.EndedAt)

	tx.repos.sessions.AssertExpectations(t)
}
