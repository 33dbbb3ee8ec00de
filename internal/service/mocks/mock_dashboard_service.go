package mocks

import (
	"context"

	"dashboard/internal/model"
	"github.com/stretchr/testify/mock"
)

type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) Health() model.Health {
	args := m.Called()
	return args.Get(0).(model.Health)
}

func (m *MockDashboardService) Weather(ctx context.Context, city string) (*model.Weather, error) {
	args := m.Called(ctx, city)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Weather), args.Error(1)
}

func (m *MockDashboardService) Convert(ctx context.Context, from, to string, amount float64) (*model.Conversion, error) {
	args := m.Called(ctx, from, to, amount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Conversion), args.Error(1)
}

func (m *MockDashboardService) GitHubProfile(ctx context.Context, username string) (*model.GitHubProfile, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.GitHubProfile), args.Error(1)
}

func (m *MockDashboardService) LookupIP(ctx context.Context, ip string) (*model.IPLocation, error) {
	args := m.Called(ctx, ip)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.IPLocation), args.Error(1)
}

func (m *MockDashboardService) News(ctx context.Context) (*model.NewsFeed, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.NewsFeed), args.Error(1)
}
