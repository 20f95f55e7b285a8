package services

import (
	"context"
	"disposal-locator-service/internal/domain"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type MockGeocoder struct {
	mock.Mock
}

func (m *MockGeocoder) ResolveAddress(ctx context.Context, address string) (domain.Coordinates, bool) {
	args := m.Called(ctx, address)
	return args.Get(0).(domain.Coordinates), args.Bool(1)
}

type MockPositionResolver struct {
	mock.Mock
}

func (m *MockPositionResolver) ResolveCurrentPosition(ctx context.Context) (domain.Coordinates, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.Coordinates), args.Error(1)
}

func TestAddressSearch(t *testing.T) {
	l := seoulBusanLocator(t)
	geocoder := new(MockGeocoder)
	geocoder.On("ResolveAddress", mock.Anything, "부산광역시 연제구").Return(busan, true).Once()

	res, err := l.AddressSearch(context.Background(), geocoder, "  부산광역시 연제구 ", DefaultTopN)
	require.NoError(t, err)

	assert.Equal(t, "부산광역시 연제구", res.Address)
	assert.Equal(t, busan, res.Searched)
	assert.Equal(t, []int{2, 1}, ids(res.Locations))
	geocoder.AssertExpectations(t)
}

func TestAddressSearchEmptyAddress(t *testing.T) {
	l := seoulBusanLocator(t)
	geocoder := new(MockGeocoder)

	_, err := l.AddressSearch(context.Background(), geocoder, "   ", DefaultTopN)
	assert.ErrorIs(t, err, domain.ErrEmptyAddress)
	geocoder.AssertNotCalled(t, "ResolveAddress", mock.Anything, mock.Anything)
}

func TestAddressSearchNotFound(t *testing.T) {
	l := seoulBusanLocator(t)
	geocoder := new(MockGeocoder)
	geocoder.On("ResolveAddress", mock.Anything, "nowhere").Return(domain.Coordinates{}, false).Once()

	res, err := l.AddressSearch(context.Background(), geocoder, "nowhere", DefaultTopN)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, domain.ErrAddressNotFound)
	geocoder.AssertNumberOfCalls(t, "ResolveAddress", 1)
}

func TestNearbySearch(t *testing.T) {
	l := seoulBusanLocator(t)
	resolver := new(MockPositionResolver)
	resolver.On("ResolveCurrentPosition", mock.Anything).Return(seoul, nil)

	res, err := l.NearbySearch(context.Background(), resolver, 3)
	require.NoError(t, err)
	assert.Equal(t, seoul, res.Origin)
	assert.Equal(t, 3.0, res.RadiusKm)
	assert.Equal(t, []int{1}, ids(res.Locations))
}

func TestNearbySearchGeolocationFailure(t *testing.T) {
	l := seoulBusanLocator(t)
	resolver := new(MockPositionResolver)
	resolver.On("ResolveCurrentPosition", mock.Anything).
		Return(domain.Coordinates{}, domain.NewGeolocationError(domain.GeoPermissionDenied))

	_, err := l.NearbySearch(context.Background(), resolver, 3)

	var geoErr *domain.GeolocationError
	require.ErrorAs(t, err, &geoErr)
	assert.Equal(t, domain.GeoPermissionDenied, geoErr.Reason)
}

func TestNearbySearchOtherFailure(t *testing.T) {
	l := seoulBusanLocator(t)
	resolver := new(MockPositionResolver)
	boom := errors.New("boom")
	resolver.On("ResolveCurrentPosition", mock.Anything).Return(domain.Coordinates{}, boom)

	_, err := l.NearbySearch(context.Background(), resolver, 3)
	assert.ErrorIs(t, err, boom)
}

func TestAddressSearchUserErrorsAreNotWarnings(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	restore := zap.ReplaceGlobals(zap.New(core))
	defer restore()

	l := seoulBusanLocator(t)
	geocoder := new(MockGeocoder)
	geocoder.On("ResolveAddress", mock.Anything, "nowhere").Return(domain.Coordinates{}, false).Once()

	_, err := l.AddressSearch(context.Background(), geocoder, "nowhere", DefaultTopN)
	require.ErrorIs(t, err, domain.ErrAddressNotFound)
	_, err = l.AddressSearch(context.Background(), geocoder, " ", DefaultTopN)
	require.ErrorIs(t, err, domain.ErrEmptyAddress)

	assert.Equal(t, 2, logs.FilterMessage("op done").Len())
	assert.Zero(t, logs.FilterLevelExact(zapcore.WarnLevel).Len())
}
