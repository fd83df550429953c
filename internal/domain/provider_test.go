package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// namedMock creates a mock provider that reports the given name.
func namedMock(ctrl *gomock.Controller, name string) *MockAccommodationProvider {
	m := NewMockAccommodationProvider(ctrl)
	m.EXPECT().Name().Return(name).AnyTimes()
	return m
}

func TestChain(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name          string
		providerNames []string
		wantLen       int
		getByName     string
		wantFound     bool
	}{
		{
			name:          "empty chain",
			providerNames: nil,
			wantLen:       0,
			getByName:     "amadeus",
			wantFound:     false,
		},
		{
			name:          "single provider",
			providerNames: []string{"catalogue"},
			wantLen:       1,
			getByName:     "catalogue",
			wantFound:     true,
		},
		{
			name:          "full chain lookup miss",
			providerNames: []string{"amadeus", "opentripmap", "catalogue"},
			wantLen:       3,
			getByName:     "foursquare",
			wantFound:     false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			providers := make([]AccommodationProvider, 0, len(tt.providerNames))
			for _, name := range tt.providerNames {
				providers = append(providers, namedMock(ctrl, name))
			}

			chain := NewChain(providers...)
			assert.Equal(t, tt.wantLen, chain.Len())

			got, found := chain.Get(tt.getByName)
			assert.Equal(t, tt.wantFound, found)
			if found {
				assert.Equal(t, tt.getByName, got.Name())
			}
		})
	}
}

// TestChain_OrderPreserved verifies the chain keeps construction order,
// which is the priority order searches traverse.
func TestChain_OrderPreserved(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	names := []string{"amadeus", "opentripmap", "catalogue"}
	providers := make([]AccommodationProvider, 0, len(names))
	for _, name := range names {
		providers = append(providers, namedMock(ctrl, name))
	}

	chain := NewChain(providers...)
	require.Equal(t, len(names), chain.Len())
	for i, p := range chain.Providers() {
		assert.Equal(t, names[i], p.Name())
	}
}

func TestChain_Terminal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	assert.Nil(t, NewChain().Terminal())

	chain := NewChain(namedMock(ctrl, "amadeus"), namedMock(ctrl, "catalogue"))
	require.NotNil(t, chain.Terminal())
	assert.Equal(t, "catalogue", chain.Terminal().Name())
}
