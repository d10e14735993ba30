package sweetspot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/kontenflow/kontenflow-api/infrastructure/repository/mocks"
	"github.com/kontenflow/kontenflow-api/internal/config"
	"github.com/kontenflow/kontenflow-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func testConfig() *config.Config {
	return &config.Config{
		SweetSpot: config.SweetSpot{
			KeyNicheLabel:        "KEY NICHE",
			KeyNicheRate:         0.10,
			DefaultNicheRate:     0.05,
			ConversionRate:       0.01,
			SalesRate:            0.04,
			DefaultTargetRevenue: 10000,
		},
	}
}

func TestService_CreateEntry_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEntryRepo := mocks.NewMockSweetSpotEntryRepository(ctrl)
	mockSettingsRepo := mocks.NewMockSweetSpotSettingsRepository(ctrl)
	service := NewService(mockEntryRepo, mockSettingsRepo, testConfig())

	tests := []struct {
		name    string
		request *domain.CreateSweetSpotEntryRequest
		wantErr error
	}{
		{
			name:    "Nicho vazio",
			request: &domain.CreateSweetSpotEntryRequest{Account: "@conta", Audience: 100},
			wantErr: ErrNicheRequired,
		},
		{
			name:    "Conta vazia",
			request: &domain.CreateSweetSpotEntryRequest{Niche: "Fitness", Audience: 100},
			wantErr: ErrAccountRequired,
		},
		{
			name:    "Audiência negativa",
			request: &domain.CreateSweetSpotEntryRequest{Niche: "Fitness", Account: "@conta", Audience: -1},
			wantErr: ErrNegativeAudience,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.CreateEntry(tt.request)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestService_CreateEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEntryRepo := mocks.NewMockSweetSpotEntryRepository(ctrl)
	mockSettingsRepo := mocks.NewMockSweetSpotSettingsRepository(ctrl)
	service := NewService(mockEntryRepo, mockSettingsRepo, testConfig())

	mockEntryRepo.EXPECT().Insert(gomock.Any()).Return(nil)

	entry, err := service.CreateEntry(&domain.CreateSweetSpotEntryRequest{
		Niche:         "Fitness",
		Account:       "@fitconta",
		Keywords:      "treino, saúde",
		Audience:      120000,
		RevenueStream: "Infoproduto",
		Pricing:       "R$ 97",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, domain.DefaultUserID, entry.UserID)
	assert.Equal(t, int64(120000), entry.Audience)
	assert.Equal(t, entry.CreatedAt, entry.UpdatedAt)
}

func TestService_UpdateEntry_PartialMerge(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEntryRepo := mocks.NewMockSweetSpotEntryRepository(ctrl)
	mockSettingsRepo := mocks.NewMockSweetSpotSettingsRepository(ctrl)
	service := NewService(mockEntryRepo, mockSettingsRepo, testConfig())

	existing := &domain.SweetSpotEntry{
		ID:       "Ss01aB",
		UserID:   domain.DefaultUserID,
		Niche:    "Fitness",
		Account:  "@fitconta",
		Audience: 120000,
	}

	mockEntryRepo.EXPECT().GetByID("Ss01aB").Return(existing, nil)
	mockEntryRepo.EXPECT().Update(gomock.Any()).Return(nil)

	audience := int64(150000)
	entry, err := service.UpdateEntry("Ss01aB", &domain.UpdateSweetSpotEntryRequest{
		Audience: &audience,
	})
	require.NoError(t, err)

	// Somente o campo enviado muda
	assert.Equal(t, int64(150000), entry.Audience)
	assert.Equal(t, "Fitness", entry.Niche)
	assert.Equal(t, "@fitconta", entry.Account)
}

func TestService_UpdateEntry_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEntryRepo := mocks.NewMockSweetSpotEntryRepository(ctrl)
	mockSettingsRepo := mocks.NewMockSweetSpotSettingsRepository(ctrl)
	service := NewService(mockEntryRepo, mockSettingsRepo, testConfig())

	mockEntryRepo.EXPECT().GetByID("zzzzzz").Return(nil, nil)

	_, err := service.UpdateEntry("zzzzzz", &domain.UpdateSweetSpotEntryRequest{})
	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestService_GetSettings_CreatesDefaultWhenAbsent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEntryRepo := mocks.NewMockSweetSpotEntryRepository(ctrl)
	mockSettingsRepo := mocks.NewMockSweetSpotSettingsRepository(ctrl)
	service := NewService(mockEntryRepo, mockSettingsRepo, testConfig())

	mockSettingsRepo.EXPECT().Get(domain.DefaultUserID).Return(nil, nil)
	mockSettingsRepo.EXPECT().
		Upsert(gomock.Any()).
		DoAndReturn(func(settings *domain.SweetSpotSettings) error {
			assert.Equal(t, domain.DefaultUserID, settings.UserID)
			assert.Equal(t, int64(10000), settings.TargetMonthlyRevenue)
			return nil
		})

	settings, err := service.GetSettings()
	require.NoError(t, err)
	assert.Equal(t, int64(10000), settings.TargetMonthlyRevenue)
}

func TestService_GetSettings_ReturnsExisting(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEntryRepo := mocks.NewMockSweetSpotEntryRepository(ctrl)
	mockSettingsRepo := mocks.NewMockSweetSpotSettingsRepository(ctrl)
	service := NewService(mockEntryRepo, mockSettingsRepo, testConfig())

	existing := &domain.SweetSpotSettings{
		UserID:               domain.DefaultUserID,
		TargetMonthlyRevenue: 25000,
	}
	mockSettingsRepo.EXPECT().Get(domain.DefaultUserID).Return(existing, nil)

	settings, err := service.GetSettings()
	require.NoError(t, err)
	assert.Equal(t, int64(25000), settings.TargetMonthlyRevenue)
}

func TestService_Analyze_UsesStoredEntriesAndTarget(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEntryRepo := mocks.NewMockSweetSpotEntryRepository(ctrl)
	mockSettingsRepo := mocks.NewMockSweetSpotSettingsRepository(ctrl)
	service := NewService(mockEntryRepo, mockSettingsRepo, testConfig())

	mockEntryRepo.EXPECT().List(domain.DefaultUserID).Return([]*domain.SweetSpotEntry{
		{Niche: "KEY NICHE", Account: "@a", Audience: 100000},
		{Niche: "KEY NICHE", Account: "@b", Audience: 50000},
		{Niche: "OTHER", Account: "@c", Audience: 40000},
	}, nil)
	mockSettingsRepo.EXPECT().Get(domain.DefaultUserID).Return(&domain.SweetSpotSettings{
		UserID:               domain.DefaultUserID,
		TargetMonthlyRevenue: 10000,
	}, nil)

	analysis, err := service.Analyze()
	require.NoError(t, err)

	assert.Equal(t, int64(17000), analysis.GrandTotal)
	assert.Equal(t, int64(170), analysis.Conversion)
	assert.Equal(t, int64(7), analysis.SalesPerMonth)
	assert.Equal(t, int64(1429), analysis.ProductPrice)
}
