package state_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/imprenta-pro/internal/application/dto"
	"github.com/tu-usuario/imprenta-pro/internal/domain"
	"github.com/tu-usuario/imprenta-pro/internal/domain/entity"
	"github.com/tu-usuario/imprenta-pro/internal/infrastructure/rest"
	"github.com/tu-usuario/imprenta-pro/internal/infrastructure/storage"
	"github.com/tu-usuario/imprenta-pro/internal/state"
)

type fakeConfigAPI struct {
	fetchFn func(ctx context.Context) (*dto.AppConfigResponse, error)
}

func (f *fakeConfigAPI) FetchAppConfig(ctx context.Context) (*dto.AppConfigResponse, error) {
	return f.fetchFn(ctx)
}

func TestSetFeatureFlag_ConmutaIndividual(t *testing.T) {
	s := newTestStore(&fakeAuthAPI{})
	require.False(t, s.Snapshot().FeatureFlags.LiveChat)

	require.NoError(t, s.SetFeatureFlag("live_chat", true))
	assert.True(t, s.Snapshot().FeatureFlags.LiveChat)

	require.NoError(t, s.SetFeatureFlag("live_chat", false))
	assert.False(t, s.Snapshot().FeatureFlags.LiveChat)
}

func TestSetFeatureFlag_NombreDesconocido(t *testing.T) {
	s := newTestStore(&fakeAuthAPI{})
	antes := s.Snapshot().FeatureFlags

	err := s.SetFeatureFlag("modo_turbo", true)
	assert.ErrorIs(t, err, domain.ErrUnknownFlag)
	assert.Equal(t, antes, s.Snapshot().FeatureFlags, "un flag desconocido no toca nada")
}

func TestLoadFeatureFlags_ReemplazaCompleto(t *testing.T) {
	s := newTestStore(&fakeAuthAPI{})

	s.LoadFeatureFlags(entity.FeatureFlags{OnlinePayments: true})

	flags := s.Snapshot().FeatureFlags
	assert.True(t, flags.OnlinePayments)
	assert.False(t, flags.OnlineBooking, "Load reemplaza, no mezcla")
}

func TestUpdateSystemConfig_MergeParcial(t *testing.T) {
	s := newTestStore(&fakeAuthAPI{})
	iva := decimal.NewFromFloat(0.16)
	tel := "+57 601 555 0100"

	s.UpdateSystemConfig(dto.SystemConfigPatch{TaxRate: &iva, ContactPhone: &tel})

	cfg := s.Snapshot().SystemConfig
	assert.True(t, cfg.TaxRate.Equal(iva))
	assert.Equal(t, tel, cfg.ContactPhone)
	assert.Equal(t, "Imprenta Pro", cfg.CompanyName, "los campos no tocados se conservan")
	assert.True(t, cfg.DepositPercent.Equal(decimal.NewFromFloat(0.50)))
}

func TestRefreshAppConfig_CargaFlagsYConstantes(t *testing.T) {
	cfgAPI := &fakeConfigAPI{
		fetchFn: func(context.Context) (*dto.AppConfigResponse, error) {
			return &dto.AppConfigResponse{
				Flags: entity.FeatureFlags{OnlineBooking: true, LiveChat: true},
				System: dto.SystemConfigDTO{
					TaxRate:        decimal.NewFromFloat(0.19),
					DepositPercent: decimal.NewFromFloat(0.30),
					CompanyName:    "Imprenta Pro Bogotá",
				},
			}, nil
		},
	}
	s := state.New(state.Options{API: &fakeAuthAPI{}, Config: cfgAPI, Slot: storage.NewMemorySlot()})

	require.NoError(t, s.RefreshAppConfig(context.Background()))

	st := s.Snapshot()
	assert.True(t, st.FeatureFlags.LiveChat)
	assert.Equal(t, "Imprenta Pro Bogotá", st.SystemConfig.CompanyName)
	assert.True(t, st.SystemConfig.DepositPercent.Equal(decimal.NewFromFloat(0.30)))
}

// El fallo del fetch se propaga y el estado queda intacto.
func TestRefreshAppConfig_FalloNoTocaElEstado(t *testing.T) {
	cfgAPI := &fakeConfigAPI{
		fetchFn: func(context.Context) (*dto.AppConfigResponse, error) {
			return nil, &rest.APIError{Status: 503, Message: "mantenimiento"}
		},
	}
	s := state.New(state.Options{API: &fakeAuthAPI{}, Config: cfgAPI, Slot: storage.NewMemorySlot()})
	antes := s.Snapshot()

	err := s.RefreshAppConfig(context.Background())
	require.Error(t, err)

	despues := s.Snapshot()
	assert.Equal(t, antes.FeatureFlags, despues.FeatureFlags)
	assert.Equal(t, antes.SystemConfig.CompanyName, despues.SystemConfig.CompanyName)
}
