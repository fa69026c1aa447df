package state

import (
	"context"
	"fmt"

	"github.com/tu-usuario/imprenta-pro/internal/application/dto"
	"github.com/tu-usuario/imprenta-pro/internal/domain"
	"github.com/tu-usuario/imprenta-pro/internal/domain/entity"
)

// ── Feature flags y constantes de negocio ─────────────────────────────────────
//
// Load* reemplaza el objeto completo (tras un fetch fresco del servidor);
// Update* mezcla un parcial. El contenedor no valida la forma del config:
// eso es responsabilidad de quien llama (normalmente el propio servidor).

// LoadFeatureFlags reemplaza todos los flags.
func (s *Store) LoadFeatureFlags(flags entity.FeatureFlags) {
	s.mutate(func(st *State) {
		st.FeatureFlags = flags
	})
}

// SetFeatureFlag conmuta un flag por su nombre de wire (online_booking,
// quote_builder, online_payments, file_uploads, loyalty_program, live_chat).
func (s *Store) SetFeatureFlag(name string, on bool) error {
	var err error
	s.mutate(func(st *State) {
		switch name {
		case "online_booking":
			st.FeatureFlags.OnlineBooking = on
		case "quote_builder":
			st.FeatureFlags.QuoteBuilder = on
		case "online_payments":
			st.FeatureFlags.OnlinePayments = on
		case "file_uploads":
			st.FeatureFlags.FileUploads = on
		case "loyalty_program":
			st.FeatureFlags.LoyaltyProgram = on
		case "live_chat":
			st.FeatureFlags.LiveChat = on
		default:
			err = fmt.Errorf("%w: %s", domain.ErrUnknownFlag, name)
		}
	})
	return err
}

// LoadSystemConfig reemplaza las constantes de negocio completas.
func (s *Store) LoadSystemConfig(cfg entity.SystemConfig) {
	s.mutate(func(st *State) {
		st.SystemConfig = cfg
	})
}

// UpdateSystemConfig mezcla un parcial de constantes de negocio.
func (s *Store) UpdateSystemConfig(patch dto.SystemConfigPatch) {
	s.mutate(func(st *State) {
		if patch.TaxRate != nil {
			st.SystemConfig.TaxRate = *patch.TaxRate
		}
		if patch.DepositPercent != nil {
			st.SystemConfig.DepositPercent = *patch.DepositPercent
		}
		if patch.EmergencyFeePercent != nil {
			st.SystemConfig.EmergencyFeePercent = *patch.EmergencyFeePercent
		}
		if patch.CompanyName != nil {
			st.SystemConfig.CompanyName = *patch.CompanyName
		}
		if patch.ContactEmail != nil {
			st.SystemConfig.ContactEmail = *patch.ContactEmail
		}
		if patch.ContactPhone != nil {
			st.SystemConfig.ContactPhone = *patch.ContactPhone
		}
		if patch.Address != nil {
			st.SystemConfig.Address = *patch.Address
		}
	})
}

// RefreshAppConfig trae flags y constantes del servidor y los carga completos.
// A diferencia de las acciones de sesión, el fallo se propaga sin tocar el
// estado: la vista decide si reintenta o se queda con los valores actuales.
func (s *Store) RefreshAppConfig(ctx context.Context) error {
	if s.configAPI == nil {
		return domain.ErrNotFound
	}
	out, err := s.configAPI.FetchAppConfig(ctx)
	if err != nil {
		return fmt.Errorf("refrescar config remoto: %w", err)
	}
	s.mutate(func(st *State) {
		st.FeatureFlags = out.Flags
		st.SystemConfig = out.System.ToEntity()
	})
	return nil
}
