package dto

import (
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/imprenta-pro/internal/domain/entity"
)

// AppConfigResponse respuesta de GET /api/config: feature flags + constantes de negocio.
type AppConfigResponse struct {
	Flags  entity.FeatureFlags `json:"flags"`
	System SystemConfigDTO     `json:"system"`
}

// SystemConfigDTO constantes de negocio tal como viajan por la API.
type SystemConfigDTO struct {
	TaxRate             decimal.Decimal `json:"tax_rate"`
	DepositPercent      decimal.Decimal `json:"deposit_percent"`
	EmergencyFeePercent decimal.Decimal `json:"emergency_fee_percent"`
	CompanyName         string          `json:"company_name"`
	ContactEmail        string          `json:"contact_email"`
	ContactPhone        string          `json:"contact_phone"`
	Address             string          `json:"address"`
}

// ToEntity convierte el DTO a la entidad de dominio.
func (d SystemConfigDTO) ToEntity() entity.SystemConfig {
	return entity.SystemConfig{
		TaxRate:             d.TaxRate,
		DepositPercent:      d.DepositPercent,
		EmergencyFeePercent: d.EmergencyFeePercent,
		CompanyName:         d.CompanyName,
		ContactEmail:        d.ContactEmail,
		ContactPhone:        d.ContactPhone,
		Address:             d.Address,
	}
}

// SystemConfigFromEntity construye el DTO a partir de la entidad (backend simulado).
func SystemConfigFromEntity(c entity.SystemConfig) SystemConfigDTO {
	return SystemConfigDTO{
		TaxRate:             c.TaxRate,
		DepositPercent:      c.DepositPercent,
		EmergencyFeePercent: c.EmergencyFeePercent,
		CompanyName:         c.CompanyName,
		ContactEmail:        c.ContactEmail,
		ContactPhone:        c.ContactPhone,
		Address:             c.Address,
	}
}

// SystemConfigPatch merge parcial de constantes de negocio. Puntero nil = no tocar.
type SystemConfigPatch struct {
	TaxRate             *decimal.Decimal `json:"tax_rate,omitempty"`
	DepositPercent      *decimal.Decimal `json:"deposit_percent,omitempty"`
	EmergencyFeePercent *decimal.Decimal `json:"emergency_fee_percent,omitempty"`
	CompanyName         *string          `json:"company_name,omitempty"`
	ContactEmail        *string          `json:"contact_email,omitempty"`
	ContactPhone        *string          `json:"contact_phone,omitempty"`
	Address             *string          `json:"address,omitempty"`
}
