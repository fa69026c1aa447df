package entity

import "github.com/shopspring/decimal"

// FeatureFlags conjunto cerrado de booleans que habilitan áreas opcionales del producto.
// Se cargan completos desde el config del servidor; cada uno es conmutable individualmente.
type FeatureFlags struct {
	OnlineBooking  bool `json:"online_booking"`
	QuoteBuilder   bool `json:"quote_builder"`
	OnlinePayments bool `json:"online_payments"`
	FileUploads    bool `json:"file_uploads"`
	LoyaltyProgram bool `json:"loyalty_program"`
	LiveChat       bool `json:"live_chat"`
}

// DefaultFeatureFlags valores de arranque cuando no hay config del servidor ni estado persistido.
func DefaultFeatureFlags() FeatureFlags {
	return FeatureFlags{
		OnlineBooking: true,
		QuoteBuilder:  true,
		FileUploads:   true,
	}
}

// SystemConfig constantes de negocio del taller. El contenedor no valida la
// forma: el servidor (o quien llama a LoadSystemConfig) es responsable.
type SystemConfig struct {
	TaxRate             decimal.Decimal `json:"tax_rate"`              // ej: 0.19 = IVA 19%
	DepositPercent      decimal.Decimal `json:"deposit_percent"`       // anticipo requerido sobre el estimado
	EmergencyFeePercent decimal.Decimal `json:"emergency_fee_percent"` // recargo por trabajo urgente
	CompanyName         string          `json:"company_name"`
	ContactEmail        string          `json:"contact_email"`
	ContactPhone        string          `json:"contact_phone"`
	Address             string          `json:"address"`
}

// DefaultSystemConfig constantes de respaldo usadas hasta que llegue el config remoto.
func DefaultSystemConfig() SystemConfig {
	return SystemConfig{
		TaxRate:             decimal.NewFromFloat(0.19),
		DepositPercent:      decimal.NewFromFloat(0.50),
		EmergencyFeePercent: decimal.NewFromFloat(0.25),
		CompanyName:         "Imprenta Pro",
		ContactEmail:        "contacto@imprenta-pro.com",
		ContactPhone:        "",
		Address:             "",
	}
}
