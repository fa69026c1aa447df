package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/imprenta-pro/internal/application/dto"
	"github.com/tu-usuario/imprenta-pro/internal/domain/entity"
)

// ConfigHandler sirve feature flags y constantes de negocio. El backend
// simulado las mantiene fijas en memoria; el backend real las lee de su DB.
type ConfigHandler struct {
	flags  entity.FeatureFlags
	system entity.SystemConfig
}

// NewConfigHandler construye el handler con los valores a servir.
func NewConfigHandler(flags entity.FeatureFlags, system entity.SystemConfig) *ConfigHandler {
	return &ConfigHandler{flags: flags, system: system}
}

// Get godoc
// @Summary      Config de la aplicación (flags + constantes de negocio)
// @Tags         config
// @Produce      json
// @Success      200  {object}  dto.AppConfigResponse
// @Router       /api/config [get]
func (h *ConfigHandler) Get(c *fiber.Ctx) error {
	return c.JSON(dto.AppConfigResponse{
		Flags:  h.flags,
		System: dto.SystemConfigFromEntity(h.system),
	})
}
