package state

// Selectores de uso común. Las vistas se suscriben a la proyección mínima que
// necesitan; suscribirse al objeto completo provoca re-renders en cascada.

// SelectSession proyección de la sesión completa.
func SelectSession(st State) any { return st.Session }

// SelectIsAuthenticated solo el booleano de autenticación.
func SelectIsAuthenticated(st State) any { return st.Session.IsAuthenticated }

// SelectSessionError solo el mensaje de error de la sesión.
func SelectSessionError(st State) any {
	if st.Session.ErrorMessage == nil {
		return ""
	}
	return *st.Session.ErrorMessage
}

// SelectUnreadCounts contadores de no leídas (derivados de la lista).
func SelectUnreadCounts(st State) any { return st.UnreadCounts() }

// SelectNotifications la lista completa de notificaciones.
func SelectNotifications(st State) any { return st.Notifications }

// SelectFeatureFlags los feature flags.
func SelectFeatureFlags(st State) any { return st.FeatureFlags }

// SelectSystemConfig las constantes de negocio.
func SelectSystemConfig(st State) any { return st.SystemConfig }

// SelectQuoteStep solo el paso actual del asistente de cotización.
func SelectQuoteStep(st State) any { return st.QuoteBuilder.Step }

// SelectQuoteBuilder el estado completo del asistente.
func SelectQuoteBuilder(st State) any { return st.QuoteBuilder }

// SelectQuoteFiles solo la lista de archivos de arte.
func SelectQuoteFiles(st State) any { return st.QuoteBuilder.Files }

// SelectBooking el flujo de reserva.
func SelectBooking(st State) any { return st.Booking }

// SelectEstimate solo el rango estimado.
func SelectEstimate(st State) any { return st.QuoteBuilder.Estimate }
