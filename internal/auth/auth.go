// Package auth simula el proveedor de identidad de la tienda. No hay
// OAuth real: el login siempre entra con la misma cuenta demo de
// administrador y la sesión vive solo en memoria.
package auth

import "pctech-store/internal/models"

// DemoUser devuelve la cuenta simulada del botón "Google ID".
func DemoUser() *models.User {
	return &models.User{
		ID:      "google_123456789",
		Name:    "Admin User",
		Email:   "admin@pctech.com",
		Avatar:  "https://images.pexels.com/photos/220453/pexels-photo-220453.jpeg?auto=compress&cs=tinysrgb&w=100&h=100&dpr=1",
		IsAdmin: true,
	}
}

// CanAccessAdmin decide si la sesión puede entrar al panel de admin.
// Una sesión nil (visitante anónimo) nunca puede.
func CanAccessAdmin(u *models.User) bool {
	return u != nil && u.IsAdmin
}
