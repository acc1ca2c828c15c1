// Package checkout implementa el atajo de pedido por enlace de
// mensajería: en vez de un flujo de pago real, la tienda arma un
// mensaje de pedido y un enlace wa.me para enviarlo. Solo construye
// strings; abrir el enlace es cosa del navegador.
package checkout

import (
	"fmt"
	"net/url"
	"strings"

	"pctech-store/internal/models"
	"pctech-store/internal/views"
)

// Messenger construye los enlaces de pedido de la tienda.
type Messenger struct {
	// Phone es el número de WhatsApp de la tienda, sin el "+"
	Phone string
	// Currency es el sufijo de moneda que se muestra en los montos
	Currency string
}

// CartOrderURL arma el enlace de pedido con el detalle completo del
// carrito y su total.
func (m Messenger) CartOrderURL(cart []models.CartLine) string {
	lines := make([]string, 0, len(cart))
	for _, line := range cart {
		lines = append(lines, fmt.Sprintf("%s x%d - %d%s",
			line.Name, line.Quantity, line.Price*line.Quantity, m.Currency))
	}

	message := fmt.Sprintf(
		"Bonjour ! Je souhaite passer commande :\n\n%s\n\nTotal : %d%s\n\nPouvez-vous confirmer la disponibilité et me donner les détails pour finaliser ma commande ?",
		strings.Join(lines, "\n"), views.CartTotal(cart), m.Currency)

	return m.orderURL(message)
}

// ProductOrderURL arma el enlace de consulta por un solo producto,
// usado desde la tarjeta y la página de detalle.
func (m Messenger) ProductOrderURL(p models.Product, quantity int) string {
	message := fmt.Sprintf(
		"Bonjour ! Je suis intéressé(e) par le produit %s au prix de %d%s. Quantité souhaitée: %d. Pouvez-vous me donner plus d'informations pour finaliser ma commande ?",
		p.Name, p.Price, m.Currency, quantity)

	return m.orderURL(message)
}

func (m Messenger) orderURL(message string) string {
	return "https://wa.me/" + m.Phone + "?text=" + url.QueryEscape(message)
}
