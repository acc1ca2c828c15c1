// Package views calcula los valores derivados que muestran las páginas
// de la tienda. Todas las funciones son derivaciones puras del snapshot:
// las páginas las recalculan en cada render y nunca escriben estado.
package views

import (
	"fmt"
	"math"

	"pctech-store/internal/models"
	"pctech-store/internal/query"
)

// CartItemCount es la cifra del badge del carrito: suma de cantidades
func CartItemCount(cart []models.CartLine) int {
	count := 0
	for _, line := range cart {
		count += line.Quantity
	}
	return count
}

// CartTotal suma precio * cantidad de todas las líneas
func CartTotal(cart []models.CartLine) int {
	total := 0
	for _, line := range cart {
		total += line.Price * line.Quantity
	}
	return total
}

// Discount describe el ahorro de un producto en promoción.
type Discount struct {
	Amount  int
	Percent int
}

// DiscountFor calcula el descuento cuando el precio original supera al
// actual. El porcentaje es round(100 * (1 - price/originalPrice)).
func DiscountFor(p models.Product) (Discount, bool) {
	if p.OriginalPrice <= p.Price {
		return Discount{}, false
	}
	percent := int(math.Round(100 * (1 - float64(p.Price)/float64(p.OriginalPrice))))
	return Discount{
		Amount:  p.OriginalPrice - p.Price,
		Percent: percent,
	}, true
}

// FindProduct busca un producto por id para la página de detalle
func FindProduct(products []models.Product, id string) (models.Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

// FeaturedProducts devuelve los primeros productos destacados, en orden
// de catálogo, para la portada
func FeaturedProducts(products []models.Product, limit int) []models.Product {
	out := []models.Product{}
	for _, p := range products {
		if !p.Featured {
			continue
		}
		out = append(out, p)
		if len(out) == limit {
			break
		}
	}
	return out
}

// RelatedProducts devuelve productos de la misma categoría que ref,
// excluyéndolo, para la sección "produits similaires"
func RelatedProducts(products []models.Product, ref models.Product, limit int) []models.Product {
	out := []models.Product{}
	for _, p := range products {
		if p.ID == ref.ID || p.Category != ref.Category {
			continue
		}
		out = append(out, p)
		if len(out) == limit {
			break
		}
	}
	return out
}

// TopSpecs devuelve las primeras n especificaciones en su orden de
// inserción, para la tarjeta resumida del producto
func TopSpecs(p models.Product, n int) []models.Spec {
	if n > len(p.Specifications) {
		n = len(p.Specifications)
	}
	return p.Specifications[:n]
}

// pageTitles traduce el slug de categoría al título de la página
var pageTitles = map[string]string{
	"portable": "PC Portables",
	"bureau":   "PC de Bureau",
	"gaming":   "PC Gaming",
}

// PageTitle arma el encabezado de la vista de productos. Una búsqueda
// activa tiene prioridad sobre la categoría de la URL.
func PageTitle(slug, searchQuery string) string {
	if searchQuery != "" {
		return fmt.Sprintf("Recherche: %q", searchQuery)
	}
	if slug != "" {
		if title, ok := pageTitles[slug]; ok {
			return title
		}
	}
	return "Tous les Produits"
}

// ResultsFor es el camino que recorre la página de productos en cada
// render: toma el snapshot y los filtros y devuelve la lista ordenada.
func ResultsFor(state models.AppState, params query.Params) []models.Product {
	if params.FreeText == "" {
		params.FreeText = state.Search.SearchQuery
	}
	return query.Run(state.Products, params)
}
