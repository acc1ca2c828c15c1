package query

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"pctech-store/internal/models"
)

// SortKey selecciona el orden del resultado.
type SortKey string

const (
	SortName      SortKey = "name"
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
	SortRating    SortKey = "rating"
)

// PriceRange es un filtro de precio con límites inclusivos.
// Los límites negativos se ajustan a cero.
type PriceRange struct {
	Min int
	Max int
}

// Params son los filtros activos de la vista de productos.
// El cero de cada campo significa "filtro inactivo".
type Params struct {
	// CategoryPath es el slug de categoría que viene de la URL
	// (ej. "gaming"). Un slug desconocido no filtra nada.
	CategoryPath string
	// FreeText es la búsqueda libre sobre nombre, descripción y
	// valores de especificaciones.
	FreeText string
	// SelectedCategories son las categorías marcadas en los
	// checkboxes del sidebar. Vacío = sin filtro de categorías.
	SelectedCategories []string
	// Price es el rango del slider de precios. nil = sin filtro.
	Price *PriceRange
	// Sort por defecto ordena por nombre.
	Sort SortKey
}

// categorySlugs mapea el slug de la URL a la etiqueta canónica
var categorySlugs = map[string]string{
	"portable": "Portable",
	"bureau":   "Bureau",
	"gaming":   "Gaming",
}

// CategoryForSlug devuelve la etiqueta canónica de un slug de URL
func CategoryForSlug(slug string) (string, bool) {
	label, ok := categorySlugs[strings.ToLower(slug)]
	return label, ok
}

// La tienda está en francés, así que el orden por nombre usa la
// colación francesa.
var nameCollator = collate.New(language.French)

// Run filtra y ordena el catálogo para mostrarlo. Es una función pura:
// no muta la entrada y con entradas idénticas devuelve siempre la misma
// secuencia, así el recalcular en cada cambio de filtro no produce
// parpadeos en la vista. Todos los filtros activos se componen con AND.
func Run(products []models.Product, params Params) []models.Product {
	pathLabel, filterPath := "", false
	if params.CategoryPath != "" {
		pathLabel, filterPath = CategoryForSlug(params.CategoryPath)
	}

	needle := strings.ToLower(strings.TrimSpace(params.FreeText))

	var selected map[string]bool
	if len(params.SelectedCategories) > 0 {
		selected = make(map[string]bool, len(params.SelectedCategories))
		for _, c := range params.SelectedCategories {
			selected[c] = true
		}
	}

	min, max := 0, 0
	if params.Price != nil {
		min, max = params.Price.Min, params.Price.Max
		if min < 0 {
			min = 0
		}
		if max < 0 {
			max = 0
		}
	}

	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if filterPath && p.Category != pathLabel {
			continue
		}
		if needle != "" && !matchesText(p, needle) {
			continue
		}
		if selected != nil && !selected[p.Category] {
			continue
		}
		if params.Price != nil && (p.Price < min || p.Price > max) {
			continue
		}
		out = append(out, p)
	}

	sortProducts(out, params.Sort)
	return out
}

// matchesText busca el texto (ya en minúsculas) en el nombre, la
// descripción o cualquier valor de especificación
func matchesText(p models.Product, needle string) bool {
	if strings.Contains(strings.ToLower(p.Name), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Description), needle) {
		return true
	}
	for _, s := range p.Specifications {
		if strings.Contains(strings.ToLower(s.Value), needle) {
			return true
		}
	}
	return false
}

// sortProducts ordena in place. El sort es estable para que los empates
// (ej. ratings iguales) conserven su orden relativo de entrada.
func sortProducts(products []models.Product, key SortKey) {
	switch key {
	case SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case SortRating:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	default: // SortName
		sort.SliceStable(products, func(i, j int) bool {
			return nameCollator.CompareString(products[i].Name, products[j].Name) < 0
		})
	}
}
