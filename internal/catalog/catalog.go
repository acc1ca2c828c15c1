package catalog

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"pctech-store/internal/models"
)

//go:embed seed.yaml
var seedYAML []byte

// Seed devuelve el catálogo inicial de la tienda. Los productos vienen
// embebidos en el binario; no existe carga desde almacenamiento.
func Seed() ([]models.Product, error) {
	var products []models.Product
	if err := yaml.Unmarshal(seedYAML, &products); err != nil {
		return nil, fmt.Errorf("invalid seed catalog: %w", err)
	}
	for i := range products {
		products[i] = Normalize(products[i])
	}
	return products, nil
}

// NewID genera un identificador único para productos creados desde el
// panel de admin. La unicidad de ids es responsabilidad del caller del
// store, y aquí es donde se cumple.
func NewID() string {
	return uuid.NewString()
}

// Normalize ajusta los campos numéricos fuera de rango en lugar de
// rechazar el producto: rating se recorta a [0,5], los precios y el
// conteo de reseñas negativos pasan a 0, y se descartan las referencias
// de imagen en blanco. Se aplica en el borde (semilla y formularios de
// admin); el store nunca valida.
func Normalize(p models.Product) models.Product {
	if p.Rating < 0 {
		p.Rating = 0
	}
	if p.Rating > 5 {
		p.Rating = 5
	}
	if p.Price < 0 {
		p.Price = 0
	}
	if p.OriginalPrice < 0 {
		p.OriginalPrice = 0
	}
	if p.Reviews < 0 {
		p.Reviews = 0
	}

	images := make([]string, 0, len(p.Images))
	for _, img := range p.Images {
		if strings.TrimSpace(img) != "" {
			images = append(images, img)
		}
	}
	p.Images = images

	return p
}
