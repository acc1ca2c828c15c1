package models

// Spec es un par nombre/valor de una especificación técnica.
// Se usa una lista ordenada en lugar de un map para conservar
// el orden de inserción al mostrar la ficha del producto.
type Spec struct {
	Name  string `json:"name" yaml:"name"`
	Value string `json:"value" yaml:"value"`
}

// Product representa un producto en el catálogo.
// El ID es un identificador opaco, único dentro del catálogo.
type Product struct {
	ID             string   `json:"id" yaml:"id"`
	Name           string   `json:"name" yaml:"name"`
	Description    string   `json:"description" yaml:"description"`
	Price          int      `json:"price" yaml:"price"`
	OriginalPrice  int      `json:"originalPrice,omitempty" yaml:"originalPrice"`
	Category       string   `json:"category" yaml:"category"`
	Specifications []Spec   `json:"specifications" yaml:"specifications"`
	Images         []string `json:"images" yaml:"images"`
	Rating         float64  `json:"rating" yaml:"rating"`
	Reviews        int      `json:"reviews" yaml:"reviews"`
	InStock        bool     `json:"inStock" yaml:"inStock"`
	Featured       bool     `json:"featured,omitempty" yaml:"featured"`
	New            bool     `json:"new,omitempty" yaml:"new"`
	Promo          bool     `json:"promo,omitempty" yaml:"promo"`
}

// SpecValue busca el valor de una especificación por nombre
func (p Product) SpecValue(name string) (string, bool) {
	for _, s := range p.Specifications {
		if s.Name == name {
			return s.Value, true
		}
	}
	return "", false
}
