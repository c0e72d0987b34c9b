package entity

// CategoryLevel posición de una categoría en la jerarquía de tres niveles.
type CategoryLevel string

const (
	LevelMain   CategoryLevel = "main"   // sin padre
	LevelSub    CategoryLevel = "sub"    // padre = categoría principal
	LevelSubSub CategoryLevel = "subsub" // padre = subcategoría
)

// Category representa una categoría del catálogo (jerárquica, máximo tres niveles).
// La identidad pertenece al catálogo externo; este servicio solo la lee.
type Category struct {
	ID       int64
	ParentID *int64 // nil si es categoría principal
	Name     string
}

// IsRoot indica si la categoría es una categoría principal.
func (c *Category) IsRoot() bool {
	return c.ParentID == nil
}

// Level clasifica la categoría a partir de su padre ya resuelto (parent puede ser nil).
// Una referencia a un padre inexistente se trata como subsubcategoría.
func (c *Category) Level(parent *Category) CategoryLevel {
	if c.IsRoot() {
		return LevelMain
	}
	if parent != nil && parent.IsRoot() {
		return LevelSub
	}
	return LevelSubSub
}
