package entity

// BundleComponent representa una línea de composición de un bundle:
// el producto BundleProductID contiene Quantity unidades de ComponentProductID.
// Relación muchos-a-muchos auto-referencial sobre products.
type BundleComponent struct {
	BundleProductID    string
	ComponentProductID string
	Quantity           int
}
