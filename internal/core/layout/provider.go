package layout

// Provider supplies a priori item dimensions. It is queried synchronously on
// the layout path, so implementations must not block and must not touch the
// engine that is calling them.
type Provider interface {
	// ItemType returns the type discriminator for the item at index. Providers
	// that do not distinguish item types return "".
	ItemType(index int) string

	// EstimatedDimension fills dim with the estimated size of the item at
	// index.
	EstimatedDimension(itemType string, dim *Dimension, index int)
}

// ProviderFunc adapts a function to an untyped Provider.
type ProviderFunc func(index int) Dimension

// ItemType implements Provider.
func (f ProviderFunc) ItemType(int) string { return "" }

// EstimatedDimension implements Provider.
func (f ProviderFunc) EstimatedDimension(_ string, dim *Dimension, index int) {
	*dim = f(index)
}
