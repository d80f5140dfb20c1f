package crafting

import "errors"

var (
	ErrInvalidPosition      = errors.New("position outside grid bounds")
	ErrPositionOccupied     = errors.New("position already occupied")
	ErrPositionEmpty        = errors.New("position is empty")
	ErrMaterialNotFound     = errors.New("material not found")
	ErrInsufficientQuantity = errors.New("insufficient quantity")
	ErrRecipeNotFound       = errors.New("recipe not found")
	ErrInvalidRecipe        = errors.New("invalid recipe definition")
	ErrSerialization        = errors.New("serialization failure")
	ErrScriptFailure        = errors.New("script execution failure")
)
