package commands

import (
	"errors"

	"littlelemon/internal/pkg/guard"
)

var (
	ErrCreateCategoryCommandIsNotConstructed = errors.New(
		"CreateCategoryCommand must be created via NewCreateCategoryCommand constructor",
	)
)

// CreateCategoryCommand adds a catalog category.
type CreateCategoryCommand struct {
	name string

	guard guard.ConstructorGuard
}

// NewCreateCategoryCommand carries the name through; menu.NewCategory owns
// the validation.
func NewCreateCategoryCommand(name string) CreateCategoryCommand {
	return CreateCategoryCommand{name: name, guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c CreateCategoryCommand) Validate() error {
	return c.guard.Validate(ErrCreateCategoryCommandIsNotConstructed)
}

// Name returns the category name.
func (c CreateCategoryCommand) Name() string {
	return c.name
}
