// Package commands defines the commands and queries the use cases
// accept. Each carries validation tags and a Validate method; handlers
// validate before touching any port.
package commands

import "travelbook/pkg/utils"

// LoginUserCommand signs a registered user in
type LoginUserCommand struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Validate validates the command
func (cmd LoginUserCommand) Validate() error {
	return utils.ValidateStruct(cmd)
}

// RegisterUserCommand creates a new account and signs it in
type RegisterUserCommand struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name" validate:"required"`
}

// Validate validates the command
func (cmd RegisterUserCommand) Validate() error {
	return utils.ValidateStruct(cmd)
}

// RestoreUserCommand rehydrates a previously saved session
type RestoreUserCommand struct{}

// GetSessionQuery reads the current session
type GetSessionQuery struct{}
