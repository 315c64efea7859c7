package services

import (
	"errors"
	"fmt"
)

var (
	// ErrEmailTaken is returned when registering an email that already has
	// an account.
	ErrEmailTaken = errors.New("email já cadastrado")

	// ErrInvalidCredentials covers unknown email and password mismatch alike,
	// so a caller cannot probe which emails exist.
	ErrInvalidCredentials = errors.New("credenciais inválidas")

	// ErrNotFound is returned when the requested id does not exist.
	ErrNotFound = errors.New("registro não encontrado")

	// ErrEmptyUpdate is returned when a partial update sets no field at all.
	ErrEmptyUpdate = errors.New("nenhum dado para atualizar")

	// ErrInstagramNotConfigured is returned by the sync before any network
	// call when settings lack the access token or the user id.
	ErrInstagramNotConfigured = errors.New(
		"Instagram não configurado. Configure o Access Token e User ID nas configurações.")
)

// UpstreamError wraps a non-success response from the Instagram API,
// preserving the upstream message for the caller.
type UpstreamError struct {
	Message string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("erro ao acessar Instagram API: %s", e.Message)
}
