package usecase

import (
	"context"
	"unicode/utf8"

	"github.com/jhoicas/store-api/internal/domain"
	"github.com/jhoicas/store-api/internal/domain/entity"
	"github.com/jhoicas/store-api/internal/domain/repository"
)

// UserUseCase consultas de solo lectura sobre usuarios.
type UserUseCase struct {
	repo repository.UserRepository
}

// NewUserUseCase construye el caso de uso con el puerto de persistencia.
func NewUserUseCase(repo repository.UserRepository) *UserUseCase {
	return &UserUseCase{repo: repo}
}

// List devuelve todos los usuarios.
func (uc *UserUseCase) List(ctx context.Context) ([]entity.Row, error) {
	return uc.repo.List(ctx)
}

// GetByID obtiene un usuario por ID. Retorna domain.ErrNotFound si no existe.
// Un id que no es UTF-8 válido no puede coincidir con ninguna fila y no llega al store.
func (uc *UserUseCase) GetByID(ctx context.Context, id string) (entity.Row, error) {
	if !utf8.ValidString(id) {
		return nil, domain.ErrNotFound
	}
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return user, nil
}
