package business

import "context"

type BusinessRepository interface {
	Create(ctx context.Context, b Business) (Business, error)
	GetByID(ctx context.Context, id string) (Business, error)
	Update(ctx context.Context, b Business) (Business, error)
	Delete(ctx context.Context, id string) error
	CountByOwner(ctx context.Context, ownerID string) (int64, error)
	ExistsByOwnerAndName(ctx context.Context, ownerID, name string) (bool, error)
}
