package guest

import "context"

type Repository interface {
	Create(ctx context.Context, guest *Guest) error
	GetByPublicID(ctx context.Context, publicID string) (*Guest, error)
	GetPublicView(ctx context.Context, publicID string) (*PublicView, error)
	List(ctx context.Context, filter ListFilter) ([]Guest, error)
	Update(ctx context.Context, publicID string, changes Changes) error
	SetResponse(ctx context.Context, publicID string, response Response) error
	Delete(ctx context.Context, publicID string) (bool, error)
	IsPublicIDTaken(ctx context.Context, publicID string) (bool, error)
}
