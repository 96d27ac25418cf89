package medicines

import "context"

type Repository interface {
	Create(ctx context.Context, m Medicine) error
	Update(ctx context.Context, m Medicine) error
	GetByID(ctx context.Context, id string) (Medicine, error)
	// List devuelve los registros en orden de inserción.
	List(ctx context.Context) ([]Medicine, error)
}

// ChangeRecorder recibe cada cambio de estado (historial, métricas).
type ChangeRecorder interface {
	Record(ctx context.Context, c StatusChange) error
}
