package postgres

import (
	"context"

	domainerrors "travelhub/internal/domain/errors"
	"travelhub/internal/domain/repository"
	"travelhub/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// gormRepository implements repository.Repository[E] over the persistence model M.
// Field names in conditions are resolved through columns; unknown names are rejected.
type gormRepository[E any, M any] struct {
	db       *gorm.DB
	name     string
	columns  map[string]string
	toModel  func(*E) *M
	toEntity func(*M) *E
	sync     func(*E, *M)
}

func newGormRepository[E any, M any](
	db *gorm.DB,
	name string,
	columns map[string]string,
	toModel func(*E) *M,
	toEntity func(*M) *E,
	sync func(*E, *M),
) *gormRepository[E, M] {
	return &gormRepository[E, M]{
		db:       db,
		name:     name,
		columns:  columns,
		toModel:  toModel,
		toEntity: toEntity,
		sync:     sync,
	}
}

// Add inserts the entity and copies the generated values back onto it.
func (r *gormRepository[E, M]) Add(ctx context.Context, entity *E) error {
	if entity == nil {
		return domainerrors.ErrValidationFailed.WrapMessage("add " + r.name + ": nil entity")
	}

	m := r.toModel(entity)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return translateWriteError(err, "add "+r.name)
	}

	if r.sync != nil {
		r.sync(entity, m)
	}

	return nil
}

// Find returns all rows matching every condition, ordered by id.
func (r *gormRepository[E, M]) Find(ctx context.Context, conditions ...repository.Condition) ([]*E, error) {
	query, err := r.findQuery(ctx, conditions)
	if err != nil {
		return nil, err
	}

	var rows []*M
	if err := query.Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "find "+r.name)
	}

	entities := make([]*E, 0, len(rows))
	for _, row := range rows {
		entities = append(entities, r.toEntity(row))
	}

	return entities, nil
}

// findQuery builds the select for Find. Reads go to the primary so that rows
// written moments ago (a fresh registration) are always visible.
func (r *gormRepository[E, M]) findQuery(ctx context.Context, conditions []repository.Condition) (*gorm.DB, error) {
	query := r.db.WithContext(ctx).Clauses(dbresolver.Write).Model(new(M))

	for _, condition := range conditions {
		column, ok := r.columns[condition.Field]
		if !ok {
			return nil, errors.Errorf("find %s: unknown field %q", r.name, condition.Field)
		}

		query = query.Where(clause.Eq{Column: clause.Column{Name: column}, Value: condition.Value})
	}

	return query.Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}}), nil
}
