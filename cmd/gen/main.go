// Command gen writes type-safe gorm/gen query helpers for the persistence models.
package main

import (
	"travelhub/internal/infra/persistence/postgres"

	"gorm.io/gen"
)

func main() {
	g := gen.NewGenerator(gen.Config{
		OutPath:       "./internal/infra/persistence/query",
		Mode:          gen.WithDefaultQuery | gen.WithQueryInterface,
		FieldNullable: true,
	})

	g.ApplyBasic(postgres.Models()...)

	g.Execute()
}
