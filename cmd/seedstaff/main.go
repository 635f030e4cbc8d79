// cmd/seedstaff/main.go — Crea/actualiza el personal de demo, uno por rol.
// Uso: go run cmd/seedstaff/main.go
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"

	"ordenespro/internal/config"
	"ordenespro/internal/infra"
	"ordenespro/internal/model"
	"ordenespro/internal/repository"
	"ordenespro/internal/storage"
	"ordenespro/internal/workflow"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	var eng storage.Engine
	switch cfg.StorageDriver {
	case "redis":
		rdb, err := infra.NewRedis(cfg.RedisURL)
		if err != nil {
			log.Fatalf("redis connect error: %v", err)
		}
		eng = storage.NewRedis(rdb)
	case "postgres":
		db, err := infra.NewDatabase(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("db connect error: %v", err)
		}
		eng, err = storage.NewPostgres(db)
		if err != nil {
			log.Fatalf("db migrate error: %v", err)
		}
	default:
		log.Fatalf("el driver %q no persiste, nada que sembrar", cfg.StorageDriver)
	}

	ctx := context.Background()
	repo, err := repository.NewUsuarioRepository(ctx, eng)
	if err != nil {
		log.Fatalf("repo error: %v", err)
	}

	pinHash, err := bcrypt.GenerateFromPassword([]byte("1234"), 12)
	if err != nil {
		log.Fatalf("bcrypt error: %v", err)
	}

	staff := []model.Usuario{
		{Usuario: "admin", Nombre: "Administrador Demo", Rol: workflow.RolAdministrador, PinHash: string(pinHash)},
		{Usuario: "ventas", Nombre: "Vendedor Demo", Rol: workflow.RolVendedor},
		{Usuario: "produccion", Nombre: "Producción Demo", Rol: workflow.RolProduccion},
		{Usuario: "contabilidad", Nombre: "Contabilidad Demo", Rol: workflow.RolContabilidad},
	}
	for _, u := range staff {
		u.Activo = true
		u.CreatedAt = time.Now()
		if err := repo.Upsert(ctx, u); err != nil {
			log.Fatalf("seed %s error: %v", u.Usuario, err)
		}
		fmt.Printf("✅ Usuario '%s' (%s) creado/actualizado\n", u.Usuario, u.Rol)
	}
}
