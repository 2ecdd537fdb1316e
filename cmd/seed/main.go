package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/oksasatya/fitness-gen-api/config"
	"github.com/oksasatya/fitness-gen-api/internal/domain/entity"
	"github.com/oksasatya/fitness-gen-api/internal/domain/errs"
	"github.com/oksasatya/fitness-gen-api/internal/domain/identity"
	pginfra "github.com/oksasatya/fitness-gen-api/internal/infrastructure/postgres"
	"github.com/oksasatya/fitness-gen-api/pkg/helpers"
)

func main() {
	hashFor := flag.String("hash", "", "print the bcrypt hash of this password for COACH_PASSWORD_HASH and exit")
	flag.Parse()

	if *hashFor != "" {
		hash, err := helpers.HashPassword(*hashFor)
		if err != nil {
			log.Fatalf("failed to hash password: %v", err)
		}
		fmt.Println(hash)
		return
	}

	_ = godotenv.Load()
	cfg := config.Load()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), 2, 1, time.Minute)
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer pool.Close()

	cpf, err := identity.ValidateCPF("529.982.247-25")
	if err != nil {
		log.Fatalf("demo cpf: %v", err)
	}
	students := pginfra.NewStudentRepository(pool)
	if s, err := students.GetByCPF(ctx, cpf); err == nil {
		fmt.Printf("demo student already present: id=%d cpf=%s\n", s.ID, identity.FormatCPF(s.CPF))
		return
	} else if !errors.Is(err, errs.ErrNotFound) {
		log.Fatalf("failed to look up demo student: %v", err)
	}

	sex, email := "F", "ana.demo@example.com"
	s := &entity.Student{
		CPF:       cpf,
		Name:      "Ana Demo",
		BirthDate: time.Date(1994, time.March, 12, 0, 0, 0, 0, time.UTC),
		Sex:       &sex,
		Email:     &email,
	}
	if err := students.Create(ctx, s); err != nil {
		log.Fatalf("failed to seed student: %v", err)
	}

	height, weight := 1.65, 62.5
	m := &entity.Measurement{StudentID: s.ID, MeasuredAt: time.Now().UTC(), HeightM: &height, WeightKg: &weight}
	m.RecomputeBMI()
	if err := pginfra.NewMeasurementRepository(pool).Create(ctx, m); err != nil {
		log.Fatalf("failed to seed measurement: %v", err)
	}
	fmt.Printf("seeded student: id=%d cpf=%s name=%s measurement=%d\n", s.ID, identity.FormatCPF(s.CPF), s.Name, m.ID)
}
