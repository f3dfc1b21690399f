// Package seed provisions the default accounts an empty installation
// needs to be usable. Seeding is an explicit, idempotent startup step;
// running it again against a populated database changes nothing.
package seed

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	appModels "github.com/mjoly/scolaris/internal/app/models"
	appRepos "github.com/mjoly/scolaris/internal/app/repositories"
	"github.com/mjoly/scolaris/internal/pkg/auth"
	"github.com/rs/zerolog"
)

type defaultAccount struct {
	email    string
	password string
	role     appModels.Role
}

var defaultAccounts = []defaultAccount{
	{email: "admin@scolaris.local", password: "admin1234", role: appModels.RoleAdmin},
	{email: "registrar@scolaris.local", password: "registrar1234", role: appModels.RoleRegistrar},
}

// CreateDefaultAccounts creates the built-in admin and registrar
// accounts plus one demo student if they don't exist.
func CreateDefaultAccounts(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	accountRepo := appRepos.NewAccountRepository(dbPool)
	studentRepo := appRepos.NewStudentRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default accounts...")
	var finalErr error

	for _, def := range defaultAccounts {
		exists, err := accountRepo.EmailExists(ctx, def.email)
		if err != nil {
			lgr.Error().Err(err).Str("email", def.email).Msg("Error checking default account")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		if exists {
			continue
		}

		hash, err := auth.HashPassword(def.password)
		if err != nil {
			finalErr = errors.Join(finalErr, err)
			continue
		}

		account := &appModels.Account{
			Email:        def.email,
			PasswordHash: hash,
			Role:         def.role,
		}
		if err := accountRepo.Create(ctx, account); err != nil {
			lgr.Error().Err(err).Str("email", def.email).Msg("Error creating default account")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		lgr.Info().Str("email", def.email).Str("role", string(def.role)).Msg("Created default account")
	}

	if err := createDemoStudent(ctx, accountRepo, studentRepo, lgr); err != nil {
		finalErr = errors.Join(finalErr, err)
	}

	return finalErr
}

func createDemoStudent(ctx context.Context, accountRepo *appRepos.AccountRepository, studentRepo *appRepos.StudentRepository, lgr zerolog.Logger) error {
	const email = "student@scolaris.local"

	exists, err := accountRepo.EmailExists(ctx, email)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking demo student account")
		return err
	}
	if exists {
		return nil
	}

	hash, err := auth.HashPassword("student1234")
	if err != nil {
		return err
	}

	account := &appModels.Account{
		Email:        email,
		PasswordHash: hash,
		Role:         appModels.RoleStudent,
	}
	student := &appModels.Student{
		FirstName:      "Demo",
		LastName:       "Student",
		StudentNumber:  "S0000001",
		EnrollmentDate: time.Now(),
	}

	if err := studentRepo.CreateWithAccount(ctx, account, student); err != nil {
		lgr.Error().Err(err).Msg("Error creating demo student")
		return err
	}

	lgr.Info().Str("email", email).Msg("Created demo student")
	return nil
}
