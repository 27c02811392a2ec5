package seed

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	appModels "github.com/formadesk/formadesk/internal/app/models"
	appRepos "github.com/formadesk/formadesk/internal/app/repositories"
	"github.com/formadesk/formadesk/internal/pkg/apperrors"
)

// CreateDefaultData seeds organizational units, demo accounts and a small
// training catalog so a fresh install is usable right away. Every insert
// tolerates already-existing rows, so the function is safe to run on every
// startup.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	orgUnitRepo := appRepos.NewOrgUnitRepository(dbPool)
	profileRepo := appRepos.NewProfileRepository(dbPool)
	roleRepo := appRepos.NewRoleRepository(dbPool)
	trainingRepo := appRepos.NewTrainingRepository(dbPool)
	sessionRepo := appRepos.NewSessionRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data...")
	var finalErr error

	// --- Organizational units --- //
	units := []appModels.OrgUnit{
		{Name: "Direction des Systèmes d'Information", Code: "DSI"},
		{Name: "Ressources Humaines", Code: "RH"},
		{Name: "Direction Financière", Code: "FIN"},
	}
	unitIDs := map[string]*appModels.OrgUnit{}
	for i := range units {
		unit := units[i]
		if err := orgUnitRepo.Create(ctx, &unit); err != nil {
			if !errors.Is(err, apperrors.ErrResourceAlreadyExists) {
				lgr.Error().Err(err).Str("code", unit.Code).Msg("Error creating organizational unit")
				finalErr = errors.Join(finalErr, err)
				continue
			}
			// Find the existing row to get its ID.
			existing, errGet := orgUnitRepo.GetAll(ctx)
			if errGet != nil {
				lgr.Error().Err(errGet).Msg("Error listing organizational units")
				finalErr = errors.Join(finalErr, errGet)
				continue
			}
			for _, u := range existing {
				if u.Code == unit.Code {
					unit = u
					break
				}
			}
		}
		unitIDs[unit.Code] = &unit
	}

	// --- Demo accounts --- //
	type account struct {
		email     string
		firstName string
		lastName  string
		unitCode  string
		roles     []appModels.Role
	}
	accounts := []account{
		{"admin@formadesk.app", "System", "Administrator", "DSI", []appModels.Role{appModels.RoleSuperAdmin}},
		{"claire.martin@formadesk.app", "Claire", "Martin", "RH", []appModels.Role{appModels.RoleHRAdmin}},
		{"paul.durand@formadesk.app", "Paul", "Durand", "DSI", []appModels.Role{appModels.RoleManager}},
		{"sophie.bernard@formadesk.app", "Sophie", "Bernard", "DSI", []appModels.Role{appModels.RoleEmployee}},
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte("Formadesk123!"), bcrypt.DefaultCost)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing seed password")
		return errors.Join(finalErr, err)
	}

	for _, a := range accounts {
		profile := &appModels.Profile{
			Email:     a.email,
			Password:  string(hashed),
			FirstName: a.firstName,
			LastName:  a.lastName,
		}
		if unit, ok := unitIDs[a.unitCode]; ok {
			id := unit.ID
			profile.OrgUnitID = &id
		}

		err := profileRepo.Create(ctx, profile)
		if errors.Is(err, apperrors.ErrEmailAlreadyExists) {
			continue
		}
		if err != nil {
			lgr.Error().Err(err).Str("email", a.email).Msg("Error creating seed account")
			finalErr = errors.Join(finalErr, err)
			continue
		}

		for _, role := range a.roles {
			if err := roleRepo.Assign(ctx, profile.ID, role); err != nil && !errors.Is(err, apperrors.ErrRoleAlreadySet) {
				lgr.Error().Err(err).Str("email", a.email).Str("role", string(role)).Msg("Error assigning seed role")
				finalErr = errors.Join(finalErr, err)
			}
		}
		lgr.Info().Str("email", a.email).Msg("Seed account created")
	}

	// --- Training catalog --- //
	catalog, err := trainingRepo.GetAll(ctx, appRepos.TrainingFilter{})
	if err != nil {
		lgr.Error().Err(err).Msg("Error listing training catalog")
		return errors.Join(finalErr, err)
	}
	if len(catalog) > 0 {
		lgr.Info().Msg("Training catalog already seeded, skipping")
		return finalErr
	}

	strPtr := func(s string) *string { return &s }
	floatPtr := func(f float64) *float64 { return &f }
	intPtr := func(i int) *int { return &i }

	trainings := []appModels.Training{
		{
			Title:         "Certified Kubernetes Administrator",
			Description:   strPtr("Préparation à la certification CKA."),
			Category:      strPtr("Cloud"),
			Provider:      strPtr("Linux Foundation"),
			Cost:          floatPtr(1800),
			DurationHours: intPtr(35),
			Status:        appModels.TrainingStatusActive,
		},
		{
			Title:         "Management d'équipe",
			Description:   strPtr("Fondamentaux du management de proximité."),
			Category:      strPtr("Management"),
			Provider:      strPtr("Cegos"),
			Cost:          floatPtr(1200),
			DurationHours: intPtr(21),
			Status:        appModels.TrainingStatusActive,
		},
		{
			Title:         "Sécurité applicative",
			Description:   strPtr("OWASP Top 10 et revue de code sécurisée."),
			Category:      strPtr("Sécurité"),
			Provider:      strPtr("SANS Institute"),
			Cost:          floatPtr(2500),
			DurationHours: intPtr(28),
			Status:        appModels.TrainingStatusActive,
		},
	}

	for i := range trainings {
		if err := trainingRepo.Create(ctx, &trainings[i]); err != nil {
			lgr.Error().Err(err).Str("title", trainings[i].Title).Msg("Error creating seed training")
			finalErr = errors.Join(finalErr, err)
			continue
		}
	}

	// One upcoming session for the first catalog entry.
	if len(trainings) > 0 && trainings[0].ID != uuid.Nil {
		start := time.Now().AddDate(0, 1, 0)
		end := start.AddDate(0, 0, 5)
		session := &appModels.TrainingSession{
			TrainingID: trainings[0].ID,
			StartDate:  &start,
			EndDate:    &end,
			Location:   strPtr("Paris"),
			Status:     appModels.SessionStatusScheduled,
		}
		if err := sessionRepo.Create(ctx, session); err != nil {
			lgr.Error().Err(err).Msg("Error creating seed session")
			finalErr = errors.Join(finalErr, err)
		}
	}

	lgr.Info().Msg("Default data check/creation finished.")
	return finalErr
}
