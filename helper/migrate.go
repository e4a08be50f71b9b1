package helper

//nolint:revive
import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"hotel/config"
	"hotel/infras/postgres"
	"hotel/internal/domains/user/model/dto"
	userService "hotel/internal/domains/user/service"
	"hotel/shared/constant"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

const migrationsSource = "file://migrations/postgres"

var (
	ErrUnknownAction    = errors.New("unknown migration action")
	ErrAdminNotProvided = errors.New("ADMIN_EMAIL and ADMIN_PASSWORD are required to seed the admin user")
)

type action func(mig *migrate.Migrate) error

var actions = map[string]action{
	"up":      func(mig *migrate.Migrate) error { return mig.Up() },
	"down":    func(mig *migrate.Migrate) error { return mig.Steps(-1) },
	"step-up": func(mig *migrate.Migrate) error { return mig.Steps(1) },
	"drop":    func(mig *migrate.Migrate) error { return mig.Down() },
}

// Actions lists the migration directions Runner accepts.
func Actions() []string {
	return []string{"up", "down", "step-up", "drop"}
}

func connectionString(config *config.Config) string {
	params := url.Values{}
	if config.DB.Postgres.MigrationTable != "" {
		params.Set("x-migrations-table", config.DB.Postgres.MigrationTable)
	}

	return postgres.DSN(config, config.DB.Postgres.Write, params)
}

// Runner applies a migration action against the write database.
func Runner(config *config.Config, name string) error {
	run, ok := actions[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownAction, name)
	}

	mig, err := migrate.New(migrationsSource, connectionString(config))
	if err != nil {
		return fmt.Errorf("error creating migrate instance: %w", err)
	}

	defer mig.Close()

	if err := run(mig); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running migration %s: %w", name, err)
	}

	version, dirty, err := mig.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("error reading migration version: %w", err)
	}

	log.Info().Str("action", name).Uint("version", version).Bool("dirty", dirty).Msg("Database migration completed")

	return nil
}

// SeedAdmin creates the first admin account from the ADMIN_* settings.
// Running it again is a no-op.
func SeedAdmin(ctx context.Context, config *config.Config, users userService.User) error {
	if config.Admin.Email == "" || config.Admin.Password == "" {
		return ErrAdminNotProvided
	}

	name := config.Admin.Name
	if name == "" {
		name = "Administrator"
	}

	created, err := users.Seed(ctx, dto.CreateUserRequest{
		Email:    config.Admin.Email,
		Password: config.Admin.Password,
		Name:     name,
		Role:     constant.RoleAdmin,
	})
	if err != nil {
		return fmt.Errorf("error seeding admin user: %w", err)
	}

	if !created {
		log.Info().Str("email", config.Admin.Email).Msg("Admin user already exists")

		return nil
	}

	log.Info().Str("email", config.Admin.Email).Msg("Admin user created")

	return nil
}
