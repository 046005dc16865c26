package app

import (
	"context"
	"errors"
	"log"
	"time"

	"skill-gap/internal/config"
	"skill-gap/internal/database"
	"skill-gap/internal/database/migration"
	dbpostgres "skill-gap/internal/database/postgres"
	"skill-gap/internal/database/seeder"
	"skill-gap/internal/domain/skill"
	"skill-gap/internal/infrastructure/cache"
	"skill-gap/internal/pkg/jwt"
	"skill-gap/internal/repository"
	"skill-gap/internal/usecase"
	"skill-gap/internal/ws"
	"skill-gap/migrations"
)

type Container struct {
	Config   config.Config
	Logger   *log.Logger
	DB       database.DB
	Cache    *cache.Redis
	Hub      *ws.Hub
	JWT      *jwt.HMACService
	Taxonomy *skill.Taxonomy

	Analysis *usecase.Analysis
	Skills   *usecase.Skill
	Profile  *usecase.Profile

	stopHub context.CancelFunc
}

// NewContainer wires the server. Postgres and Redis are optional: without a
// database the user profile is unavailable and results stay in memory.
func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	c := &Container{Config: cfg, Logger: logger, Taxonomy: skill.DefaultTaxonomy()}

	parts := AnalysisParts{}
	var profiles usecase.ProfileStore
	if cfg.Database.Enabled() {
		db, err := dbpostgres.Connect(ctx, cfg.Database)
		if err != nil {
			return nil, err
		}
		c.DB = db
		if err := prepareDatabase(ctx, cfg, db, c.Taxonomy, logger); err != nil {
			_ = db.Close()
			return nil, err
		}
		userSkills := repository.NewPostgresUserSkillRepository(db)
		parts.Profile = userSkills
		profiles = userSkills
		parts.Store = repository.NewPostgresAnalysisRepository(db)
	} else {
		logger.Printf("app=container db=disabled reason=DB_HOST_unset")
	}

	c.Cache = cache.NewRedis(ctx, cfg.Redis, logger)
	if c.Cache.Available() {
		parts.Cache = c.Cache
	}

	hubCtx, stopHub := context.WithCancel(context.Background())
	c.Hub = ws.NewHub(logger)
	c.stopHub = stopHub
	go c.Hub.Run(hubCtx)
	parts.Notifier = ws.NewNotifier(c.Hub)

	if cfg.JWT.AccessSecret == "" {
		logger.Printf("app=container jwt=disabled reason=JWT_ACCESS_SECRET_unset")
	}
	c.JWT = jwt.NewHMACService(cfg.JWT.AccessSecret, cfg.JWT.AccessExpiresIn)

	analysis, err := BuildAnalysis(cfg, c.Taxonomy, parts, logger)
	if err != nil {
		_ = c.Close()
		return nil, err
	}
	c.Analysis = analysis
	c.Profile = usecase.NewProfileUsecase(profiles, c.Taxonomy)
	c.Skills = usecase.NewSkillUsecase(skill.NewExtractor(c.Taxonomy, skill.WithWordBoundaries(cfg.Analysis.WordBoundaries)))
	return c, nil
}

func prepareDatabase(ctx context.Context, cfg config.Config, db database.DB, t *skill.Taxonomy, logger *log.Logger) error {
	runner := migration.Runner{FS: migrations.FS, Logger: logger}
	if cfg.Database.MigrationsDir != "" {
		runner = migration.Runner{Dir: cfg.Database.MigrationsDir, Logger: logger}
	}
	if err := runner.Run(ctx, db.SQLDB()); err != nil {
		return err
	}
	seeders := seeder.Runner{Seeders: seeder.Defaults(t), Logger: logger}
	if err := seeders.Run(ctx, db); err != nil {
		return err
	}
	return seeder.CheckSchema(ctx, db, seeder.RequiredTables()...)
}

func (c *Container) Close() error {
	if c == nil {
		return nil
	}
	if c.stopHub != nil {
		c.stopHub()
	}
	var errs []error
	if c.Cache != nil {
		errs = append(errs, c.Cache.Close())
	}
	if c.DB != nil {
		errs = append(errs, c.DB.Close())
	}
	return errors.Join(errs...)
}
