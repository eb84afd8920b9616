package main

import (
	"context"
	"flag"
	"strings"

	"go.uber.org/zap"
	gormlogger "gorm.io/gorm/logger"

	"los/internal/config"
	"los/internal/db"
	"los/internal/logger"
	"los/internal/repository"
	"los/internal/service"
)

func main() {
	cfg := config.Load()

	roles := flag.String("roles", strings.Join(cfg.SeedRoles, ","), "comma-separated role names to ensure")
	flag.Parse()

	log, err := logger.New(cfg.IsProduction(), cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	log.Info("starting role seed")

	gormDB, err := db.NewMySQL(cfg.MySQLDSN, gormlogger.Warn)
	if err != nil {
		log.Fatal("connect database", zap.Error(err))
	}
	if err := db.Migrate(gormDB); err != nil {
		log.Fatal("migrate", zap.Error(err))
	}

	names := splitNames(*roles)
	if len(names) == 0 {
		log.Fatal("no role names given")
	}

	svc := service.NewRoleService(repository.NewRoleRepository(gormDB))
	ctx := context.Background()

	created, err := svc.SeedRoles(ctx, names)
	if err != nil {
		log.Fatal("seed roles", zap.Error(err))
	}

	all, err := svc.ListRoles(ctx)
	if err != nil {
		log.Fatal("list roles", zap.Error(err))
	}
	log.Info("seed completed",
		zap.Int("requested", len(names)),
		zap.Int("created", created),
		zap.Int("existing", len(names)-created),
	)
	for _, r := range all {
		log.Info("role", zap.Uint("RoleID", r.RoleID), zap.String("RoleName", r.RoleName))
	}
}

func splitNames(s string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, name := range strings.Split(s, ",") {
		name = strings.TrimSpace(name)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		out = append(out, name)
	}
	return out
}
