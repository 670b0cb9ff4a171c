// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"

	userstore "github.com/bookwormhq/bookworm-server/internal/app/store/users"
)

// Startup runs one-time application initialization after DB connections
// and schema setup are complete, but before the HTTP handler is built.
//
// BookWorm promotes the configured superadmin email to the admin role so a
// fresh deployment has a working admin without manual database edits. The
// promotion is a no-op when the account does not exist yet; it applies on
// the first restart after that user's first login.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	if appCfg.SuperAdminEmail == "" {
		return nil
	}

	users := userstore.New(deps.MongoDatabase)
	if err := users.PromoteToAdmin(ctx, appCfg.SuperAdminEmail); err != nil {
		logger.Error("superadmin promotion failed",
			zap.String("email", appCfg.SuperAdminEmail), zap.Error(err))
		return err
	}
	logger.Info("superadmin promotion applied", zap.String("email", appCfg.SuperAdminEmail))
	return nil
}
