package business

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-AgendaService/internal/domain"
	"github.com/m04kA/SMC-AgendaService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AgendaService/pkg/psqlbuilder"
)

const (
	businessTable = "businesses"

	uniqueViolation = "23505"
)

var businessColumns = []string{
	"id",
	"owner_id",
	"name",
	"slug",
	"logo_url",
	"contact_email",
	"phone",
	"plan_tier",
	"trial_ends_at",
	"paid_until",
	"demo_mode",
	"notifications_enabled",
	"requires_deposit",
	"deposit_amount",
	"created_at",
	"updated_at",
}

// Repository репозиторий бизнесов и их расписаний
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бизнесов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create регистрирует новый бизнес
func (r *Repository) Create(ctx context.Context, b *domain.Business) (*domain.Business, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(businessTable).
		Columns(
			"owner_id",
			"name",
			"slug",
			"logo_url",
			"contact_email",
			"phone",
			"plan_tier",
			"trial_ends_at",
			"demo_mode",
			"notifications_enabled",
			"requires_deposit",
			"deposit_amount",
		).
		Values(
			b.OwnerID,
			b.Name,
			b.Slug,
			b.LogoURL,
			b.ContactEmail,
			b.Phone,
			b.PlanTier,
			b.TrialEndsAt,
			b.DemoMode,
			b.NotificationsEnabled,
			b.RequiresDeposit,
			b.DepositAmount,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, ErrSlugTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return b, nil
}

// GetByID получает бизнес по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Business, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	builder := psqlbuilder.Select(businessColumns...).
		From(businessTable).
		Where(squirrel.Eq{"id": id})

	if dbmetrics.IsInTransaction(ctx) {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	var b domain.Business
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&b.ID,
		&b.OwnerID,
		&b.Name,
		&b.Slug,
		&b.LogoURL,
		&b.ContactEmail,
		&b.Phone,
		&b.PlanTier,
		&b.TrialEndsAt,
		&b.PaidUntil,
		&b.DemoMode,
		&b.NotificationsEnabled,
		&b.RequiresDeposit,
		&b.DepositAmount,
		&b.CreatedAt,
		&b.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBusinessNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan business: %v", ErrScanRow, err)
	}

	return &b, nil
}

// Update сохраняет профиль, тариф и флаги бизнеса
func (r *Repository) Update(ctx context.Context, b *domain.Business) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(businessTable).
		Set("name", b.Name).
		Set("logo_url", b.LogoURL).
		Set("contact_email", b.ContactEmail).
		Set("phone", b.Phone).
		Set("plan_tier", b.PlanTier).
		Set("trial_ends_at", b.TrialEndsAt).
		Set("paid_until", b.PaidUntil).
		Set("demo_mode", b.DemoMode).
		Set("notifications_enabled", b.NotificationsEnabled).
		Set("requires_deposit", b.RequiresDeposit).
		Set("deposit_amount", b.DepositAmount).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": b.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Update - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return ErrBusinessNotFound
	}

	return nil
}
