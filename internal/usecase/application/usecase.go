package application

import (
	"context"
	"errors"
	"strings"
	"time"

	appDomain "compass-backend/internal/domain/application"
	"compass-backend/internal/domain/catalog"
	"compass-backend/internal/domain/uow"
	"compass-backend/internal/domain/user"

	"gorm.io/gorm"
)

// Usecase is the tool-application moderation workflow: submission,
// admin listing and the approve/reject transition that promotes an
// application into the public catalog.
type Usecase struct {
	apps  appDomain.Repository
	users user.Repository
	cats  catalog.CategoryRepository
	uow   uow.UnitOfWork
}

func NewUsecase(apps appDomain.Repository, users user.Repository, cats catalog.CategoryRepository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{apps: apps, users: users, cats: cats, uow: tx}
}

// Submit persists a new application with status forced to PENDING and
// links its categories (find-or-create per name). Duplicate names in the
// input are de-duplicated by resolved category ID so the composite-key
// join table never sees a duplicate insert. No uniqueness check against
// existing applications or catalog rows happens here; duplicates
// reconcile at approval time.
func (u *Usecase) Submit(ctx context.Context, userID uint64, in SubmitInput) (uint64, error) {
	var appID uint64
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if _, err := r.Users.GetByID(ctx, userID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return user.ErrNotFound
			}
			return err
		}

		app := &appDomain.Application{
			UserID:      userID,
			Name:        in.Name,
			SubTitle:    in.SubTitle,
			Origin:      in.Origin,
			URL:         in.URL,
			Logo:        in.Logo,
			Description: in.Description,
			Status:      appDomain.StatusPending,
			AppliedAt:   time.Now().UTC(),
		}
		if err := r.Applications.Create(ctx, app); err != nil {
			return err
		}

		linked := make(map[uint64]bool)
		for _, name := range in.Categories {
			if strings.TrimSpace(name) == "" {
				continue
			}
			c, err := r.Categories.GetOrCreate(ctx, name)
			if err != nil {
				return err
			}
			if linked[c.ID] {
				continue
			}
			linked[c.ID] = true
			if err := r.Applications.LinkCategory(ctx, app.ID, c.ID); err != nil {
				return err
			}
		}

		appID = app.ID
		return nil
	})
	return appID, err
}

// ListForAdmin returns the whole moderation queue, newest first, with
// applicant summary and resolved category names.
func (u *Usecase) ListForAdmin(ctx context.Context) ([]ApplicationDTO, error) {
	apps, err := u.apps.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return u.assemble(ctx, apps)
}

// ListForUser returns the caller's own applications, newest first.
func (u *Usecase) ListForUser(ctx context.Context, userID uint64) ([]ApplicationDTO, error) {
	apps, err := u.apps.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return u.assemble(ctx, apps)
}

// assemble replaces the ORM's lazy traversal with explicit per-relation
// loads: applicants are fetched once per distinct user ID, categories per
// application.
func (u *Usecase) assemble(ctx context.Context, apps []appDomain.Application) ([]ApplicationDTO, error) {
	applicants := make(map[uint64]*user.User)

	out := make([]ApplicationDTO, 0, len(apps))
	for i := range apps {
		app := &apps[i]

		applicant, ok := applicants[app.UserID]
		if !ok {
			loaded, err := u.users.GetByID(ctx, app.UserID)
			if err != nil {
				return nil, err
			}
			applicant = loaded
			applicants[app.UserID] = loaded
		}

		names, err := u.cats.NamesForApplication(ctx, app.ID)
		if err != nil {
			return nil, err
		}

		out = append(out, ApplicationDTO{
			ID:           app.ID,
			Name:         app.Name,
			SubTitle:     app.SubTitle,
			Origin:       app.Origin,
			URL:          app.URL,
			Logo:         app.Logo,
			Description:  app.Description,
			Status:       string(app.Status),
			AppliedAt:    app.AppliedAt,
			ProcessedAt:  app.ProcessedAt,
			RejectReason: app.RejectReason,
			Applicant: ApplicantDTO{
				ID:    applicant.ID,
				Name:  applicant.Name,
				Email: applicant.Email,
			},
			Categories: names,
		})
	}
	return out, nil
}

// UpdateStatus is the admin decision. It unconditionally overwrites
// status, processedAt and processedBy; a decided application may be
// re-processed and its prior decision metadata is overwritten. REJECTED
// stores the given reason or a canned default; any other status clears
// the reason. APPROVED additionally upserts the snapshot into the
// catalog, all within the same transaction.
func (u *Usecase) UpdateStatus(ctx context.Context, in UpdateStatusInput) error {
	status, err := appDomain.ParseStatus(in.Status)
	if err != nil {
		return err
	}

	return u.uow.WithinTx(ctx, func(r uow.Repos) error {
		app, err := r.Applications.GetByID(ctx, in.ApplicationID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return appDomain.ErrNotFound
			}
			return err
		}
		admin, err := r.Users.GetByID(ctx, in.AdminID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return user.ErrNotFound
			}
			return err
		}

		now := time.Now().UTC()
		app.Status = status
		app.ProcessedAt = &now
		app.ProcessedBy = &admin.ID

		if status == appDomain.StatusRejected {
			reason := in.RejectReason
			if strings.TrimSpace(reason) == "" {
				reason = appDomain.DefaultRejectReason
			}
			app.RejectReason = &reason
		} else {
			app.RejectReason = nil
		}

		if err := r.Applications.Save(ctx, app); err != nil {
			return err
		}

		if status == appDomain.StatusApproved {
			return promote(ctx, r, app)
		}
		return nil
	})
}

// promote upserts an approved application into the catalog: match an
// existing tool by exact name, then by exact URL, else create a new row
// from the snapshot. A matched row keeps its own name but takes every
// other mutable field from the application. Categories are added with set
// semantics and never removed. The name-then-URL heuristic can merge
// distinct applications or leave near-duplicates; that is accepted
// behavior.
func promote(ctx context.Context, r uow.Repos, app *appDomain.Application) error {
	var tool *catalog.Tool

	if app.Name != "" {
		t, err := r.Tools.FindByName(ctx, app.Name)
		switch {
		case err == nil:
			tool = t
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}
	}
	if tool == nil && app.URL != "" {
		t, err := r.Tools.FindByURL(ctx, app.URL)
		switch {
		case err == nil:
			tool = t
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}
	}

	if tool == nil {
		tool = &catalog.Tool{
			Name:        app.Name,
			SubTitle:    app.SubTitle,
			Origin:      app.Origin,
			URL:         app.URL,
			Logo:        app.Logo,
			Description: app.Description,
		}
		if err := r.Tools.Create(ctx, tool); err != nil {
			return err
		}
	} else {
		tool.SubTitle = app.SubTitle
		tool.Origin = app.Origin
		tool.URL = app.URL
		tool.Logo = app.Logo
		tool.Description = app.Description
		if err := r.Tools.Save(ctx, tool); err != nil {
			return err
		}
	}

	ids, err := r.Applications.CategoryIDsFor(ctx, app.ID)
	if err != nil {
		return err
	}
	for _, categoryID := range ids {
		if err := r.Tools.AddCategory(ctx, tool.ID, categoryID); err != nil {
			return err
		}
	}
	return nil
}
