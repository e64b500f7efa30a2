package like

import (
	"context"
	"errors"

	"compass-backend/internal/domain/catalog"
	likeDomain "compass-backend/internal/domain/like"
	"compass-backend/internal/domain/uow"
	"compass-backend/internal/usecase/tool"

	"gorm.io/gorm"
)

type Usecase struct {
	likes likeDomain.Repository
	tools catalog.ToolRepository
	uow   uow.UnitOfWork
}

func NewUsecase(likes likeDomain.Repository, tools catalog.ToolRepository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{likes: likes, tools: tools, uow: tx}
}

type StatusDTO struct {
	ToolID uint64 `json:"tool_id"`
	Liked  bool   `json:"liked"`
	Count  int64  `json:"like_count"`
}

// Like idempotently ensures the (user, tool) row exists. The existence
// check and insert are not atomic; a concurrent like that wins the race
// surfaces as a duplicate-key error and counts as already liked.
func (u *Usecase) Like(ctx context.Context, userID, toolID uint64) (*StatusDTO, error) {
	var dto *StatusDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if err := toolMustExist(ctx, r.Tools, toolID); err != nil {
			return err
		}

		exists, err := r.Likes.Exists(ctx, userID, toolID)
		if err != nil {
			return err
		}
		if !exists {
			err := r.Likes.Create(ctx, &likeDomain.Like{UserID: userID, ToolID: toolID})
			if err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
				return err
			}
		}

		count, err := r.Likes.CountByToolID(ctx, toolID)
		if err != nil {
			return err
		}
		dto = &StatusDTO{ToolID: toolID, Liked: true, Count: count}
		return nil
	})
	return dto, err
}

// Unlike idempotently removes the row; unliking a non-liked pair is a
// no-op.
func (u *Usecase) Unlike(ctx context.Context, userID, toolID uint64) (*StatusDTO, error) {
	var dto *StatusDTO
	err := u.uow.WithinTx(ctx, func(r uow.Repos) error {
		if err := toolMustExist(ctx, r.Tools, toolID); err != nil {
			return err
		}
		if err := r.Likes.Delete(ctx, userID, toolID); err != nil {
			return err
		}
		count, err := r.Likes.CountByToolID(ctx, toolID)
		if err != nil {
			return err
		}
		dto = &StatusDTO{ToolID: toolID, Liked: false, Count: count}
		return nil
	})
	return dto, err
}

// Status reports liked=false when no user context is supplied.
func (u *Usecase) Status(ctx context.Context, userID *uint64, toolID uint64) (*StatusDTO, error) {
	if err := toolMustExist(ctx, u.tools, toolID); err != nil {
		return nil, err
	}
	count, err := u.likes.CountByToolID(ctx, toolID)
	if err != nil {
		return nil, err
	}
	liked := false
	if userID != nil {
		liked, err = u.likes.Exists(ctx, *userID, toolID)
		if err != nil {
			return nil, err
		}
	}
	return &StatusDTO{ToolID: toolID, Liked: liked, Count: count}, nil
}

// ListLiked returns the user's liked tools in like-recency order. The
// ordering is reassembled in application code from the like rows (the
// tool fetch does not preserve it).
func (u *Usecase) ListLiked(ctx context.Context, userID uint64) ([]tool.ToolDTO, error) {
	likes, err := u.likes.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(likes) == 0 {
		return []tool.ToolDTO{}, nil
	}

	ids := make([]uint64, 0, len(likes))
	for _, l := range likes {
		ids = append(ids, l.ToolID)
	}
	tools, err := u.tools.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[uint64]*catalog.Tool, len(tools))
	for i := range tools {
		byID[tools[i].ID] = &tools[i]
	}

	out := make([]tool.ToolDTO, 0, len(ids))
	for _, id := range ids {
		t, ok := byID[id]
		if !ok {
			continue
		}
		out = append(out, tool.ToDTO(t))
	}
	return out, nil
}

func toolMustExist(ctx context.Context, tools catalog.ToolRepository, toolID uint64) error {
	exists, err := tools.ExistsByID(ctx, toolID)
	if err != nil {
		return err
	}
	if !exists {
		return catalog.ErrNotFound
	}
	return nil
}
