package hybrid

import (
	"context"
	"errors"

	"justice-play/internal/app"
	"justice-play/internal/domain"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ProfileRepository pairs an on-device copy with the remote record.
//
// Loads read both copies and merge them (domain.MergeProfiles), then write the merged record
// back to both. The remote copy is authoritative for writes: its errors are returned, while a
// failed local write is only logged. When the remote cannot be read the local copy is served.
type ProfileRepository struct {
	local  app.ProfileRepository
	remote app.ProfileRepository
	logger *zap.Logger
}

func NewProfileRepository(local, remote app.ProfileRepository, logger *zap.Logger) *ProfileRepository {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProfileRepository{local: local, remote: remote, logger: logger}
}

func (r *ProfileRepository) Get(ctx context.Context, userID string) (domain.UserProfile, error) {
	var (
		local, remote       domain.UserProfile
		localErr, remoteErr error
	)
	var g errgroup.Group
	g.Go(func() error {
		local, localErr = r.local.Get(ctx, userID)
		return nil
	})
	g.Go(func() error {
		remote, remoteErr = r.remote.Get(ctx, userID)
		return nil
	})
	_ = g.Wait()

	localFound := localErr == nil
	remoteFound := remoteErr == nil
	if localErr != nil && !errors.Is(localErr, domain.ErrProfileNotFound) {
		r.logger.Warn("local profile read failed", zap.String("user_id", userID), zap.Error(localErr))
	}

	switch {
	case remoteErr != nil && !errors.Is(remoteErr, domain.ErrProfileNotFound):
		if !localFound {
			return domain.UserProfile{}, remoteErr
		}
		r.logger.Warn("remote profile read failed, serving local copy", zap.String("user_id", userID), zap.Error(remoteErr))
		return local, nil
	case !localFound && !remoteFound:
		return domain.UserProfile{}, domain.ErrProfileNotFound
	case !localFound:
		r.writeLocal(ctx, remote)
		return remote, nil
	case !remoteFound:
		// record only exists on this device: migrate it
		if err := r.remote.Put(ctx, local); err != nil {
			r.logger.Warn("migrate local profile failed", zap.String("user_id", userID), zap.Error(err))
		}
		return local, nil
	}

	merged := domain.MergeProfiles(remote, local)
	if err := r.Put(ctx, merged); err != nil {
		r.logger.Warn("write back merged profile failed", zap.String("user_id", userID), zap.Error(err))
	}
	return merged, nil
}

// Put writes the remote copy first. The local copy only follows a confirmed remote write, so a
// rejected change never survives on the device to be merged back in on the next load.
func (r *ProfileRepository) Put(ctx context.Context, profile domain.UserProfile) error {
	if err := r.remote.Put(ctx, profile); err != nil {
		return err
	}
	r.writeLocal(ctx, profile)
	return nil
}

func (r *ProfileRepository) SetSessionActive(ctx context.Context, userID string, active bool) error {
	var localErr error
	var g errgroup.Group
	g.Go(func() error {
		localErr = r.local.SetSessionActive(ctx, userID, active)
		return nil
	})
	g.Go(func() error {
		return r.remote.SetSessionActive(ctx, userID, active)
	})
	err := g.Wait()
	if localErr != nil {
		r.logger.Warn("local session marker failed", zap.String("user_id", userID), zap.Error(localErr))
	}
	return err
}

func (r *ProfileRepository) writeLocal(ctx context.Context, profile domain.UserProfile) {
	if err := r.local.Put(ctx, profile); err != nil {
		r.logger.Warn("local profile write failed", zap.String("user_id", profile.ID), zap.Error(err))
	}
}
