package app

import (
	"context"

	"justice-play/internal/domain"
)

// VideoLibrary is the read-only video content.
type VideoLibrary interface {
	Videos(tier domain.AgeTier) []domain.Video
	Video(videoID int) (domain.Video, error)
}

// VideoService lists videos for the user's tier and pays out watch rewards.
type VideoService struct {
	library  VideoLibrary
	profiles *ProfileStore
	resolver *Resolver
}

func NewVideoService(library VideoLibrary, profiles *ProfileStore, resolver *Resolver) *VideoService {
	return &VideoService{library: library, profiles: profiles, resolver: resolver}
}

// List returns the videos shown to the user's effective tier.
func (s *VideoService) List(userID string) ([]domain.Video, error) {
	profile, err := s.profiles.Profile(userID)
	if err != nil {
		return nil, err
	}
	return s.library.Videos(s.resolver.EffectiveTier(profile)), nil
}

// Watched awards the video's points. Every completed viewing pays out.
func (s *VideoService) Watched(ctx context.Context, userID string, videoID int) (domain.UserProfile, error) {
	video, err := s.library.Video(videoID)
	if err != nil {
		return domain.UserProfile{}, err
	}
	return s.profiles.AwardPoints(ctx, userID, video.Points)
}
